package calendar

import "time"

// DefaultHorizon is how many future occurrences a recurring creation
// generates when the caller doesn't override it.
const DefaultHorizon = 12

// maxOccurrenceIterations bounds the generator no matter what horizon a
// caller asks for.
const maxOccurrenceIterations = 101

// Occurrences produces the future occurrence dates of a recurring series:
// exactly horizon dates after start (start itself excluded), each one
// frequency unit after the previous. Monthly and yearly steps use
// time.AddDate, so a Jan 31 start rolls over through short months instead
// of skipping them. FreqNone yields nothing.
func Occurrences(start time.Time, freq Frequency, horizon int) []time.Time {
	if freq == FreqNone || horizon <= 0 {
		return nil
	}
	if horizon > maxOccurrenceIterations {
		horizon = maxOccurrenceIterations
	}

	dates := make([]time.Time, 0, horizon)
	current := start
	for i := 0; i < horizon; i++ {
		switch freq {
		case FreqDaily:
			current = current.AddDate(0, 0, 1)
		case FreqWeekly:
			current = current.AddDate(0, 0, 7)
		case FreqMonthly:
			current = current.AddDate(0, 1, 0)
		case FreqYearly:
			current = current.AddDate(1, 0, 0)
		default:
			return dates
		}
		dates = append(dates, current)
	}
	return dates
}
