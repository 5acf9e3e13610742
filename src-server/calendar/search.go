package calendar

import (
	"sort"
	"strings"
)

// Search returns every event whose title or description contains the query,
// case-insensitively, sorted ascending by date key; events on the same day
// keep their bucket order. A blank query matches nothing rather than
// everything. Pure read, recomputed per call.
func (s *Store) Search(query string) []Event {
	if query == "" {
		return []Event{}
	}
	needle := strings.ToLower(query)

	results := make([]Event, 0)
	for _, key := range s.Days() {
		for _, event := range s.buckets[key] {
			if strings.Contains(strings.ToLower(event.Title), needle) ||
				strings.Contains(strings.ToLower(event.Description), needle) {
				results = append(results, event)
			}
		}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Date < results[j].Date })
	return results
}
