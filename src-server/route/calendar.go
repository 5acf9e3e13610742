package route

import (
	"encoding/json"
	"net/http"
	"time"

	"moncal/src-server/calendar"
	"moncal/src-server/utils"
)

func Calendar(muxer *http.ServeMux, as *utils.AppState) {
	type GetEventsReqBody struct {
		Year  int `json:"year"`
		Month int `json:"month"`
	}

	type GetEventsRespBody struct {
		// month-grid slots, 0 meaning a leading blank cell
		Days []int `json:"days"`
		// date key -> that day's events, only non-empty days present
		Events map[calendar.DateKey][]calendar.Event `json:"events"`
	}

	// get the month grid and every event filed in that month
	muxer.HandleFunc("POST /calendar/get-events", LogMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			var reqBody GetEventsReqBody
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid request body"))
				return
			}
			if reqBody.Year < 1 || reqBody.Month < 1 || reqBody.Month > 12 {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Please provide a year and a month (1-12)"))
				return
			}

			respBody := GetEventsRespBody{
				Days:   calendar.MonthDays(reqBody.Year, time.Month(reqBody.Month)),
				Events: make(map[calendar.DateKey][]calendar.Event),
			}

			as.StoreMu.Lock()
			for _, day := range respBody.Days {
				if day == 0 {
					continue
				}
				key := calendar.NewDateKey(
					time.Date(reqBody.Year, time.Month(reqBody.Month), day, 0, 0, 0, 0, as.Config.GetLocation()),
				)
				if events := as.Store.Events(key); len(events) > 0 {
					respBody.Events[key] = events
				}
			}
			as.StoreMu.Unlock()

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(respBody); err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't encode response"))
				return
			}
		}))

	type SearchReqBody struct {
		Query string `json:"query"`
	}

	// case-insensitive substring search over titles and descriptions
	muxer.HandleFunc("POST /calendar/search", LogMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			var reqBody SearchReqBody
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid request body"))
				return
			}

			as.StoreMu.Lock()
			results := as.Store.Search(reqBody.Query)
			as.StoreMu.Unlock()

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(results); err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't encode response"))
				return
			}
		}))
}
