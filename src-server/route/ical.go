package route

import (
	"net/http"

	"moncal/src-server/ical"
	"moncal/src-server/utils"
)

func Ical(muxer *http.ServeMux, as *utils.AppState) {
	muxer.HandleFunc("GET /ical", LogMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			as.StoreMu.Lock()
			icalCalendar, err := ical.FromStore(as.Store, "moncal")
			as.StoreMu.Unlock()
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			icalStr, err := icalCalendar.ToIcal()
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			w.Header().Set("Content-Type", "text/calendar")
			w.Header().Set("Content-Disposition", `attachment; filename="moncal.ics"`)
			w.Write([]byte(icalStr))
		}))
}
