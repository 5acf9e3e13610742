package route

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"moncal/src-server/calendar"
	"moncal/src-server/utils"
)

// 8 MiB is plenty for a personal calendar dump.
const maxImportBytes = 8 << 20

func Transfer(muxer *http.ServeMux, as *utils.AppState) {
	// download the whole store as a dated JSON file
	muxer.HandleFunc("GET /export", LogMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			as.StoreMu.Lock()
			filename, data, err := as.Store.ExportFile(time.Now().In(as.Config.GetLocation()))
			as.StoreMu.Unlock()
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't export events"))
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
			w.Write(data)
		}))

	type ImportRespBody struct {
		EventCount int  `json:"eventCount"`
		Saved      bool `json:"saved"`
	}

	// replace the whole store with an uploaded export; nothing changes
	// unless the payload parses
	muxer.HandleFunc("POST /import", LogMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			raw, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Can't read request body"))
				return
			}

			as.StoreMu.Lock()
			if err := as.Store.Import(raw); err != nil {
				as.StoreMu.Unlock()
				if errors.Is(err, calendar.ErrFormat) {
					w.WriteHeader(http.StatusBadRequest)
				} else {
					w.WriteHeader(http.StatusInternalServerError)
				}
				w.Write([]byte(err.Error()))
				return
			}
			saved := as.SaveStore(r.Context())
			eventCount := as.Store.Len()
			as.StoreMu.Unlock()

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(ImportRespBody{
				EventCount: eventCount,
				Saved:      saved,
			}); err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't encode response"))
				return
			}
		}))
}
