package route

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"moncal/src-server/calendar"
	"moncal/src-server/utils"
)

func Event(muxer *http.ServeMux, as *utils.AppState) {
	type EventFormReqBody struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		StartTime   string `json:"startTime"`
		EndTime     string `json:"endTime"`
		AllDay      bool   `json:"allDay"`
		Category    string `json:"category"`
		Recurring   string `json:"recurring"`
	}

	parseForm := func(reqBody EventFormReqBody) (calendar.EventForm, error) {
		category, err := calendar.ParseCategory(reqBody.Category)
		if err != nil {
			return calendar.EventForm{}, err
		}
		recurring, err := calendar.ParseFrequency(reqBody.Recurring)
		if err != nil {
			return calendar.EventForm{}, err
		}
		return calendar.EventForm{
			Title:       utils.CleanupString(reqBody.Title),
			Description: reqBody.Description,
			StartTime:   reqBody.StartTime,
			EndTime:     reqBody.EndTime,
			AllDay:      reqBody.AllDay,
			Category:    category,
			Recurring:   recurring,
		}, nil
	}

	// "2024-03-04" or natural language like "next tuesday"
	parseDate := func(raw string) (time.Time, error) {
		if raw == "" {
			return time.Time{}, fmt.Errorf("date is blank")
		}
		if t, err := time.ParseInLocation("2006-01-02", raw, as.Config.GetLocation()); err == nil {
			return t, nil
		}
		result, err := as.When.Parse(raw, time.Now().In(as.Config.GetLocation()))
		if err != nil {
			return time.Time{}, fmt.Errorf("can't parse date: %w", err)
		}
		if result == nil {
			return time.Time{}, fmt.Errorf("can't parse date: %s", raw)
		}
		return result.Time, nil
	}

	type CreateReqBody struct {
		EventFormReqBody
		Date string `json:"date"`
	}

	type CreateRespBody struct {
		CreatedCount int  `json:"createdCount"`
		Saved        bool `json:"saved"`
	}

	// create one event, plus its future siblings when recurring
	muxer.HandleFunc("POST /event/create", LogMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			var reqBody CreateReqBody
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid request body"))
				return
			}

			form, err := parseForm(reqBody.EventFormReqBody)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(err.Error()))
				return
			}
			targetDate, err := parseDate(reqBody.Date)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(err.Error()))
				return
			}

			as.StoreMu.Lock()
			createdCount, err := as.Store.Create(form, targetDate, as.Config.GetRecurHorizon())
			if err != nil {
				as.StoreMu.Unlock()
				if errors.Is(err, calendar.ErrValidation) {
					w.WriteHeader(http.StatusBadRequest)
				} else {
					w.WriteHeader(http.StatusInternalServerError)
				}
				w.Write([]byte(err.Error()))
				return
			}
			saved := as.SaveStore(r.Context())
			as.StoreMu.Unlock()

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(CreateRespBody{
				CreatedCount: createdCount,
				Saved:        saved,
			}); err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't encode response"))
				return
			}
		}))

	type UpdateReqBody struct {
		EventFormReqBody
		DateKey string `json:"dateKey"`
		EventID string `json:"eventId"`
	}

	type SavedRespBody struct {
		Saved bool `json:"saved"`
	}

	// replace one event in place; recurring siblings are untouched
	muxer.HandleFunc("POST /event/update", LogMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			var reqBody UpdateReqBody
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid request body"))
				return
			}

			form, err := parseForm(reqBody.EventFormReqBody)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(err.Error()))
				return
			}

			as.StoreMu.Lock()
			err = as.Store.Update(calendar.DateKey(reqBody.DateKey), reqBody.EventID, form)
			if err != nil {
				as.StoreMu.Unlock()
				switch {
				case errors.Is(err, calendar.ErrNotFound):
					w.WriteHeader(http.StatusNotFound)
				case errors.Is(err, calendar.ErrValidation):
					w.WriteHeader(http.StatusBadRequest)
				default:
					w.WriteHeader(http.StatusInternalServerError)
				}
				w.Write([]byte(err.Error()))
				return
			}
			saved := as.SaveStore(r.Context())
			as.StoreMu.Unlock()

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(SavedRespBody{Saved: saved}); err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't encode response"))
				return
			}
		}))

	type DeleteOneReqBody struct {
		DateKey string `json:"dateKey"`
		EventID string `json:"eventId"`
	}

	// delete one event; deleting a missing one is a no-op
	muxer.HandleFunc("POST /event/delete", LogMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			var reqBody DeleteOneReqBody
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid request body"))
				return
			}

			as.StoreMu.Lock()
			as.Store.DeleteOne(calendar.DateKey(reqBody.DateKey), reqBody.EventID)
			saved := as.SaveStore(r.Context())
			as.StoreMu.Unlock()

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(SavedRespBody{Saved: saved}); err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't encode response"))
				return
			}
		}))

	type GroupReqBody struct {
		RecurringID string `json:"recurringId"`
	}

	type DeleteGroupRespBody struct {
		DeletedCount int  `json:"deletedCount"`
		Saved        bool `json:"saved"`
	}

	// delete every event in one recurring group
	muxer.HandleFunc("POST /event/delete-group", LogMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			var reqBody GroupReqBody
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid request body"))
				return
			}

			as.StoreMu.Lock()
			deletedCount := as.Store.DeleteRecurringGroup(reqBody.RecurringID)
			saved := as.SaveStore(r.Context())
			as.StoreMu.Unlock()

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(DeleteGroupRespBody{
				DeletedCount: deletedCount,
				Saved:        saved,
			}); err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't encode response"))
				return
			}
		}))

	type CountGroupRespBody struct {
		Count int `json:"count"`
	}

	// count a recurring group, for delete-all confirmation dialogs
	muxer.HandleFunc("POST /event/count-group", LogMiddleware(as,
		func(w http.ResponseWriter, r *http.Request) {
			var reqBody GroupReqBody
			if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("Invalid request body"))
				return
			}

			as.StoreMu.Lock()
			count := as.Store.CountRecurringGroup(reqBody.RecurringID)
			as.StoreMu.Unlock()

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(CountGroupRespBody{Count: count}); err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't encode response"))
				return
			}
		}))
}
