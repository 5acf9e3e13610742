package route

import (
	"log/slog"
	"net/http"
	"time"

	"moncal/src-server/utils"
)

// LogMiddleware times every request and feeds the HTTP latency metric.
func LogMiddleware(as *utils.AppState, next func(http.ResponseWriter, *http.Request)) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		startTimer := time.Now()
		next(w, r)
		latency := time.Since(startTimer)
		select {
		case as.MetricChans.HTTPRequest <- float64(latency.Microseconds()):
		default:
		}
		slog.Debug("http request", "method", r.Method, "path", r.URL.Path, "latency", latency)
	}
}
