package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/seanfitz121/gymtracker/internal/telemetry/metrics"
	"github.com/seanfitz121/gymtracker/pkg"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns a handler panic into a 500 JSON response. An
// http.ErrAbortHandler panic is passed on, net/http uses it to drop the connection.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.WithFields(log.Fields{
					"method": req.Method,
					"route":  routeTemplate(req),
				}).Errorf("http: panic serving request: %v\n%s", rec, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				pkg.WriteJSONError(w, "internal error", nil, http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, req)
		})
	}
}
