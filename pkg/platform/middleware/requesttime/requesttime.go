// Package requesttime pins one "now" per request, so handler durations and
// log timestamps of a report are measured from the same instant.
package requesttime

import (
	"net/http"
	"time"

	"kontrola/pkg/requestcontext"
)

// Middleware records the arrival time; read it with requestcontext.Now.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(requestcontext.WithTime(r.Context(), time.Now())))
	})
}
