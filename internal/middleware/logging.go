package middleware

import (
	"net/http"

	"github.com/2beens/fitstats/pkg"

	"github.com/felixge/httpsnoop"
	log "github.com/sirupsen/logrus"
)

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(next, w, r)

			log.WithFields(log.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"query":    r.URL.RawQuery,
				"status":   m.Code,
				"bytes":    m.Written,
				"duration": m.Duration.String(),
				"ua":       r.Header.Get("User-Agent"),
				"ip":       pkg.ClientIP(r),
			}).Trace(" ====> request")
		})
	}
}
