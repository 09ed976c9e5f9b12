package middleware

import (
	"io"
	"net/http"
)

// preference payloads are tiny, anything above this is not worth reading
const maxDrainBytes = 1 << 20

// DrainAndCloseRequest drains what is left of the request body (up to maxDrainBytes)
// and closes it, so the underlying connection can be reused.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil {
				return
			}
			_, _ = io.CopyN(io.Discard, r.Body, maxDrainBytes)
			_ = r.Body.Close()
		})
	}
}
