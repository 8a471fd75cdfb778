package middleware

import "net/http"

// MaxBodySize limits request body reads to n bytes. Handlers that decode a
// body past the limit get an error from Read, which surfaces as a 400 on
// the JSON-decode path rather than unbounded memory use.
func MaxBodySize(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
