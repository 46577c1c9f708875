package middlewares

import (
	"crypto/subtle"
	"net/http"

	"casino-ledger-backend/internal/logger"
)

// BotSecretHeader carries the shared secret for the admin decision routes.
const BotSecretHeader = "X-Bot-Secret"

// BotSecretMiddleware returns a middleware that gates the admin routes behind
// a shared secret. An empty configured secret disables the routes entirely.
func BotSecretMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(BotSecretHeader)
			if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				logger.Log.Errorw("admin request rejected", "path", r.URL.Path, "remote", r.RemoteAddr)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error":"forbidden"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
