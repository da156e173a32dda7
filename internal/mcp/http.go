package mcp

import (
	"crypto/subtle"
	"net/http"

	"github.com/aki/githelper/internal/core/config"
)

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func authMiddleware(auth config.AuthConfig, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch auth.Type {
		case "", config.AuthNone:
		case config.AuthBearer:
			if !secureEqual(r.Header.Get("Authorization"), "Bearer "+auth.Bearer) {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
		case config.AuthBasic:
			username, password, ok := r.BasicAuth()
			if !ok || !secureEqual(username, auth.Basic.Username) || !secureEqual(password, auth.Basic.Password) {
				w.Header().Set("WWW-Authenticate", `Basic realm="githelper"`)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
		default:
			http.Error(w, "Invalid auth type", http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func secureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
