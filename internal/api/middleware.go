package api

import (
	"net/http"
	"strings"
	"time"

	"passagens/internal/auth"
	"passagens/internal/user"
	"passagens/pkg/config"
)

// SessionAuth validates the session token issued at login.
//
// Expected header:
// - Authorization: Bearer <JWT>
//
// In dev, if Authorization is missing, it can fall back to X-User-Email to
// keep local testing simple.
func SessionAuth(cfg config.Config, users *user.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := strings.TrimSpace(r.Header.Get("Authorization"))
			if strings.HasPrefix(strings.ToLower(authz), "bearer ") {
				token := strings.TrimSpace(authz[7:])
				claims, err := auth.VerifyToken(token, cfg.Auth.JWTSecret, time.Now())
				if err != nil {
					WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid session token")
					return
				}

				// Resolve the user from the DB so role changes take effect on
				// the next request, not only on re-login.
				u, err := users.FindByID(r.Context(), claims.Subject)
				if err != nil {
					WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "unknown user")
					return
				}

				next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
				return
			}

			// Dev fallback
			if cfg.AppEnv != "prod" {
				email := strings.TrimSpace(r.Header.Get("X-User-Email"))
				if email != "" {
					u, err := users.FindByEmail(r.Context(), email)
					if err != nil {
						WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "unknown user")
						return
					}
					next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
					return
				}
			}

			WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing session token")
		})
	}
}
