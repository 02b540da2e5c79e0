package middleware

import (
	"net/http"
	"strings"

	"github.com/recircle-platform/recircle-backend/internal/auth"
	"github.com/recircle-platform/recircle-backend/pkg/logger"
)

// OptionalAuth attaches the authenticated partner to the context when a
// valid bearer token is present. Requests without a token pass through
// untouched; the public catalog stays readable without a session.
func OptionalAuth(svc auth.Service, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if svc == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := svc.ParseToken(token)
			if err != nil {
				if logg != nil {
					logg.Warn(r.Context(), "auth.token_rejected")
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithPartner(r.Context(), claims.PartnerID, claims.PartnerName)
			if logg != nil {
				ctx = logg.WithPartnerID(ctx, claims.PartnerID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return raw
}
