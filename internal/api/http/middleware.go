package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"toolrent-backend/internal/config"
	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/metrics"
	"toolrent-backend/internal/security"

	"github.com/gorilla/mux"
)

type contextKey string

const claimsKey contextKey = "claims"

// ClaimsFromContext returns the token claims set by the auth middleware.
func ClaimsFromContext(ctx context.Context) (*security.UserClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*security.UserClaims)
	return claims, ok
}

// AuthMiddleware enforces the security level configured for the matched
// route template.
type AuthMiddleware struct {
	tokenManager security.TokenManager
}

func NewAuthMiddleware(tm security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tm}
}

func (a *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		level := config.GetSecurityLevel(r.Method, routeTemplate(r))

		// Public endpoint - skip auth
		if level == config.SecurityPublic {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := extractToken(r)
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "authorization token is not provided")
			return
		}

		claims, err := a.tokenManager.ValidateToken(token)
		if err != nil {
			if errors.Is(err, security.ErrExpiredToken) {
				respondWithError(w, http.StatusUnauthorized, "token has expired")
				return
			}
			respondWithError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		if !hasLevel(level, claims) {
			logger.Warn("Access denied", "userID", claims.UserID, "method", r.Method, "path", r.URL.Path)
			respondWithError(w, http.StatusForbidden, "insufficient role")
			return
		}

		logger.Debug("Request authorized", "userID", claims.UserID, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	})
}

func hasLevel(level config.SecurityLevel, claims *security.UserClaims) bool {
	if claims.Type != security.TokenTypeAccess {
		return false
	}
	switch level {
	case config.SecurityUser:
		return domain.HasRole(claims.Roles, domain.RoleUser)
	default:
		return domain.HasRole(claims.Roles, domain.RoleAdmin)
	}
}

func extractToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	// Remove Bearer prefix if present
	if len(header) > 7 && strings.ToUpper(header[0:7]) == "BEARER " {
		header = header[7:]
	}
	return header, header != ""
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// instrument logs every request and records it in the HTTP metrics.
func instrument(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			route := routeTemplate(r)
			logger.HTTPRequest(r.Method, r.URL.Path, rec.status, elapsed, "route", route)
			m.RecordHTTPRequest(route, r.Method, rec.status, elapsed)
		})
	}
}
