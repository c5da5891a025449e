package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/RoomBookingService/internal/api/handlers"
	"github.com/m04kA/RoomBookingService/internal/domain"
	"github.com/m04kA/RoomBookingService/pkg/auth"
)

type contextKey string

const identityKey contextKey = "identity"

// TokenParser проверяет токен сессии
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth требует заголовок "Authorization: Bearer <token>" и кладет личность в контекст
func Auth(parser TokenParser, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				logger.Warn("%s %s - missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "")
				return
			}

			claims, err := parser.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				logger.Warn("%s %s - invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, "")
				return
			}

			identity := auth.Identity{
				Role:            claims.Role,
				AssociationID:   claims.AssociationID,
				AssociationName: claims.AssociationName,
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireRole пропускает только запросы с одной из ролей. Ставится после Auth.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[string(role)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, "")
				return
			}
			if _, ok := allowed[identity.Role]; !ok {
				handlers.RespondForbidden(w, "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithIdentity кладет личность в контекст
func WithIdentity(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext достает личность из контекста
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(auth.Identity)
	return identity, ok
}

// RequesterFromContext доменное представление вошедшего пользователя
func RequesterFromContext(ctx context.Context) (domain.Requester, bool) {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		return domain.Requester{}, false
	}
	return domain.Requester{
		Role:          domain.Role(identity.Role),
		AssociationID: identity.AssociationID,
	}, true
}
