package auth

import (
	"net/http"
	"strings"

	"kuryecini/internal/entities"
	"kuryecini/internal/pkg/authtoken"
)

type Verifier interface {
	Verify(token string) (entities.Actor, error)
}

// Middleware проверяет Bearer-токен и кладет актора в контекст запроса.
// Непустой список roles дополнительно ограничивает допустимые роли.
func Middleware(verifier Verifier, roles ...entities.ActorRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				http.Error(w, "Missing authorization token", http.StatusUnauthorized)
				return
			}

			actor, err := verifier.Verify(token)
			if err != nil {
				http.Error(w, "Invalid authorization token", http.StatusUnauthorized)
				return
			}

			if len(roles) > 0 && !roleAllowed(actor.Role, roles) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(authtoken.WithActor(r.Context(), actor)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		// websocket-клиенты браузеров не могут выставлять заголовки
		if token := r.URL.Query().Get("token"); token != "" {
			return token, true
		}
		return "", false
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

func roleAllowed(role entities.ActorRole, roles []entities.ActorRole) bool {
	for _, allowed := range roles {
		if role == allowed {
			return true
		}
	}
	return false
}
