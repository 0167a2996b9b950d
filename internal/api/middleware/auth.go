package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

// UserIDKey ключ контекста, под которым хранится идентификатор пользователя
const UserIDKey contextKey = "userID"

const headerUserID = "X-User-ID"

// Auth проверяет наличие заголовка X-User-ID и кладёт его значение в контекст запроса.
// Аутентификацией как таковой занимается API gateway, здесь только проверка заголовка.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(headerUserID)
		if userID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{
				"error": "отсутствует заголовок X-User-ID",
			})
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает идентификатор пользователя из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}
