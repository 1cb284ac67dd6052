package middlewarex

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"feedback_widget/pkg/errcodes"
	"feedback_widget/pkg/httpx/reply"
)

const bearerPrefix = "Bearer "

// BearerAuth пропускает запрос только с заголовком "Authorization: Bearer <token>".
// Пустой token закрывает маршрут целиком.
func BearerAuth(token string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			got, ok := strings.CutPrefix(header, bearerPrefix)
			if !ok || token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				w.Header().Set("WWW-Authenticate", "Bearer")
				reply.Error(r.Context(), w, failure.NewUnauthorizedError(
					"staff token required",
					failure.WithCode(errcodes.Unauthorized),
					failure.WithDescription("Valid staff bearer token required"),
				))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
