package middlewarex

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"feedback_widget/pkg/contextx"
	"feedback_widget/pkg/logx"
)

// SessionID кладёт идентификатор виджет-сессии из пути в контекст и в логгер.
func SessionID(param string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := chi.URLParam(r, param)
			if sessionID == "" {
				next.ServeHTTP(w, r)

				return
			}

			ctx := contextx.WithSessionID(r.Context(), contextx.SessionID(sessionID))
			ctx = contextx.WithLogger(ctx, logger(ctx).With(logx.FieldSessionID, sessionID))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
