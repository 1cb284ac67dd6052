package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"feedback_widget/internal/domain"
	"feedback_widget/pkg/httpx/reply"
	"feedback_widget/pkg/logx"
	"feedback_widget/pkg/middlewarex"
)

func (s Server) RegisterRoutes(r chi.Router) { //nolint:funlen
	r.Route("/", func(r chi.Router) {
		// страницы виджета
		r.Route("/feedback", func(r chi.Router) {
			r.Get("/", s.page(s.getFeedback))
			r.Route("/{sessionId}", func(r chi.Router) {
				r.Use(middlewarex.SessionID("sessionId"))
				r.Get("/", s.page(s.getFeedbackSession))
				r.Post("/rating", s.page(s.postFeedbackRating))
				r.Post("/comment", s.page(s.postFeedbackComment))
				r.Post("/dismiss", s.page(s.postFeedbackDismiss))
			})
		})

		r.Route("/v1", func(r chi.Router) {
			// unauthorized zone
			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", handler(s.postV1Session))
				r.Route("/{id}", func(r chi.Router) {
					r.Use(middlewarex.SessionID("id"))
					r.Get("/", handler(s.getV1Session))
					r.Delete("/", handler(s.deleteV1Session))
					r.Post("/hover", handler(s.postV1SessionHover))
					r.Post("/rating", handler(s.postV1SessionRating))
					r.Post("/submit", handler(s.postV1SessionSubmit))
					r.Post("/dismiss", handler(s.postV1SessionDismiss))
				})
			})
			r.Route("/organizations/{id}", func(r chi.Router) {
				r.Get("/", handler(s.getV1Organization))

				// staff zone
				r.With(middlewarex.BearerAuth(s.staffToken)).Get("/feedback", handler(s.getV1OrganizationFeedback))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, domain.ToFailure(err))
		}
	}
}

// page как handler, но ошибка показывается HTML страницей.
func (s Server) page(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			logger(r.Context()).Error("page", logx.Error(err))
			s.renderFailure(w)
		}
	}
}
