package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"feedback_widget/internal/domain/service/widget"
	"feedback_widget/internal/domain/value"
	"feedback_widget/pkg/httpx/reply"
	"feedback_widget/pkg/httpx/req"
	"feedback_widget/pkg/rest"
)

// WidgetServer JSON API виджет-сессий.
type WidgetServer struct {
	registry sessionRegistry
}

func NewWidgetServer(registry sessionRegistry) WidgetServer {
	return WidgetServer{
		registry: registry,
	}
}

func (s WidgetServer) postV1Session(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CreateSessionRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	link, err := widget.NewLink(request.OrganizationID, request.LocationID)
	if err != nil {
		return fmt.Errorf("widget.NewLink: %w", err)
	}

	session := s.registry.Create(ctx, link)

	reply.JSON(ctx, w, http.StatusCreated, newRESTSession(session.View(), ""))

	return nil
}

func (s WidgetServer) getV1Session(w http.ResponseWriter, r *http.Request) error {
	session, err := s.sessionFromPath(r)
	if err != nil {
		return err
	}

	s.replySession(w, r, session)

	return nil
}

func (s WidgetServer) postV1SessionHover(w http.ResponseWriter, r *http.Request) error {
	session, err := s.sessionFromPath(r)
	if err != nil {
		return err
	}

	var request rest.RatingRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if err = session.Hover(request.Rating); err != nil {
		return fmt.Errorf("session.Hover: %w", err)
	}

	s.replySession(w, r, session)

	return nil
}

func (s WidgetServer) postV1SessionRating(w http.ResponseWriter, r *http.Request) error {
	session, err := s.sessionFromPath(r)
	if err != nil {
		return err
	}

	var request rest.RatingRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if err = session.SelectRating(r.Context(), request.Rating); err != nil {
		return fmt.Errorf("session.SelectRating: %w", err)
	}

	s.replySession(w, r, session)

	return nil
}

func (s WidgetServer) postV1SessionSubmit(w http.ResponseWriter, r *http.Request) error {
	session, err := s.sessionFromPath(r)
	if err != nil {
		return err
	}

	var request rest.SubmitRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if err = session.SetComment(request.Comment); err != nil {
		return fmt.Errorf("session.SetComment: %w", err)
	}

	if err = session.Submit(r.Context()); err != nil {
		return fmt.Errorf("session.Submit: %w", err)
	}

	s.replySession(w, r, session)

	return nil
}

func (s WidgetServer) postV1SessionDismiss(w http.ResponseWriter, r *http.Request) error {
	session, err := s.sessionFromPath(r)
	if err != nil {
		return err
	}

	if err = session.Dismiss(); err != nil {
		return fmt.Errorf("session.Dismiss: %w", err)
	}

	s.replySession(w, r, session)

	return nil
}

func (s WidgetServer) deleteV1Session(w http.ResponseWriter, r *http.Request) error {
	id, err := value.ParseSessionID(chi.URLParam(r, "id"))
	if err != nil {
		return fmt.Errorf("value.ParseSessionID: %w", err)
	}

	if err = s.registry.Delete(id); err != nil {
		return fmt.Errorf("registry.Delete: %w", err)
	}

	reply.NoContent(w)

	return nil
}

func (s WidgetServer) sessionFromPath(r *http.Request) (*widget.Session, error) {
	id, err := value.ParseSessionID(chi.URLParam(r, "id"))
	if err != nil {
		return nil, fmt.Errorf("value.ParseSessionID: %w", err)
	}

	session, err := s.registry.Get(id)
	if err != nil {
		return nil, fmt.Errorf("registry.Get: %w", err)
	}

	return session, nil
}

// replySession отдаёт снимок сессии; ожидающий переход забирается из outbox.
func (s WidgetServer) replySession(w http.ResponseWriter, r *http.Request, session *widget.Session) {
	navigateTo, _ := session.TakeNavigation()

	reply.JSON(r.Context(), w, http.StatusOK, newRESTSession(session.View(), navigateTo))
}
