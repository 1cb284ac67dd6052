package server

import (
	"context"

	"feedback_widget/internal/domain/entity"
	"feedback_widget/internal/domain/service/widget"
	"feedback_widget/internal/domain/value"
	"feedback_widget/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type sessionRegistry interface {
	Create(ctx context.Context, link widget.Link) *widget.Session
	Get(id value.SessionID) (*widget.Session, error)
	Delete(id value.SessionID) error
}

type feedbackService interface {
	Organization(ctx context.Context, id value.OrganizationID) (entity.Organization, error)
	ListFeedback(ctx context.Context, id value.OrganizationID, limit int) ([]entity.Feedback, error)
}

// Данный сервер просто объединяет специфичные HTTP сервера, отвечающие за обработку конкретных сущностей:
// JSON API сессий, HTML страницы виджета и чтение организаций.
type Server struct {
	WidgetServer
	PageServer
	OrganizationServer
}

func NewServer(
	widgetServer WidgetServer,
	pageServer PageServer,
	organizationServer OrganizationServer,
) Server {
	return Server{
		WidgetServer:       widgetServer,
		PageServer:         pageServer,
		OrganizationServer: organizationServer,
	}
}
