package handler

import (
	"context"

	"feedback_widget/internal/domain/entity"
	"feedback_widget/internal/domain/value"
	"feedback_widget/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type FeedbackService interface {
	ListFeedback(ctx context.Context, id value.OrganizationID, limit int) ([]entity.Feedback, error)
	OrganizationName(ctx context.Context, id value.OrganizationID) string
}

type MuteList interface {
	Add(id value.OrganizationID) bool
	Remove(id value.OrganizationID) bool
	List() []value.OrganizationID
	Clear()
}

type Handler struct {
	svc       FeedbackService
	muted     MuteList
	publicURL string
}

func New(svc FeedbackService, muted MuteList, publicURL string) *Handler {
	return &Handler{
		svc:       svc,
		muted:     muted,
		publicURL: publicURL,
	}
}
