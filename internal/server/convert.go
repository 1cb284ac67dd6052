package server

import (
	"github.com/samber/lo"

	"feedback_widget/internal/domain/entity"
	"feedback_widget/internal/domain/service/widget"
	"feedback_widget/pkg/rest"
)

func newRESTSession(view widget.View, navigateTo string) rest.Session {
	session := rest.Session{
		ID:               view.SessionID.String(),
		OrganizationID:   view.OrganizationID.String(),
		LocationID:       view.LocationID.String(),
		OrganizationName: view.OrganizationName,
		State:            view.State.String(),
		Rating:           view.Rating.Int(),
		HoveredRating:    view.HoveredRating.Int(),
		Comment:          view.Comment.String(),
		Countdown:        view.Countdown,
		Submitting:       view.Submitting,
		Submitted:        view.Submitted,
		ReviewURL:        view.ReviewURL,
		NavigateTo:       navigateTo,
	}

	if view.ErrorMessage != "" {
		session.Error = &rest.SessionError{
			Message:   view.ErrorMessage,
			Retryable: view.Retryable,
		}
	}

	return session
}

func newRESTOrganization(organization entity.Organization) rest.Organization {
	return rest.Organization{
		ID:   organization.ID.String(),
		Name: organization.Name,
	}
}

func newRESTFeedbackList(records []entity.Feedback) rest.FeedbackList {
	return rest.FeedbackList{
		Items: lo.Map(records, func(record entity.Feedback, _ int) rest.Feedback {
			return rest.Feedback{
				ID:             record.ID,
				OrganizationID: record.OrganizationID.String(),
				LocationID:     record.LocationID.String(),
				Rating:         record.Rating.Int(),
				Comment:        record.Comment.String(),
				CreatedAt:      record.CreatedAt,
			}
		}),
	}
}
