package server

import (
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"feedback_widget/internal/domain/value"
	"feedback_widget/pkg/errcodes"
	"feedback_widget/pkg/httpx/reply"
)

type OrganizationServer struct {
	feedbackService feedbackService
	// staffToken закрывает список отзывов, пустой запрещает его совсем.
	staffToken string
}

func NewOrganizationServer(feedbackService feedbackService, staffToken string) OrganizationServer {
	return OrganizationServer{
		feedbackService: feedbackService,
		staffToken:      staffToken,
	}
}

func (s OrganizationServer) getV1Organization(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := value.ParseOrganizationID(chi.URLParam(r, "id"))
	if err != nil {
		return fmt.Errorf("value.ParseOrganizationID: %w", err)
	}

	organization, err := s.feedbackService.Organization(ctx, id)
	if err != nil {
		return fmt.Errorf("feedbackService.Organization: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTOrganization(organization))

	return nil
}

func (s OrganizationServer) getV1OrganizationFeedback(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := value.ParseOrganizationID(chi.URLParam(r, "id"))
	if err != nil {
		return fmt.Errorf("value.ParseOrganizationID: %w", err)
	}

	limit := 0

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return failure.NewInvalidArgumentErrorFromError(
				fmt.Errorf("strconv.Atoi: %w", err),
				failure.WithCode(errcodes.InvalidPaging),
				failure.WithDescription("limit must be a number"),
			)
		}
	}

	records, err := s.feedbackService.ListFeedback(ctx, id, limit)
	if err != nil {
		return fmt.Errorf("feedbackService.ListFeedback: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTFeedbackList(records))

	return nil
}
