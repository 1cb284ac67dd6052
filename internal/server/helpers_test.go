package server_test

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"feedback_widget/internal/domain"
	"feedback_widget/internal/domain/entity"
	"feedback_widget/internal/domain/service/widget"
	"feedback_widget/internal/domain/value"
	"feedback_widget/internal/server"
	"feedback_widget/pkg/errcodes"
	"feedback_widget/pkg/tests"
)

const (
	reviewURLTemplate = "https://search.google.com/local/writereview?placeid={placeId}"
	staffToken        = "staff-secret"
)

type fakeRecorder struct {
	mu      sync.Mutex
	records []entity.Feedback
}

func (r *fakeRecorder) Record(_ context.Context, feedback entity.Feedback) (entity.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	feedback.ID = int64(len(r.records) + 1)
	feedback.CreatedAt = time.Now()
	r.records = append(r.records, feedback)

	return feedback, nil
}

func (r *fakeRecorder) snapshot() []entity.Feedback {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]entity.Feedback(nil), r.records...)
}

type fakeNames map[value.OrganizationID]string

func (n fakeNames) OrganizationName(_ context.Context, id value.OrganizationID) string {
	return n[id]
}

type fakeFeedbackService struct {
	organizations map[value.OrganizationID]entity.Organization
	records       []entity.Feedback
	lastLimit     int
}

func (s *fakeFeedbackService) Organization(_ context.Context, id value.OrganizationID) (entity.Organization, error) {
	organization, ok := s.organizations[id]
	if !ok {
		return entity.Organization{}, domain.NewError(domain.KindNotFound, errcodes.OrganizationNotFound, "organization not found")
	}

	return organization, nil
}

func (s *fakeFeedbackService) ListFeedback(_ context.Context, id value.OrganizationID, limit int) ([]entity.Feedback, error) {
	if limit < 0 || limit > 100 {
		return nil, domain.NewError(domain.KindInvalidArgument, errcodes.InvalidPaging, "limit must be between 1 and 100")
	}

	s.lastLimit = limit

	var out []entity.Feedback

	for _, record := range s.records {
		if record.OrganizationID == id {
			out = append(out, record)
		}
	}

	return out, nil
}

type env struct {
	client   tests.APIClient
	registry *widget.Registry
	recorder *fakeRecorder
	service  *fakeFeedbackService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	recorder := &fakeRecorder{}
	registry := widget.NewRegistry(recorder, fakeNames{"hosp-1": "City Clinic"}, nil, widget.Options{
		// отсчёт в тестах не тикает
		TickInterval:      time.Hour,
		ReviewURLTemplate: reviewURLTemplate,
	})
	t.Cleanup(registry.Close)

	service := &fakeFeedbackService{
		organizations: map[value.OrganizationID]entity.Organization{
			"hosp-1": {ID: "hosp-1", Name: "City Clinic"},
		},
		records: []entity.Feedback{
			{ID: 2, OrganizationID: "hosp-1", LocationID: "place-1", Rating: 2, Comment: "Long wait"},
			{ID: 1, OrganizationID: "hosp-1", LocationID: "place-1", Rating: 5},
		},
	}

	pages, err := server.NewPageServer(registry)
	require.NoError(t, err)

	srv := server.NewServer(
		server.NewWidgetServer(registry),
		pages,
		server.NewOrganizationServer(service, staffToken),
	)

	router := chi.NewRouter()
	srv.RegisterRoutes(router)

	httpServer := httptest.NewServer(router)
	t.Cleanup(httpServer.Close)

	return &env{
		client:   tests.NewAPIClient(httpServer.URL, httpServer.Client()),
		registry: registry,
		recorder: recorder,
		service:  service,
	}
}
