package feedback

import (
	"context"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"feedback_widget/internal/domain"
	"feedback_widget/internal/domain/entity"
	"feedback_widget/internal/domain/value"
	"feedback_widget/pkg/contextx"
	"feedback_widget/pkg/errcodes"
	"feedback_widget/pkg/logx"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100

	nameSourceL1       = "l1"
	nameSourceL2       = "l2"
	nameSourceDatabase = "database"
	nameSourceMiss     = "miss"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type FeedbackRepository interface {
	Insert(ctx context.Context, feedback *entity.Feedback) error
	ListByOrganization(ctx context.Context, id value.OrganizationID, limit int) ([]entity.Feedback, error)
}

type OrganizationRepository interface {
	GetByID(ctx context.Context, id value.OrganizationID) (*entity.Organization, error)
}

// NameCache общий для всех реплик кэш имён организаций.
type NameCache interface {
	Get(ctx context.Context, id value.OrganizationID) (string, bool, error)
	Set(ctx context.Context, id value.OrganizationID, name string) error
}

type AlertQueue interface {
	EnqueueLowRating(ctx context.Context, alert entity.LowRatingAlert) error
}

type Metrics interface {
	FeedbackRecorded(rating int)
	FeedbackFailed()
	AlertEnqueued()
	AlertEnqueueFailed()
	NameLookup(source string)
}

type Options struct {
	// AlertThreshold оценки не выше порога уходят в алерты.
	AlertThreshold int
	NameCacheTTL   time.Duration
}

type Service struct {
	feedbackRepo     FeedbackRepository
	organizationRepo OrganizationRepository
	nameCache        NameCache
	alerts           AlertQueue
	metrics          Metrics
	options          Options
	names            *cache.Cache
	now              func() time.Time
}

// NewService собирает сервис. alerts может быть nil, тогда алерты выключены.
func NewService(
	feedbackRepo FeedbackRepository,
	organizationRepo OrganizationRepository,
	nameCache NameCache,
	alerts AlertQueue,
	metrics Metrics,
	options Options,
) *Service {
	return &Service{
		feedbackRepo:     feedbackRepo,
		organizationRepo: organizationRepo,
		nameCache:        nameCache,
		alerts:           alerts,
		metrics:          metrics,
		options:          options,
		names:            cache.New(options.NameCacheTTL, 2*options.NameCacheTTL),
		now:              time.Now,
	}
}

// Record сохраняет отзыв и при низкой оценке ставит алерт в очередь.
func (s *Service) Record(ctx context.Context, feedback entity.Feedback) (entity.Feedback, error) {
	if feedback.OrganizationID == "" {
		return entity.Feedback{}, domain.NewError(domain.KindInvalidArgument, errcodes.InvalidOrganizationID, "organization id is required")
	}

	if _, err := value.ParseRating(feedback.Rating.Int()); err != nil {
		return entity.Feedback{}, err
	}

	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = s.now().UTC()
	}

	log := logger(ctx).With(
		slog.String(logx.FieldOrganizationID, feedback.OrganizationID.String()),
		slog.Int(logx.FieldRating, feedback.Rating.Int()),
	)

	if err := s.feedbackRepo.Insert(ctx, &feedback); err != nil {
		s.metrics.FeedbackFailed()

		log.Error("feedbackRepo.Insert", logx.Error(err))

		return entity.Feedback{}, domain.WrapError(err, errcodes.FeedbackSubmitFailed, "failed to insert feedback")
	}

	s.metrics.FeedbackRecorded(feedback.Rating.Int())

	log.Info("feedback recorded", slog.Int64("feedback-id", feedback.ID))

	if s.alerts != nil && feedback.Rating.Int() <= s.options.AlertThreshold {
		s.enqueueAlert(ctx, feedback)
	}

	return feedback, nil
}

func (s *Service) enqueueAlert(ctx context.Context, feedback entity.Feedback) {
	alert := entity.NewLowRatingAlert(feedback, s.OrganizationName(ctx, feedback.OrganizationID))

	if err := s.alerts.EnqueueLowRating(ctx, alert); err != nil {
		s.metrics.AlertEnqueueFailed()

		logger(ctx).Error("alerts.EnqueueLowRating", logx.Error(err))

		return
	}

	s.metrics.AlertEnqueued()
}

// Organization возвращает организацию или ошибку NotFound.
func (s *Service) Organization(ctx context.Context, id value.OrganizationID) (entity.Organization, error) {
	organization, err := s.organizationRepo.GetByID(ctx, id)
	if err != nil {
		return entity.Organization{}, err //nolint:wrapcheck
	}

	return *organization, nil
}

// OrganizationName ищет имя в L1, потом в redis, потом в базе. Ошибки и
// отсутствие записи дают пустую строку.
func (s *Service) OrganizationName(ctx context.Context, id value.OrganizationID) string {
	if name, ok := s.names.Get(id.String()); ok {
		s.metrics.NameLookup(nameSourceL1)

		return name.(string) //nolint:forcetypeassert
	}

	if s.nameCache != nil {
		name, ok, err := s.nameCache.Get(ctx, id)
		if err != nil {
			logger(ctx).Warn("nameCache.Get", logx.Error(err))
		}

		if ok {
			s.metrics.NameLookup(nameSourceL2)
			s.names.SetDefault(id.String(), name)

			return name
		}
	}

	organization, err := s.organizationRepo.GetByID(ctx, id)
	if err != nil {
		s.metrics.NameLookup(nameSourceMiss)

		if domain.IsKind(err, domain.KindNotFound) {
			s.names.SetDefault(id.String(), "")
		} else {
			logger(ctx).Warn("organizationRepo.GetByID", logx.Error(err))
		}

		return ""
	}

	s.metrics.NameLookup(nameSourceDatabase)
	s.names.SetDefault(id.String(), organization.Name)

	if s.nameCache != nil {
		if err = s.nameCache.Set(ctx, id, organization.Name); err != nil {
			logger(ctx).Warn("nameCache.Set", logx.Error(err))
		}
	}

	return organization.Name
}

// ListFeedback отзывы организации, новые первыми.
func (s *Service) ListFeedback(ctx context.Context, id value.OrganizationID, limit int) ([]entity.Feedback, error) {
	switch {
	case limit < 0 || limit > maxListLimit:
		return nil, domain.NewError(domain.KindInvalidArgument, errcodes.InvalidPaging, "limit must be between 1 and 100")
	case limit == 0:
		limit = defaultListLimit
	}

	records, err := s.feedbackRepo.ListByOrganization(ctx, id, limit)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list feedback")
	}

	return records, nil
}
