package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"feedback_widget/internal/domain"
	"feedback_widget/internal/domain/entity"
	"feedback_widget/internal/domain/value"
	"feedback_widget/pkg/errcodes"
	"feedback_widget/pkg/lox"
)

type FeedbackRepository struct {
	db *sqlx.DB
}

// NewFeedbackRepository создаёт новый экземпляр репозитория.
func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Insert сохраняет отзыв и проставляет ему id и created_at из базы.
func (r *FeedbackRepository) Insert(ctx context.Context, feedback *entity.Feedback) error {
	query := `
		INSERT INTO feedback (hospital_id, place_id, number_of_stars, feedback, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	row := r.db.QueryRowxContext(
		ctx,
		query,
		feedback.OrganizationID.String(),
		feedback.LocationID.String(),
		feedback.Rating.Int(),
		feedback.Comment.String(),
		feedback.CreatedAt,
	)

	if err := row.Scan(&feedback.ID, &feedback.CreatedAt); err != nil {
		return domain.WrapError(err, errcodes.FeedbackSubmitFailed, "failed to insert feedback")
	}

	return nil
}

// ListByOrganization возвращает отзывы организации, новые первыми.
func (r *FeedbackRepository) ListByOrganization(
	ctx context.Context,
	id value.OrganizationID,
	limit int,
) ([]entity.Feedback, error) {
	query := `
		SELECT id, hospital_id, place_id, number_of_stars, feedback, created_at
		FROM feedback
		WHERE hospital_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	var schemas []feedbackSchema
	if err := r.db.SelectContext(ctx, &schemas, query, id.String(), limit); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list feedback")
	}

	return lox.Map(schemas, feedbackSchema.toDomain), nil
}
