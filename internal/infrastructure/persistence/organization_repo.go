package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"feedback_widget/internal/domain"
	"feedback_widget/internal/domain/entity"
	"feedback_widget/internal/domain/value"
	"feedback_widget/pkg/errcodes"
)

type OrganizationRepository struct {
	db *sqlx.DB
}

func NewOrganizationRepository(db *sqlx.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// GetByID возвращает организацию по идентификатору.
func (r *OrganizationRepository) GetByID(ctx context.Context, id value.OrganizationID) (*entity.Organization, error) {
	query := `
		SELECT id, name
		FROM organizations
		WHERE id = $1`

	var schema organizationSchema
	if err := r.db.GetContext(ctx, &schema, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(domain.KindNotFound, errcodes.OrganizationNotFound, "organization not found")
		}

		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get organization")
	}

	return schema.toDomain(), nil
}

// Upsert создаёт или переименовывает организацию. Используется утилитой
// feedbacklink и тестами.
func (r *OrganizationRepository) Upsert(ctx context.Context, organization entity.Organization) error {
	query := `
		INSERT INTO organizations (id, name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`

	if _, err := r.db.ExecContext(ctx, query, organization.ID.String(), organization.Name); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to upsert organization")
	}

	return nil
}
