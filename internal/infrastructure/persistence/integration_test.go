package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"feedback_widget/internal/domain/entity"
	"feedback_widget/internal/domain/value"
	"feedback_widget/internal/infrastructure/persistence"
	"feedback_widget/pkg/dbtest"
)

func TestRepositoriesAgainstPostgres(t *testing.T) {
	rq := require.New(t)

	db := dbtest.Connect(t)

	rq.NoError(persistence.Migrate(db))
	rq.NoError(persistence.Migrate(db))
	rq.NoError(dbtest.MigrateFromFS(db, persistence.MigrationsFS, persistence.MigrationFiles...))
	rq.NoError(dbtest.Truncate(db, "feedback", "organizations"))

	ctx := context.Background()

	organizations := persistence.NewOrganizationRepository(db)
	feedbackRepo := persistence.NewFeedbackRepository(db)

	rq.NoError(organizations.Upsert(ctx, entity.Organization{ID: "hosp-1", Name: "Old name"}))
	rq.NoError(organizations.Upsert(ctx, entity.Organization{ID: "hosp-1", Name: "City Hospital"}))

	organization, err := organizations.GetByID(ctx, "hosp-1")
	rq.NoError(err)
	rq.Equal("City Hospital", organization.Name)

	for _, rating := range []int{5, 2} {
		rq.NoError(feedbackRepo.Insert(ctx, &entity.Feedback{
			OrganizationID: "hosp-1",
			LocationID:     "place-1",
			Rating:         value.Rating(rating),
			CreatedAt:      time.Now(),
		}))
	}

	records, err := feedbackRepo.ListByOrganization(ctx, "hosp-1", 10)
	rq.NoError(err)
	rq.Len(records, 2)
	rq.Equal(2, records[0].Rating.Int())
	rq.NotZero(records[0].ID)
	rq.False(records[0].CreatedAt.IsZero())
}
