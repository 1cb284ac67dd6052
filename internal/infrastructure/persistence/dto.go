package persistence

import (
	"time"

	"feedback_widget/internal/domain/entity"
	"feedback_widget/internal/domain/value"
)

// feedbackSchema строка таблицы feedback.
type feedbackSchema struct {
	ID            int64     `db:"id"`
	HospitalID    string    `db:"hospital_id"`
	PlaceID       string    `db:"place_id"`
	NumberOfStars int       `db:"number_of_stars"`
	Feedback      string    `db:"feedback"`
	CreatedAt     time.Time `db:"created_at"`
}

func (s feedbackSchema) toDomain() entity.Feedback {
	return entity.Feedback{
		ID:             s.ID,
		OrganizationID: value.OrganizationID(s.HospitalID),
		LocationID:     value.LocationID(s.PlaceID),
		Rating:         value.Rating(s.NumberOfStars),
		Comment:        value.Comment(s.Feedback),
		CreatedAt:      s.CreatedAt,
	}
}

// organizationSchema строка таблицы organizations.
type organizationSchema struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

func (s organizationSchema) toDomain() *entity.Organization {
	return &entity.Organization{
		ID:   value.OrganizationID(s.ID),
		Name: s.Name,
	}
}
