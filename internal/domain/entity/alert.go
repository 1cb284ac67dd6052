package entity

import "time"

// LowRatingAlert полезная нагрузка задачи feedback:low_rating.
type LowRatingAlert struct {
	OrganizationID   string    `json:"organizationId"`
	LocationID       string    `json:"locationId"`
	OrganizationName string    `json:"organizationName"`
	Rating           int       `json:"rating"`
	Comment          string    `json:"comment"`
	CreatedAt        time.Time `json:"createdAt"`
}

func NewLowRatingAlert(feedback Feedback, organizationName string) LowRatingAlert {
	return LowRatingAlert{
		OrganizationID:   feedback.OrganizationID.String(),
		LocationID:       feedback.LocationID.String(),
		OrganizationName: organizationName,
		Rating:           feedback.Rating.Int(),
		Comment:          feedback.Comment.String(),
		CreatedAt:        feedback.CreatedAt,
	}
}
