package entity

import (
	"time"

	"feedback_widget/internal/domain/value"
)

// Feedback одна запись в таблице feedback. После вставки не меняется.
type Feedback struct {
	ID             int64
	OrganizationID value.OrganizationID
	LocationID     value.LocationID
	Rating         value.Rating
	Comment        value.Comment
	CreatedAt      time.Time
}
