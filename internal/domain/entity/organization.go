package entity

import "feedback_widget/internal/domain/value"

type Organization struct {
	ID   value.OrganizationID
	Name string
}
