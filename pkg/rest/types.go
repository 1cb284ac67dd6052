// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import "time"

// CreateSessionRequest Ссылка на виджет
type CreateSessionRequest struct {
	OrganizationID string `json:"organizationId" validate:"required,max=128"`
	LocationID     string `json:"locationId"     validate:"required,max=512"`
}

// RatingRequest Оценка (0 у hover снимает подсветку)
type RatingRequest struct {
	Rating int `json:"rating" validate:"gte=0,lte=5"`
}

// SubmitRequest Отзыв к оценке 1-4
type SubmitRequest struct {
	Comment string `json:"comment" validate:"max=4000"`
}

// Session Состояние виджета
type Session struct {
	ID               string        `json:"id"`
	OrganizationID   string        `json:"organizationId"`
	LocationID       string        `json:"locationId"`
	OrganizationName string        `json:"organizationName"`
	State            string        `json:"state"`
	Rating           int           `json:"rating"`
	HoveredRating    int           `json:"hoveredRating"`
	Comment          string        `json:"comment"`
	Countdown        int           `json:"countdown"`
	Submitting       bool          `json:"submitting"`
	Submitted        bool          `json:"submitted"`
	ReviewURL        string        `json:"reviewUrl,omitempty"`
	NavigateTo       string        `json:"navigateTo,omitempty"`
	Error            *SessionError `json:"error,omitempty"`
}

// SessionError Ошибка, показанная пользователю
type SessionError struct {
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// Organization Организация
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Feedback Сохранённый отзыв
type Feedback struct {
	ID             int64     `json:"id"`
	OrganizationID string    `json:"organizationId"`
	LocationID     string    `json:"locationId"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"createdAt"`
}

// FeedbackList Отзывы, новые первыми
type FeedbackList struct {
	Items []Feedback `json:"items"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
