// Package widget держит серверное состояние виджета отзывов: выбор оценки,
// отправку отзыва и обратный отсчёт до перехода на страницу отзывов.
package widget

import (
	"context"
	"time"

	"feedback_widget/internal/domain/entity"
	"feedback_widget/internal/domain/value"
	"feedback_widget/pkg/contextx"
)

const (
	MessageInvalidLink    = "Invalid feedback link. Please contact the hospital for assistance."
	MessageRatingFailed   = "Failed to submit rating. Please try again."
	MessageFeedbackFailed = "Failed to submit feedback. Please try again."

	RedirectReasonCountdown = "countdown"
	RedirectReasonDismiss   = "dismiss"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Recorder interface {
	Record(ctx context.Context, feedback entity.Feedback) (entity.Feedback, error)
}

type NameResolver interface {
	OrganizationName(ctx context.Context, id value.OrganizationID) string
}

// Navigator открывает страницу отзывов в новой вкладке.
type Navigator interface {
	Navigate(url string)
}

type Metrics interface {
	SessionOpened()
	SessionClosed()
	RatingSelected(rating int)
	Redirected(reason string)
}

type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	*time.Ticker
}

func (t timeTicker) C() <-chan time.Time {
	return t.Ticker.C
}

func NewTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}

type Options struct {
	CountdownSeed     int
	TickInterval      time.Duration
	ReviewURLTemplate string
	SessionTTL        time.Duration

	// NewTicker подменяется в тестах.
	NewTicker func(time.Duration) Ticker
	// Navigator дополнительно получает каждый переход, помимо outbox сессии.
	Navigator Navigator
}

func (o Options) withDefaults() Options {
	if o.NewTicker == nil {
		o.NewTicker = NewTicker
	}

	if o.CountdownSeed < 1 {
		o.CountdownSeed = 4
	}

	if o.TickInterval <= 0 {
		o.TickInterval = time.Second
	}

	if o.SessionTTL <= 0 {
		o.SessionTTL = 30 * time.Minute
	}

	return o
}

type nopMetrics struct{}

func (nopMetrics) SessionOpened() {}
func (nopMetrics) SessionClosed() {}
func (nopMetrics) RatingSelected(int) {}
func (nopMetrics) Redirected(string) {}
