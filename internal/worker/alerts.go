package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hibiken/asynq"

	"feedback_widget/internal/domain/entity"
	"feedback_widget/internal/domain/value"
	"feedback_widget/internal/infrastructure/queue"
	"feedback_widget/pkg/contextx"
	"feedback_widget/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type AlertSender interface {
	SendLowRating(ctx context.Context, alert entity.LowRatingAlert) error
}

type Metrics interface {
	AlertSent()
	AlertSendFailed()
}

// AlertWorker обрабатывает задачи feedback:low_rating.
type AlertWorker struct {
	sender  AlertSender
	metrics Metrics
	muted   *MuteList

	sendInterval time.Duration
	mu           sync.Mutex
	lastSend     time.Time
}

func NewAlertWorker(sender AlertSender, metrics Metrics, muted *MuteList) *AlertWorker {
	return &AlertWorker{
		sender:  sender,
		metrics: metrics,
		muted:   muted,
	}
}

// WithRateControl выдерживает паузу между сообщениями в чат, Telegram
// ограничивает частоту отправки в группы.
func (w *AlertWorker) WithRateControl(interval time.Duration) *AlertWorker {
	w.sendInterval = interval

	return w
}

// Handle реализует обработчик asynq. Ошибка отправки возвращается, чтобы
// asynq повторил задачу.
func (w *AlertWorker) Handle(ctx context.Context, task *asynq.Task) error {
	alert, err := queue.ParseLowRatingTask(task)
	if err != nil {
		return err
	}

	log := logger(ctx).With(
		slog.String(logx.FieldTaskType, task.Type()),
		slog.String(logx.FieldOrganizationID, alert.OrganizationID),
		slog.Int(logx.FieldRating, alert.Rating),
	)

	if w.muted != nil && w.muted.Has(value.OrganizationID(alert.OrganizationID)) {
		log.Info("alert skipped, organization muted")

		return nil
	}

	if err = w.waitForNextSlot(ctx); err != nil {
		return err
	}

	if err = w.sender.SendLowRating(ctx, alert); err != nil {
		w.metrics.AlertSendFailed()

		return fmt.Errorf("sender.SendLowRating: %w", err)
	}

	w.metrics.AlertSent()

	log.Info("alert sent")

	return nil
}

func (w *AlertWorker) waitForNextSlot(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.sendInterval <= 0 || w.lastSend.IsZero() {
		w.lastSend = time.Now()

		return nil
	}

	elapsed := time.Since(w.lastSend)
	if elapsed >= w.sendInterval {
		w.lastSend = time.Now()

		return nil
	}

	timer := time.NewTimer(w.sendInterval - elapsed)
	defer timer.Stop()

	select {
	case <-timer.C:
		w.lastSend = time.Now()

		return nil
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck
	}
}
