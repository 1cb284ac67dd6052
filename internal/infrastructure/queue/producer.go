package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"feedback_widget/internal/domain/entity"
	"feedback_widget/pkg/contextx"
	"feedback_widget/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Producer ставит задачи алертов в очередь asynq.
type Producer struct {
	client   enqueuer
	queue    string
	maxRetry int
}

func NewProducer(client enqueuer, queue string, maxRetry int) *Producer {
	return &Producer{
		client:   client,
		queue:    queue,
		maxRetry: maxRetry,
	}
}

func (p *Producer) EnqueueLowRating(ctx context.Context, alert entity.LowRatingAlert) error {
	task, err := NewLowRatingTask(alert)
	if err != nil {
		return err
	}

	info, err := p.client.EnqueueContext(ctx, task, asynq.Queue(p.queue), asynq.MaxRetry(p.maxRetry))
	if err != nil {
		return fmt.Errorf("asynqClient.EnqueueContext: %w", err)
	}

	logger(ctx).Info(
		"alert enqueued",
		slog.String(logx.FieldTaskType, task.Type()),
		slog.String("task-id", info.ID),
		slog.String("queue", info.Queue),
	)

	return nil
}
