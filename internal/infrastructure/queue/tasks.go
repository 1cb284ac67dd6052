package queue

import (
	"fmt"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"

	"feedback_widget/internal/domain/entity"
)

const TypeLowRating = "feedback:low_rating"

//nolint:gochecknoglobals
var json = jsoniter.ConfigCompatibleWithStandardLibrary

func NewLowRatingTask(alert entity.LowRatingAlert) (*asynq.Task, error) {
	payload, err := json.Marshal(alert)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return asynq.NewTask(TypeLowRating, payload), nil
}

// ParseLowRatingTask разбирает полезную нагрузку. Битая задача не должна
// ретраиться, поэтому ошибка оборачивает asynq.SkipRetry.
func ParseLowRatingTask(task *asynq.Task) (entity.LowRatingAlert, error) {
	var alert entity.LowRatingAlert

	if err := json.Unmarshal(task.Payload(), &alert); err != nil {
		return entity.LowRatingAlert{}, fmt.Errorf("json.Unmarshal: %w: %w", err, asynq.SkipRetry)
	}

	return alert, nil
}
