package widget

import (
	"context"
	"log/slog"
	"sync"

	"feedback_widget/internal/domain"
	"feedback_widget/internal/domain/entity"
	"feedback_widget/internal/domain/value"
	"feedback_widget/pkg/errcodes"
	"feedback_widget/pkg/logx"
)

//nolint:gochecknoglobals
var (
	errSessionClosed   = domain.NewError(domain.KindNotFound, errcodes.SessionNotFound, "session not found")
	errRatingLocked    = domain.NewError(domain.KindConflict, errcodes.RatingLocked, "rating is locked after a 5-star submission")
	errInFlight        = domain.NewError(domain.KindConflict, errcodes.SubmissionInFlight, "submission is already in progress")
	errRatingRequired  = domain.NewError(domain.KindConflict, errcodes.RatingRequired, "select a rating first")
	errInvalidState    = domain.NewError(domain.KindConflict, errcodes.InvalidSessionState, "action is not allowed in the current state")
	errNotCountingDown = domain.NewError(domain.KindConflict, errcodes.InvalidSessionState, "no countdown to dismiss")
)

// Session состояние одного показа виджета. Все методы безопасны для
// конкурентного вызова; сетевые вызовы делаются без удержания mu.
type Session struct {
	id               value.SessionID
	link             Link
	organizationName string
	reviewURL        string

	recorder Recorder
	metrics  Metrics
	options  Options
	outbox   *Outbox

	// ctx живёт, пока сессия открыта; Close его отменяет.
	ctx    context.Context //nolint:containedctx
	cancel context.CancelFunc

	mu        sync.Mutex
	state     State
	rating    value.Rating
	hovered   value.Rating
	comment   value.Comment
	countdown int
	submitted bool
	message   string
	retryable bool

	// stop закрывается, чтобы остановить отсчёт; done закрывает сама горутина.
	stop chan struct{}
	done chan struct{}
}

func newSession(
	ctx context.Context,
	id value.SessionID,
	link Link,
	organizationName string,
	recorder Recorder,
	metrics Metrics,
	options Options,
) *Session {
	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	return &Session{
		id:               id,
		link:             link,
		organizationName: organizationName,
		reviewURL:        ReviewURL(options.ReviewURLTemplate, link.LocationID),
		recorder:         recorder,
		metrics:          metrics,
		options:          options,
		outbox:           NewOutbox(),
		state:            StateIdle,
		ctx:              ctx,
		cancel:           cancel,
	}
}

func (s *Session) ID() value.SessionID {
	return s.id
}

// Hover подсвечивает звёзды до n, 0 снимает подсветку. Состояние не меняет.
func (s *Session) Hover(n int) error {
	if n != 0 {
		if _, err := value.ParseRating(n); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return errSessionClosed
	}

	if s.state.selectable() {
		s.hovered = value.Rating(n)
	}

	return nil
}

// SelectRating выбирает оценку. 5 сразу пишет запись без комментария и
// запускает отсчёт, 1-4 открывают форму комментария.
func (s *Session) SelectRating(ctx context.Context, n int) error {
	rating, err := value.ParseRating(n)
	if err != nil {
		return err
	}

	s.mu.Lock()

	if err = s.checkSelectable(); err != nil {
		s.mu.Unlock()

		return err
	}

	s.rating = rating
	s.hovered = value.NoRating
	s.metrics.RatingSelected(rating.Int())

	if !rating.IsMax() {
		s.state = StateCommentEditing
		s.mu.Unlock()

		return nil
	}

	s.state = StateAutoSubmitting
	s.mu.Unlock()

	writeCtx, stop := s.writeContext(ctx)
	_, err = s.recorder.Record(writeCtx, entity.Feedback{
		OrganizationID: s.link.OrganizationID,
		LocationID:     s.link.LocationID,
		Rating:         rating,
	})
	stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return nil
	}

	if err != nil {
		s.fail(ctx, MessageRatingFailed, false, err)

		return nil
	}

	s.submitted = true
	s.startCountdown()

	return nil
}

func (s *Session) checkSelectable() error {
	switch {
	case s.state == StateClosed:
		return errSessionClosed
	case s.state.selectable():
		return nil
	case s.state.ratingLocked():
		return errRatingLocked
	case s.state == StateSubmitting:
		return errInFlight
	default:
		return errInvalidState
	}
}

// SetComment сохраняет текст отзыва, пока форма комментария открыта.
func (s *Session) SetComment(text string) error {
	comment, err := value.ParseComment(text)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.checkSubmittable(); err != nil {
		return err
	}

	s.comment = comment

	return nil
}

// Submit пишет оценку 1-4 с комментарием. После ошибки записи форма снова
// доступна, повторная отправка разрешена.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()

	if err := s.checkSubmittable(); err != nil {
		s.mu.Unlock()

		return err
	}

	feedback := entity.Feedback{
		OrganizationID: s.link.OrganizationID,
		LocationID:     s.link.LocationID,
		Rating:         s.rating,
		Comment:        s.comment,
	}

	s.state = StateSubmitting
	s.message = ""
	s.mu.Unlock()

	writeCtx, stop := s.writeContext(ctx)
	_, err := s.recorder.Record(writeCtx, feedback)
	stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return nil
	}

	if err != nil {
		s.fail(ctx, MessageFeedbackFailed, true, err)

		return nil
	}

	s.state = StateSubmitted
	s.submitted = true
	s.rating = value.NoRating
	s.comment = ""

	return nil
}

func (s *Session) checkSubmittable() error {
	switch {
	case s.state == StateClosed:
		return errSessionClosed
	case s.state == StateCommentEditing:
		return nil
	case s.state == StateError && s.retryable:
		return nil
	case s.state == StateSubmitting:
		return errInFlight
	case s.state == StateIdle:
		return errRatingRequired
	default:
		return errInvalidState
	}
}

// writeContext сохраняет значения ctx запроса, но отменяется только вместе
// с сессией: обрыв запроса запись не прерывает.
func (s *Session) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	writeCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	release := context.AfterFunc(s.ctx, cancel)

	return writeCtx, func() {
		release()
		cancel()
	}
}

// fail вызывается под mu.
func (s *Session) fail(ctx context.Context, message string, retryable bool, err error) {
	s.state = StateError
	s.message = message
	s.retryable = retryable

	logger(ctx).Error(
		"feedback write failed",
		slog.String(logx.FieldSessionID, s.id.String()),
		slog.Bool("retryable", retryable),
		logx.Error(err),
	)
}

// Dismiss закрывает окно отсчёта и сразу открывает страницу отзывов.
// Повторный вызов после перехода ничего не делает.
func (s *Session) Dismiss() error {
	s.mu.Lock()

	switch s.state {
	case StateClosed:
		s.mu.Unlock()

		return errSessionClosed
	case StateRedirected:
		s.mu.Unlock()

		return nil
	case StateCountdownActive:
	default:
		s.mu.Unlock()

		return errNotCountingDown
	}

	s.state = StateRedirected
	s.countdown = 0
	stop, done := s.detachCountdown()
	s.mu.Unlock()

	close(stop)
	<-done

	s.navigate(RedirectReasonDismiss)

	return nil
}

// Close отменяет незавершённую запись, останавливает отсчёт и ждёт
// завершения его горутины. После Close переходов не будет.
func (s *Session) Close() {
	s.mu.Lock()

	if s.state == StateClosed {
		s.mu.Unlock()

		return
	}

	s.state = StateClosed
	stop, done := s.detachCountdown()
	s.mu.Unlock()

	s.cancel()

	if stop != nil {
		close(stop)
		<-done
	}
}

// TakeNavigation отдаёт адрес перехода один раз.
func (s *Session) TakeNavigation() (string, bool) {
	return s.outbox.Take()
}

func (s *Session) navigate(reason string) {
	s.outbox.Navigate(s.reviewURL)

	if s.options.Navigator != nil {
		s.options.Navigator.Navigate(s.reviewURL)
	}

	s.metrics.Redirected(reason)
}
