package widget_test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"feedback_widget/internal/domain/entity"
	"feedback_widget/internal/domain/service/widget"
	"feedback_widget/internal/domain/value"
)

type fakeRecorder struct {
	mu       sync.Mutex
	records  []entity.Feedback
	attempts int
	err      error
	// entered получает сигнал при входе в Record, gate держит запись.
	entered chan struct{}
	gate    chan struct{}
}

func (r *fakeRecorder) Record(ctx context.Context, f entity.Feedback) (entity.Feedback, error) {
	if r.entered != nil {
		r.entered <- struct{}{}
	}

	if r.gate != nil {
		select {
		case <-r.gate:
		case <-ctx.Done():
			return entity.Feedback{}, ctx.Err()
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.attempts++

	if r.err != nil {
		return entity.Feedback{}, r.err
	}

	r.records = append(r.records, f)

	return f, nil
}

func (r *fakeRecorder) setErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.err = err
}

func (r *fakeRecorder) snapshot() ([]entity.Feedback, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]entity.Feedback(nil), r.records...), r.attempts
}

type fakeTicker struct {
	ch      chan time.Time
	stopped atomic.Bool
}

func (t *fakeTicker) C() <-chan time.Time {
	return t.ch
}

func (t *fakeTicker) Stop() {
	t.stopped.Store(true)
}

// tick блокируется, пока горутина отсчёта не заберёт значение.
func (t *fakeTicker) tick() {
	t.ch <- time.Now()
}

type tickerFactory struct {
	created chan *fakeTicker
}

func newTickerFactory() *tickerFactory {
	return &tickerFactory{created: make(chan *fakeTicker, 8)}
}

func (f *tickerFactory) New(time.Duration) widget.Ticker {
	t := &fakeTicker{ch: make(chan time.Time)}
	f.created <- t

	return t
}

type spyNavigator struct {
	mu   sync.Mutex
	urls []string
}

func (n *spyNavigator) Navigate(url string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.urls = append(n.urls, url)
}

func (n *spyNavigator) calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]string(nil), n.urls...)
}

type fakeNames map[value.OrganizationID]string

func (n fakeNames) OrganizationName(_ context.Context, id value.OrganizationID) string {
	return n[id]
}

type fakeMetrics struct {
	opened     atomic.Int32
	closed     atomic.Int32
	selected   atomic.Int32
	redirected sync.Map
}

func (m *fakeMetrics) SessionOpened() { m.opened.Add(1) }
func (m *fakeMetrics) SessionClosed() { m.closed.Add(1) }
func (m *fakeMetrics) RatingSelected(int) { m.selected.Add(1) }

func (m *fakeMetrics) Redirected(reason string) {
	v, _ := m.redirected.LoadOrStore(reason, new(atomic.Int32))
	v.(*atomic.Int32).Add(1)
}

func (m *fakeMetrics) redirects(reason string) int32 {
	v, ok := m.redirected.Load(reason)
	if !ok {
		return 0
	}

	return v.(*atomic.Int32).Load()
}

type env struct {
	recorder  *fakeRecorder
	tickers   *tickerFactory
	navigator *spyNavigator
	metrics   *fakeMetrics
	registry  *widget.Registry
}

const testReviewTemplate = "https://search.google.com/local/writereview?placeid={placeId}"

func newEnv(ttl time.Duration) *env {
	e := &env{
		recorder:  &fakeRecorder{},
		tickers:   newTickerFactory(),
		navigator: &spyNavigator{},
		metrics:   &fakeMetrics{},
	}

	e.registry = widget.NewRegistry(
		e.recorder,
		fakeNames{"hosp-1": "City Hospital"},
		e.metrics,
		widget.Options{
			CountdownSeed:     4,
			TickInterval:      time.Second,
			ReviewURLTemplate: testReviewTemplate,
			SessionTTL:        ttl,
			NewTicker:         e.tickers.New,
			Navigator:         e.navigator,
		},
	)

	return e
}

func (e *env) open() *widget.Session {
	return e.registry.Create(context.Background(), widget.Link{
		OrganizationID: "hosp-1",
		LocationID:     "place 1/2",
	})
}
