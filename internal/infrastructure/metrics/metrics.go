package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "feedback_widget"

const (
	resultOK     = "ok"
	resultFailed = "failed"
)

// Collectors реализует интерфейсы Metrics сервисов feedback, widget и
// воркера алертов.
type Collectors struct {
	sessionsActive   prometheus.Gauge
	sessionsOpened   prometheus.Counter
	ratingsSelected  *prometheus.CounterVec
	redirects        *prometheus.CounterVec
	feedbackRecorded *prometheus.CounterVec
	feedbackFailed   prometheus.Counter
	alertsEnqueued   *prometheus.CounterVec
	alertsSent       *prometheus.CounterVec
	nameLookups      *prometheus.CounterVec
}

func New(registerer prometheus.Registerer) *Collectors {
	c := &Collectors{
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Number of widget sessions held in the registry.",
		}),
		sessionsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_opened_total",
			Help:      "Number of widget sessions created.",
		}),
		ratingsSelected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratings_selected_total",
			Help:      "Number of accepted rating selections.",
		}, []string{"rating"}),
		redirects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redirects_total",
			Help:      "Number of review page navigations.",
		}, []string{"reason"}),
		feedbackRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feedback_recorded_total",
			Help:      "Number of feedback records written.",
		}, []string{"rating"}),
		feedbackFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feedback_failed_total",
			Help:      "Number of failed feedback writes.",
		}),
		alertsEnqueued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_enqueued_total",
			Help:      "Number of low rating alert tasks put to the queue.",
		}, []string{"result"}),
		alertsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_sent_total",
			Help:      "Number of low rating alerts delivered to Telegram.",
		}, []string{"result"}),
		nameLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "organization_name_lookups_total",
			Help:      "Organization name lookups by the layer that answered.",
		}, []string{"source"}),
	}

	registerer.MustRegister(
		c.sessionsActive,
		c.sessionsOpened,
		c.ratingsSelected,
		c.redirects,
		c.feedbackRecorded,
		c.feedbackFailed,
		c.alertsEnqueued,
		c.alertsSent,
		c.nameLookups,
	)

	return c
}

func (c *Collectors) SessionOpened() {
	c.sessionsOpened.Inc()
	c.sessionsActive.Inc()
}

func (c *Collectors) SessionClosed() {
	c.sessionsActive.Dec()
}

func (c *Collectors) RatingSelected(rating int) {
	c.ratingsSelected.WithLabelValues(strconv.Itoa(rating)).Inc()
}

func (c *Collectors) Redirected(reason string) {
	c.redirects.WithLabelValues(reason).Inc()
}

func (c *Collectors) FeedbackRecorded(rating int) {
	c.feedbackRecorded.WithLabelValues(strconv.Itoa(rating)).Inc()
}

func (c *Collectors) FeedbackFailed() {
	c.feedbackFailed.Inc()
}

func (c *Collectors) AlertEnqueued() {
	c.alertsEnqueued.WithLabelValues(resultOK).Inc()
}

func (c *Collectors) AlertEnqueueFailed() {
	c.alertsEnqueued.WithLabelValues(resultFailed).Inc()
}

func (c *Collectors) AlertSent() {
	c.alertsSent.WithLabelValues(resultOK).Inc()
}

func (c *Collectors) AlertSendFailed() {
	c.alertsSent.WithLabelValues(resultFailed).Inc()
}

func (c *Collectors) NameLookup(source string) {
	c.nameLookups.WithLabelValues(source).Inc()
}
