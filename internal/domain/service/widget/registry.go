package widget

import (
	"context"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"feedback_widget/internal/domain"
	"feedback_widget/internal/domain/value"
	"feedback_widget/pkg/errcodes"
	"feedback_widget/pkg/logx"
)

var errSessionNotFound = domain.NewError(domain.KindNotFound, errcodes.SessionNotFound, "session not found") //nolint:gochecknoglobals

// Registry хранит активные сессии. Сессия, к которой не обращались дольше
// SessionTTL, вытесняется и закрывается.
type Registry struct {
	recorder Recorder
	names    NameResolver
	metrics  Metrics
	options  Options
	sessions *cache.Cache
}

func NewRegistry(
	recorder Recorder,
	names NameResolver,
	metrics Metrics,
	options Options,
) *Registry {
	if metrics == nil {
		metrics = nopMetrics{}
	}

	options = options.withDefaults()

	// Очисткой управляет Run, своя горутина go-cache не запускается.
	sessions := cache.New(options.SessionTTL, 0)

	r := &Registry{
		recorder: recorder,
		names:    names,
		metrics:  metrics,
		options:  options,
		sessions: sessions,
	}

	sessions.OnEvicted(func(_ string, v any) {
		v.(*Session).Close() //nolint:forcetypeassert

		r.metrics.SessionClosed()
	})

	return r
}

// Create открывает сессию по разобранной ссылке. Имя организации ищется
// сразу; пустое имя не ошибка.
func (r *Registry) Create(ctx context.Context, link Link) *Session {
	name := ""
	if r.names != nil {
		name = r.names.OrganizationName(ctx, link.OrganizationID)
	}

	session := newSession(ctx, value.NewSessionID(), link, name, r.recorder, r.metrics, r.options)

	r.sessions.SetDefault(session.id.String(), session)
	r.metrics.SessionOpened()

	logger(ctx).Info(
		"widget session opened",
		slog.String(logx.FieldSessionID, session.id.String()),
		slog.String(logx.FieldOrganizationID, link.OrganizationID.String()),
		slog.String(logx.FieldLocationID, link.LocationID.String()),
	)

	return session
}

// Get возвращает сессию и продлевает её TTL.
func (r *Registry) Get(id value.SessionID) (*Session, error) {
	v, ok := r.sessions.Get(id.String())
	if !ok {
		return nil, errSessionNotFound
	}

	session := v.(*Session) //nolint:forcetypeassert

	// Сессию могли вытеснить между Get и продлением, закрытую не возвращаем.
	if err := r.sessions.Replace(id.String(), session, cache.DefaultExpiration); err != nil {
		return nil, errSessionNotFound
	}

	return session, nil
}

// Delete закрывает сессию.
func (r *Registry) Delete(id value.SessionID) error {
	if _, ok := r.sessions.Get(id.String()); !ok {
		return errSessionNotFound
	}

	r.sessions.Delete(id.String())

	return nil
}

func (r *Registry) Len() int {
	return r.sessions.ItemCount()
}

// Sweep вытесняет просроченные сессии.
func (r *Registry) Sweep() {
	r.sessions.DeleteExpired()
}

// Run периодически чистит просроченные сессии, а при остановке закрывает
// все оставшиеся.
func (r *Registry) Run(ctx context.Context) error {
	interval := r.options.SessionTTL / 2 //nolint:mnd

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.Close()

			return nil
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Close закрывает все сессии.
func (r *Registry) Close() {
	r.Sweep()

	for key := range r.sessions.Items() {
		r.sessions.Delete(key)
	}
}
