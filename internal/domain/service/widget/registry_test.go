package widget_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"feedback_widget/internal/domain"
	"feedback_widget/internal/domain/service/widget"
	"feedback_widget/internal/domain/value"
	"feedback_widget/pkg/errcodes"
)

func TestRegistryCreateGetDelete(t *testing.T) {
	rq := require.New(t)

	e := newEnv(time.Minute)
	defer e.registry.Close()

	session := e.open()

	rq.Equal("City Hospital", session.View().OrganizationName)
	rq.Equal("How was your visit to City Hospital?", session.View().Title())
	rq.Equal(1, e.registry.Len())
	rq.Equal(int32(1), e.metrics.opened.Load())

	got, err := e.registry.Get(session.ID())
	rq.NoError(err)
	rq.Same(session, got)

	rq.NoError(e.registry.Delete(session.ID()))

	rq.Equal(widget.StateClosed, session.View().State)
	rq.Equal(int32(1), e.metrics.closed.Load())
	rq.Zero(e.registry.Len())

	_, err = e.registry.Get(session.ID())
	requireCode(rq, err, domain.KindNotFound, errcodes.SessionNotFound.String())

	err = e.registry.Delete(session.ID())
	requireCode(rq, err, domain.KindNotFound, errcodes.SessionNotFound.String())
	rq.Equal(int32(1), e.metrics.closed.Load())
}

func TestRegistryUnknownOrganizationName(t *testing.T) {
	rq := require.New(t)

	e := newEnv(time.Minute)
	defer e.registry.Close()

	session := e.registry.Create(context.Background(), widget.Link{OrganizationID: "hosp-404", LocationID: "p"})

	rq.Empty(session.View().OrganizationName)
	rq.Equal("How was your visit?", session.View().Title())
	rq.Equal(widget.StateIdle, session.View().State)
}

func TestRegistryEvictionClosesSession(t *testing.T) {
	rq := require.New(t)

	e := newEnv(20 * time.Millisecond)
	defer e.registry.Close()

	session := e.open()

	rq.NoError(session.SelectRating(context.Background(), 5))
	ticker := <-e.tickers.created

	time.Sleep(50 * time.Millisecond)

	e.registry.Sweep()

	rq.Equal(widget.StateClosed, session.View().State)
	rq.True(ticker.stopped.Load())
	rq.Empty(e.navigator.calls())
	rq.Equal(int32(1), e.metrics.closed.Load())

	_, err := e.registry.Get(session.ID())
	rq.Error(err)
}

func TestRegistryGetExtendsTTL(t *testing.T) {
	rq := require.New(t)

	e := newEnv(100 * time.Millisecond)
	defer e.registry.Close()

	session := e.open()

	for range 4 {
		time.Sleep(40 * time.Millisecond)

		_, err := e.registry.Get(session.ID())
		rq.NoError(err)
	}

	e.registry.Sweep()

	rq.Equal(widget.StateIdle, session.View().State)
}

func TestRegistryGetDoesNotRestoreDeletedSession(t *testing.T) {
	rq := require.New(t)

	e := newEnv(time.Minute)
	defer e.registry.Close()

	session := e.open()

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 200 {
				_, _ = e.registry.Get(session.ID())
			}
		}()
	}

	rq.NoError(e.registry.Delete(session.ID()))
	wg.Wait()

	rq.Equal(widget.StateClosed, session.View().State)
	rq.Zero(e.registry.Len())

	_, err := e.registry.Get(session.ID())
	requireCode(rq, err, domain.KindNotFound, errcodes.SessionNotFound.String())
}

func TestRegistryGetExpiredBeforeSweep(t *testing.T) {
	rq := require.New(t)

	e := newEnv(20 * time.Millisecond)
	defer e.registry.Close()

	session := e.open()

	time.Sleep(50 * time.Millisecond)

	_, err := e.registry.Get(session.ID())
	requireCode(rq, err, domain.KindNotFound, errcodes.SessionNotFound.String())

	e.registry.Sweep()

	rq.Equal(widget.StateClosed, session.View().State)
	rq.Zero(e.registry.Len())
}

func TestRegistryRunClosesSessionsOnShutdown(t *testing.T) {
	rq := require.New(t)

	e := newEnv(time.Minute)

	first := e.open()
	second := e.open()

	rq.NoError(first.SelectRating(context.Background(), 5))
	<-e.tickers.created

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)

	go func() {
		done <- e.registry.Run(ctx)
	}()

	cancel()

	rq.NoError(<-done)

	rq.Equal(widget.StateClosed, first.View().State)
	rq.Equal(widget.StateClosed, second.View().State)
	rq.Zero(e.registry.Len())
	rq.Equal(int32(2), e.metrics.closed.Load())
	rq.Empty(e.navigator.calls())
}

func TestRegistryDefaults(t *testing.T) {
	rq := require.New(t)

	registry := widget.NewRegistry(&fakeRecorder{}, nil, nil, widget.Options{
		ReviewURLTemplate: testReviewTemplate,
	})
	defer registry.Close()

	session := registry.Create(context.Background(), widget.Link{OrganizationID: "o", LocationID: "l"})

	rq.Empty(session.View().OrganizationName)

	_, err := value.ParseSessionID(session.ID().String())
	rq.NoError(err)
}
