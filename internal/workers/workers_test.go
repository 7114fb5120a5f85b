// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-resale-market/internal/config"
	"github.com/MKhiriev/go-resale-market/internal/logger"
	"github.com/MKhiriev/go-resale-market/internal/mock"
	"github.com/MKhiriev/go-resale-market/internal/service"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}
	ws := &Workers{workers: []Worker{w1, w2, w3}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should return at once on an empty workers list
	(&Workers{}).Run(context.Background())
}

func TestNewWorkers(t *testing.T) {
	offers := mock.NewMockOfferService(gomock.NewController(t))
	ws := NewWorkers(&service.Services{OfferService: offers}, config.Workers{
		SweepInterval: time.Minute,
		PendingTTL:    15 * time.Minute,
	}, logger.Nop())

	require.Len(t, ws.workers, 1)
	sweeper, ok := ws.workers[0].(*pendingOfferSweeper)
	require.True(t, ok)
	assert.Equal(t, time.Minute, sweeper.interval)
	assert.Equal(t, 15*time.Minute, sweeper.ttl)
}

func TestPendingOfferSweeper_Sweep(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		removed int
		err     error
	}{
		{name: "nothing to remove"},
		{name: "stale offers removed", removed: 3},
		{name: "partial failure", removed: 1, err: errors.New("media store unavailable")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offers := mock.NewMockOfferService(gomock.NewController(t))
			offers.EXPECT().SweepPending(gomock.Any(), now.Add(-15*time.Minute)).Return(tt.removed, tt.err)

			s := NewPendingOfferSweeper(offers, config.Workers{
				SweepInterval: time.Minute,
				PendingTTL:    15 * time.Minute,
			}, logger.Nop()).(*pendingOfferSweeper)
			s.now = func() time.Time { return now }

			s.sweep(context.Background())
		})
	}
}

func TestPendingOfferSweeper_RunTicksUntilCancelled(t *testing.T) {
	offers := mock.NewMockOfferService(gomock.NewController(t))

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	offers.EXPECT().SweepPending(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int, error) {
			if calls.Add(1) == 2 {
				cancel()
			}
			return 0, nil
		}).
		MinTimes(2)

	s := NewPendingOfferSweeper(offers, config.Workers{
		SweepInterval: 5 * time.Millisecond,
		PendingTTL:    time.Minute,
	}, logger.Nop())

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		cancel()
		t.Fatal("sweeper did not stop after cancellation")
	}
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}
