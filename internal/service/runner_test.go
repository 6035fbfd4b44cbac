package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/standup/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestRunner_SpawnReturnsHandle(t *testing.T) {
	boom := errors.New("boom")
	r := NewRunner(func(_ context.Context, spec domain.JobSpec) error {
		if spec.JobID == "standup_bad" {
			return boom
		}
		return nil
	}, 2)

	ok := r.Spawn(domain.JobSpec{JobID: "standup_good"})
	bad := r.Spawn(domain.JobSpec{JobID: "standup_bad"})

	assert.Equal(t, "standup_good", ok.JobID)
	assert.NoError(t, ok.Wait(waitCtx(t)))
	assert.ErrorIs(t, bad.Wait(waitCtx(t)), boom)
	assert.ErrorIs(t, bad.Err(), boom)
}

func TestRunner_RecoversPanics(t *testing.T) {
	r := NewRunner(func(context.Context, domain.JobSpec) error {
		panic("unexpected")
	}, 1)

	h := r.Spawn(domain.JobSpec{JobID: "standup_panic"})

	err := h.Wait(waitCtx(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected")
}

func TestRunner_LimitsConcurrency(t *testing.T) {
	var running, peak atomic.Int32
	release := make(chan struct{})

	r := NewRunner(func(context.Context, domain.JobSpec) error {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		<-release
		running.Add(-1)
		return nil
	}, 2)

	handles := make([]*Handle, 0, 5)
	for i := 0; i < 5; i++ {
		handles = append(handles, r.Spawn(domain.JobSpec{JobID: "standup_" + string(rune('a'+i))}))
	}

	require.Eventually(t, func() bool { return running.Load() == 2 }, time.Second, 5*time.Millisecond)
	close(release)
	for _, h := range handles {
		require.NoError(t, h.Wait(waitCtx(t)))
	}
	assert.Equal(t, int32(2), peak.Load())
}

func TestRunner_JobOutlivesSpawnerContext(t *testing.T) {
	started := make(chan context.Context, 1)
	release := make(chan struct{})
	r := NewRunner(func(ctx context.Context, _ domain.JobSpec) error {
		started <- ctx
		<-release
		return ctx.Err()
	}, 1)

	reqCtx, cancelReq := context.WithCancel(context.Background())
	d := NewLocalDispatcher(r)
	require.NoError(t, d.Dispatch(reqCtx, domain.JobSpec{JobID: "standup_detached"}))
	cancelReq()

	jobCtx := <-started
	assert.NoError(t, jobCtx.Err(), "request cancellation does not reach the job")
	close(release)
	require.NoError(t, r.Shutdown(waitCtx(t)))
}

func TestRunner_ShutdownCancelsAfterDeadline(t *testing.T) {
	r := NewRunner(func(ctx context.Context, _ domain.JobSpec) error {
		<-ctx.Done()
		return ctx.Err()
	}, 1)
	h := r.Spawn(domain.JobSpec{JobID: "standup_slow"})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, r.Shutdown(ctx), context.DeadlineExceeded)
	assert.ErrorIs(t, h.Err(), context.Canceled)

	err := NewLocalDispatcher(r).Dispatch(context.Background(), domain.JobSpec{JobID: "standup_late"})
	assert.ErrorIs(t, err, context.Canceled)
}
