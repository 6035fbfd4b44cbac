package redisqueue

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/bnema/standup/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue(t *testing.T) (*Queue, *redis.Client) {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, rdb.Ping(context.Background()).Err())

	key := "standup:test:" + domain.NewJobID(time.Now())
	q := New(rdb, Config{Key: key, BlockTimeout: 200 * time.Millisecond, StaleAfter: time.Minute})
	t.Cleanup(func() {
		rdb.Del(context.Background(), q.queueKey, q.processingKey, q.claimsKey)
		_ = rdb.Close()
	})
	return q, rdb
}

func TestQueue_EnqueueDequeueAck(t *testing.T) {
	q, rdb := newTestQueue(t)
	ctx := context.Background()

	spec := domain.JobSpec{JobID: "standup_1", ChannelID: 7, AudioFilePath: "/w/standup_1/original.wav", Notify: true}
	require.NoError(t, q.Enqueue(ctx, spec))

	got, receipt, err := q.Dequeue(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, spec, *got)
	assert.Equal(t, int64(1), rdb.LLen(ctx, q.processingKey).Val())

	require.NoError(t, q.Ack(ctx, receipt))
	assert.Equal(t, int64(0), rdb.LLen(ctx, q.processingKey).Val())
	assert.Equal(t, int64(0), rdb.HLen(ctx, q.claimsKey).Val())
}

func TestQueue_DequeueEmpty(t *testing.T) {
	q, _ := newTestQueue(t)

	got, receipt, err := q.Dequeue(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Empty(t, receipt)
}

func TestQueue_FIFO(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, domain.JobSpec{JobID: "first"}))
	require.NoError(t, q.Enqueue(ctx, domain.JobSpec{JobID: "second"}))

	a, _, err := q.Dequeue(ctx)
	require.NoError(t, err)
	b, _, err := q.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", a.JobID)
	assert.Equal(t, "second", b.JobID)
}

func TestQueue_RequeueStale(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	now := time.Now()
	q.now = func() time.Time { return now }

	require.NoError(t, q.Enqueue(ctx, domain.JobSpec{JobID: "old"}))
	_, _, err := q.Dequeue(ctx)
	require.NoError(t, err)

	moved, err := q.RequeueStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, moved, "fresh claims stay put")

	now = now.Add(2 * time.Minute)
	moved, err = q.RequeueStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, moved)

	got, _, err := q.Dequeue(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "old", got.JobID)
}

func TestQueue_RequeueStale_UnstampedClaimIsFresh(t *testing.T) {
	q, rdb := newTestQueue(t)
	ctx := context.Background()

	now := time.Now()
	q.now = func() time.Time { return now }

	// An item between BRPOPLPUSH and the claim stamp.
	require.NoError(t, rdb.LPush(ctx, q.processingKey, `{"job_id":"racing"}`).Err())

	moved, err := q.RequeueStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, moved)
	assert.Equal(t, int64(0), rdb.LLen(ctx, q.queueKey).Val())
	assert.Equal(t, strconv.FormatInt(now.Unix(), 10), rdb.HGet(ctx, q.claimsKey, `{"job_id":"racing"}`).Val())

	now = now.Add(2 * time.Minute)
	moved, err = q.RequeueStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, moved, "a claim that never got acked is eventually requeued")
}
