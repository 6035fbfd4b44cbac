package redisqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bnema/standup/internal/domain"
	"github.com/bnema/standup/internal/port"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	// Key prefixes the three keys the queue uses.
	Key          string
	BlockTimeout time.Duration
	// StaleAfter is how long a claimed job may stay unacknowledged before
	// RequeueStale hands it to another worker.
	StaleAfter time.Duration
}

// Queue is a reliable Redis list queue.
//
//	Enqueue: LPUSH <key>:queue
//	Claim:   BRPOPLPUSH <key>:queue -> <key>:processing, claim time in <key>:claims
//	Ack:     LREM from <key>:processing
type Queue struct {
	rdb           *redis.Client
	queueKey      string
	processingKey string
	claimsKey     string
	blockTimeout  time.Duration
	staleAfter    time.Duration
	now           func() time.Time
}

func New(rdb *redis.Client, cfg Config) *Queue {
	if cfg.Key == "" {
		cfg.Key = "standup:jobs"
	}
	if cfg.BlockTimeout <= 0 {
		cfg.BlockTimeout = 5 * time.Second
	}
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = time.Hour
	}
	return &Queue{
		rdb:           rdb,
		queueKey:      cfg.Key + ":queue",
		processingKey: cfg.Key + ":processing",
		claimsKey:     cfg.Key + ":claims",
		blockTimeout:  cfg.BlockTimeout,
		staleAfter:    cfg.StaleAfter,
		now:           time.Now,
	}
}

func (q *Queue) Enqueue(ctx context.Context, spec domain.JobSpec) error {
	payload, err := json.Marshal(spec)
	if err != nil {
		return fmt.Errorf("encode job: %w", err)
	}
	return q.rdb.LPush(ctx, q.queueKey, payload).Err()
}

// Dequeue blocks for up to the configured timeout. It returns a nil spec
// when nothing was queued. The receipt must be passed to Ack.
func (q *Queue) Dequeue(ctx context.Context) (*domain.JobSpec, string, error) {
	payload, err := q.rdb.BRPopLPush(ctx, q.queueKey, q.processingKey, q.blockTimeout).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, "", nil
		}
		return nil, "", err
	}
	if err := q.rdb.HSet(ctx, q.claimsKey, payload, q.now().Unix()).Err(); err != nil {
		return nil, "", fmt.Errorf("record claim: %w", err)
	}

	var spec domain.JobSpec
	if err := json.Unmarshal([]byte(payload), &spec); err != nil {
		_ = q.Ack(ctx, payload)
		return nil, "", fmt.Errorf("decode job: %w", err)
	}
	return &spec, payload, nil
}

func (q *Queue) Ack(ctx context.Context, receipt string) error {
	_, err := q.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.LRem(ctx, q.processingKey, 1, receipt)
		p.HDel(ctx, q.claimsKey, receipt)
		return nil
	})
	return err
}

// RequeueStale moves claimed jobs older than StaleAfter back to the head of
// the queue. Delivery is at-least-once.
func (q *Queue) RequeueStale(ctx context.Context) (int, error) {
	items, err := q.rdb.LRange(ctx, q.processingKey, 0, -1).Result()
	if err != nil {
		return 0, err
	}

	cutoff := q.now().Add(-q.staleAfter).Unix()
	moved := 0
	for _, item := range items {
		claimed, err := q.rdb.HGet(ctx, q.claimsKey, item).Result()
		if errors.Is(err, redis.Nil) {
			// Popped but not yet stamped by Dequeue. Start its clock here.
			if err := q.rdb.HSetNX(ctx, q.claimsKey, item, q.now().Unix()).Err(); err != nil {
				return moved, err
			}
			continue
		}
		if err != nil {
			return moved, err
		}
		if ts, perr := strconv.ParseInt(claimed, 10, 64); perr == nil && ts > cutoff {
			continue
		}

		var removed *redis.IntCmd
		_, err = q.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
			removed = p.LRem(ctx, q.processingKey, 1, item)
			p.HDel(ctx, q.claimsKey, item)
			return nil
		})
		if err != nil {
			return moved, err
		}
		if removed.Val() == 0 {
			continue // acked meanwhile
		}
		if err := q.rdb.RPush(ctx, q.queueKey, item).Err(); err != nil {
			return moved, err
		}
		moved++
	}
	return moved, nil
}

func (q *Queue) Len(ctx context.Context) (int64, error) {
	return q.rdb.LLen(ctx, q.queueKey).Result()
}

var _ port.JobQueue = (*Queue)(nil)
