// Package quota keeps a rolling per-device count of public bookings. It is
// advisory: slot conflicts are enforced by the booking store, never here.
package quota

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ModeOff     = "off"
	ModeWarn    = "warn"
	ModeEnforce = "enforce"
)

type Verdict int

const (
	Allow Verdict = iota
	Warn
	Deny
)

// Counter counts events per key inside a rolling window.
type Counter interface {
	Count(ctx context.Context, key string, window time.Duration) (int64, error)
	Add(ctx context.Context, key string, window time.Duration) error
}

type Quota struct {
	counter Counter
	mode    string
	max     int64
	window  time.Duration
	log     *zap.Logger
}

func New(counter Counter, mode string, max int, window time.Duration, log *zap.Logger) *Quota {
	if counter == nil {
		mode = ModeOff
	}
	return &Quota{
		counter: counter,
		mode:    mode,
		max:     int64(max),
		window:  window,
		log:     log,
	}
}

func key(tenantID uint, subject string) string {
	return "quota:reservas:" + strconv.FormatUint(uint64(tenantID), 10) + ":" + subject
}

// Check evaluates the subject against the quota. Counter failures allow the
// booking.
func (q *Quota) Check(ctx context.Context, tenantID uint, subject string) Verdict {
	if q == nil || q.mode == ModeOff || subject == "" {
		return Allow
	}

	n, err := q.counter.Count(ctx, key(tenantID, subject), q.window)
	if err != nil {
		q.log.Warn("booking quota unavailable", zap.Error(err))
		return Allow
	}
	if n < q.max {
		return Allow
	}
	if q.mode == ModeEnforce {
		return Deny
	}
	return Warn
}

// Record counts one successful booking for the subject.
func (q *Quota) Record(ctx context.Context, tenantID uint, subject string) {
	if q == nil || q.mode == ModeOff || subject == "" {
		return
	}
	if err := q.counter.Add(ctx, key(tenantID, subject), q.window); err != nil {
		q.log.Warn("booking quota record failed", zap.Error(err))
	}
}

// RedisCounter keeps one sorted set per key, scored by unix milliseconds.
type RedisCounter struct {
	c   *redis.Client
	now func() time.Time
}

func NewRedisCounter(c *redis.Client) *RedisCounter {
	return &RedisCounter{c: c, now: time.Now}
}

func (r *RedisCounter) Count(ctx context.Context, key string, window time.Duration) (int64, error) {
	cutoff := r.now().Add(-window).UnixMilli()

	pipe := r.c.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(cutoff, 10))
	card := pipe.ZCard(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("count %s: %w", key, err)
	}
	return card.Val(), nil
}

func (r *RedisCounter) Add(ctx context.Context, key string, window time.Duration) error {
	now := r.now()

	pipe := r.c.TxPipeline()
	pipe.ZAdd(ctx, key, &redis.Z{Score: float64(now.UnixMilli()), Member: uuid.NewString()})
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("add %s: %w", key, err)
	}
	return nil
}
