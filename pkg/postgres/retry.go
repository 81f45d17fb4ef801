package postgres

import (
	"context"
	"errors"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
	"math/rand"
	"time"
)

const defaultMaxElapsed = 2 * time.Minute

var (
	ErrMaxAttempts = errors.New("db connect: max attempts reached")
	ErrMaxElapsed  = errors.New("db connect: max elapsed time reached")
)

// RetryConfig controls startup connection attempts. Zero durations fall back
// to defaults; zero MaxAttempts/MaxElapsed mean no limit.
type RetryConfig struct {
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	MaxElapsed  time.Duration
	MaxAttempts int
	PingTimeout time.Duration
	Jitter      float64
}

func (c RetryConfig) withDefaults() RetryConfig {
	if c.BaseDelay <= 0 {
		c.BaseDelay = time.Second
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = 30 * time.Second
	}
	if c.PingTimeout <= 0 {
		c.PingTimeout = 5 * time.Second
	}
	c.Jitter = min(max(c.Jitter, 0), 0.5)
	return c
}

// backoff doubles from BaseDelay up to MaxDelay, jittering every step.
type backoff struct {
	next   time.Duration
	limit  time.Duration
	jitter float64
}

func newBackoff(cfg RetryConfig) *backoff {
	return &backoff{next: cfg.BaseDelay, limit: cfg.MaxDelay, jitter: cfg.Jitter}
}

func (b *backoff) Next() time.Duration {
	d := min(jittered(b.next, b.jitter), b.limit)
	b.next = min(b.next*2, b.limit)
	return d
}

func jittered(d time.Duration, jitter float64) time.Duration {
	if jitter <= 0 {
		return d
	}
	return time.Duration(float64(d) * (1 + (rand.Float64()*2-1)*jitter))
}

// ConnectWithRetry opens a pool and pings it until it answers, the limits in
// cfg are exhausted or ctx is done. A nil logger disables attempt logging.
func ConnectWithRetry(ctx context.Context, driver, dsn string, cfg RetryConfig, logger *log.Entry) (*sqlx.DB, error) {
	cfg = cfg.withDefaults()
	wait := newBackoff(cfg)
	start := time.Now()

	for attempt := 1; ; attempt++ {
		switch {
		case cfg.MaxAttempts > 0 && attempt > cfg.MaxAttempts:
			return nil, ErrMaxAttempts
		case cfg.MaxElapsed > 0 && time.Since(start) > cfg.MaxElapsed:
			return nil, ErrMaxElapsed
		}

		db, err := open(ctx, driver, dsn, cfg.PingTimeout)
		if err == nil {
			if logger != nil {
				logger.WithField("attempt", attempt).Info("database connected")
			}
			return db, nil
		}

		delay := wait.Next()
		if logger != nil {
			logger.WithFields(log.Fields{"attempt": attempt, "retry_in": delay.String()}).Warnf("database connect failed: %v", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
}

func open(ctx context.Context, driver, dsn string, pingTimeout time.Duration) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
