package postgres

import (
	"context"
	"employee-directory/pkg/config"
	"errors"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
	"sync"
	"time"
)

var ErrManagerClosed = errors.New("db manager is closed")

// Manager owns the current pool and replaces it when the database stops
// answering pings. Repositories read it through DB() on every call.
type Manager struct {
	mu     sync.RWMutex
	db     *sqlx.DB
	closed bool

	driver string
	dsn    string
	retry  RetryConfig
	logger *log.Entry
}

func NewManager(ctx context.Context, dbCfg config.PostgresConfig, retry RetryConfig) (*Manager, error) {
	return NewManagerWithDSN(ctx, DriverName, BuildDSN(dbCfg), retry,
		log.WithFields(log.Fields{"component": "postgres", "host": dbCfg.Host, "db": dbCfg.Name}))
}

func NewManagerWithDSN(ctx context.Context, driver, dsn string, retry RetryConfig, logger *log.Entry) (*Manager, error) {
	retry = retry.withDefaults()
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	db, err := ConnectWithRetry(ctx, driver, dsn, retry, logger)
	if err != nil {
		return nil, err
	}
	return &Manager{db: db, driver: driver, dsn: dsn, retry: retry, logger: logger}, nil
}

func (m *Manager) DB() *sqlx.DB {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.db
}

// Reconnect dials a fresh pool and swaps it in. If the manager was closed
// meanwhile the fresh pool is closed instead of installed.
func (m *Manager) Reconnect(ctx context.Context) error {
	db, err := ConnectWithRetry(ctx, m.driver, m.dsn, m.retry, m.logger)
	if err != nil {
		return err
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		_ = db.Close()
		return ErrManagerClosed
	}
	old := m.db
	m.db = db
	m.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}
	return nil
}

func (m *Manager) Close() error {
	m.mu.Lock()
	db := m.db
	m.db = nil
	m.closed = true
	m.mu.Unlock()
	if db != nil {
		return db.Close()
	}
	return nil
}

// MonitorAndReconnect pings the pool every interval and reconnects on
// failure. It returns once ctx is done or the manager is closed.
func (m *Manager) MonitorAndReconnect(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !m.check(ctx) {
				return
			}
		}
	}
}

// check reports false when monitoring should stop.
func (m *Manager) check(ctx context.Context) bool {
	db := m.DB()
	if db == nil {
		return false
	}

	pingCtx, cancel := context.WithTimeout(ctx, m.retry.PingTimeout)
	err := db.PingContext(pingCtx)
	cancel()
	if err == nil {
		return true
	}

	m.logger.Warnf("database ping failed: %v", err)
	if err := m.Reconnect(ctx); err != nil {
		if errors.Is(err, ErrManagerClosed) || ctx.Err() != nil {
			return false
		}
		m.logger.Errorf("database reconnect failed: %v", err)
	}
	return true
}
