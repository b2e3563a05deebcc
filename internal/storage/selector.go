package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"estate-backoffice/pkg/logger"
)

// Selector owns the primary database connection and an optional fallback.
// Every repository receives the selector once at startup and asks it for
// the current handle per call, so a primary outage flips all traffic to
// the fallback without re-wiring anything.
type Selector struct {
	mu         sync.RWMutex
	primary    *gorm.DB
	fallback   *gorm.DB
	onFallback bool

	health        func(db *gorm.DB) error
	checkInterval time.Duration

	stopOnce sync.Once
	stop     chan struct{}
}

var ErrNoDatabase = errors.New("no database connection available")

type Options struct {
	PrimaryURL  string
	FallbackURL string

	// HealthCheck overrides the default ping probe, used in tests.
	HealthCheck   func(db *gorm.DB) error
	CheckInterval time.Duration
}

func Open(opts Options) (*Selector, error) {
	if opts.PrimaryURL == "" {
		return nil, errors.New("primary database URL is required")
	}

	primary, err := openGorm(opts.PrimaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to primary database: %w", err)
	}

	var fallback *gorm.DB
	if opts.FallbackURL != "" {
		fallback, err = openGorm(opts.FallbackURL)
		if err != nil {
			logger.Error(err, "Failed to connect to fallback database, continuing without it", nil)
			fallback = nil
		}
	}

	return NewSelector(primary, fallback, opts), nil
}

// NewSelector wraps already-opened handles. Open is the normal entry
// point; this one exists so tests can inject stub connections.
func NewSelector(primary, fallback *gorm.DB, opts Options) *Selector {
	health := opts.HealthCheck
	if health == nil {
		health = pingDatabase
	}

	interval := opts.CheckInterval
	if interval <= 0 {
		interval = 15 * time.Second
	}

	return &Selector{
		primary:       primary,
		fallback:      fallback,
		health:        health,
		checkInterval: interval,
		stop:          make(chan struct{}),
	}
}

func openGorm(url string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{
		Logger: logger.NewGormLogger(),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func pingDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// DB returns the handle traffic should use right now.
func (s *Selector) DB() *gorm.DB {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.onFallback && s.fallback != nil {
		return s.fallback
	}
	return s.primary
}

// Primary returns the primary handle regardless of health. Migrations
// and index creation always target the primary.
func (s *Selector) Primary() *gorm.DB {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.primary
}

func (s *Selector) UsingFallback() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.onFallback
}

// CheckNow probes the primary once and flips the active handle
// accordingly. Returns true when traffic is on the primary.
func (s *Selector) CheckNow() bool {
	err := s.health(s.Primary())

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case err == nil && s.onFallback:
		s.onFallback = false
		logger.Info("Primary database recovered, switching back", nil)
	case err != nil && !s.onFallback && s.fallback != nil:
		s.onFallback = true
		logger.Error(err, "Primary database unhealthy, switching to fallback", nil)
	case err != nil && s.fallback == nil:
		logger.Error(err, "Primary database unhealthy and no fallback configured", nil)
	}

	return !s.onFallback
}

// StartHealthLoop probes the primary on an interval until ctx is
// canceled or Close is called. No-op when there is no fallback.
func (s *Selector) StartHealthLoop(ctx context.Context) {
	if s.fallback == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(s.checkInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stop:
				return
			case <-ticker.C:
				s.CheckNow()
			}
		}
	}()
}

func (s *Selector) Close() error {
	s.stopOnce.Do(func() { close(s.stop) })

	var firstErr error
	for _, db := range []*gorm.DB{s.primary, s.fallback} {
		if db == nil {
			continue
		}
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
