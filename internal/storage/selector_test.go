package storage

import (
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestSelectorSwitchesToFallbackAndBack(t *testing.T) {
	primary := &gorm.DB{}
	fallback := &gorm.DB{}

	healthy := true
	s := NewSelector(primary, fallback, Options{
		HealthCheck: func(db *gorm.DB) error {
			if db != primary {
				t.Fatalf("health check probed the wrong handle")
			}
			if healthy {
				return nil
			}
			return errors.New("connection refused")
		},
	})

	if got := s.DB(); got != primary {
		t.Fatalf("expected primary before any check")
	}

	healthy = false
	if s.CheckNow() {
		t.Fatalf("expected CheckNow to report unhealthy primary")
	}
	if got := s.DB(); got != fallback {
		t.Fatalf("expected fallback after failed check")
	}
	if !s.UsingFallback() {
		t.Fatalf("UsingFallback should be true")
	}

	healthy = true
	if !s.CheckNow() {
		t.Fatalf("expected recovery on healthy primary")
	}
	if got := s.DB(); got != primary {
		t.Fatalf("expected primary after recovery")
	}
}

func TestSelectorStaysOnPrimaryWithoutFallback(t *testing.T) {
	primary := &gorm.DB{}

	s := NewSelector(primary, nil, Options{
		HealthCheck: func(db *gorm.DB) error { return errors.New("down") },
	})

	s.CheckNow()

	if got := s.DB(); got != primary {
		t.Fatalf("with no fallback the primary must stay active")
	}
	if s.UsingFallback() {
		t.Fatalf("UsingFallback must be false without a fallback handle")
	}
}

func TestSelectorMigrationsAlwaysTargetPrimary(t *testing.T) {
	primary := &gorm.DB{}
	fallback := &gorm.DB{}

	s := NewSelector(primary, fallback, Options{
		HealthCheck: func(db *gorm.DB) error { return errors.New("down") },
	})
	s.CheckNow()

	if got := s.Primary(); got != primary {
		t.Fatalf("Primary must return the primary handle even on fallback")
	}
}
