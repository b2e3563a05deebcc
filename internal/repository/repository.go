package repository

import "gorm.io/gorm"

// Conn hands out the database handle to use for the next operation.
// The storage selector implements it, so every repository call follows
// a primary/fallback switch without holding a stale handle.
type Conn interface {
	DB() *gorm.DB
}

// staticConn wraps a plain handle, for migrations and tests.
type staticConn struct {
	db *gorm.DB
}

func (c staticConn) DB() *gorm.DB { return c.db }

func NewStaticConn(db *gorm.DB) Conn {
	return staticConn{db: db}
}
