// Package store is the only layer that talks to the database. Every method
// that returns an entity returns it populated: reference fields are resolved
// to their full records before being handed to callers, so a caller never
// sees a bare identifier where a record is expected.
package store

import (
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying connection for test setup.
func (s *Store) DB() *gorm.DB {
	return s.db
}
