// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package auth

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// SessionStoreType selects a session storage backend.
type SessionStoreType string

const (
	// SessionStoreMemory keeps sessions in memory only.
	SessionStoreMemory SessionStoreType = "memory"

	// SessionStoreBadger persists sessions in BadgerDB.
	SessionStoreBadger SessionStoreType = "badger"
)

// SessionStoreFactory owns the backing database of the session store.
type SessionStoreFactory struct {
	db *badger.DB
}

// NewSessionStoreFactory opens a BadgerDB at path when storeType is
// badger. Any other type needs no resources.
func NewSessionStoreFactory(storeType SessionStoreType, path string) (*SessionStoreFactory, error) {
	factory := &SessionStoreFactory{}

	if storeType == SessionStoreBadger {
		opts := badger.DefaultOptions(path)
		opts.Logger = nil

		db, err := badger.Open(opts)
		if err != nil {
			return nil, fmt.Errorf("open badger db for sessions: %w", err)
		}
		factory.db = db
	}

	return factory, nil
}

// CreateStore returns the store for the factory's backend.
func (f *SessionStoreFactory) CreateStore() SessionStore {
	if f.db != nil {
		return NewBadgerSessionStore(f.db)
	}
	return NewMemorySessionStore()
}

// Close closes the BadgerDB if one was opened.
func (f *SessionStoreFactory) Close() error {
	if f.db != nil {
		return f.db.Close()
	}
	return nil
}
