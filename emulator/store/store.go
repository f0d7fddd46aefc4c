// Package store provides bbolt-backed persistence for the kakeibo emulator.
package store

import (
	"encoding/binary"
	"errors"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// ErrNotFound is returned when a record is not found.
var ErrNotFound = errors.New("record not found")

// Bucket names.
const (
	BucketJournals = "journals"
	BucketDrafts   = "drafts"
	BucketCounters = "counters"
)

// counterEntryNumber tracks the next journal entry number.
const counterEntryNumber = "entry_number"

// Store represents the bbolt database wrapper.
type Store struct {
	db *bolt.DB
}

// New creates a new Store instance and initializes buckets.
func New(dbPath string) (*Store, error) {
	db, err := bolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		buckets := []string{BucketJournals, BucketDrafts, BucketCounters}
		for _, bucket := range buckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// nextEntryNumber increments and returns the journal entry number counter.
// Must be called within an update transaction.
func nextEntryNumber(tx *bolt.Tx) (int64, error) {
	b := tx.Bucket([]byte(BucketCounters))
	if b == nil {
		return 0, fmt.Errorf("bucket %s not found", BucketCounters)
	}

	var current int64
	if data := b.Get([]byte(counterEntryNumber)); data != nil {
		current = int64(binary.BigEndian.Uint64(data))
	}
	next := current + 1

	if err := b.Put([]byte(counterEntryNumber), itob(next)); err != nil {
		return 0, err
	}
	return next, nil
}

// itob converts an int64 to a big-endian 8-byte key.
func itob(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}
