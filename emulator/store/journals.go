package store

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/shunichi-ikebuchi/kakeibo-client/emulator/models"
)

// CreateJournal stores a new journal entry, assigning its id and entry number.
func (s *Store) CreateJournal(req *models.CreateJournalRequest) (*models.Journal, error) {
	var journal *models.Journal

	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketJournals))

		id, err := b.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to generate journal ID: %w", err)
		}

		entryNumber, err := nextEntryNumber(tx)
		if err != nil {
			return fmt.Errorf("failed to generate entry number: %w", err)
		}

		source := req.Source
		if source == "" {
			source = "api"
		}

		journal = &models.Journal{
			ID:          int64(id),
			Date:        req.Date,
			EntryNumber: entryNumber,
			Description: req.Description,
			Source:      source,
			Lines:       req.Lines,
		}

		data, err := json.Marshal(journal)
		if err != nil {
			return fmt.Errorf("failed to marshal journal: %w", err)
		}
		return b.Put(itob(journal.ID), data)
	})
	if err != nil {
		return nil, err
	}
	return journal, nil
}

// GetJournal returns a journal entry by id.
func (s *Store) GetJournal(id int64) (*models.Journal, error) {
	var journal models.Journal

	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(BucketJournals)).Get(itob(id))
		if data == nil {
			return ErrNotFound
		}
		return json.Unmarshal(data, &journal)
	})
	if err != nil {
		return nil, err
	}
	return &journal, nil
}

// ListJournals returns journals within the date range, in insertion order.
// Empty bounds are unbounded.
func (s *Store) ListJournals(dateFrom, dateTo string) ([]*models.Journal, error) {
	var journals []*models.Journal

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(BucketJournals)).ForEach(func(_, data []byte) error {
			var journal models.Journal
			if err := json.Unmarshal(data, &journal); err != nil {
				return err
			}
			// YYYY-MM-DD strings compare chronologically.
			if dateFrom != "" && journal.Date < dateFrom {
				return nil
			}
			if dateTo != "" && journal.Date > dateTo {
				return nil
			}
			journals = append(journals, &journal)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return journals, nil
}

// DeleteJournal removes a journal entry by id.
func (s *Store) DeleteJournal(id int64) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketJournals))
		if b.Get(itob(id)) == nil {
			return ErrNotFound
		}
		return b.Delete(itob(id))
	})
}
