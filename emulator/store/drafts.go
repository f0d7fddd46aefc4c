package store

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/shunichi-ikebuchi/kakeibo-client/emulator/models"
)

// CreateDraft stores a new AI draft, assigning its id.
func (s *Store) CreateDraft(draft *models.Draft) (*models.Draft, error) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketDrafts))

		id, err := b.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to generate draft ID: %w", err)
		}
		draft.ID = int64(id)

		data, err := json.Marshal(draft)
		if err != nil {
			return fmt.Errorf("failed to marshal draft: %w", err)
		}
		return b.Put(itob(draft.ID), data)
	})
	if err != nil {
		return nil, err
	}
	return draft, nil
}

// GetDraft returns a draft by id.
func (s *Store) GetDraft(id int64) (*models.Draft, error) {
	var draft models.Draft

	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(BucketDrafts)).Get(itob(id))
		if data == nil {
			return ErrNotFound
		}
		return json.Unmarshal(data, &draft)
	})
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// ListDrafts returns drafts in insertion order, filtered by status.
// Status "all" or "" returns every draft.
func (s *Store) ListDrafts(status string) ([]*models.Draft, error) {
	var drafts []*models.Draft

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(BucketDrafts)).ForEach(func(_, data []byte) error {
			var draft models.Draft
			if err := json.Unmarshal(data, &draft); err != nil {
				return err
			}
			if status != "" && status != "all" && draft.Status != status {
				return nil
			}
			drafts = append(drafts, &draft)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return drafts, nil
}

// MarkDraftConsumed sets a draft's status to done.
func (s *Store) MarkDraftConsumed(id int64) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketDrafts))

		data := b.Get(itob(id))
		if data == nil {
			return ErrNotFound
		}

		var draft models.Draft
		if err := json.Unmarshal(data, &draft); err != nil {
			return err
		}
		draft.Status = "done"

		updated, err := json.Marshal(&draft)
		if err != nil {
			return err
		}
		return b.Put(itob(id), updated)
	})
}

// DeleteDraft removes a draft by id.
func (s *Store) DeleteDraft(id int64) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketDrafts))
		if b.Get(itob(id)) == nil {
			return ErrNotFound
		}
		return b.Delete(itob(id))
	})
}
