// Package store persists demo notes in a local BoltDB file.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

// ErrNoteNotFound reports a lookup for an ID with no stored note.
var ErrNoteNotFound = errors.New("store: note not found")

// Note is the entity persisted by the store.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store wraps BoltDB to keep notes across restarts.
type Store struct {
	db     *bolt.DB
	bucket []byte
}

// Open initializes the BoltDB file and ensures the bucket exists.
func Open(path string, bucket string) (*Store, error) {
	if bucket == "" {
		bucket = "notes"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:     db,
		bucket: []byte(bucket),
	}, nil
}

// Put inserts or updates a note. New notes receive an ID and their creation
// timestamp.
func (s *Store) Put(note *Note) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	if note == nil {
		return errors.New("store: nil note")
	}

	now := time.Now().UTC()
	if note.ID == "" {
		note.ID = uuid.NewString()
		note.CreatedAt = now
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = now
	note.Title = strings.TrimSpace(note.Title)

	payload, err := json.Marshal(note)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(note.ID), payload)
	})
}

// Get returns the note stored under id.
func (s *Store) Get(id string) (*Note, error) {
	if s == nil || s.db == nil {
		return nil, bolt.ErrDatabaseNotOpen
	}

	var note *Note
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(s.bucket).Get([]byte(id))
		if raw == nil {
			return ErrNoteNotFound
		}
		note = &Note{}
		return json.Unmarshal(raw, note)
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

// List returns up to limit notes, newest first.
func (s *Store) List(limit int) ([]Note, error) {
	if s == nil || s.db == nil {
		return nil, bolt.ErrDatabaseNotOpen
	}
	if limit <= 0 {
		limit = 50
	}

	var notes []Note
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).ForEach(func(_, v []byte) error {
			var note Note
			if err := json.Unmarshal(v, &note); err != nil {
				return nil
			}
			notes = append(notes, note)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
	if len(notes) > limit {
		notes = notes[:limit]
	}
	return notes, nil
}

// Delete removes the note stored under id.
func (s *Store) Delete(id string) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b.Get([]byte(id)) == nil {
			return ErrNoteNotFound
		}
		return b.Delete([]byte(id))
	})
}

// Count returns the number of stored notes.
func (s *Store) Count() (int, error) {
	if s == nil || s.db == nil {
		return 0, bolt.ErrDatabaseNotOpen
	}
	var count int
	err := s.db.View(func(tx *bolt.Tx) error {
		count = tx.Bucket(s.bucket).Stats().KeyN
		return nil
	})
	return count, err
}

// Close closes the Bolt database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
