// Package bbolt persists the generation history using bbolt (embedded B+
// tree). One JSON-serialized record per completed write, keyed by timestamp.
// Writes are transactional — a crash mid-write cannot corrupt previously
// committed records.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketHistory = []byte("history")

// Record is one completed .clangd generation.
type Record struct {
	Time     time.Time `json:"time"`
	Preset   string    `json:"preset"`
	Database string    `json:"database"` // path recorded in the document
	Config   string    `json:"config"`   // path of the written .clangd
	SHA256   string    `json:"sha256"`   // fingerprint of the rendered document
}

// Store is a generation-history store backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// recordKey encodes a record's timestamp as a lexically sortable key, so a
// forward cursor walks the history oldest-first.
func recordKey(t time.Time) []byte {
	return []byte(t.UTC().Format(time.RFC3339Nano))
}

// Append adds a record to the history.
func (s *Store) Append(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketHistory)
		if err != nil {
			return err
		}
		return b.Put(recordKey(rec.Time), data)
	})
}

// Last returns the most recent record, or nil when the history is empty.
func (s *Store) Last() (*Record, error) {
	var rec *Record
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketHistory)
		if b == nil {
			return nil
		}
		_, v := b.Cursor().Last()
		if v == nil {
			return nil
		}
		var r Record
		if err := json.Unmarshal(v, &r); err != nil {
			return fmt.Errorf("unmarshal record: %w", err)
		}
		rec = &r
		return nil
	})
	return rec, err
}

// History returns up to limit records, newest first. limit <= 0 means all.
func (s *Store) History(limit int) ([]Record, error) {
	var recs []Record
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketHistory)
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(recs) >= limit {
				break
			}
			var r Record
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("unmarshal record: %w", err)
			}
			recs = append(recs, r)
		}
		return nil
	})
	return recs, err
}
