/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Nikolay Nikitin
 */

// Package history keeps an append-only log of the schedule pushes the
// cloud confirmed, one bucket per node.
package history

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/hivesched/hivesched/pkg/schedule"
)

const historyFileMode = 0644

// Record is one confirmed push.
type Record struct {
	When    time.Time            `json:"when"`
	Day     schedule.Day         `json:"day"`
	Entries schedule.DaySchedule `json:"entries"`
}

type Store struct {
	db *bolt.DB
}

// Open opens or creates the history file.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, historyFileMode, bolt.DefaultOptions)
	if err != nil {
		return nil, fmt.Errorf("cannot open history file %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Append records a confirmed push for the node.
func (s *Store) Append(nodeID string, rec Record) error {
	value, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(nodeID))
		if err != nil {
			return err
		}
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		return bucket.Put(sequenceKey(seq), value)
	})
}

// List returns the node's pushes in the order they happened. A node
// that was never pushed to has an empty history, not an error.
func (s *Store) List(nodeID string) (records []Record, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(nodeID))
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, v []byte) error {
			var rec Record
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			records = append(records, rec)
			return nil
		})
	})
	return records, err
}

// Last returns the most recent push of the given day to the node.
func (s *Store) Last(nodeID string, day schedule.Day) (rec Record, ok bool, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(nodeID))
		if bucket == nil {
			return nil
		}
		cursor := bucket.Cursor()
		for k, v := cursor.Last(); k != nil; k, v = cursor.Prev() {
			var candidate Record
			if err := json.Unmarshal(v, &candidate); err != nil {
				return err
			}
			if candidate.Day == day {
				rec, ok = candidate, true
				return nil
			}
		}
		return nil
	})
	return rec, ok, err
}

func sequenceKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
