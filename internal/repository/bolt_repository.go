package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/Hemasankar007/SupplyChainDataIntegrationSystem/internal/domain"
)

const runsBucket = "runs"

// BoltRunStore implements RunStore using BoltDB (bbolt). BoltDB keeps the
// whole store in a single compact file, which suits the modest size of
// simulation output.
type BoltRunStore struct {
	db *bbolt.DB
}

// NewBoltRunStore creates a new BoltDB-backed run store.
func NewBoltRunStore(dbPath string) (*BoltRunStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create parent directory for bolt db: %w", err)
	}

	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{
		Timeout:      1 * time.Second,
		FreelistType: bbolt.FreelistMapType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(runsBucket))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create runs bucket: %w", err)
	}

	return &BoltRunStore{db: db}, nil
}

// Close closes the database connection.
func (s *BoltRunStore) Close() error {
	return s.db.Close()
}

// SaveRun stores a simulation run, assigning an ID if needed.
func (s *BoltRunStore) SaveRun(ctx context.Context, run *domain.SimulationRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(runsBucket))
		if bucket == nil {
			return fmt.Errorf("runs bucket not found")
		}

		data, err := json.Marshal(run)
		if err != nil {
			return fmt.Errorf("failed to marshal run: %w", err)
		}

		return bucket.Put([]byte(run.ID), data)
	})
}

// GetRun retrieves a simulation run by ID.
func (s *BoltRunStore) GetRun(ctx context.Context, id string) (*domain.SimulationRun, error) {
	var run *domain.SimulationRun

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(runsBucket))
		if bucket == nil {
			return fmt.Errorf("runs bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return &domain.RunNotFoundError{ID: id}
		}

		run = &domain.SimulationRun{}
		return json.Unmarshal(data, run)
	})

	return run, err
}

// ListRuns returns all stored runs, newest first.
func (s *BoltRunStore) ListRuns(ctx context.Context) ([]*domain.SimulationRun, error) {
	var runs []*domain.SimulationRun

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(runsBucket))
		if bucket == nil {
			return fmt.Errorf("runs bucket not found")
		}

		return bucket.ForEach(func(_, data []byte) error {
			run := &domain.SimulationRun{}
			if err := json.Unmarshal(data, run); err != nil {
				return fmt.Errorf("failed to unmarshal run: %w", err)
			}
			runs = append(runs, run)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
	return runs, nil
}

// DeleteRun removes a simulation run.
func (s *BoltRunStore) DeleteRun(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(runsBucket))
		if bucket == nil {
			return fmt.Errorf("runs bucket not found")
		}
		return bucket.Delete([]byte(id))
	})
}
