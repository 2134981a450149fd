package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/Hemasankar007/SupplyChainDataIntegrationSystem/internal/domain"
)

const runPrefix = "run:"

// BadgerRunStore implements RunStore using BadgerDB.
type BadgerRunStore struct {
	db *badger.DB
}

// NewBadgerRunStore creates a new BadgerDB-backed run store.
func NewBadgerRunStore(dbPath string) (*BadgerRunStore, error) {
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Disable badger logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	return &BadgerRunStore{db: db}, nil
}

// Close closes the database connection.
func (s *BadgerRunStore) Close() error {
	return s.db.Close()
}

// SaveRun stores a simulation run, assigning an ID if needed.
func (s *BadgerRunStore) SaveRun(ctx context.Context, run *domain.SimulationRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	return s.db.Update(func(txn *badger.Txn) error {
		data, err := json.Marshal(run)
		if err != nil {
			return fmt.Errorf("failed to marshal run: %w", err)
		}
		return txn.Set([]byte(runPrefix+run.ID), data)
	})
}

// GetRun retrieves a simulation run by ID.
func (s *BadgerRunStore) GetRun(ctx context.Context, id string) (*domain.SimulationRun, error) {
	var run *domain.SimulationRun

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(runPrefix + id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return &domain.RunNotFoundError{ID: id}
			}
			return err
		}

		return item.Value(func(val []byte) error {
			run = &domain.SimulationRun{}
			return json.Unmarshal(val, run)
		})
	})

	return run, err
}

// ListRuns returns all stored runs, newest first.
func (s *BadgerRunStore) ListRuns(ctx context.Context) ([]*domain.SimulationRun, error) {
	var runs []*domain.SimulationRun

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(runPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				run := &domain.SimulationRun{}
				if err := json.Unmarshal(val, run); err != nil {
					return fmt.Errorf("failed to unmarshal run: %w", err)
				}
				runs = append(runs, run)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
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
func (s *BadgerRunStore) DeleteRun(ctx context.Context, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(runPrefix + id))
	})
}
