package repository

import (
	"context"

	"github.com/Hemasankar007/SupplyChainDataIntegrationSystem/internal/domain"
)

// RunStore defines the interface for simulation run persistence.
type RunStore interface {
	// SaveRun stores a run, assigning an ID if the run has none.
	SaveRun(ctx context.Context, run *domain.SimulationRun) error
	GetRun(ctx context.Context, id string) (*domain.SimulationRun, error)
	// ListRuns returns all stored runs ordered by creation time, newest
	// first.
	ListRuns(ctx context.Context) ([]*domain.SimulationRun, error)
	DeleteRun(ctx context.Context, id string) error
	Close() error
}
