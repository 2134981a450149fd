package domain

import (
	"fmt"
	"time"
)

// SimulationRun is a persisted simulation output: the generated records
// plus enough metadata to identify and reproduce the run.
type SimulationRun struct {
	ID             string            `json:"id"`
	CreatedAt      time.Time         `json:"created_at"`
	Seed           int64             `json:"seed"`
	SimulationDays int               `json:"simulation_days"`
	ProductCount   int               `json:"product_count"`
	Records        []InventoryRecord `json:"records"`
}

// RunNotFoundError reports a missing simulation run.
type RunNotFoundError struct {
	ID string
}

func (e *RunNotFoundError) Error() string {
	return fmt.Sprintf("simulation run with ID '%s' not found", e.ID)
}
