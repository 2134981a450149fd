package simulation

import (
	"time"

	"github.com/Hemasankar007/SupplyChainDataIntegrationSystem/internal/domain"
)

// Config holds the tunable parameters of the inventory simulator. The zero
// value is not usable; start from DefaultConfig and override as needed.
type Config struct {
	// SimulationDays is the horizon length; each product gets one record
	// per day in [0, SimulationDays).
	SimulationDays int `json:"simulation_days"`

	// RestockingFrequency is the fixed interval in days between restocks.
	// Restocking is strictly periodic, never stockout-triggered.
	RestockingFrequency int `json:"restocking_frequency"`

	// DemandVariability is the fractional noise half-width in [0, 1]; daily
	// demand is scaled by a uniform factor in [1-v, 1+v].
	DemandVariability float64 `json:"demand_variability"`

	BaseDemandMin float64 `json:"base_demand_min"`
	BaseDemandMax float64 `json:"base_demand_max"`

	InitialStockMin int `json:"initial_stock_min"`
	InitialStockMax int `json:"initial_stock_max"`

	RestockMin int `json:"restock_min"`
	RestockMax int `json:"restock_max"`

	// TrendFactor is total demand growth over the whole horizon; it is
	// compounded smoothly day by day, not applied as a single jump.
	TrendFactor float64 `json:"trend_factor"`

	// WeekendMultiplier scales demand on Saturday and Sunday,
	// WeekdayMultiplier on all other days.
	WeekendMultiplier float64 `json:"weekend_multiplier"`
	WeekdayMultiplier float64 `json:"weekday_multiplier"`

	// StartDate anchors day 0. When zero, the simulator backdates the run
	// so that the final simulated day lands on "now".
	StartDate time.Time `json:"start_date,omitempty"`
}

// DefaultConfig returns the documented fallback parameters: a 30-day
// horizon with weekly restocking and 20% demand noise.
func DefaultConfig() Config {
	return Config{
		SimulationDays:      30,
		RestockingFrequency: 7,
		DemandVariability:   0.2,
		BaseDemandMin:       5,
		BaseDemandMax:       20,
		InitialStockMin:     100,
		InitialStockMax:     300,
		RestockMin:          75,
		RestockMax:          150,
		TrendFactor:         1.05,
		WeekendMultiplier:   1.2,
		WeekdayMultiplier:   0.9,
	}
}

// Validate checks the configuration and returns a ConfigError describing
// the first problem found.
func (c Config) Validate() error {
	if c.SimulationDays <= 0 {
		return &domain.ConfigError{Field: "simulation_days", Reason: "must be positive"}
	}
	if c.RestockingFrequency <= 0 {
		return &domain.ConfigError{Field: "restocking_frequency", Reason: "must be positive"}
	}
	if c.DemandVariability < 0 || c.DemandVariability > 1 {
		return &domain.ConfigError{Field: "demand_variability", Reason: "must be in [0, 1]"}
	}
	if c.BaseDemandMin < 0 || c.BaseDemandMax < c.BaseDemandMin {
		return &domain.ConfigError{Field: "base_demand range", Reason: "must satisfy 0 <= min <= max"}
	}
	if c.InitialStockMin < 0 || c.InitialStockMax < c.InitialStockMin {
		return &domain.ConfigError{Field: "initial_stock range", Reason: "must satisfy 0 <= min <= max"}
	}
	if c.RestockMin < 0 || c.RestockMax < c.RestockMin {
		return &domain.ConfigError{Field: "restock range", Reason: "must satisfy 0 <= min <= max"}
	}
	if c.TrendFactor <= 0 {
		return &domain.ConfigError{Field: "trend_factor", Reason: "must be positive"}
	}
	if c.WeekendMultiplier < 0 || c.WeekdayMultiplier < 0 {
		return &domain.ConfigError{Field: "seasonality multipliers", Reason: "must be non-negative"}
	}
	return nil
}
