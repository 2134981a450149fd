package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for degenerate analytics inputs. Callers treat these as
// "sub-metric absent", not as pipeline failures.
var (
	ErrNoOrderData     = errors.New("no order data available")
	ErrNoLeadTimes     = errors.New("no lead time measurements in order data")
	ErrNoInventoryData = errors.New("no inventory data available")
	ErrNoShipDates     = errors.New("no ship dates in order data")
	ErrNoCategoryData  = errors.New("no category column in order or inventory data")
)

// ConfigError reports an invalid simulation or analytics parameter. It is
// surfaced synchronously to the caller and is fatal to the requested run.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}
