package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeadTimeUnknown marks an order without a lead-time measurement.
const LeadTimeUnknown = -1

// OrderRecord is an order row supplied by an external ingestion source.
// A zero ShipDate means the order has not shipped (or the column was
// absent). LeadTimeDays may be supplied directly or derived at ingestion
// as ship date minus order date; LeadTimeUnknown marks a missing value.
type OrderRecord struct {
	OrderID      string          `json:"order_id"`
	OrderDate    time.Time       `json:"order_date"`
	ShipDate     time.Time       `json:"ship_date"`
	Category     string          `json:"category"`
	Sales        decimal.Decimal `json:"sales"`
	LeadTimeDays int             `json:"lead_time_days"`
}

// HasShipDate reports whether a ship date is known for this order.
func (o *OrderRecord) HasShipDate() bool {
	return !o.ShipDate.IsZero()
}

// HasLeadTime reports whether LeadTimeDays carries a real measurement.
func (o *OrderRecord) HasLeadTime() bool {
	return o.LeadTimeDays >= 0
}

// ReturnRecord is a product return row supplied by an external ingestion
// source, keyed back to the originating order.
type ReturnRecord struct {
	ReturnID   string    `json:"return_id"`
	ReturnDate time.Time `json:"return_date"`
	OrderID    string    `json:"order_id"`
	Category   string    `json:"category"`
}
