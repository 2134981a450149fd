package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord is one simulated row per (product, day). The source
// fields are written once by the simulator; the derived fields are filled
// in by the metrics enricher and are pure functions of DailyDemand and
// StockLevel on the same record.
type InventoryRecord struct {
	Date        time.Time `json:"date"`
	Day         int       `json:"day"`
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"product_name"`
	Category    string    `json:"category"`

	DailyDemand   int  `json:"daily_demand"`
	StockLevel    int  `json:"stock_level"`
	RestockAmount int  `json:"restock_amount"`
	Restocked     bool `json:"restocked"`

	Price          decimal.Decimal `json:"price"`
	OriginalPrice  decimal.Decimal `json:"original_price"`
	PriceChangePct float64         `json:"price_change_pct"`

	// Derived fields, see metrics.Enrich. DaysOfInventory is +Inf when
	// daily demand is zero.
	DaysOfInventory    float64 `json:"days_of_inventory"`
	StockoutRisk       bool    `json:"stockout_risk"`
	AnnualizedTurnover float64 `json:"annualized_turnover"`
	FillRate           float64 `json:"fill_rate"`
}

// IsStockout reports whether the record shows no stock on hand.
func (r *InventoryRecord) IsStockout() bool {
	return r.StockLevel == 0
}

// HasInfiniteCover reports whether the zero-demand sentinel applies.
func (r *InventoryRecord) HasInfiniteCover() bool {
	return math.IsInf(r.DaysOfInventory, 1)
}

// RestockConsistent verifies the restock flag invariant: Restocked is set
// exactly when a positive quantity was added.
func (r *InventoryRecord) RestockConsistent() bool {
	return r.Restocked == (r.RestockAmount > 0)
}
