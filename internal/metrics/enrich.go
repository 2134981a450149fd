package metrics

import (
	"math"

	"github.com/Hemasankar007/SupplyChainDataIntegrationSystem/internal/domain"
)

// stockoutRiskDays is the days-of-inventory level below which a record is
// flagged as at risk of stocking out.
const stockoutRiskDays = 3

// Enrich appends the derived inventory metrics to every record and returns
// a new slice; the input records are not modified. Each derived field is a
// pure function of DailyDemand and StockLevel on the same record, so the
// records may be enriched in any order.
//
// Edge rules: zero demand yields infinite days of inventory and a full fill
// rate; zero stock yields zero annualized turnover.
func Enrich(records []domain.InventoryRecord) []domain.InventoryRecord {
	enriched := make([]domain.InventoryRecord, len(records))
	for i, rec := range records {
		if rec.DailyDemand > 0 {
			rec.DaysOfInventory = float64(rec.StockLevel) / float64(rec.DailyDemand)
			rec.FillRate = math.Min(1.0, float64(rec.StockLevel)/float64(rec.DailyDemand))
		} else {
			rec.DaysOfInventory = math.Inf(1)
			rec.FillRate = 1.0
		}

		rec.StockoutRisk = rec.DaysOfInventory < stockoutRiskDays

		if rec.StockLevel > 0 {
			rec.AnnualizedTurnover = float64(rec.DailyDemand) * 365 / float64(rec.StockLevel)
		} else {
			rec.AnnualizedTurnover = 0
		}

		enriched[i] = rec
	}
	return enriched
}
