package simulation

import (
	"math"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Hemasankar007/SupplyChainDataIntegrationSystem/internal/domain"
)

// Simulator generates synthetic per-product, per-day inventory records.
// Each product evolves as an independent chain: uniform base demand shaped
// by weekend seasonality, multiplicative noise, and a smoothly compounded
// growth trend, against a stock level drawn down by demand and replenished
// on a fixed schedule.
//
// The random source is injected so runs are reproducible under a fixed
// seed; the simulator never reaches for ambient randomness.
type Simulator struct {
	cfg    Config
	rng    *rand.Rand
	logger *logrus.Logger
}

// NewSimulator creates a simulator with the given configuration, random
// source, and logger.
func NewSimulator(cfg Config, rng *rand.Rand, logger *logrus.Logger) *Simulator {
	return &Simulator{cfg: cfg, rng: rng, logger: logger}
}

// Run simulates inventory activity for every product in the catalog and
// returns len(products) * SimulationDays records in product order. An empty
// catalog yields an empty result, not an error; an invalid configuration
// fails before any work is done.
func (s *Simulator) Run(products []domain.Product) ([]domain.InventoryRecord, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	if len(products) == 0 {
		s.logger.Warn("empty product catalog, nothing to simulate")
		return []domain.InventoryRecord{}, nil
	}

	days := s.cfg.SimulationDays
	start := s.cfg.StartDate
	if start.IsZero() {
		start = time.Now().AddDate(0, 0, -days)
	}

	s.logger.WithFields(logrus.Fields{
		"products":        len(products),
		"simulation_days": days,
	}).Info("simulating inventory activity")

	records := make([]domain.InventoryRecord, 0, len(products)*days)

	// Previous-day stock per product, updated incrementally. The fallback
	// re-sample below should never trigger; it guards a missing entry.
	lastStock := make(map[int]int, len(products))

	trendStep := math.Pow(s.cfg.TrendFactor, 1/float64(days))

	for _, product := range products {
		baseDemand := s.uniform(s.cfg.BaseDemandMin, s.cfg.BaseDemandMax)

		for day := 0; day < days; day++ {
			date := start.AddDate(0, 0, day)

			seasonal := s.cfg.WeekdayMultiplier
			if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
				seasonal = s.cfg.WeekendMultiplier
			}
			noise := s.uniform(1-s.cfg.DemandVariability, 1+s.cfg.DemandVariability)

			demand := int(baseDemand * seasonal * noise)
			if demand < 0 {
				demand = 0
			}

			baseDemand *= trendStep

			var stock int
			if day == 0 {
				stock = s.intBetween(s.cfg.InitialStockMin, s.cfg.InitialStockMax)
			} else if prev, ok := lastStock[product.ID]; ok {
				stock = prev
			} else {
				stock = s.intBetween(s.cfg.InitialStockMin, s.cfg.InitialStockMax)
			}

			stock -= demand

			restockQty := 0
			restocked := false
			if day > 0 && day%s.cfg.RestockingFrequency == 0 {
				restockQty = s.intBetween(s.cfg.RestockMin, s.cfg.RestockMax)
				stock += restockQty
				restocked = true
			}

			// Demand beyond available stock is lost, not backordered.
			if stock < 0 {
				stock = 0
			}
			lastStock[product.ID] = stock

			price := product.Price.Mul(decimal.NewFromFloat(s.uniform(0.95, 1.05)))
			changePct := 0.0
			if product.Price.IsPositive() {
				changePct = price.Sub(product.Price).Div(product.Price).InexactFloat64() * 100
			}

			records = append(records, domain.InventoryRecord{
				Date:           date,
				Day:            day,
				ProductID:      product.ID,
				ProductName:    product.Title,
				Category:       product.Category,
				DailyDemand:    demand,
				StockLevel:     stock,
				RestockAmount:  restockQty,
				Restocked:      restocked,
				Price:          price,
				OriginalPrice:  product.Price,
				PriceChangePct: changePct,
			})
		}
	}

	s.logger.WithField("records", len(records)).Info("inventory simulation complete")
	return records, nil
}

func (s *Simulator) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Simulator) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
