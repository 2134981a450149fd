package ingestion

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Hemasankar007/SupplyChainDataIntegrationSystem/internal/domain"
)

// Sample data generators for running the pipeline without a reachable API
// or external order files.

var sampleCategories = []string{"electronics", "jewelery", "men's clothing", "women's clothing"}

// SampleCatalog returns a small fixed product catalog.
func SampleCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Wireless Headphones", Category: "electronics", Price: decimal.NewFromFloat(109.95)},
		{ID: 2, Title: "USB-C Charging Hub", Category: "electronics", Price: decimal.NewFromFloat(64.00)},
		{ID: 3, Title: "Silver Chain Bracelet", Category: "jewelery", Price: decimal.NewFromFloat(695.00)},
		{ID: 4, Title: "Gold Ring", Category: "jewelery", Price: decimal.NewFromFloat(168.00)},
		{ID: 5, Title: "Slim Fit T-Shirt", Category: "men's clothing", Price: decimal.NewFromFloat(22.30)},
		{ID: 6, Title: "Cotton Jacket", Category: "men's clothing", Price: decimal.NewFromFloat(55.99)},
		{ID: 7, Title: "Rain Jacket", Category: "women's clothing", Price: decimal.NewFromFloat(39.99)},
		{ID: 8, Title: "Boat Neck Blouse", Category: "women's clothing", Price: decimal.NewFromFloat(9.85)},
	}
}

// SampleOrders generates n synthetic orders starting at the given date, one
// per day, with uniform sales amounts and 1-14 day lead times.
func SampleOrders(rng *rand.Rand, start time.Time, n int) []domain.OrderRecord {
	orders := make([]domain.OrderRecord, 0, n)
	for i := 0; i < n; i++ {
		orderDate := start.AddDate(0, 0, i)
		leadDays := 1 + rng.Intn(14)

		orders = append(orders, domain.OrderRecord{
			OrderID:      fmt.Sprintf("ORD-%03d", i+1),
			OrderDate:    orderDate,
			ShipDate:     orderDate.AddDate(0, 0, leadDays),
			Category:     sampleCategories[rng.Intn(len(sampleCategories))],
			Sales:        decimal.NewFromFloat(100 + rng.Float64()*900).Round(2),
			LeadTimeDays: leadDays,
		})
	}
	return orders
}

// SampleReturns generates n synthetic returns drawn from the given orders.
// Returns an empty slice when there are no orders to return against.
func SampleReturns(rng *rand.Rand, orders []domain.OrderRecord, n int) []domain.ReturnRecord {
	if len(orders) == 0 {
		return []domain.ReturnRecord{}
	}

	returns := make([]domain.ReturnRecord, 0, n)
	for i := 0; i < n; i++ {
		order := orders[rng.Intn(len(orders))]
		returns = append(returns, domain.ReturnRecord{
			ReturnID:   fmt.Sprintf("RTN-%03d", i+1),
			ReturnDate: order.OrderDate.AddDate(0, 0, 7+rng.Intn(14)),
			OrderID:    order.OrderID,
			Category:   order.Category,
		})
	}
	return returns
}
