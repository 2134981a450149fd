package report

import (
	"bytes"
	"encoding/csv"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Hemasankar007/SupplyChainDataIntegrationSystem/internal/domain"
)

func TestWriteInventoryCSV(t *testing.T) {
	records := []domain.InventoryRecord{
		{
			Date:               time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Day:                0,
			ProductID:          1,
			ProductName:        "Wireless Headphones",
			Category:           "electronics",
			DailyDemand:        12,
			StockLevel:         150,
			RestockAmount:      0,
			Restocked:          false,
			Price:              decimal.NewFromFloat(109.95),
			OriginalPrice:      decimal.NewFromFloat(109.95),
			PriceChangePct:     0,
			DaysOfInventory:    12.5,
			StockoutRisk:       false,
			AnnualizedTurnover: 29.2,
			FillRate:           1,
		},
		{
			Date:            time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Day:             1,
			ProductID:       2,
			ProductName:     "Gold Ring",
			Category:        "jewelery",
			DailyDemand:     0,
			StockLevel:      40,
			Price:           decimal.NewFromFloat(168),
			OriginalPrice:   decimal.NewFromFloat(168),
			DaysOfInventory: math.Inf(1),
			FillRate:        1,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteInventoryCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, "date", rows[0][0])
	require.Equal(t, "fill_rate", rows[0][15])

	first := rows[1]
	require.Equal(t, "2024-01-01", first[0])
	require.Equal(t, "Wireless Headphones", first[3])
	require.Equal(t, "109.95", first[9])
	require.Equal(t, "12.5000", first[12])
	require.Equal(t, "false", first[13])

	// Infinite cover exports as "inf", not Go's "+Inf".
	require.Equal(t, "inf", rows[2][12])
}

func TestWriteOrdersCSV(t *testing.T) {
	orders := []domain.OrderRecord{
		{
			OrderID:      "ORD-001",
			OrderDate:    time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			ShipDate:     time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
			Category:     "electronics",
			Sales:        decimal.NewFromFloat(249.9),
			LeadTimeDays: 4,
		},
		{
			OrderID:      "ORD-002",
			OrderDate:    time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
			Category:     "jewelery",
			Sales:        decimal.NewFromFloat(89),
			LeadTimeDays: domain.LeadTimeUnknown,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteOrdersCSV(&buf, orders))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, []string{"ORD-001", "2024-01-05", "2024-01-09", "electronics", "249.90", "4"}, rows[1])

	// Unshipped orders leave ship_date and lead_time_days empty.
	require.Equal(t, "", rows[2][2])
	require.Equal(t, "", rows[2][5])
}

func TestWriteInventoryCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteInventoryCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
