package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Hemasankar007/SupplyChainDataIntegrationSystem/internal/domain"
)

func TestEnrichDerivedFields(t *testing.T) {
	tests := []struct {
		name             string
		demand           int
		stock            int
		wantDays         float64
		wantRisk         bool
		wantTurnover     float64
		wantFillRate     float64
		wantInfiniteDays bool
	}{
		{
			name:         "healthy stock",
			demand:       10,
			stock:        100,
			wantDays:     10,
			wantRisk:     false,
			wantTurnover: 36.5,
			wantFillRate: 1.0,
		},
		{
			name:         "stock below risk threshold",
			demand:       50,
			stock:        100,
			wantDays:     2,
			wantRisk:     true,
			wantTurnover: 182.5,
			wantFillRate: 1.0,
		},
		{
			name:         "partial fill",
			demand:       40,
			stock:        20,
			wantDays:     0.5,
			wantRisk:     true,
			wantTurnover: 730,
			wantFillRate: 0.5,
		},
		{
			name:             "zero demand sentinel",
			demand:           0,
			stock:            50,
			wantRisk:         false,
			wantTurnover:     0,
			wantFillRate:     1.0,
			wantInfiniteDays: true,
		},
		{
			name:         "zero stock sentinel",
			demand:       15,
			stock:        0,
			wantDays:     0,
			wantRisk:     true,
			wantTurnover: 0,
			wantFillRate: 0,
		},
		{
			name:             "zero demand and zero stock",
			demand:           0,
			stock:            0,
			wantRisk:         false,
			wantTurnover:     0,
			wantFillRate:     1.0,
			wantInfiniteDays: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := []domain.InventoryRecord{{DailyDemand: tt.demand, StockLevel: tt.stock}}
			out := Enrich(in)
			require.Len(t, out, 1)
			rec := out[0]

			if tt.wantInfiniteDays {
				require.True(t, math.IsInf(rec.DaysOfInventory, 1))
			} else {
				require.Equal(t, tt.wantDays, rec.DaysOfInventory)
			}
			require.Equal(t, tt.wantRisk, rec.StockoutRisk)
			require.InDelta(t, tt.wantTurnover, rec.AnnualizedTurnover, 1e-9)
			require.Equal(t, tt.wantFillRate, rec.FillRate)
		})
	}
}

func TestEnrichPreservesSourceFields(t *testing.T) {
	in := []domain.InventoryRecord{
		{ProductID: 3, ProductName: "Gold Ring", Category: "jewelery", DailyDemand: 8, StockLevel: 40, RestockAmount: 75, Restocked: true},
	}

	out := Enrich(in)

	require.Equal(t, in[0].ProductID, out[0].ProductID)
	require.Equal(t, in[0].ProductName, out[0].ProductName)
	require.Equal(t, in[0].Category, out[0].Category)
	require.Equal(t, in[0].DailyDemand, out[0].DailyDemand)
	require.Equal(t, in[0].StockLevel, out[0].StockLevel)
	require.Equal(t, in[0].RestockAmount, out[0].RestockAmount)
	require.Equal(t, in[0].Restocked, out[0].Restocked)

	// Input slice is untouched.
	require.Zero(t, in[0].FillRate)
	require.Zero(t, in[0].DaysOfInventory)
}

func TestEnrichFillRateBounds(t *testing.T) {
	var in []domain.InventoryRecord
	for demand := 0; demand <= 30; demand += 3 {
		for stock := 0; stock <= 120; stock += 20 {
			in = append(in, domain.InventoryRecord{DailyDemand: demand, StockLevel: stock})
		}
	}

	for _, rec := range Enrich(in) {
		require.GreaterOrEqual(t, rec.FillRate, 0.0)
		require.LessOrEqual(t, rec.FillRate, 1.0)
	}
}

func TestEnrichEmptyInput(t *testing.T) {
	require.Empty(t, Enrich(nil))
}
