package domain

import (
	"math"
	"testing"
)

func TestInventoryRecordRestockConsistent(t *testing.T) {
	tests := []struct {
		name     string
		record   *InventoryRecord
		expected bool
	}{
		{
			name:     "restocked with positive amount is consistent",
			record:   &InventoryRecord{Restocked: true, RestockAmount: 80},
			expected: true,
		},
		{
			name:     "not restocked with zero amount is consistent",
			record:   &InventoryRecord{Restocked: false, RestockAmount: 0},
			expected: true,
		},
		{
			name:     "restocked flag without amount is inconsistent",
			record:   &InventoryRecord{Restocked: true, RestockAmount: 0},
			expected: false,
		},
		{
			name:     "amount without restocked flag is inconsistent",
			record:   &InventoryRecord{Restocked: false, RestockAmount: 50},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.record.RestockConsistent()
			if result != tt.expected {
				t.Errorf("RestockConsistent() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestInventoryRecordIsStockout(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		expected bool
	}{
		{
			name:     "zero stock is a stockout",
			level:    0,
			expected: true,
		},
		{
			name:     "positive stock is not a stockout",
			level:    12,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &InventoryRecord{StockLevel: tt.level}
			result := record.IsStockout()
			if result != tt.expected {
				t.Errorf("IsStockout() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestInventoryRecordHasInfiniteCover(t *testing.T) {
	record := &InventoryRecord{DaysOfInventory: math.Inf(1)}
	if !record.HasInfiniteCover() {
		t.Error("expected infinite days of inventory to report infinite cover")
	}

	record = &InventoryRecord{DaysOfInventory: 42}
	if record.HasInfiniteCover() {
		t.Error("expected finite days of inventory to report finite cover")
	}
}
