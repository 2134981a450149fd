package domain

// LeadTimeStats summarizes order lead times (days between order placement
// and shipment) with a three-way service grading.
type LeadTimeStats struct {
	AvgLeadTime float64 `json:"avg_lead_time"`
	MedLeadTime float64 `json:"med_lead_time"`
	StdLeadTime float64 `json:"std_lead_time"`
	MinLeadTime float64 `json:"min_lead_time"`
	MaxLeadTime float64 `json:"max_lead_time"`
	OrderCount  int     `json:"order_count"`

	ExcellentRatio float64 `json:"excellent_ratio"`
	GoodRatio      float64 `json:"good_ratio"`
	PoorRatio      float64 `json:"poor_ratio"`
}

// CycleTimeStats summarizes order-to-delivery cycle times. Delivery dates
// are synthesized from ship dates, so these numbers vary across runs unless
// the analytics random source is seeded.
type CycleTimeStats struct {
	AvgCycleTime float64 `json:"avg_cycle_time"`
	MedCycleTime float64 `json:"med_cycle_time"`
	StdCycleTime float64 `json:"std_cycle_time"`
	MinCycleTime float64 `json:"min_cycle_time"`
	MaxCycleTime float64 `json:"max_cycle_time"`
}

// TurnoverStats summarizes per-product inventory turnover and days on hand.
type TurnoverStats struct {
	AvgTurnover   float64 `json:"avg_turnover"`
	MedTurnover   float64 `json:"med_turnover"`
	AvgDaysOnHand float64 `json:"avg_days_on_hand"`
	MedDaysOnHand float64 `json:"med_days_on_hand"`
	ProductCount  int     `json:"product_count"`
}

// FillRateStats summarizes per-product fill rates and stockout exposure.
type FillRateStats struct {
	AvgFillRate        float64 `json:"avg_fill_rate"`
	MedFillRate        float64 `json:"med_fill_rate"`
	ExcellentRateRatio float64 `json:"excellent_rate_ratio"`
	GoodRateRatio      float64 `json:"good_rate_ratio"`
	PoorRateRatio      float64 `json:"poor_rate_ratio"`
	ProductTotal       int     `json:"product_total"`
	AtRiskCount        int     `json:"at_risk_count"`
}

// CategoryLeadTime is the order-side half of a category metrics row.
type CategoryLeadTime struct {
	MeanLeadTime   float64 `json:"mean_lead_time"`
	MedianLeadTime float64 `json:"median_lead_time"`
	StdLeadTime    float64 `json:"std_lead_time"`
	OrderCount     int     `json:"order_count"`
}

// CategoryInventory is the inventory-side half of a category metrics row.
type CategoryInventory struct {
	AvgFillRate        float64 `json:"avg_fill_rate"`
	AvgTurnover        float64 `json:"avg_turnover"`
	AvgDaysOfInventory float64 `json:"avg_days_of_inventory"`
	StockoutCount      int     `json:"stockout_count"`
}

// CategoryMetric is one row of the category cross-metrics table. The two
// sides are outer-joined on category; a category present in only one input
// keeps its row with the other side nil.
type CategoryMetric struct {
	Category  string             `json:"category"`
	LeadTime  *CategoryLeadTime  `json:"lead_time,omitempty"`
	Inventory *CategoryInventory `json:"inventory,omitempty"`
}

// ReturnMetrics summarizes product returns against order volume.
type ReturnMetrics struct {
	OrderTotal        int                `json:"order_total"`
	ReturnTotal       int                `json:"return_total"`
	ReturnRatio       float64            `json:"return_ratio"`
	ReturnPercent     float64            `json:"return_percent"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown,omitempty"`
}

// MetricsBundle collects every analytics result from a single aggregation
// pass. A nil entry means that sub-metric could not be computed from the
// supplied inputs; siblings are unaffected.
type MetricsBundle struct {
	LeadTime          *LeadTimeStats   `json:"lead_time,omitempty"`
	CycleTime         *CycleTimeStats  `json:"cycle_time,omitempty"`
	LeadTimeFallback  bool             `json:"lead_time_fallback,omitempty"`
	InventoryTurnover *TurnoverStats   `json:"inventory_turnover,omitempty"`
	FillRate          *FillRateStats   `json:"fill_rate,omitempty"`
	Category          []CategoryMetric `json:"category,omitempty"`
	Returns           *ReturnMetrics   `json:"returns,omitempty"`
}
