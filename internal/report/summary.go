package report

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/Hemasankar007/SupplyChainDataIntegrationSystem/internal/domain"
)

// RenderSummary writes a plain-text overview of a metrics bundle. Absent
// sub-metrics render as "no data" lines rather than being skipped, so the
// reader can tell a missing input from a missing section.
func RenderSummary(w io.Writer, bundle *domain.MetricsBundle) {
	fmt.Fprintln(w, "=== Supply Chain Metrics ===")

	fmt.Fprintln(w, "\nLead Time")
	if lt := bundle.LeadTime; lt != nil {
		fmt.Fprintf(w, "  avg %.2f  med %.2f  std %.2f  range [%.0f, %.0f]  orders %d\n",
			lt.AvgLeadTime, lt.MedLeadTime, lt.StdLeadTime, lt.MinLeadTime, lt.MaxLeadTime, lt.OrderCount)
		fmt.Fprintf(w, "  grading: excellent %.1f%%  good %.1f%%  poor %.1f%%\n",
			lt.ExcellentRatio*100, lt.GoodRatio*100, lt.PoorRatio*100)
	} else {
		fmt.Fprintln(w, "  no data")
	}

	fmt.Fprintln(w, "\nCycle Time")
	switch {
	case bundle.CycleTime != nil:
		ct := bundle.CycleTime
		fmt.Fprintf(w, "  avg %.2f  med %.2f  std %.2f  range [%.0f, %.0f]\n",
			ct.AvgCycleTime, ct.MedCycleTime, ct.StdCycleTime, ct.MinCycleTime, ct.MaxCycleTime)
	case bundle.LeadTimeFallback:
		fmt.Fprintln(w, "  no ship dates; see lead time")
	default:
		fmt.Fprintln(w, "  no data")
	}

	fmt.Fprintln(w, "\nInventory Turnover")
	if to := bundle.InventoryTurnover; to != nil {
		fmt.Fprintf(w, "  avg %.2f  med %.2f  days on hand avg %s med %s  products %d\n",
			to.AvgTurnover, to.MedTurnover, days(to.AvgDaysOnHand), days(to.MedDaysOnHand), to.ProductCount)
	} else {
		fmt.Fprintln(w, "  no data")
	}

	fmt.Fprintln(w, "\nFill Rate")
	if fr := bundle.FillRate; fr != nil {
		fmt.Fprintf(w, "  avg %.3f  med %.3f  products %d  at risk %d\n",
			fr.AvgFillRate, fr.MedFillRate, fr.ProductTotal, fr.AtRiskCount)
		fmt.Fprintf(w, "  grading: excellent %.1f%%  good %.1f%%  poor %.1f%%\n",
			fr.ExcellentRateRatio*100, fr.GoodRateRatio*100, fr.PoorRateRatio*100)
	} else {
		fmt.Fprintln(w, "  no data")
	}

	fmt.Fprintln(w, "\nCategories")
	if len(bundle.Category) > 0 {
		for _, row := range bundle.Category {
			fmt.Fprintf(w, "  %s:", row.Category)
			if row.LeadTime != nil {
				fmt.Fprintf(w, " lead avg %.2f (n=%d)", row.LeadTime.MeanLeadTime, row.LeadTime.OrderCount)
			} else {
				fmt.Fprint(w, " lead n/a")
			}
			if row.Inventory != nil {
				fmt.Fprintf(w, "  fill %.3f  turnover %.2f  stockouts %d",
					row.Inventory.AvgFillRate, row.Inventory.AvgTurnover, row.Inventory.StockoutCount)
			} else {
				fmt.Fprint(w, "  inventory n/a")
			}
			fmt.Fprintln(w)
		}
	} else {
		fmt.Fprintln(w, "  no data")
	}

	fmt.Fprintln(w, "\nReturns")
	if rm := bundle.Returns; rm != nil {
		fmt.Fprintf(w, "  %d of %d orders returned (%.2f%%)\n", rm.ReturnTotal, rm.OrderTotal, rm.ReturnPercent)
		if len(rm.CategoryBreakdown) > 0 {
			categories := make([]string, 0, len(rm.CategoryBreakdown))
			for c := range rm.CategoryBreakdown {
				categories = append(categories, c)
			}
			sort.Strings(categories)
			for _, c := range categories {
				fmt.Fprintf(w, "  %s: %.1f%%\n", c, rm.CategoryBreakdown[c]*100)
			}
		}
	} else {
		fmt.Fprintln(w, "  no data")
	}
}

func days(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.1f", v)
}
