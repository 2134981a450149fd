package report

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/Hemasankar007/SupplyChainDataIntegrationSystem/internal/domain"
)

// CSV export of pipeline output. The tabular format is owned here, at the
// presentation edge; the core hands over plain records.

// WriteInventoryCSV writes enriched inventory records as CSV.
func WriteInventoryCSV(w io.Writer, records []domain.InventoryRecord) error {
	cw := csv.NewWriter(w)

	header := []string{
		"date", "day", "product_id", "product_name", "category",
		"daily_demand", "stock_level", "restock_amount", "restocked",
		"price", "original_price", "price_change_pct",
		"days_of_inventory", "stockout_risk", "annualized_turnover", "fill_rate",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range records {
		rec := &records[i]
		row := []string{
			rec.Date.Format("2006-01-02"),
			strconv.Itoa(rec.Day),
			strconv.Itoa(rec.ProductID),
			rec.ProductName,
			rec.Category,
			strconv.Itoa(rec.DailyDemand),
			strconv.Itoa(rec.StockLevel),
			strconv.Itoa(rec.RestockAmount),
			strconv.FormatBool(rec.Restocked),
			rec.Price.StringFixed(2),
			rec.OriginalPrice.StringFixed(2),
			formatFloat(rec.PriceChangePct),
			formatFloat(rec.DaysOfInventory),
			strconv.FormatBool(rec.StockoutRisk),
			formatFloat(rec.AnnualizedTurnover),
			formatFloat(rec.FillRate),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteOrdersCSV writes order records as CSV. Orders without a ship date
// leave the ship_date and lead_time_days cells empty.
func WriteOrdersCSV(w io.Writer, orders []domain.OrderRecord) error {
	cw := csv.NewWriter(w)

	header := []string{"order_id", "order_date", "ship_date", "category", "sales", "lead_time_days"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range orders {
		order := &orders[i]
		shipDate := ""
		leadTime := ""
		if order.HasShipDate() {
			shipDate = order.ShipDate.Format("2006-01-02")
			leadTime = strconv.Itoa(order.LeadTimeDays)
		}
		row := []string{
			order.OrderID,
			order.OrderDate.Format("2006-01-02"),
			shipDate,
			order.Category,
			order.Sales.StringFixed(2),
			leadTime,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatFloat renders a float for tabular export; infinities become "inf"
// so spreadsheet tools do not choke on Go's "+Inf" spelling.
func formatFloat(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}
