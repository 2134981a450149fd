package ingestion

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Hemasankar007/SupplyChainDataIntegrationSystem/internal/domain"
)

const dateLayout = "2006-01-02"

// Loader reads order and return data from CSV files. Lead time is derived
// during load as ship date minus order date; rows without a ship date keep
// their order but carry no lead-time measurement.
type Loader struct {
	logger *logrus.Logger
}

// NewLoader creates a CSV loader.
func NewLoader(logger *logrus.Logger) *Loader {
	return &Loader{logger: logger}
}

// LoadOrders loads order records from a CSV file with the header
// order_id,order_date,ship_date,category,sales. ship_date may be empty.
func (l *Loader) LoadOrders(filename string) ([]domain.OrderRecord, error) {
	rows, err := readCSV(filename, []string{"order_id", "order_date", "ship_date", "category", "sales"})
	if err != nil {
		return nil, fmt.Errorf("orders CSV: %w", err)
	}

	var orders []domain.OrderRecord
	for i, row := range rows {
		orderDate, err := time.Parse(dateLayout, row[1])
		if err != nil {
			return nil, fmt.Errorf("orders CSV row %d: bad order_date %q: %w", i+2, row[1], err)
		}

		order := domain.OrderRecord{
			OrderID:      row[0],
			OrderDate:    orderDate,
			Category:     row[3],
			LeadTimeDays: domain.LeadTimeUnknown,
		}

		if row[2] != "" {
			shipDate, err := time.Parse(dateLayout, row[2])
			if err != nil {
				return nil, fmt.Errorf("orders CSV row %d: bad ship_date %q: %w", i+2, row[2], err)
			}
			order.ShipDate = shipDate
			order.LeadTimeDays = int(shipDate.Sub(orderDate).Hours() / 24)
		}

		if row[4] != "" {
			sales, err := decimal.NewFromString(row[4])
			if err != nil {
				return nil, fmt.Errorf("orders CSV row %d: bad sales %q: %w", i+2, row[4], err)
			}
			order.Sales = sales
		}

		orders = append(orders, order)
	}

	l.logger.WithField("orders", len(orders)).Info("order data loaded")
	return orders, nil
}

// LoadReturns loads return records from a CSV file with the header
// return_id,return_date,order_id,category.
func (l *Loader) LoadReturns(filename string) ([]domain.ReturnRecord, error) {
	rows, err := readCSV(filename, []string{"return_id", "return_date", "order_id", "category"})
	if err != nil {
		return nil, fmt.Errorf("returns CSV: %w", err)
	}

	var returns []domain.ReturnRecord
	for i, row := range rows {
		returnDate, err := time.Parse(dateLayout, row[1])
		if err != nil {
			return nil, fmt.Errorf("returns CSV row %d: bad return_date %q: %w", i+2, row[1], err)
		}

		returns = append(returns, domain.ReturnRecord{
			ReturnID:   row[0],
			ReturnDate: returnDate,
			OrderID:    row[2],
			Category:   row[3],
		})
	}

	l.logger.WithField("returns", len(returns)).Info("return data loaded")
	return returns, nil
}

// readCSV reads a file, validates its header, and returns the data rows.
func readCSV(filename string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty, expected a header row", filename)
	}

	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("header mismatch: expected %v, got %v", expectedHeader, records[0])
	}

	for i, row := range records[1:] {
		if len(row) != len(expectedHeader) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(row))
		}
	}

	return records[1:], nil
}

func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i := range expected {
		if !strings.EqualFold(strings.TrimSpace(header[i]), expected[i]) {
			return false
		}
	}
	return true
}
