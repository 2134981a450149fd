package ingestion

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Hemasankar007/SupplyChainDataIntegrationSystem/internal/domain"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadOrders(t *testing.T) {
	path := writeTempCSV(t, "orders.csv",
		"order_id,order_date,ship_date,category,sales\n"+
			"ORD-001,2024-01-05,2024-01-09,electronics,249.90\n"+
			"ORD-002,2024-01-06,,jewelery,89.00\n")

	orders, err := NewLoader(testLogger()).LoadOrders(path)

	require.NoError(t, err)
	require.Len(t, orders, 2)

	first := orders[0]
	require.Equal(t, "ORD-001", first.OrderID)
	require.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), first.OrderDate)
	require.True(t, first.HasShipDate())
	require.Equal(t, 4, first.LeadTimeDays)
	require.Equal(t, "electronics", first.Category)
	require.Equal(t, "249.9", first.Sales.String())

	// A missing ship date leaves the order without a lead time.
	second := orders[1]
	require.False(t, second.HasShipDate())
	require.False(t, second.HasLeadTime())
	require.Equal(t, domain.LeadTimeUnknown, second.LeadTimeDays)
}

func TestLoadOrdersHeaderMismatch(t *testing.T) {
	path := writeTempCSV(t, "orders.csv", "id,date,category\nORD-1,2024-01-05,books\n")

	_, err := NewLoader(testLogger()).LoadOrders(path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "header mismatch")
}

func TestLoadOrdersBadDate(t *testing.T) {
	path := writeTempCSV(t, "orders.csv",
		"order_id,order_date,ship_date,category,sales\n"+
			"ORD-001,05/01/2024,,books,10.00\n")

	_, err := NewLoader(testLogger()).LoadOrders(path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "bad order_date")
}

func TestLoadOrdersMissingFile(t *testing.T) {
	_, err := NewLoader(testLogger()).LoadOrders(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestLoadReturns(t *testing.T) {
	path := writeTempCSV(t, "returns.csv",
		"return_id,return_date,order_id,category\n"+
			"RTN-001,2024-02-01,ORD-001,electronics\n"+
			"RTN-002,2024-02-03,ORD-007,jewelery\n")

	returns, err := NewLoader(testLogger()).LoadReturns(path)

	require.NoError(t, err)
	require.Len(t, returns, 2)
	require.Equal(t, "RTN-001", returns[0].ReturnID)
	require.Equal(t, "ORD-001", returns[0].OrderID)
	require.Equal(t, "jewelery", returns[1].Category)
}

func TestLoadReturnsRaggedRow(t *testing.T) {
	path := writeTempCSV(t, "returns.csv",
		"return_id,return_date,order_id,category\n"+
			"RTN-001,2024-02-01,ORD-001,electronics,extra\n")

	_, err := NewLoader(testLogger()).LoadReturns(path)
	require.Error(t, err)
}
