package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Hemasankar007/SupplyChainDataIntegrationSystem/internal/domain"
)

func createTestStores(t *testing.T) map[string]RunStore {
	t.Helper()

	boltStore, err := NewBoltRunStore(filepath.Join(t.TempDir(), "test.bolt"))
	require.NoError(t, err)
	t.Cleanup(func() { boltStore.Close() })

	badgerStore, err := NewBadgerRunStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { badgerStore.Close() })

	return map[string]RunStore{
		"bolt":   boltStore,
		"badger": badgerStore,
	}
}

func testRun(day0 time.Time) *domain.SimulationRun {
	return &domain.SimulationRun{
		Seed:           42,
		SimulationDays: 2,
		ProductCount:   1,
		Records: []domain.InventoryRecord{
			{Date: day0, Day: 0, ProductID: 1, ProductName: "Gold Ring", Category: "jewelery", DailyDemand: 8, StockLevel: 150},
			{Date: day0.AddDate(0, 0, 1), Day: 1, ProductID: 1, ProductName: "Gold Ring", Category: "jewelery", DailyDemand: 9, StockLevel: 141},
		},
	}
}

func TestRunStoreSaveAssignsID(t *testing.T) {
	for name, store := range createTestStores(t) {
		t.Run(name, func(t *testing.T) {
			run := testRun(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

			err := store.SaveRun(context.Background(), run)

			require.NoError(t, err)
			require.NotEmpty(t, run.ID)
			require.False(t, run.CreatedAt.IsZero())
		})
	}
}

func TestRunStoreRoundTrip(t *testing.T) {
	for name, store := range createTestStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			run := testRun(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
			require.NoError(t, store.SaveRun(ctx, run))

			got, err := store.GetRun(ctx, run.ID)

			require.NoError(t, err)
			require.Equal(t, run.ID, got.ID)
			require.Equal(t, run.Seed, got.Seed)
			require.Equal(t, run.SimulationDays, got.SimulationDays)
			require.Len(t, got.Records, 2)
			require.Equal(t, "Gold Ring", got.Records[0].ProductName)
			require.Equal(t, 150, got.Records[0].StockLevel)
		})
	}
}

func TestRunStoreGetMissing(t *testing.T) {
	for name, store := range createTestStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.GetRun(context.Background(), "does-not-exist")

			require.Error(t, err)
			var notFound *domain.RunNotFoundError
			require.ErrorAs(t, err, &notFound)
			require.Equal(t, "does-not-exist", notFound.ID)
		})
	}
}

func TestRunStoreListNewestFirst(t *testing.T) {
	for name, store := range createTestStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			older := testRun(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
			older.CreatedAt = time.Now().Add(-time.Hour)
			require.NoError(t, store.SaveRun(ctx, older))

			newer := testRun(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
			require.NoError(t, store.SaveRun(ctx, newer))

			runs, err := store.ListRuns(ctx)

			require.NoError(t, err)
			require.Len(t, runs, 2)
			require.Equal(t, newer.ID, runs[0].ID)
			require.Equal(t, older.ID, runs[1].ID)
		})
	}
}

func TestRunStoreDelete(t *testing.T) {
	for name, store := range createTestStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			run := testRun(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
			require.NoError(t, store.SaveRun(ctx, run))

			require.NoError(t, store.DeleteRun(ctx, run.ID))

			_, err := store.GetRun(ctx, run.ID)
			require.Error(t, err)
		})
	}
}

func TestNewRunStoreFactory(t *testing.T) {
	store, err := NewRunStore(filepath.Join(t.TempDir(), "runs"), DatabaseTypeBolt)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = NewRunStore(t.TempDir(), DatabaseTypeBadger)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = NewRunStore(t.TempDir(), DatabaseType("cassandra"))
	require.Error(t, err)
}
