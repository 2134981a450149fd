package main

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Hemasankar007/SupplyChainDataIntegrationSystem/internal/domain"
	"github.com/Hemasankar007/SupplyChainDataIntegrationSystem/internal/ingestion"
	"github.com/Hemasankar007/SupplyChainDataIntegrationSystem/internal/metrics"
	"github.com/Hemasankar007/SupplyChainDataIntegrationSystem/internal/report"
	"github.com/Hemasankar007/SupplyChainDataIntegrationSystem/internal/repository"
	"github.com/Hemasankar007/SupplyChainDataIntegrationSystem/internal/simulation"
)

const (
	defaultDBPath    = "./data/supplychain.db"
	defaultDBType    = "bolt"
	defaultExportDir = "./out"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(logrus.InfoLevel)

	// Get configuration from environment
	dbPath := envOr("SUPPLYCHAIN_DB_PATH", defaultDBPath)
	dbType := envOr("SUPPLYCHAIN_DB_TYPE", defaultDBType)
	apiURL := envOr("FAKE_STORE_API_URL", ingestion.DefaultFakeStoreURL)
	exportDir := envOr("EXPORT_DIR", defaultExportDir)

	simCfg := simulation.DefaultConfig()
	simCfg.SimulationDays = envIntOr(logger, "SIMULATION_DAYS", simCfg.SimulationDays)
	simCfg.RestockingFrequency = envIntOr(logger, "RESTOCKING_FREQUENCY", simCfg.RestockingFrequency)
	simCfg.DemandVariability = envFloatOr(logger, "DEMAND_VARIABILITY", simCfg.DemandVariability)

	seed := time.Now().UnixNano()
	if s := os.Getenv("SIMULATION_SEED"); s != "" {
		parsed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			logger.WithError(err).Fatal("invalid SIMULATION_SEED")
		}
		seed = parsed
	}
	rng := rand.New(rand.NewSource(seed))
	logger.WithField("seed", seed).Info("starting supply chain pipeline")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Product catalog: live API with a built-in fallback so the pipeline
	// still runs offline.
	client := ingestion.NewFakeStoreClient(apiURL, logger)
	products, err := client.FetchProducts(ctx)
	if err != nil {
		logger.WithError(err).Warn("catalog fetch failed, using sample catalog")
		products = ingestion.SampleCatalog()
	}

	simulator := simulation.NewSimulator(simCfg, rng, logger)
	records, err := simulator.Run(products)
	if err != nil {
		logger.WithError(err).Fatal("inventory simulation failed")
	}
	enriched := metrics.Enrich(records)

	orders, returns := loadOrderData(logger, rng)

	analytics := metrics.NewAnalytics(metrics.DefaultThresholds(), rng, logger)
	bundle := analytics.ComputeAllMetrics(orders, enriched, returns)
	report.RenderSummary(os.Stdout, bundle)

	exportCSVs(logger, exportDir, enriched, orders)

	store, err := repository.NewRunStore(dbPath, repository.DatabaseType(dbType))
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize run store")
	}
	defer store.Close()

	run := &domain.SimulationRun{
		Seed:           seed,
		SimulationDays: simCfg.SimulationDays,
		ProductCount:   len(products),
		Records:        enriched,
	}
	if err := store.SaveRun(ctx, run); err != nil {
		logger.WithError(err).Fatal("failed to persist simulation run")
	}

	logger.WithFields(logrus.Fields{
		"run_id":  run.ID,
		"records": len(enriched),
	}).Info("pipeline complete")
}

// loadOrderData reads orders and returns from the configured CSV files,
// generating sample data when no files are configured.
func loadOrderData(logger *logrus.Logger, rng *rand.Rand) ([]domain.OrderRecord, []domain.ReturnRecord) {
	loader := ingestion.NewLoader(logger)

	var orders []domain.OrderRecord
	if path := os.Getenv("ORDERS_CSV"); path != "" {
		loaded, err := loader.LoadOrders(path)
		if err != nil {
			logger.WithError(err).Fatal("failed to load orders")
		}
		orders = loaded
	} else {
		orders = ingestion.SampleOrders(rng, time.Now().AddDate(0, 0, -30), 20)
		logger.WithField("orders", len(orders)).Info("generated sample orders")
	}

	var returns []domain.ReturnRecord
	if path := os.Getenv("RETURNS_CSV"); path != "" {
		loaded, err := loader.LoadReturns(path)
		if err != nil {
			logger.WithError(err).Fatal("failed to load returns")
		}
		returns = loaded
	} else {
		returns = ingestion.SampleReturns(rng, orders, 5)
		logger.WithField("returns", len(returns)).Info("generated sample returns")
	}

	return orders, returns
}

func exportCSVs(logger *logrus.Logger, dir string, records []domain.InventoryRecord, orders []domain.OrderRecord) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.WithError(err).Fatal("failed to create export directory")
	}

	writeCSV(logger, filepath.Join(dir, "inventory.csv"), func(f *os.File) error {
		return report.WriteInventoryCSV(f, records)
	})
	writeCSV(logger, filepath.Join(dir, "orders.csv"), func(f *os.File) error {
		return report.WriteOrdersCSV(f, orders)
	})
}

func writeCSV(logger *logrus.Logger, path string, write func(*os.File) error) {
	f, err := os.Create(path)
	if err != nil {
		logger.WithError(err).WithField("path", path).Fatal("failed to create export file")
	}
	defer f.Close()

	if err := write(f); err != nil {
		logger.WithError(err).WithField("path", path).Fatal("failed to write export file")
	}
	logger.WithField("path", path).Info("export written")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(logger *logrus.Logger, key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		logger.WithError(err).WithField("key", key).Fatal("invalid integer environment variable")
	}
	return parsed
}

func envFloatOr(logger *logrus.Logger, key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		logger.WithError(err).WithField("key", key).Fatal("invalid float environment variable")
	}
	return parsed
}
