package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Hemasankar007/SupplyChainDataIntegrationSystem/internal/domain"
)

// DefaultFakeStoreURL is the public Fake Store API endpoint.
const DefaultFakeStoreURL = "https://fakestoreapi.com"

// FakeStoreClient retrieves the product catalog from the Fake Store API.
// Fetched products feed the simulator; the client performs data quality
// checks and reports them through the injected logger.
type FakeStoreClient struct {
	baseURL string
	client  *http.Client
	logger  *logrus.Logger
}

// NewFakeStoreClient creates a catalog client for the given base URL.
func NewFakeStoreClient(baseURL string, logger *logrus.Logger) *FakeStoreClient {
	return &FakeStoreClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

type apiProduct struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// FetchProducts retrieves the product list and runs quality checks on it.
func (c *FakeStoreClient) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	c.logger.Info("requesting product list from API")

	var raw []apiProduct
	if err := c.getJSON(ctx, "/products", &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	products := make([]domain.Product, 0, len(raw))
	for _, p := range raw {
		products = append(products, domain.Product{
			ID:       p.ID,
			Title:    p.Title,
			Category: p.Category,
			Price:    decimal.NewFromFloat(p.Price),
		})
	}

	c.validateProducts(products)
	c.logger.WithField("products", len(products)).Info("product list fetched")
	return products, nil
}

// FetchCategories retrieves the product category list.
func (c *FakeStoreClient) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	c.logger.Info("requesting product categories from API")

	var raw []string
	if err := c.getJSON(ctx, "/products/categories", &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(raw))
	for _, name := range raw {
		categories = append(categories, domain.Category{Name: name})
	}

	c.logger.WithField("categories", len(categories)).Info("categories fetched")
	return categories, nil
}

func (c *FakeStoreClient) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// validateProducts runs catalog quality checks and reports the outcomes as
// validation events. The checks never reject data; downstream stages define
// their own behavior for degenerate inputs.
func (c *FakeStoreClient) validateProducts(products []domain.Product) {
	var missingFields, invalidPrices int
	for i := range products {
		if products[i].Title == "" || products[i].Category == "" {
			missingFields++
		}
		if !products[i].HasValidPrice() {
			invalidPrices++
		}
	}

	fieldEntry := c.logger.WithFields(logrus.Fields{
		"check":   "product field check",
		"missing": missingFields,
	})
	if missingFields > 0 {
		fieldEntry.Warn("products with missing title or category")
	} else {
		fieldEntry.Info("product field check passed")
	}

	priceEntry := c.logger.WithFields(logrus.Fields{
		"check":   "price validation",
		"invalid": invalidPrices,
	})
	if invalidPrices > 0 {
		priceEntry.Warn("products with non-positive prices")
	} else {
		priceEntry.Info("price validation passed")
	}
}
