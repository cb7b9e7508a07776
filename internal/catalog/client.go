// Package catalog proxies the remote product catalog: an outbound HTTP
// client with a bounded retry budget, plus a keyed read-through cache.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"shoplite_back_end/internal/models"
)

const (
	maxAttempts       = 3
	perAttemptTimeout = 5 * time.Second
)

var (
	// ErrNotFound is a definitive upstream answer and is never retried.
	ErrNotFound = errors.New("not found upstream")
	// ErrUnavailable means the retry budget was exhausted on transient failures.
	ErrUnavailable = errors.New("catalog unavailable")

	// errUnexpectedStatus covers non-404 4xx answers: definitive, not retried.
	errUnexpectedStatus = errors.New("unexpected upstream status")
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: perAttemptTimeout},
	}
}

func (c *Client) AllProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) ProductByID(ctx context.Context, id int64) (models.Product, error) {
	var product *models.Product
	if err := c.getJSON(ctx, fmt.Sprintf("/products/%d", id), &product); err != nil {
		return models.Product{}, err
	}
	// The remote store answers 200 with an empty body for unknown ids.
	if product == nil || product.ID == 0 {
		return models.Product{}, ErrNotFound
	}
	return *product, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getJSON(ctx, "/products/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, "/products/category/"+url.PathEscape(category), &products); err != nil {
		return nil, err
	}
	return products, nil
}

// getJSON performs a GET with up to maxAttempts tries. Transport errors and
// 5xx answers count as transient; a 404 is final and returned as ErrNotFound.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			log.Printf("⚠️  Catalog call %s failed (%v), attempt %d/%d", path, lastErr, attempt, maxAttempts)
		}

		err := c.doOnce(ctx, path, out)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrNotFound) || errors.Is(err, errUnexpectedStatus) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

func (c *Client) doOnce(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case res.StatusCode >= 500:
		return fmt.Errorf("upstream status %d", res.StatusCode)
	case res.StatusCode != http.StatusOK:
		return fmt.Errorf("%w %d", errUnexpectedStatus, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if len(body) == 0 || string(body) == "null" {
		// Empty payload with a 200: treat like a miss, not a transport error.
		return ErrNotFound
	}

	return json.Unmarshal(body, out)
}
