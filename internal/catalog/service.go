package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"shoplite_back_end/internal/httperr"
	"shoplite_back_end/internal/models"
)

// Indexer receives every product batch fetched from the remote catalog.
// Implemented by the Elasticsearch search service; nil disables indexing.
type Indexer interface {
	IndexProducts(products []models.Product)
}

// Service is the read-through layer: cache hit short-circuits, otherwise the
// client fetches, the result is memoized and handed to the indexer.
type Service struct {
	client  *Client
	cache   Cache
	indexer Indexer
}

func NewService(client *Client, cache Cache, indexer Indexer) *Service {
	return &Service{client: client, cache: cache, indexer: indexer}
}

func (s *Service) AllProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.through(ctx, "products:all", &products, func() (interface{}, error) {
		p, err := s.client.AllProducts(ctx)
		if err != nil {
			return nil, err
		}
		s.index(p)
		return p, nil
	})
	if err != nil {
		return nil, s.translate(err, "")
	}
	return products, nil
}

func (s *Service) ProductByID(ctx context.Context, id int64) (models.Product, error) {
	var product models.Product
	key := fmt.Sprintf("product:%d", id)
	err := s.through(ctx, key, &product, func() (interface{}, error) {
		p, err := s.client.ProductByID(ctx, id)
		if err != nil {
			return nil, err
		}
		s.index([]models.Product{p})
		return p, nil
	})
	if err != nil {
		return models.Product{}, s.translate(err, fmt.Sprintf("Product not found with id: %d", id))
	}
	return product, nil
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := s.through(ctx, "categories:all", &categories, func() (interface{}, error) {
		return s.client.Categories(ctx)
	})
	if err != nil {
		return nil, s.translate(err, "")
	}
	return categories, nil
}

func (s *Service) ProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	err := s.through(ctx, "category:"+category, &products, func() (interface{}, error) {
		p, err := s.client.ProductsByCategory(ctx, category)
		if err != nil {
			return nil, err
		}
		if len(p) == 0 {
			// An answered-but-empty category is a definitive miss.
			return nil, httperr.NotFound("No products found in category: " + category)
		}
		s.index(p)
		return p, nil
	})
	if err != nil {
		return nil, s.translate(err, "Category not found: "+category)
	}
	return products, nil
}

// through fills out from the cache, or runs fetch and memoizes its result.
// Only successful fetches are cached; errors always reach the caller.
func (s *Service) through(ctx context.Context, key string, out interface{}, fetch func() (interface{}, error)) error {
	if data, ok := s.cache.Get(ctx, key); ok {
		if json.Unmarshal(data, out) == nil {
			return nil
		}
	}

	fetched, err := fetch()
	if err != nil {
		return err
	}

	data, err := json.Marshal(fetched)
	if err != nil {
		return err
	}
	s.cache.Set(ctx, key, data)
	return json.Unmarshal(data, out)
}

func (s *Service) index(products []models.Product) {
	if s.indexer == nil {
		return
	}
	go s.indexer.IndexProducts(products)
}

// translate maps client sentinels onto the HTTP error taxonomy. notFoundMsg
// is the operation-specific 404 message; empty means a miss is unexpected.
func (s *Service) translate(err error, notFoundMsg string) error {
	var he *httperr.Error
	if errors.As(err, &he) {
		return he
	}
	if errors.Is(err, ErrNotFound) && notFoundMsg != "" {
		return httperr.NotFound(notFoundMsg)
	}
	if errors.Is(err, ErrUnavailable) {
		return httperr.Upstream()
	}
	return err
}
