package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"shoplite_back_end/internal/models"
)

const productIndex = "products"

// ProductSearch lazily indexes catalog products into Elasticsearch and
// serves full-text queries over them. The index only ever contains products
// already fetched from the remote catalog; the catalog stays authoritative.
type ProductSearch struct {
	es *elasticsearch.Client
}

func NewProductSearch(es *elasticsearch.Client) *ProductSearch {
	return &ProductSearch{es: es}
}

// IndexProducts pushes a fetched batch into the index. Called from a
// goroutine on the fetch path; failures are logged, never surfaced.
func (s *ProductSearch) IndexProducts(products []models.Product) {
	if s == nil || s.es == nil {
		return
	}

	for _, p := range products {
		data, _ := json.Marshal(p)
		req := esapi.IndexRequest{
			Index:      productIndex,
			DocumentID: strconv.FormatInt(p.ID, 10),
			Body:       bytes.NewReader(data),
		}

		res, err := req.Do(context.Background(), s.es)
		if err != nil {
			log.Println("❌ Elastic index request failed:", err)
			continue
		}
		res.Body.Close()
		if res.IsError() {
			log.Printf("⚠️ Elastic rejected product %d: %s", p.ID, res.String())
		}
	}
}

// Search runs a multi_match query over title, description and category.
func (s *ProductSearch) Search(ctx context.Context, query string) ([]map[string]interface{}, error) {
	if s == nil || s.es == nil {
		return nil, errors.New("elasticsearch client not configured")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"title", "description", "category"},
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("encode search query: %w", err)
	}

	req := esapi.SearchRequest{
		Index: []string{productIndex},
		Body:  &buf,
	}
	res, err := req.Do(ctx, s.es)
	if err != nil {
		return nil, fmt.Errorf("elastic search request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elastic error: %s", res.String())
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source map[string]interface{} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode elastic response: %w", err)
	}

	results := make([]map[string]interface{}, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		results = append(results, hit.Source)
	}
	return results, nil
}
