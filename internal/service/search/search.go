package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/ihsanfarabi/StreetEatsHub/internal/transport"
)

// IndexVendor upserts the vendor document so it is findable by Search.
func IndexVendor(ctx context.Context, es *elasticsearch.Client, index string, vendor transport.VendorResponse) error {
	data, err := json.Marshal(vendor)
	if err != nil {
		return fmt.Errorf("index vendor: encode: %w", err)
	}

	res, err := es.Index(
		index,
		bytes.NewReader(data),
		es.Index.WithDocumentID(fmt.Sprint(vendor.ID)),
		es.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index vendor: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index vendor: %s", res.Status())
	}
	return nil
}

// Search runs a fuzzy multi-field query against the vendor index.
func Search(ctx context.Context, es *elasticsearch.Client, index, query string, from, size int) (int64, []transport.VendorResponse, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"name^2", "location", "specialty"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("search: encode query: %w", err)
	}

	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, nil, fmt.Errorf("search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source transport.VendorResponse `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	vendors := make([]transport.VendorResponse, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		vendors[i] = hit.Source
	}
	return r.Hits.Total.Value, vendors, nil
}
