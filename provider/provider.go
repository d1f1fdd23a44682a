// Package provider implements the upstream catalog adapters and the synthetic
// offer generator. Raw upstream JSON is modeled as explicitly-optional-field
// structs and mapped to data entities at this boundary; untyped provider
// responses never escape the package.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/emzola/bookscout/data"
)

// BookSource is implemented by bibliographic catalogs that resolve a free-text
// query to book metadata.
type BookSource interface {
	Name() string
	SearchBooks(ctx context.Context, query string, limit int) ([]data.Book, error)
}

// OfferQuery carries the search parameters for a pricing catalog. Isbn takes
// precedence over Text when both are set.
type OfferQuery struct {
	Text string
	Isbn string
}

// OfferSource is implemented by commercial catalogs that resolve a query to
// purchasable offers.
type OfferSource interface {
	Name() string
	SearchOffers(ctx context.Context, query OfferQuery, maxItems int) ([]data.Offer, error)
}

// UpstreamError reports a remote provider call that did not succeed, either a
// transport failure or a non-2xx response.
type UpstreamError struct {
	Source     string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("%s: unexpected response status %d", e.Source, e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// fetchJSON performs a GET request against an upstream provider and decodes
// the JSON response body into dst.
func fetchJSON(ctx context.Context, client *http.Client, source, url string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return &UpstreamError{Source: source, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{Source: source, StatusCode: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &UpstreamError{Source: source, Err: err}
	}
	return nil
}
