package provider

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/emzola/bookscout/data"
	"github.com/emzola/bookscout/internal/isbn"
	"github.com/emzola/bookscout/internal/jsonlog"
)

type googleBooksPrice struct {
	Amount       *float64 `json:"amount"`
	CurrencyCode string   `json:"currencyCode"`
}

// googleBooksVolume models one raw item from the Google Books volumes
// endpoint. Every field is optional.
type googleBooksVolume struct {
	VolumeInfo struct {
		Title               string `json:"title"`
		IndustryIdentifiers []struct {
			Type       string `json:"type"`
			Identifier string `json:"identifier"`
		} `json:"industryIdentifiers"`
	} `json:"volumeInfo"`
	SaleInfo struct {
		Saleability string            `json:"saleability"`
		BuyLink     string            `json:"buyLink"`
		ListPrice   *googleBooksPrice `json:"listPrice"`
		RetailPrice *googleBooksPrice `json:"retailPrice"`
	} `json:"saleInfo"`
}

type googleBooksResponse struct {
	Items []googleBooksVolume `json:"items"`
}

// GoogleBooks adapts the Google Books volumes API to the OfferSource contract.
type GoogleBooks struct {
	client  *http.Client
	baseURL string
	logger  *jsonlog.Logger
	now     func() time.Time
}

// NewGoogleBooks creates a Google Books adapter. baseURL carries no trailing
// slash, e.g. https://www.googleapis.com/books/v1.
func NewGoogleBooks(client *http.Client, baseURL string, logger *jsonlog.Logger) *GoogleBooks {
	return &GoogleBooks{
		client:  client,
		baseURL: baseURL,
		logger:  logger,
		now:     time.Now,
	}
}

// Name identifies the adapter in SearchResult.Sources.
func (g *GoogleBooks) Name() string {
	return data.SourceGoogleBooks
}

// SearchOffers queries the catalog and maps raw sale records to offers. Items
// without a purchase link, a numeric price or a currency code are skipped.
// Each offer's ISBN comes from the volume's industry identifiers, preferring
// the 13-digit form, falling back to the normalized request ISBN; items
// resolving to no ISBN at all are dropped since the join requires one. Prices
// are converted to the settlement currency and rounded to cents.
func (g *GoogleBooks) SearchOffers(ctx context.Context, query OfferQuery, maxItems int) ([]data.Offer, error) {
	requestIsbn := isbn.Normalize(query.Isbn)
	var q string
	switch {
	case requestIsbn != "":
		q = "isbn:" + requestIsbn
	case query.Text != "":
		q = query.Text
	default:
		return nil, nil
	}

	qs := url.Values{}
	qs.Set("q", q)
	qs.Set("maxResults", strconv.Itoa(maxItems))

	var response googleBooksResponse
	err := fetchJSON(ctx, g.client, g.Name(), g.baseURL+"/volumes?"+qs.Encode(), &response)
	if err != nil {
		return nil, err
	}

	updatedAt := g.now().UTC().Format(time.RFC3339)
	offers := make([]data.Offer, 0, len(response.Items))
	for _, item := range response.Items {
		sale := item.SaleInfo
		price := sale.RetailPrice
		if price == nil {
			price = sale.ListPrice
		}
		if sale.BuyLink == "" || price == nil || price.Amount == nil || price.CurrencyCode == "" {
			continue
		}

		itemIsbn := pickVolumeISBN(item)
		if itemIsbn == "" {
			itemIsbn = requestIsbn
		}
		if itemIsbn == "" {
			continue
		}

		amount, known := toCAD(*price.Amount, price.CurrencyCode)
		if !known {
			g.logger.PrintDebug("unknown currency passed through unconverted", map[string]string{
				"currency": price.CurrencyCode,
				"url":      sale.BuyLink,
			})
		}

		offers = append(offers, data.Offer{
			Seller:    "Google Books",
			Condition: data.ConditionEbook,
			PriceCad:  roundCents(amount),
			URL:       sale.BuyLink,
			UpdatedAt: updatedAt,
			Isbn:      itemIsbn,
		})
	}
	return offers, nil
}

// pickVolumeISBN selects an ISBN from a volume's industry identifiers,
// preferring a valid 13-digit form over a 10-digit one.
func pickVolumeISBN(v googleBooksVolume) string {
	var isbn10 string
	for _, id := range v.VolumeInfo.IndustryIdentifiers {
		switch id.Type {
		case "ISBN_13":
			if n := isbn.Normalize(id.Identifier); len(n) == 13 {
				return n
			}
		case "ISBN_10":
			if isbn10 == "" {
				if n := isbn.Normalize(id.Identifier); len(n) == 10 {
					isbn10 = n
				}
			}
		}
	}
	return isbn10
}
