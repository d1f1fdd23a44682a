package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/emzola/bookscout/config"
	"github.com/emzola/bookscout/data"
	"github.com/emzola/bookscout/internal/jsonlog"
	"github.com/emzola/bookscout/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookSource struct {
	books []data.Book
	err   error
	calls int
}

func (s *stubBookSource) Name() string { return data.SourceOpenLibrary }

func (s *stubBookSource) SearchBooks(ctx context.Context, query string, limit int) ([]data.Book, error) {
	s.calls++
	return s.books, s.err
}

type stubOfferSource struct {
	offers []data.Offer
	err    error
	calls  int
}

func (s *stubOfferSource) Name() string { return data.SourceGoogleBooks }

func (s *stubOfferSource) SearchOffers(ctx context.Context, query provider.OfferQuery, maxItems int) ([]data.Offer, error) {
	s.calls++
	return s.offers, s.err
}

func newTestService(books *stubBookSource, offers *stubOfferSource) Service {
	logger := jsonlog.New(io.Discard, jsonlog.LevelOff)
	return New(config.Config{}, logger, books, offers, provider.NewFallbackGenerator())
}

func TestSearchJoinsLiveOffers(t *testing.T) {
	books := &stubBookSource{books: []data.Book{
		{Key: "/works/OL1W", Title: "Clean Code", Isbn13: "9780132350884", Isbn10: "0132350884"},
		{Key: "/works/OL2W", Title: "No ISBN Here"},
	}}
	offers := &stubOfferSource{offers: []data.Offer{
		{Seller: "Google Books", Condition: data.ConditionEbook, PriceCad: 42.99, URL: "https://g.example.com/1", UpdatedAt: "2024-03-01T12:00:00Z", Isbn: "0132350884"},
	}}

	result, err := newTestService(books, offers).Search(context.Background(), "python", "", 10)
	require.NoError(t, err)

	assert.Equal(t, "python", result.Query)
	assert.Equal(t, "CAD", result.Currency)
	assert.Equal(t, []string{"openlibrary"}, result.Sources.Metadata)
	assert.Equal(t, []string{"googlebooks"}, result.Sources.Pricing)

	require.Len(t, result.Items, 2)
	withOffer := result.Items[0]
	require.Len(t, withOffer.Offers, 1)
	require.NotNil(t, withOffer.BestPriceCad)
	assert.Equal(t, 42.99, *withOffer.BestPriceCad)

	without := result.Items[1]
	assert.Empty(t, without.Offers)
	assert.Nil(t, without.BestPriceCad)
}

func TestSearchPricingFailureDegradesToFallback(t *testing.T) {
	books := &stubBookSource{books: []data.Book{
		{Key: "/works/OL1W", Title: "Matching Book", Isbn10: "1234567890"},
	}}
	offers := &stubOfferSource{err: &provider.UpstreamError{Source: "googlebooks", Err: errors.New("connection refused")}}

	result, err := newTestService(books, offers).Search(context.Background(), "", "1234567890", 10)
	require.NoError(t, err, "pricing failures must never fail the search")

	assert.Equal(t, "ISBN:1234567890", result.Query)
	assert.Equal(t, []string{data.SourceFallback}, result.Sources.Pricing)
	require.Len(t, result.Items, 1)
	assert.Len(t, result.Items[0].Offers, 3, "synthetic offers cover Used, Rental and Ebook")
	for _, o := range result.Items[0].Offers {
		assert.Contains(t, o.Seller, "mock")
	}
}

func TestSearchEmptyPricingTriggersFallbackPerBook(t *testing.T) {
	books := &stubBookSource{books: []data.Book{
		{Key: "b1", Title: "Has ISBN", Isbn13: "9780132350884"},
		{Key: "b2", Title: "No ISBN"},
	}}
	offers := &stubOfferSource{}

	result, err := newTestService(books, offers).Search(context.Background(), "python", "", 10)
	require.NoError(t, err)

	assert.Equal(t, []string{data.SourceFallback}, result.Sources.Pricing)
	require.Len(t, result.Items, 2)
	// The book with a usable ISBN ranks first since it has a best price.
	assert.Equal(t, "b1", result.Items[0].Book.Key)
	assert.Len(t, result.Items[0].Offers, 3)
	assert.Empty(t, result.Items[1].Offers)
}

func TestSearchMetadataFailureIsFatal(t *testing.T) {
	books := &stubBookSource{err: &provider.UpstreamError{Source: "openlibrary", StatusCode: 503}}
	offers := &stubOfferSource{}

	_, err := newTestService(books, offers).Search(context.Background(), "python", "", 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestSearchValidation(t *testing.T) {
	tests := []struct {
		name  string
		q     string
		isbn  string
		limit int
	}{
		{"both empty", "", "", 10},
		{"query too short", "a", "", 10},
		{"isbn wrong length", "", "12345", 10},
		{"isbn with letters", "", "12345abcde", 10},
		{"limit zero", "python", "", 0},
		{"limit too large", "python", "", 41},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books := &stubBookSource{}
			offers := &stubOfferSource{}
			_, err := newTestService(books, offers).Search(context.Background(), tt.q, tt.isbn, tt.limit)
			assert.ErrorIs(t, err, ErrFailedValidation)
			assert.Zero(t, books.calls, "no provider calls on invalid input")
			assert.Zero(t, offers.calls, "no provider calls on invalid input")
		})
	}
}

func TestSearchRanksItemsByBestPrice(t *testing.T) {
	books := &stubBookSource{books: []data.Book{
		{Key: "pricey", Title: "Pricey", Isbn13: "9780000000100"},
		{Key: "none", Title: "No Offers"},
		{Key: "cheap", Title: "Cheap", Isbn13: "9780000000200"},
	}}
	offers := &stubOfferSource{offers: []data.Offer{
		{Seller: "A", Condition: data.ConditionNew, PriceCad: 80, URL: "https://a.example.com", UpdatedAt: "2024-03-01T12:00:00Z", Isbn: "9780000000100"},
		{Seller: "B", Condition: data.ConditionNew, PriceCad: 12, URL: "https://b.example.com", UpdatedAt: "2024-03-01T12:00:00Z", Isbn: "9780000000200"},
	}}

	result, err := newTestService(books, offers).Search(context.Background(), "anything", "", 10)
	require.NoError(t, err)
	require.Len(t, result.Items, 3)
	assert.Equal(t, "cheap", result.Items[0].Book.Key)
	assert.Equal(t, "pricey", result.Items[1].Book.Key)
	assert.Equal(t, "none", result.Items[2].Book.Key, "books without offers rank last")
}
