package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/emzola/bookscout/data"
	"github.com/emzola/bookscout/internal/validator"
	"github.com/emzola/bookscout/provider"
)

type search interface {
	Search(ctx context.Context, q, isbn string, limit int) (*data.SearchResult, error)
}

// Search service runs one price-comparison search: it validates the input,
// fetches metadata and pricing concurrently, substitutes synthetic offers when
// live pricing yields nothing, joins offers to books and ranks the results by
// best price. A pricing failure degrades to fallback pricing and is never
// surfaced; a metadata failure is fatal to the request since no substitute
// data exists for it.
func (s *service) Search(ctx context.Context, q, isbn string, limit int) (*data.SearchResult, error) {
	v := validator.New()
	if data.ValidateSearchInput(v, q, isbn, limit); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}

	effectiveQuery := q
	if isbn != "" {
		effectiveQuery = "ISBN:" + isbn
	}

	type booksResult struct {
		books []data.Book
		err   error
	}
	type offersResult struct {
		offers []data.Offer
		err    error
	}
	booksCh := make(chan booksResult, 1)
	offersCh := make(chan offersResult, 1)

	go func() {
		books, err := s.books.SearchBooks(ctx, effectiveQuery, limit)
		booksCh <- booksResult{books, err}
	}()
	go func() {
		offers, err := s.offers.SearchOffers(ctx, provider.OfferQuery{Text: q, Isbn: isbn}, limit)
		offersCh <- offersResult{offers, err}
	}()

	br := <-booksCh
	or := <-offersCh

	if br.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, br.err)
	}

	offers := or.offers
	if or.err != nil {
		s.logger.PrintError(or.err, map[string]string{"source": s.offers.Name()})
		offers = nil
	}

	pricingSource := s.offers.Name()
	if len(offers) == 0 {
		pricingSource = s.fallback.Name()
		offers = nil
		for _, b := range br.books {
			offers = append(offers, s.fallback.OffersFor(b)...)
		}
	}

	items := joinOffersToBooks(br.books, offers)
	sort.SliceStable(items, func(i, j int) bool {
		// Books without any offer rank last.
		switch {
		case items[i].BestPriceCad == nil:
			return false
		case items[j].BestPriceCad == nil:
			return true
		default:
			return *items[i].BestPriceCad < *items[j].BestPriceCad
		}
	})

	return &data.SearchResult{
		Query:    effectiveQuery,
		Currency: data.SettlementCurrency,
		Items:    items,
		Sources: data.Sources{
			Metadata: []string{s.books.Name()},
			Pricing:  []string{pricingSource},
		},
	}, nil
}
