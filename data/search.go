package data

import (
	"regexp"

	"github.com/emzola/bookscout/internal/validator"
)

// Source labels reported in SearchResult.Sources. SourceFallback marks
// synthetic pricing so consumers can distinguish it from live offers.
const (
	SourceOpenLibrary = "openlibrary"
	SourceGoogleBooks = "googlebooks"
	SourceFallback    = "fallback (synthetic)"
)

// SettlementCurrency is the single currency all displayed prices are expressed in.
const SettlementCurrency = "CAD"

// IsbnRX matches a bare 10 or 13 digit ISBN as accepted on the wire.
var IsbnRX = regexp.MustCompile(`^\d{10}(\d{3})?$`)

// ItemResult is the per-book aggregate of matched, deduplicated offers sorted
// ascending by price. BestPriceCad is nil when the book has no offers.
type ItemResult struct {
	Book         Book     `json:"book"`
	Offers       []Offer  `json:"offers"`
	BestPriceCad *float64 `json:"bestPriceCad"`
}

// Sources reports which upstream produced the metadata and whether pricing
// came from a live provider or the synthetic fallback.
type Sources struct {
	Metadata []string `json:"metadata"`
	Pricing  []string `json:"pricing"`
}

// SearchResult is the complete response for one search.
type SearchResult struct {
	Query    string       `json:"query"`
	Currency string       `json:"currency"`
	Items    []ItemResult `json:"items"`
	Sources  Sources      `json:"sources"`
}

// ValidateSearchInput checks the raw search parameters. At least one of q and
// isbn must be usable: q between 2 and 200 characters, isbn a bare 10 or 13
// digit string.
func ValidateSearchInput(v *validator.Validator, q, isbn string, limit int) {
	v.Check(q != "" || isbn != "", "q", "either q or isbn must be provided")
	if isbn != "" {
		v.Check(validator.Matches(isbn, IsbnRX), "isbn", "must be a 10 or 13 digit ISBN")
	}
	if q != "" {
		v.Check(len(q) >= 2, "q", "must be at least 2 characters long")
		v.Check(len(q) <= 200, "q", "must not be more than 200 characters long")
	}
	v.Check(limit > 0, "limit", "must be greater than zero")
	v.Check(limit <= 40, "limit", "must be a maximum of 40")
}
