package service

import (
	"sort"

	"github.com/emzola/bookscout/data"
	"github.com/emzola/bookscout/internal/isbn"
)

// joinOffersToBooks matches offers to books by normalized ISBN, preserving the
// input order of books. A book may match offers through its isbn13 or its
// isbn10; an offer matching through both fields is counted once. Matched
// offers are deduplicated by (seller, url) — last seen wins, since sources
// occasionally repeat identical listings — then sorted ascending by price with
// ties kept in encounter order. This is a pure function: offers reaching it
// are assumed to carry a resolvable ISBN already.
func joinOffersToBooks(books []data.Book, offers []data.Offer) []data.ItemResult {
	byIsbn := make(map[string][]data.Offer)
	for _, o := range offers {
		k := isbn.Normalize(o.Isbn)
		if k == "" {
			continue
		}
		byIsbn[k] = append(byIsbn[k], o)
	}

	items := make([]data.ItemResult, 0, len(books))
	for _, b := range books {
		keys := make([]string, 0, 2)
		if k := isbn.Normalize(b.Isbn13); k != "" {
			keys = append(keys, k)
		}
		if k := isbn.Normalize(b.Isbn10); k != "" && (len(keys) == 0 || keys[0] != k) {
			keys = append(keys, k)
		}

		var matched []data.Offer
		for _, k := range keys {
			matched = append(matched, byIsbn[k]...)
		}

		uniq := make([]data.Offer, 0, len(matched))
		seen := make(map[string]int, len(matched))
		for _, o := range matched {
			key := o.Seller + "\x00" + o.URL
			if i, ok := seen[key]; ok {
				uniq[i] = o
				continue
			}
			seen[key] = len(uniq)
			uniq = append(uniq, o)
		}

		sort.SliceStable(uniq, func(i, j int) bool {
			return uniq[i].PriceCad < uniq[j].PriceCad
		})

		item := data.ItemResult{Book: b, Offers: uniq}
		if len(uniq) > 0 {
			best := uniq[0].PriceCad
			item.BestPriceCad = &best
		}
		items = append(items, item)
	}
	return items
}
