package data

// Offer conditions form a closed set.
const (
	ConditionNew    = "New"
	ConditionUsed   = "Used"
	ConditionRental = "Rental"
	ConditionEbook  = "Ebook"
)

// Offer defines a single commercial offer for a book. Isbn is always present
// in normalized form; an offer whose ISBN cannot be resolved is dropped at the
// adapter boundary and never reaches the join.
type Offer struct {
	Seller    string  `json:"seller"`
	Condition string  `json:"condition"`
	PriceCad  float64 `json:"priceCad"`
	URL       string  `json:"url"`
	UpdatedAt string  `json:"updatedAt"`
	Isbn      string  `json:"isbn"`
}
