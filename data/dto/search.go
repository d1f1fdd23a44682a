package dto

// QsSearch defines the expected query string parameters of the search endpoint.
type QsSearch struct {
	Q     string
	Isbn  string
	Limit int
}
