package data

// Book defines a book as returned by the bibliographic catalog. All fields are
// populated at the adapter boundary; raw catalog records never travel further
// than the adapter that mapped them.
type Book struct {
	Source           string   `json:"source"`
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	Authors          []string `json:"authors"`
	CoverURL         string   `json:"coverUrl,omitempty"`
	Isbn10           string   `json:"isbn10,omitempty"`
	Isbn13           string   `json:"isbn13,omitempty"`
	FirstPublishYear int      `json:"firstPublishYear,omitempty"`
	EditionCount     int      `json:"editionCount,omitempty"`
}

// PreferredISBN returns the book's ISBN-13 if it has one, else its ISBN-10,
// else an empty string.
func (b Book) PreferredISBN() string {
	if b.Isbn13 != "" {
		return b.Isbn13
	}
	return b.Isbn10
}
