package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/emzola/bookscout/data"
	"github.com/emzola/bookscout/internal/isbn"
)

// openLibraryDoc models one raw document from the OpenLibrary search endpoint.
// Every field is optional and decodes to its zero value when absent.
type openLibraryDoc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	CoverI           *int     `json:"cover_i"`
	Isbn             []string `json:"isbn"`
	FirstPublishYear int      `json:"first_publish_year"`
	EditionCount     int      `json:"edition_count"`
}

type openLibrarySearchResponse struct {
	Docs []openLibraryDoc `json:"docs"`
}

// OpenLibrary adapts the OpenLibrary search API to the BookSource contract.
type OpenLibrary struct {
	client  *http.Client
	baseURL string
}

// NewOpenLibrary creates an OpenLibrary adapter. baseURL carries no trailing
// slash, e.g. https://openlibrary.org.
func NewOpenLibrary(client *http.Client, baseURL string) *OpenLibrary {
	return &OpenLibrary{
		client:  client,
		baseURL: baseURL,
	}
}

// Name identifies the adapter in SearchResult.Sources.
func (o *OpenLibrary) Name() string {
	return data.SourceOpenLibrary
}

// SearchBooks queries the catalog and maps raw documents to books. The cover
// URL is derived from the numeric cover identifier when present, never a
// placeholder. ISBNs are picked from the document's list by normalized length.
// Documents without a catalog key are dropped; a missing title becomes
// "Untitled" rather than dropping an otherwise usable record.
func (o *OpenLibrary) SearchBooks(ctx context.Context, query string, limit int) ([]data.Book, error) {
	qs := url.Values{}
	qs.Set("q", query)
	qs.Set("limit", strconv.Itoa(limit))

	var response openLibrarySearchResponse
	err := fetchJSON(ctx, o.client, o.Name(), o.baseURL+"/search.json?"+qs.Encode(), &response)
	if err != nil {
		return nil, err
	}

	books := make([]data.Book, 0, len(response.Docs))
	for _, doc := range response.Docs {
		title := doc.Title
		if title == "" {
			title = "Untitled"
		}
		if doc.Key == "" {
			continue
		}
		book := data.Book{
			Source:           data.SourceOpenLibrary,
			Key:              doc.Key,
			Title:            title,
			Authors:          doc.AuthorName,
			Isbn10:           isbn.Pick(doc.Isbn, 10),
			Isbn13:           isbn.Pick(doc.Isbn, 13),
			FirstPublishYear: doc.FirstPublishYear,
			EditionCount:     doc.EditionCount,
		}
		if doc.CoverI != nil {
			book.CoverURL = fmt.Sprintf("https://covers.openlibrary.org/b/id/%d-M.jpg", *doc.CoverI)
		}
		books = append(books, book)
	}
	return books, nil
}
