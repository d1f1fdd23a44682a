package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/emzola/bookscout/data"
	"github.com/emzola/bookscout/data/dto"
	"github.com/emzola/bookscout/internal/validator"
	"github.com/emzola/bookscout/service"
	"github.com/jellydator/ttlcache/v3"
)

func (h *Handler) searchHandler(w http.ResponseWriter, r *http.Request) {
	var qsInput dto.QsSearch
	v := validator.New()
	qs := r.URL.Query()
	qsInput.Q = h.readString(qs, "q", "")
	qsInput.Isbn = h.readString(qs, "isbn", "")
	qsInput.Limit = h.readInt(qs, "limit", h.config.Search.MaxResults, v)
	if !v.Valid() {
		h.badRequestResponse(w, r, errors.New("limit must be an integer value"))
		return
	}

	key := searchCacheKey(qsInput)
	if h.cache != nil {
		if item := h.cache.Get(key); item != nil {
			h.writeSearchResult(w, r, item.Value())
			return
		}
	}

	result, err := h.service.Search(r.Context(), qsInput.Q, qsInput.Isbn, qsInput.Limit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.badRequestResponse(w, r, err)
		case errors.Is(err, service.ErrUpstream):
			h.badGatewayResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}

	if h.cache != nil {
		h.cache.Set(key, result, ttlcache.DefaultTTL)
	}
	h.writeSearchResult(w, r, result)
}

func (h *Handler) writeSearchResult(w http.ResponseWriter, r *http.Request, result *data.SearchResult) {
	env := envelope{
		"query":    result.Query,
		"currency": result.Currency,
		"items":    result.Items,
		"sources":  result.Sources,
	}
	err := h.encodeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// searchCacheKey canonicalizes the query parameters so that equivalent
// searches share a cache entry.
func searchCacheKey(qsInput dto.QsSearch) string {
	return strings.ToLower(fmt.Sprintf("search:q=%s&isbn=%s&limit=%d", qsInput.Q, qsInput.Isbn, qsInput.Limit))
}
