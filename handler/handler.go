package handler

import (
	"github.com/emzola/bookscout/config"
	"github.com/emzola/bookscout/data"
	"github.com/emzola/bookscout/internal/jsonlog"
	"github.com/emzola/bookscout/service"
	"github.com/jellydator/ttlcache/v3"
)

// Handler defines the handler layer. The cache is a read-through store of
// completed search results keyed by the canonicalized query parameters; a nil
// cache disables caching entirely.
type Handler struct {
	config  config.Config
	logger  *jsonlog.Logger
	cache   *ttlcache.Cache[string, *data.SearchResult]
	service service.Service
}

// New creates a new instance of Handler.
func New(cfg config.Config, logger *jsonlog.Logger, cache *ttlcache.Cache[string, *data.SearchResult], service service.Service) *Handler {
	return &Handler{
		config:  cfg,
		logger:  logger,
		cache:   cache,
		service: service,
	}
}
