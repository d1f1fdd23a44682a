package service

import (
	"github.com/emzola/bookscout/config"
	"github.com/emzola/bookscout/internal/jsonlog"
	"github.com/emzola/bookscout/provider"
)

type Service interface {
	search
}

// service defines the service layer.
type service struct {
	config   config.Config
	logger   *jsonlog.Logger
	books    provider.BookSource
	offers   provider.OfferSource
	fallback *provider.FallbackGenerator
}

// New creates a new instance of Service.
func New(cfg config.Config, logger *jsonlog.Logger, books provider.BookSource, offers provider.OfferSource, fallback *provider.FallbackGenerator) *service {
	return &service{
		config:   cfg,
		logger:   logger,
		books:    books,
		offers:   offers,
		fallback: fallback,
	}
}
