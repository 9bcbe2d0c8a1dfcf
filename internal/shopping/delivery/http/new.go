package http

import (
	"sehrimilan/internal/shopping"
	"sehrimilan/pkg/log"
)

type handler struct {
	l  log.Logger
	uc shopping.UseCase
}

// New creates a new HTTP handler for the shopping domain.
func New(l log.Logger, uc shopping.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
