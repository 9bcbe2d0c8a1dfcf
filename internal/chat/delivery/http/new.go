package http

import (
	"sehrimilan/internal/chat"
	"sehrimilan/pkg/log"
)

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat assistant.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
