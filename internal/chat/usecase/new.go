package usecase

import (
	"sehrimilan/internal/chat"
	"sehrimilan/internal/generator"
	"sehrimilan/pkg/log"
)

type implUseCase struct {
	transport generator.Transport
	l         log.Logger
}

// New creates a chat UseCase over the shared generation transport.
func New(l log.Logger, transport generator.Transport) chat.UseCase {
	return &implUseCase{
		transport: transport,
		l:         l,
	}
}
