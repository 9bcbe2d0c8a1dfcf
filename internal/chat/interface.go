package chat

import (
	"context"

	"sehrimilan/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Reply streams the assistant answer through onFragment and returns the full text.
	Reply(ctx context.Context, sc model.Scope, input ReplyInput, onFragment func(string) error) (ReplyOutput, error)
}
