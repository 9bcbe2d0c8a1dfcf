package shopping

import (
	"context"

	"sehrimilan/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope, input GetInput) (GetOutput, error)
	Add(ctx context.Context, sc model.Scope, input AddInput) (MutateOutput, error)
	Toggle(ctx context.Context, sc model.Scope, id string) (MutateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) (MutateOutput, error)
	Share(ctx context.Context, sc model.Scope) (ShareOutput, error)
}
