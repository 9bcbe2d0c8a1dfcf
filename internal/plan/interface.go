package plan

import (
	"context"

	"sehrimilan/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)
	Get(ctx context.Context, sc model.Scope, input GetInput) (GetOutput, error)
	GetDay(ctx context.Context, sc model.Scope, input GetDayInput) (GetDayOutput, error)
	Delete(ctx context.Context, sc model.Scope) error
}
