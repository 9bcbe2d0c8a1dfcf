package repository

import (
	"context"

	"sehrimilan/internal/plan"
)

// Repository is the data store of raw plans, one row per owner.
type Repository interface {
	// GetPlan returns a zero Plan (UserID == "") when the owner has none.
	GetPlan(ctx context.Context, opt GetPlanOptions) (plan.Plan, error)
	UpsertPlan(ctx context.Context, opt UpsertPlanOptions) (plan.Plan, error)
	DeletePlan(ctx context.Context, userID string) error
}
