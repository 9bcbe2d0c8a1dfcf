package usecase

import (
	"context"

	"sehrimilan/internal/model"
	"sehrimilan/internal/plan"
)

// Delete clears the owner's plan from the store and drops every cached artifact
// of the owner. The stored shopping list is kept.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope) error {
	if sc.Demo {
		return plan.ErrDemoReadOnly
	}

	if err := uc.repo.DeletePlan(ctx, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeletePlan: %v", err)
		return err
	}

	uc.cache.Purge(sc.UserID)
	return nil
}
