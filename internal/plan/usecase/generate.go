package usecase

import (
	"context"
	"errors"
	"fmt"

	"sehrimilan/internal/cache"
	"sehrimilan/internal/generator"
	"sehrimilan/internal/model"
	"sehrimilan/internal/plan"
	repo "sehrimilan/internal/plan/repository"
)

// Generate builds a fresh plan, stores it verbatim and drops the owner's shopping list.
// Nothing is stored when any segment fails.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input plan.GenerateInput) (plan.GenerateOutput, error) {
	if sc.Demo {
		return plan.GenerateOutput{}, plan.ErrDemoReadOnly
	}

	raw, err := uc.generator.Generate(ctx, generator.Input{
		Days: input.Days,
		Household: generator.Household{
			FamilySize:  input.FamilySize,
			DailyBudget: input.DailyBudget,
			CuisineType: input.CuisineType,
			AgeGroups:   input.AgeGroups,
			Equipment:   input.Equipment,
			FoodItems:   input.FoodItems,
		},
	})
	if err != nil {
		if errors.Is(err, generator.ErrInvalidDays) {
			return plan.GenerateOutput{}, plan.ErrInvalidDays
		}
		uc.l.Errorf(ctx, "uc.Generate generator.Generate: %v", err)
		return plan.GenerateOutput{}, fmt.Errorf("%w: %w", plan.ErrGenerationFailed, err)
	}

	saved, err := uc.repo.UpsertPlan(ctx, repo.UpsertPlanOptions{
		UserID:   sc.UserID,
		FullPlan: raw,
		PlanDays: input.Days,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Generate UpsertPlan: %v", err)
		return plan.GenerateOutput{}, err
	}

	// The old list was derived from the previous plan.
	if err := uc.shoppingRepo.DeleteList(ctx, sc.UserID); err != nil {
		uc.l.Warnf(ctx, "uc.Generate DeleteList: %v", err)
	}

	uc.cache.Set(cache.KindPlan, sc.UserID, saved.FullPlan)
	uc.cache.Set(cache.KindPlanDays, sc.UserID, saved.PlanDays)
	uc.cache.Remove(cache.KindShopping, sc.UserID)

	return plan.GenerateOutput{
		Plan:     saved,
		DayCount: len(uc.parser.SplitDays(saved.FullPlan)),
	}, nil
}
