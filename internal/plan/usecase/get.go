package usecase

import (
	"context"

	"sehrimilan/internal/cache"
	"sehrimilan/internal/model"
	"sehrimilan/internal/plan"
	repo "sehrimilan/internal/plan/repository"
)

// Get returns the owner's plan split into days.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, input plan.GetInput) (plan.GetOutput, error) {
	p, source, err := uc.load(ctx, sc, input.Cached)
	if err != nil {
		return plan.GetOutput{}, err
	}

	days, err := uc.days(ctx, p.FullPlan)
	if err != nil {
		return plan.GetOutput{}, err
	}
	return plan.GetOutput{Plan: p, Days: days, Source: source}, nil
}

// GetDay returns the day at the 1-based position Index.
func (uc *implUseCase) GetDay(ctx context.Context, sc model.Scope, input plan.GetDayInput) (plan.GetDayOutput, error) {
	out, err := uc.Get(ctx, sc, plan.GetInput{Cached: input.Cached})
	if err != nil {
		return plan.GetDayOutput{}, err
	}
	if input.Index < 1 || input.Index > len(out.Days) {
		return plan.GetDayOutput{}, plan.ErrDayNotFound
	}
	return plan.GetDayOutput{Day: out.Days[input.Index-1], DayCount: len(out.Days)}, nil
}

// load reads the plan from the demo fixture, the cache or the store, in that order.
func (uc *implUseCase) load(ctx context.Context, sc model.Scope, cached bool) (plan.Plan, plan.Source, error) {
	if sc.Demo {
		return plan.DemoPlan(), plan.SourceDemo, nil
	}

	if cached {
		if p, ok := uc.fromCache(sc.UserID); ok {
			return p, plan.SourceCache, nil
		}
	}

	p, err := uc.repo.GetPlan(ctx, repo.GetPlanOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Get GetPlan: %v", err)
		return plan.Plan{}, "", err
	}
	if p.UserID == "" {
		uc.cache.Remove(cache.KindPlan, sc.UserID)
		uc.cache.Remove(cache.KindPlanDays, sc.UserID)
		return plan.Plan{}, "", plan.ErrPlanNotFound
	}

	uc.cache.Set(cache.KindPlan, sc.UserID, p.FullPlan)
	uc.cache.Set(cache.KindPlanDays, sc.UserID, p.PlanDays)
	return p, plan.SourceStore, nil
}

func (uc *implUseCase) fromCache(userID string) (plan.Plan, bool) {
	v, ok := uc.cache.Get(cache.KindPlan, userID)
	if !ok {
		return plan.Plan{}, false
	}
	text, ok := v.(string)
	if !ok {
		return plan.Plan{}, false
	}

	p := plan.Plan{UserID: userID, FullPlan: text}
	if d, ok := uc.cache.Get(cache.KindPlanDays, userID); ok {
		p.PlanDays, _ = d.(int)
	}
	return p, true
}

func (uc *implUseCase) days(ctx context.Context, raw string) ([]plan.Day, error) {
	blocks := uc.parser.SplitDays(raw)
	days := make([]plan.Day, 0, len(blocks))
	for _, b := range blocks {
		html, err := uc.renderer.Render(b.Text)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Get Render day %d: %v", b.Index, err)
			return nil, err
		}
		days = append(days, plan.Day{
			Index:   b.Index,
			Heading: b.Heading,
			Text:    b.Text,
			HTML:    html,
		})
	}
	return days, nil
}
