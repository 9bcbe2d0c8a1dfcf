package usecase

import (
	"context"

	"sehrimilan/internal/cache"
	"sehrimilan/internal/model"
	planRepo "sehrimilan/internal/plan/repository"
	"sehrimilan/internal/shopping"
	repo "sehrimilan/internal/shopping/repository"
)

// Get returns the owner's list. A stored non-empty list wins unless Refresh is
// set; otherwise the list is extracted from the current plan and stored.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, input shopping.GetInput) (shopping.GetOutput, error) {
	if sc.Demo {
		return shopping.GetOutput{Entries: shopping.DemoEntries(), Source: shopping.SourceDemo}, nil
	}

	if input.Cached && !input.Refresh {
		if entries, ok := uc.fromCache(sc.UserID); ok {
			return shopping.GetOutput{Entries: entries, Source: shopping.SourceCache}, nil
		}
	}

	if !input.Refresh {
		entries, found, err := uc.loadStored(ctx, sc)
		if err != nil {
			return shopping.GetOutput{}, err
		}
		if found {
			return shopping.GetOutput{Entries: entries, Source: shopping.SourceStore}, nil
		}
	}

	return uc.extract(ctx, sc)
}

// loadStored reads the stored list, dedupes it and writes the clean copy back
// when duplicates were found.
func (uc *implUseCase) loadStored(ctx context.Context, sc model.Scope) ([]shopping.Entry, bool, error) {
	stored, found, err := uc.readStored(ctx, sc, "Get")
	if err != nil || !found {
		return nil, found, err
	}

	entries, removed := shopping.Dedupe(stored)
	uc.toCache(sc.UserID, entries)

	if removed {
		uc.l.Infof(ctx, "uc.Get: removed %d duplicate entries for %s", len(stored)-len(entries), sc.UserID)
		if err := uc.repo.UpsertList(ctx, repo.UpsertListOptions{UserID: sc.UserID, Entries: entries}); err != nil {
			uc.l.Warnf(ctx, "uc.Get UpsertList cleaned: %v", err)
		}
	}
	return entries, true, nil
}

// readStored returns the stored entries as written. An absent or empty list
// counts as not found, and so does a list older than the current plan: it was
// built from a plan that has since been replaced.
func (uc *implUseCase) readStored(ctx context.Context, sc model.Scope, op string) ([]shopping.Entry, bool, error) {
	list, err := uc.repo.GetList(ctx, repo.GetListOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s GetList: %v", op, err)
		return nil, false, err
	}
	if list.UserID == "" {
		uc.cache.Remove(cache.KindShopping, sc.UserID)
		return nil, false, nil
	}
	if len(list.Entries) == 0 {
		return nil, false, nil
	}

	p, err := uc.planRepo.GetPlan(ctx, planRepo.GetPlanOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s GetPlan: %v", op, err)
		return nil, false, err
	}
	if p.UserID != "" && p.UpdatedAt.After(list.UpdatedAt) {
		uc.l.Infof(ctx, "uc.%s: list of %s predates its plan, rebuilding", op, sc.UserID)
		uc.cache.Remove(cache.KindShopping, sc.UserID)
		if err := uc.repo.DeleteList(ctx, sc.UserID); err != nil {
			uc.l.Warnf(ctx, "uc.%s DeleteList stale: %v", op, err)
		}
		return nil, false, nil
	}
	return list.Entries, true, nil
}

// extract derives the list from the stored plan. No plan is a legit empty state.
func (uc *implUseCase) extract(ctx context.Context, sc model.Scope) (shopping.GetOutput, error) {
	p, err := uc.planRepo.GetPlan(ctx, planRepo.GetPlanOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Get GetPlan: %v", err)
		return shopping.GetOutput{}, err
	}
	if p.UserID == "" {
		uc.cache.Remove(cache.KindShopping, sc.UserID)
		return shopping.GetOutput{Entries: []shopping.Entry{}, Source: shopping.SourceNone}, nil
	}

	entries := shopping.FromExtracted(uc.parser.ExtractShoppingItems(p.FullPlan), uc.clock())
	uc.toCache(sc.UserID, entries)

	if len(entries) > 0 {
		if err := uc.repo.UpsertList(ctx, repo.UpsertListOptions{UserID: sc.UserID, Entries: entries}); err != nil {
			uc.l.Warnf(ctx, "uc.Get UpsertList extracted: %v", err)
		}
	}
	return shopping.GetOutput{Entries: entries, Source: shopping.SourcePlan}, nil
}

func (uc *implUseCase) fromCache(userID string) ([]shopping.Entry, bool) {
	v, ok := uc.cache.Get(cache.KindShopping, userID)
	if !ok {
		return nil, false
	}
	entries, ok := v.([]shopping.Entry)
	if !ok {
		return nil, false
	}
	return shopping.Clone(entries), true
}

func (uc *implUseCase) toCache(userID string, entries []shopping.Entry) {
	uc.cache.Set(cache.KindShopping, userID, shopping.Clone(entries))
}
