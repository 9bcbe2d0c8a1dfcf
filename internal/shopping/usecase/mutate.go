package usecase

import (
	"context"

	"sehrimilan/internal/model"
	"sehrimilan/internal/shopping"
	repo "sehrimilan/internal/shopping/repository"
)

// Add prepends a manual entry. Manual entries skip filtering and dedupe.
func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, input shopping.AddInput) (shopping.MutateOutput, error) {
	entry, err := shopping.NewManual(input.Name)
	if err != nil {
		return shopping.MutateOutput{}, err
	}
	return uc.mutate(ctx, sc, "Add", func(entries []shopping.Entry) ([]shopping.Entry, error) {
		return shopping.Prepend(entries, entry), nil
	})
}

// Toggle flips the completed flag of one entry.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, id string) (shopping.MutateOutput, error) {
	return uc.mutate(ctx, sc, "Toggle", func(entries []shopping.Entry) ([]shopping.Entry, error) {
		return shopping.Toggle(entries, id)
	})
}

// Delete removes one entry.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) (shopping.MutateOutput, error) {
	return uc.mutate(ctx, sc, "Delete", func(entries []shopping.Entry) ([]shopping.Entry, error) {
		return shopping.Remove(entries, id)
	})
}

// mutate applies fn to the current list and writes the full result to the store and the cache.
func (uc *implUseCase) mutate(ctx context.Context, sc model.Scope, op string, fn func([]shopping.Entry) ([]shopping.Entry, error)) (shopping.MutateOutput, error) {
	if sc.Demo {
		return shopping.MutateOutput{}, shopping.ErrDemoReadOnly
	}

	current, err := uc.current(ctx, sc, op)
	if err != nil {
		return shopping.MutateOutput{}, err
	}

	next, err := fn(current)
	if err != nil {
		return shopping.MutateOutput{}, err
	}

	if err := uc.repo.UpsertList(ctx, repo.UpsertListOptions{UserID: sc.UserID, Entries: next}); err != nil {
		uc.l.Errorf(ctx, "uc.%s UpsertList: %v", op, err)
		return shopping.MutateOutput{}, err
	}
	uc.toCache(sc.UserID, next)

	return shopping.MutateOutput{Entries: next}, nil
}

// current returns the list a mutation applies to. Stored entries are taken as
// written, without dedupe.
func (uc *implUseCase) current(ctx context.Context, sc model.Scope, op string) ([]shopping.Entry, error) {
	stored, found, err := uc.readStored(ctx, sc, op)
	if err != nil {
		return nil, err
	}
	if found {
		return stored, nil
	}

	out, err := uc.extract(ctx, sc)
	if err != nil {
		return nil, err
	}
	return out.Entries, nil
}
