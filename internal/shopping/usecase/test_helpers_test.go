package usecase

import (
	"context"
	"time"

	"sehrimilan/internal/plan"
	planRepo "sehrimilan/internal/plan/repository"
	"sehrimilan/internal/shopping"
	repo "sehrimilan/internal/shopping/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock shopping repository backed by a map
type mockListRepo struct {
	lists     map[string][]shopping.Entry
	updated   map[string]time.Time
	upserts   [][]shopping.Entry
	upsertErr error
	gets      int
	deletes   int
	now       time.Time // stamped on every upsert
}

func newMockListRepo() *mockListRepo {
	return &mockListRepo{lists: map[string][]shopping.Entry{}, updated: map[string]time.Time{}}
}

func (m *mockListRepo) GetList(ctx context.Context, opt repo.GetListOptions) (shopping.List, error) {
	m.gets++
	entries, ok := m.lists[opt.UserID]
	if !ok {
		return shopping.List{}, nil
	}
	return shopping.List{UserID: opt.UserID, Entries: shopping.Clone(entries), UpdatedAt: m.updated[opt.UserID]}, nil
}

func (m *mockListRepo) UpsertList(ctx context.Context, opt repo.UpsertListOptions) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserts = append(m.upserts, shopping.Clone(opt.Entries))
	m.lists[opt.UserID] = shopping.Clone(opt.Entries)
	m.updated[opt.UserID] = m.now
	return nil
}

func (m *mockListRepo) DeleteList(ctx context.Context, userID string) error {
	m.deletes++
	delete(m.lists, userID)
	delete(m.updated, userID)
	return nil
}

// Mock plan repository serving fixed plans
type mockPlanRepo struct {
	plans   map[string]string
	updated map[string]time.Time
}

func (m *mockPlanRepo) GetPlan(ctx context.Context, opt planRepo.GetPlanOptions) (plan.Plan, error) {
	text, ok := m.plans[opt.UserID]
	if !ok {
		return plan.Plan{}, nil
	}
	return plan.Plan{UserID: opt.UserID, FullPlan: text, UpdatedAt: m.updated[opt.UserID]}, nil
}

func (m *mockPlanRepo) UpsertPlan(ctx context.Context, opt planRepo.UpsertPlanOptions) (plan.Plan, error) {
	m.plans[opt.UserID] = opt.FullPlan
	return plan.Plan{UserID: opt.UserID, FullPlan: opt.FullPlan}, nil
}

func (m *mockPlanRepo) DeletePlan(ctx context.Context, userID string) error {
	delete(m.plans, userID)
	return nil
}
