package usecase

import (
	"context"
	"sync"

	"sehrimilan/internal/generator"
	"sehrimilan/internal/plan"
	repo "sehrimilan/internal/plan/repository"
	"sehrimilan/internal/shopping"
	shoppingRepo "sehrimilan/internal/shopping/repository"
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

// Mock plan repository backed by a map
type mockPlanRepo struct {
	mu      sync.Mutex
	plans   map[string]plan.Plan
	getErr  error
	upserts int
	deletes int
	gets    int
}

func newMockPlanRepo() *mockPlanRepo {
	return &mockPlanRepo{plans: map[string]plan.Plan{}}
}

func (m *mockPlanRepo) GetPlan(ctx context.Context, opt repo.GetPlanOptions) (plan.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if m.getErr != nil {
		return plan.Plan{}, m.getErr
	}
	return m.plans[opt.UserID], nil
}

func (m *mockPlanRepo) UpsertPlan(ctx context.Context, opt repo.UpsertPlanOptions) (plan.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts++
	p := plan.Plan{UserID: opt.UserID, FullPlan: opt.FullPlan, PlanDays: opt.PlanDays}
	m.plans[opt.UserID] = p
	return p, nil
}

func (m *mockPlanRepo) DeletePlan(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	delete(m.plans, userID)
	return nil
}

// Mock shopping repository recording deletes
type mockShoppingRepo struct {
	deleted []string
}

func (m *mockShoppingRepo) GetList(ctx context.Context, opt shoppingRepo.GetListOptions) (shopping.List, error) {
	return shopping.List{}, nil
}

func (m *mockShoppingRepo) UpsertList(ctx context.Context, opt shoppingRepo.UpsertListOptions) error {
	return nil
}

func (m *mockShoppingRepo) DeleteList(ctx context.Context, userID string) error {
	m.deleted = append(m.deleted, userID)
	return nil
}

// Mock generator returning a canned plan or error
type mockGenerator struct {
	raw   string
	err   error
	calls int
}

func (m *mockGenerator) Generate(ctx context.Context, input generator.Input) (string, error) {
	m.calls++
	return m.raw, m.err
}
