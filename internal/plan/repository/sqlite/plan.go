package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sehrimilan/internal/plan"
	repo "sehrimilan/internal/plan/repository"
)

// GetPlan loads the plan of one owner. A NULL plan text loads as empty.
func (r *implRepository) GetPlan(ctx context.Context, opt repo.GetPlanOptions) (plan.Plan, error) {
	const query = `SELECT id, full_plan, plan_days, updated_at FROM plans WHERE id = ?`

	var (
		p        plan.Plan
		fullPlan sql.NullString
		planDays sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, query, opt.UserID).Scan(&p.UserID, &fullPlan, &planDays, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return plan.Plan{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetPlan"), err)
		return plan.Plan{}, repo.ErrFailedToGet
	}

	p.FullPlan = fullPlan.String
	p.PlanDays = int(planDays.Int64)
	return p, nil
}

// UpsertPlan stores the plan verbatim, replacing the previous one.
func (r *implRepository) UpsertPlan(ctx context.Context, opt repo.UpsertPlanOptions) (plan.Plan, error) {
	const query = `
		INSERT INTO plans (id, full_plan, plan_days, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			full_plan = excluded.full_plan,
			plan_days = excluded.plan_days,
			updated_at = excluded.updated_at`

	now := r.clock().UTC().Truncate(time.Millisecond)
	if _, err := r.db.ExecContext(ctx, query, opt.UserID, opt.FullPlan, opt.PlanDays, now); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertPlan"), err)
		return plan.Plan{}, repo.ErrFailedToUpsert
	}

	return plan.Plan{
		UserID:    opt.UserID,
		FullPlan:  opt.FullPlan,
		PlanDays:  opt.PlanDays,
		UpdatedAt: now,
	}, nil
}

// DeletePlan removes the plan of userID. Deleting a missing plan is not an error.
func (r *implRepository) DeletePlan(ctx context.Context, userID string) error {
	const query = `DELETE FROM plans WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeletePlan"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
