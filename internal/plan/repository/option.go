package repository

// GetPlanOptions selects the plan of one owner.
type GetPlanOptions struct {
	UserID string
}

// UpsertPlanOptions replaces the plan of an owner.
type UpsertPlanOptions struct {
	UserID   string
	FullPlan string
	PlanDays int
}
