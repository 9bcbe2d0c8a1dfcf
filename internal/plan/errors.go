package plan

import "errors"

var (
	ErrPlanNotFound     = errors.New("plan not found")
	ErrDayNotFound      = errors.New("day not found in plan")
	ErrInvalidDays      = errors.New("days must be between 1 and the allowed maximum")
	ErrGenerationFailed = errors.New("plan generation failed")
	ErrDemoReadOnly     = errors.New("demo plan is read-only")
)
