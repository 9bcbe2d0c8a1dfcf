package plan

import "time"

// Plan is the stored raw plan of one owner. FullPlan is replaced wholesale by every generation.
type Plan struct {
	UserID    string
	FullPlan  string
	PlanDays  int
	UpdatedAt time.Time
}

// Day is one parsed day ready for display.
type Day struct {
	Index   int
	Heading string
	Text    string
	HTML    string
}

// --- UseCase Inputs ---

type GenerateInput struct {
	Days        int
	FamilySize  int
	DailyBudget int
	CuisineType string
	AgeGroups   string
	Equipment   string
	FoodItems   string
}

type GetInput struct {
	// Cached answers from the local cache when it holds the plan.
	Cached bool
}

type GetDayInput struct {
	Index  int
	Cached bool
}

// --- UseCase Outputs ---

// Source tells where a returned plan came from.
type Source string

const (
	SourceCache Source = "cache"
	SourceStore Source = "store"
	SourceDemo  Source = "demo"
)

type GenerateOutput struct {
	Plan     Plan
	DayCount int
}

type GetOutput struct {
	Plan   Plan
	Days   []Day
	Source Source
}

type GetDayOutput struct {
	Day      Day
	DayCount int
}
