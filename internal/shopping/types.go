package shopping

import "time"

// Category groups entries on the shopping page.
type Category string

const (
	CategoryProduce  Category = "Produce"
	CategoryMeat     Category = "Meat"
	CategoryGrocery  Category = "Grocery"
	CategoryPersonal Category = "Personal"
)

const (
	// ManualDay is the source day of entries added by hand.
	ManualDay = "Manual"
)

// Entry is one shopping-list line item.
type Entry struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Completed bool     `json:"completed"`
	Day       string   `json:"day"`
	Category  Category `json:"category"`
}

// List is the persisted shopping list of one owner.
type List struct {
	UserID    string
	Entries   []Entry
	UpdatedAt time.Time
}

// --- UseCase Inputs ---

type GetInput struct {
	// Refresh skips the stored list and re-extracts from the current plan.
	Refresh bool
	// Cached answers from the local cache when it holds the list.
	Cached bool
}

type AddInput struct {
	Name string
}

// --- UseCase Outputs ---

// Source tells where a returned list came from.
type Source string

const (
	SourceCache    Source = "cache"
	SourceStore    Source = "store"
	SourcePlan     Source = "plan"
	SourceDemo     Source = "demo"
	SourceNone     Source = "none"
	SourceMutation Source = "mutation"
)

type GetOutput struct {
	Entries []Entry
	Source  Source
}

type MutateOutput struct {
	Entries []Entry
}

type ShareOutput struct {
	Text string
	URL  string
}
