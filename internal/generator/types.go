package generator

import "context"

// Transport is a streaming text-generation channel. One call is one request:
// send prompt, receive zero or more fragments, then a single completion.
// A nil return means the stream finished cleanly.
type Transport interface {
	Stream(ctx context.Context, prompt string, onFragment func(string) error) error
}

// Range is an inclusive span of plan days generated by one request.
type Range struct {
	Start int
	End   int
}

// Household is the user context carried in every instruction.
type Household struct {
	FamilySize  int
	DailyBudget int
	CuisineType string
	AgeGroups   string
	Equipment   string
	FoodItems   string
}

// Input asks for a plan of Days days.
type Input struct {
	Days      int
	Household Household
}

// Options tunes a Generator.
type Options struct {
	ChunkSize int
	MaxDays   int
}
