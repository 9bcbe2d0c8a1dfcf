package generator

const (
	// DefaultChunkSize is the number of days asked for in one request.
	DefaultChunkSize = 5

	// DefaultMaxDays caps a single plan.
	DefaultMaxDays = 30

	// segmentSeparator joins chunk outputs.
	segmentSeparator = "\n\n"
)
