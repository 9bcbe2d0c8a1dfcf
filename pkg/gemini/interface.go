package gemini

import "context"

// IGemini streams text generations from Gemini.
// Implementations are safe for concurrent use.
type IGemini interface {
	// Stream sends prompt and calls onFragment for every streamed text chunk.
	Stream(ctx context.Context, prompt string, onFragment func(string) error) error

	// Model returns the model being used
	Model() string
}

// New creates a new Gemini client with the given configuration
func New(ctx context.Context, cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(ctx, cfg)
}
