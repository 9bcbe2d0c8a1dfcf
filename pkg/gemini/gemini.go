package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type geminiImpl struct {
	client *genai.Client
	model  string
}

func newGeminiImpl(ctx context.Context, cfg Config) (*geminiImpl, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}
	return &geminiImpl{client: client, model: cfg.Model}, nil
}

// Stream runs a streaming generation. The stream ends cleanly when the iterator is exhausted.
func (g *geminiImpl) Stream(ctx context.Context, prompt string, onFragment func(string) error) error {
	for resp, err := range g.client.Models.GenerateContentStream(ctx, g.model, genai.Text(prompt), nil) {
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("gemini: stream failed: %w", err)
		}
		text := resp.Text()
		if text == "" {
			continue
		}
		if err := onFragment(text); err != nil {
			return err
		}
	}
	return nil
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}
