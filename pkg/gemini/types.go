package gemini

import (
	"errors"
	"net/http"
)

// Config configures the Gemini streaming client.
type Config struct {
	APIKey string
	Model  string

	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL    string
	HTTPClient *http.Client
}

// Validate fills defaults and checks required fields.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("gemini: api key is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	return nil
}
