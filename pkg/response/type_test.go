package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"sehrimilan/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	t.Run("formatted", func(t *testing.T) {
		// Local() makes the exact value runner-dependent; check the shape only.
		dt := response.DateTime(time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC))
		b, err := json.Marshal(dt)
		if err != nil {
			t.Fatalf("unexpected error marshaling DateTime: %v", err)
		}
		str := string(b)
		if !strings.HasPrefix(str, `"`) || !strings.HasSuffix(str, `"`) {
			t.Errorf("expected string JSON format, got %s", str)
		}
		if len(str) != len(response.DateTimeFormat)+2 {
			t.Errorf("unexpected length for %s", str)
		}
	})

	t.Run("zero is null", func(t *testing.T) {
		b, err := json.Marshal(response.DateTime(time.Time{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(b) != "null" {
			t.Errorf("expected null, got %s", b)
		}
	})
}
