package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"sehrimilan/internal/chat"
	"sehrimilan/internal/middleware"
	"sehrimilan/internal/model"
	"sehrimilan/pkg/log"
)

type mockUseCase struct {
	fragments []string
	err       error
	input     chat.ReplyInput
	called    bool
}

func (m *mockUseCase) Reply(_ context.Context, _ model.Scope, in chat.ReplyInput, onFragment func(string) error) (chat.ReplyOutput, error) {
	m.called = true
	m.input = in
	var text string
	for _, f := range m.fragments {
		text += f
		if err := onFragment(f); err != nil {
			return chat.ReplyOutput{Text: text}, err
		}
	}
	return chat.ReplyOutput{Text: text}, m.err
}

func serve(uc chat.UseCase, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), uc)

	r := gin.New()
	r.POST("/chat", func(c *gin.Context) {
		middleware.SetScope(c, model.Scope{UserID: "u1"})
		c.Next()
	}, h.Reply)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReply(t *testing.T) {
	t.Run("streams fragments then done", func(t *testing.T) {
		uc := &mockUseCase{fragments: []string{"Dates ", "first."}}
		w := serve(uc, `{"message":"suhoor?","history":[{"role":"user","content":"hi"}]}`)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
			t.Errorf("content type = %q", ct)
		}
		body := w.Body.String()
		if strings.Count(body, "event:fragment") != 2 {
			t.Errorf("fragments missing: %s", body)
		}
		if !strings.Contains(body, "event:done") || !strings.Contains(body, `"text":"Dates first."`) {
			t.Errorf("done missing: %s", body)
		}
		if len(uc.input.History) != 1 || uc.input.History[0].Role != chat.RoleUser {
			t.Errorf("history = %+v", uc.input.History)
		}
	})

	t.Run("stream failure ends with error event", func(t *testing.T) {
		uc := &mockUseCase{fragments: []string{"half"}, err: chat.ErrReplyFailed}
		body := serve(uc, `{"message":"hi"}`).Body.String()
		if !strings.Contains(body, "event:error") || strings.Contains(body, "event:done") {
			t.Errorf("body = %s", body)
		}
		if !strings.Contains(body, "Nur is unavailable") {
			t.Errorf("message missing: %s", body)
		}
	})

	t.Run("unknown failure hides cause", func(t *testing.T) {
		uc := &mockUseCase{err: errors.New("secret detail")}
		body := serve(uc, `{"message":"hi"}`).Body.String()
		if strings.Contains(body, "secret detail") {
			t.Errorf("cause leaked: %s", body)
		}
	})

	t.Run("bad requests", func(t *testing.T) {
		for _, body := range []string{`{}`, `{"message":"   "}`, `{"message":"hi","history":[{"role":"robot","content":"x"}]}`} {
			uc := &mockUseCase{}
			w := serve(uc, body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("%s: status = %d, want 400", body, w.Code)
			}
			if uc.called {
				t.Errorf("%s: usecase called", body)
			}
		}
	})
}
