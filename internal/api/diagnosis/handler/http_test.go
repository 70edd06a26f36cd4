package diagnosisHandler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"MedicalAssistant/internal/api/diagnosis"
	"MedicalAssistant/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

type fakeService struct {
	sessions map[string]string
	texts    []string
}

func (f *fakeService) Languages(ctx context.Context) []diagnosis.LanguageInfo {
	return []diagnosis.LanguageInfo{{Code: "en", Name: "English", NativeName: "English"}}
}

func (f *fakeService) StartSession(ctx context.Context, req diagnosis.StartSessionRequest) (diagnosis.SessionResponse, error) {
	lang := req.Language
	if lang == "" {
		lang = "en"
	}
	f.sessions["s1"] = lang
	return diagnosis.SessionResponse{
		ID:       "s1",
		Language: lang,
		State:    "awaiting_input",
		Result:   &diagnosis.DisplayResult{Kind: diagnosis.KindWelcome, Language: lang, Lines: []string{"hello"}},
	}, nil
}

func (f *fakeService) SubmitUtterance(ctx context.Context, id string, req diagnosis.UtteranceRequest) (*diagnosis.DisplayResult, error) {
	if _, ok := f.sessions[id]; !ok {
		return nil, diagnosis.ErrSessionNotFound
	}
	f.texts = append(f.texts, req.Text)
	return &diagnosis.DisplayResult{Kind: diagnosis.KindPrediction, Symptoms: []string{"itching"}}, nil
}

func (f *fakeService) SelectLanguage(ctx context.Context, id string, req diagnosis.LanguageRequest) (*diagnosis.DisplayResult, error) {
	if _, ok := f.sessions[id]; !ok {
		return nil, diagnosis.ErrSessionNotFound
	}
	f.sessions[id] = req.Language
	return &diagnosis.DisplayResult{Kind: diagnosis.KindLanguageChanged, Language: req.Language}, nil
}

func (f *fakeService) Reset(ctx context.Context, id string) (*diagnosis.DisplayResult, error) {
	if _, ok := f.sessions[id]; !ok {
		return nil, diagnosis.ErrSessionNotFound
	}
	return &diagnosis.DisplayResult{Kind: diagnosis.KindWelcome}, nil
}

func (f *fakeService) EndSession(ctx context.Context, id string) error {
	if _, ok := f.sessions[id]; !ok {
		return diagnosis.ErrSessionNotFound
	}
	delete(f.sessions, id)
	return nil
}

func newTestApp(t *testing.T) (*fiber.App, *fakeService) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	svc := &fakeService{sessions: map[string]string{}}
	mw := middleware.New(log, middleware.Options{})

	app := fiber.New(fiber.Config{
		StrictRouting: true,
		JSONEncoder:   jsoniter.Marshal,
		JSONDecoder:   jsoniter.Unmarshal,
	})
	app.Use(mw.NewRequestIDMiddleware())
	New(log, validator.New(), mw, svc).Start(app.Group("/api/v1"))
	return app, svc
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	out := map[string]interface{}{}
	if len(raw) > 0 {
		if err := jsoniter.Unmarshal(raw, &out); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, raw, err)
		}
	}
	return resp.StatusCode, out
}

func TestSessionRoutes(t *testing.T) {
	app, svc := newTestApp(t)

	code, body := do(t, app, "GET", "/api/v1/diagnosis/languages", "")
	if code != fiber.StatusOK || len(body["languages"].([]interface{})) != 1 {
		t.Fatalf("languages: %d %v", code, body)
	}

	code, body = do(t, app, "POST", "/api/v1/diagnosis/sessions", `{"language":"hi"}`)
	if code != fiber.StatusCreated || body["id"] != "s1" || body["language"] != "hi" {
		t.Fatalf("start: %d %v", code, body)
	}

	code, body = do(t, app, "POST", "/api/v1/diagnosis/sessions/s1/utterances", `{"text":"I have itching"}`)
	if code != fiber.StatusOK || body["kind"] != "prediction" {
		t.Fatalf("utterance: %d %v", code, body)
	}
	if len(svc.texts) != 1 || svc.texts[0] != "I have itching" {
		t.Errorf("service received %q", svc.texts)
	}

	code, body = do(t, app, "PUT", "/api/v1/diagnosis/sessions/s1/language", `{"language":"te"}`)
	if code != fiber.StatusOK || body["language"] != "te" {
		t.Fatalf("language: %d %v", code, body)
	}

	code, _ = do(t, app, "POST", "/api/v1/diagnosis/sessions/s1/reset", "")
	if code != fiber.StatusOK {
		t.Fatalf("reset: %d", code)
	}

	code, _ = do(t, app, "DELETE", "/api/v1/diagnosis/sessions/s1", "")
	if code != fiber.StatusNoContent {
		t.Fatalf("end: %d", code)
	}

	code, body = do(t, app, "POST", "/api/v1/diagnosis/sessions/s1/reset", "")
	if code != fiber.StatusNotFound || body["error"] != "diagnosis session not found" {
		t.Fatalf("reset after end: %d %v", code, body)
	}
}

func TestStartSessionWithoutBody(t *testing.T) {
	app, _ := newTestApp(t)

	code, body := do(t, app, "POST", "/api/v1/diagnosis/sessions", "")
	if code != fiber.StatusCreated || body["language"] != "en" {
		t.Fatalf("start: %d %v", code, body)
	}
}

func TestRequestValidation(t *testing.T) {
	app, svc := newTestApp(t)
	do(t, app, "POST", "/api/v1/diagnosis/sessions", "")

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"unknown start language", "POST", "/api/v1/diagnosis/sessions", `{"language":"fr"}`},
		{"missing text", "POST", "/api/v1/diagnosis/sessions/s1/utterances", `{}`},
		{"malformed json", "POST", "/api/v1/diagnosis/sessions/s1/utterances", `{"text":`},
		{"unknown language", "PUT", "/api/v1/diagnosis/sessions/s1/language", `{"language":"de"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, app, tt.method, tt.path, tt.body)
			if code != fiber.StatusBadRequest || body["code"] != "VALIDATION_ERROR" {
				t.Errorf("%d %v", code, body)
			}
		})
	}

	if len(svc.texts) != 0 {
		t.Errorf("service called with %q", svc.texts)
	}
}

func TestChatRequiresUpgrade(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/diagnosis/sessions/s1/ws", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != fiber.StatusUpgradeRequired {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUpgradeRequired)
	}
}

func TestChatTurn(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := &fakeService{sessions: map[string]string{"s1": "en"}}
	h := New(log, validator.New(), middleware.New(log, middleware.Options{}), svc)
	ctx := context.Background()

	reply := h.chatTurn(ctx, "s1", diagnosis.ChatMessage{Type: diagnosis.ChatUtterance, Text: "itching"})
	if reply.err != nil || reply.Result.Kind != diagnosis.KindPrediction {
		t.Errorf("utterance reply = %+v", reply)
	}

	reply = h.chatTurn(ctx, "s1", diagnosis.ChatMessage{Type: diagnosis.ChatLanguage, Language: "xx"})
	if reply.err == nil || reply.Error == "" {
		t.Errorf("invalid language reply = %+v", reply)
	}

	reply = h.chatTurn(ctx, "s1", diagnosis.ChatMessage{Type: "shout"})
	if reply.err == nil {
		t.Errorf("unknown type reply = %+v", reply)
	}

	reply = h.chatTurn(ctx, "gone", diagnosis.ChatMessage{Type: diagnosis.ChatReset})
	if reply.Error != "diagnosis session not found" {
		t.Errorf("missing session reply = %+v", reply)
	}

	long := strings.Repeat("a", diagnosis.MaxUtteranceRunes+1)
	reply = h.chatTurn(ctx, "s1", diagnosis.ChatMessage{Type: diagnosis.ChatUtterance, Text: long})
	if reply.err == nil || reply.Result != nil {
		t.Errorf("oversized utterance reply = %+v", reply)
	}
	if len(svc.texts) != 1 {
		t.Errorf("service called %d times, want 1", len(svc.texts))
	}
}
