package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRequestIDMiddleware(t *testing.T) {
	m := New(quietLogger(), Options{})
	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(m.GetRequestID(c))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if len(body) != 26 || resp.Header.Get(RequestIDKey) != string(body) {
		t.Errorf("generated id = %q, header = %q", body, resp.Header.Get(RequestIDKey))
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDKey, "client-id")
	resp, _ = app.Test(req)
	body, _ = io.ReadAll(resp.Body)
	if string(body) != "client-id" {
		t.Errorf("forwarded id = %q", body)
	}

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDKey, "bad id!")
	resp, _ = app.Test(req)
	body, _ = io.ReadAll(resp.Body)
	if len(body) != 26 {
		t.Errorf("malformed client id kept: %q", body)
	}
}

func TestRateLimiter(t *testing.T) {
	m := New(quietLogger(), Options{RatePerSecond: 0.001, Burst: 2})
	app := fiber.New()
	app.Get("/", m.NewRateLimiter, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	var codes []int
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		if err != nil {
			t.Fatalf("app.Test error: %v", err)
		}
		codes = append(codes, resp.StatusCode)
	}

	want := []int{fiber.StatusNoContent, fiber.StatusNoContent, fiber.StatusTooManyRequests}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("status codes = %v, want %v", codes, want)
		}
	}
}

func TestSanitizeRequestBody(t *testing.T) {
	got := sanitizeRequestBody("/api/v1/diagnosis/sessions/1/utterances", []byte(`{"text":"I have itching","language":"en"}`))
	if strings.Contains(got, "itching") || !strings.Contains(got, `"language":"en"`) {
		t.Errorf("sanitized = %s", got)
	}
	if got := sanitizeRequestBody("/", []byte("plain")); got != "[non-JSON body]" {
		t.Errorf("non-JSON = %s", got)
	}
}
