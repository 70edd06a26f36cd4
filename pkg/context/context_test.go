package context

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestRequestID(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "unknown" {
		t.Errorf("empty context = %q", got)
	}
	if got := GetRequestID(WithRequestID(context.Background(), "abc")); got != "abc" {
		t.Errorf("request id = %q", got)
	}
}

func TestFromFiberCtx(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(FromFiberCtx(c)))
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "from-header")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "from-header" {
		t.Errorf("request id = %q", body)
	}
}
