package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/opencatalog/metacat/internal/middleware"
)

func versionApp() *fiber.App {
	app := fiber.New()
	app.Get("/probe", middleware.VersionMiddleware(), func(c *fiber.Ctx) error {
		return c.SendString(middleware.APIVersion(c))
	})
	return app
}

// Test that the negotiated version is stored and echoed on the response
func TestVersionMiddlewareDefault(t *testing.T) {
	app := versionApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if got := resp.Header.Get("X-Api-Version"); got != "1.0.0" {
		t.Errorf("Expected response header 1.0.0, got %q", got)
	}

	body := make([]byte, 16)
	n, _ := resp.Body.Read(body)
	if string(body[:n]) != "1.0.0" {
		t.Errorf("Expected stored version 1.0.0, got %q", string(body[:n]))
	}
}

// Test that the 1.0 alias normalizes to 1.0.0
func TestVersionMiddlewareAlias(t *testing.T) {
	app := versionApp()

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("X-Api-Version", "1.0")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if got := resp.Header.Get("X-Api-Version"); got != "1.0.0" {
		t.Errorf("Expected alias to normalize to 1.0.0, got %q", got)
	}
}

// Test that an explicit version passes through unchanged
func TestVersionMiddlewarePassthrough(t *testing.T) {
	app := versionApp()

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("X-Api-Version", "2.1.0")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if got := resp.Header.Get("X-Api-Version"); got != "2.1.0" {
		t.Errorf("Expected 2.1.0 to pass through, got %q", got)
	}
}
