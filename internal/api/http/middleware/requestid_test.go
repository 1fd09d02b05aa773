package middleware

import (
	"io"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/arkanhealth/jadwal_backend/pkg/constants"
)

func TestRequestIDMintsCorrelationIDs(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c fiber.Ctx) error {
		trace, ok := TraceFromFiber(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.SendString(trace.TraceID)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if resp.Header.Get(constants.RequestIDHeader) == "" {
		t.Error("request id header not set")
	}
	traceID := resp.Header.Get(constants.TraceIDHeader)
	if !regexp.MustCompile(`^[0-9a-f]{32}$`).MatchString(traceID) {
		t.Errorf("trace id %q is not 32 hex chars", traceID)
	}
}

func TestRequestIDContinuesIncomingTrace(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c fiber.Ctx) error {
		trace, ok := TraceFromFiber(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.SendString(trace.TraceID)
	})

	const parent = "0123456789abcdef0123456789abcdef"
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(constants.TraceIDHeader, parent)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != parent {
		t.Errorf("handler saw trace %q, want %q", body, parent)
	}
	if got := resp.Header.Get(constants.TraceIDHeader); got != parent {
		t.Errorf("echoed trace %q, want %q", got, parent)
	}
}
