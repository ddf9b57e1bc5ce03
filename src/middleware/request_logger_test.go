package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"Evaluation-System/test"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Request Logger Tests")
	defer suiteResult.PrintSummary()

	newApp := func() (*fiber.App, *observer.ObservedLogs) {
		core, logs := observer.New(zapcore.DebugLevel)
		app := fiber.New()
		app.Use(RequestLogger(zap.New(core)))
		app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString(RequestID(c)) })
		app.Get("/bad", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusBadRequest) })
		app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadGateway, "upstream") })
		return app, logs
	}

	suiteResult.Run(t, "Level By Status", 200*time.Millisecond, func(t *testing.T) {
		app, logs := newApp()
		for _, path := range []string{"/ok", "/bad", "/boom"} {
			_, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
			require.NoError(t, err)
		}

		entries := logs.All()
		require.Len(t, entries, 3)
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
		assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
		assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
		assert.EqualValues(t, fiber.StatusBadGateway, entries[2].ContextMap()["status"])
	})

	suiteResult.Run(t, "Request ID In Locals", 100*time.Millisecond, func(t *testing.T) {
		app, logs := newApp()
		req := httptest.NewRequest(fiber.MethodGet, "/ok", nil)
		req.Header.Set(fiber.HeaderXRequestID, "abc")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "abc", resp.Header.Get(fiber.HeaderXRequestID))
		assert.Equal(t, "abc", logs.All()[0].ContextMap()["requestId"])
	})
}
