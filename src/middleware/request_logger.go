package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDKey = "requestId"

// RequestLogger ใส่ X-Request-ID ให้ทุกคำขอ แล้ว log ผลลัพธ์หลังจบ
func RequestLogger(logger *zap.Logger) fiber.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("http")

	return func(c *fiber.Ctx) error {
		start := time.Now()

		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals(RequestIDKey, id)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		fields := []zap.Field{
			zap.String("requestId", id),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("took", time.Since(start)),
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			logger.Error("request failed", append(fields, zap.Error(err))...)
		case status >= fiber.StatusBadRequest:
			logger.Warn("request rejected", fields...)
		default:
			logger.Info("request", fields...)
		}
		return err
	}
}

// RequestID คืน request id ของคำขอปัจจุบัน
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIDKey).(string)
	return id
}
