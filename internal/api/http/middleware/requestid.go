package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/arkanhealth/jadwal_backend/pkg/constants"
	"github.com/arkanhealth/jadwal_backend/pkg/reqctx"
)

const (
	LocalRequestID = "request_id"
	LocalTraceID   = "trace_id"
	localTrace     = "trace"
)

// RequestID middleware generates or preserves request IDs and captures request metadata.
func RequestID() fiber.Handler {
	return func(c fiber.Ctx) error {
		// prefer incoming, else generate
		rid := c.Get(constants.RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals(LocalRequestID, rid)
		c.Set(constants.RequestIDHeader, rid) // send back to client
		// set it on the request headers so adaptor/http handlers can read it
		c.Request().Header.Set(constants.RequestIDHeader, rid)

		// Continue the caller's trace as a child span, or start a new root.
		trace := reqctx.NewTraceInfo()
		if parent := c.Get(constants.TraceIDHeader); parent != "" {
			trace.TraceID = parent
		}
		c.Locals(localTrace, trace)
		c.Locals(LocalTraceID, trace.TraceID)
		c.Set(constants.TraceIDHeader, trace.TraceID)

		// Store full request metadata in locals for later context attachment
		meta := &reqctx.RequestMeta{
			RequestID:   rid,
			ClientIP:    c.IP(),
			UserAgent:   c.Get("User-Agent"),
			RequestedAt: time.Now(),
		}
		c.Locals("request_meta", meta)

		return c.Next()
	}
}

// TraceFromFiber retrieves the request's trace context from Fiber locals.
func TraceFromFiber(c fiber.Ctx) (*reqctx.TraceInfo, bool) {
	v := c.Locals(localTrace)
	trace, ok := v.(*reqctx.TraceInfo)
	return trace, ok && trace != nil
}

// RequestIDFromFiber retrieves the request ID from Fiber locals.
func RequestIDFromFiber(c fiber.Ctx) (string, bool) {
	v := c.Locals(LocalRequestID)
	s, ok := v.(string)
	return s, ok && s != ""
}

// RequestMetaFromFiber retrieves the full request metadata from Fiber locals.
func RequestMetaFromFiber(c fiber.Ctx) (*reqctx.RequestMeta, bool) {
	v := c.Locals("request_meta")
	meta, ok := v.(*reqctx.RequestMeta)
	return meta, ok && meta != nil
}
