package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/arkanhealth/jadwal_backend/internal/api/http/middleware"
	pasetotoken "github.com/arkanhealth/jadwal_backend/pkg/paseto"
)

func centerIDFromLocals(c fiber.Ctx) (uuid.UUID, bool) {
	return middleware.CenterIDFromLocals(c)
}

func userIDFromLocals(c fiber.Ctx) (uuid.UUID, bool) {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

// parseDate accepts either a bare date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func parseUUIDPtr(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
