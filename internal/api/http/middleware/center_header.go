package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/arkanhealth/jadwal_backend/internal/repo"
	entcenter "github.com/arkanhealth/jadwal_backend/internal/repo/center"
	"github.com/arkanhealth/jadwal_backend/pkg/constants"
)

// CenterHeader reads the center ID from the X-Center-Id header. Every
// center-scoped route goes through it: the header is required, the center
// must exist and be active, and the parsed id lands in Locals for handlers
// and the RBAC middleware.
func CenterHeader(db *repo.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		idStr := c.Get(constants.CenterHeader)
		if idStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, constants.CenterHeader+" header is required")
		}

		centerID, err := uuid.Parse(idStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid "+constants.CenterHeader+" value")
		}

		exists, err := db.Center.Query().
			Where(entcenter.ID(centerID), entcenter.IsActive(true), entcenter.DeletedAtIsNil()).
			Exist(c.Context())
		if err != nil {
			return err
		}
		if !exists {
			return fiber.ErrNotFound
		}

		c.Locals(LocalsCenterID, centerID.String())

		return c.Next()
	}
}

// CenterIDFromLocals returns the center id set by CenterHeader.
func CenterIDFromLocals(c fiber.Ctx) (uuid.UUID, bool) {
	v, ok := c.Locals(LocalsCenterID).(string)
	if !ok || v == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(v)
	return id, err == nil
}
