package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/arkanhealth/jadwal_backend/pkg/authorize"
	pasetotoken "github.com/arkanhealth/jadwal_backend/pkg/paseto"
)

const LocalsCenterID = "center_id"

// RequirePermission checks if the authenticated user has the given permission
// in the current center domain (set by CenterHeader) or sys domain.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		var domain authorize.Domain
		if cid, ok := c.Locals(LocalsCenterID).(string); ok && cid != "" {
			domain = authorize.CenterDomain(cid)
		} else {
			domain = authorize.DomainSys
		}

		subject := authorize.GroupSubject(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, domain, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
