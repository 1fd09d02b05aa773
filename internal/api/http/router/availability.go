package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/arkanhealth/jadwal_backend/internal/api/http/handler"
	"github.com/arkanhealth/jadwal_backend/pkg/authorize"
)

func (r *Router) registerAvailabilityRoutes(
	api fiber.Router,
	ah *handler.AvailabilityHandler,
	authRequired fiber.Handler,
	centerHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	therapists := api.Group("/therapists", authRequired, centerHeader)

	t := therapists.Group("/:id")
	t.Get("/availability", requirePerm(authorize.ResourceAvailabilityRule, authorize.ActionList), ah.ListRules)
	t.Post("/availability", requirePerm(authorize.ResourceAvailabilityRule, authorize.ActionCreate), ah.CreateRule)
	t.Get("/openings", requirePerm(authorize.ResourceAvailabilityRule, authorize.ActionRead), ah.ListOpenings)
	t.Patch("/accepting", requirePerm(authorize.ResourceTherapist, authorize.ActionUpdate), ah.SetAccepting)

	rules := api.Group("/availability/rules", authRequired, centerHeader)
	rules.Patch("/:id", requirePerm(authorize.ResourceAvailabilityRule, authorize.ActionUpdate), ah.UpdateRule)
	rules.Delete("/:id", requirePerm(authorize.ResourceAvailabilityRule, authorize.ActionDelete), ah.DeleteRule)
}
