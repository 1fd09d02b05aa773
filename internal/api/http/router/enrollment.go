package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/arkanhealth/jadwal_backend/internal/api/http/handler"
	"github.com/arkanhealth/jadwal_backend/pkg/authorize"
)

func (r *Router) registerEnrollmentRoutes(
	api fiber.Router,
	eh *handler.EnrollmentHandler,
	authRequired fiber.Handler,
	centerHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	enrollments := api.Group("/enrollments", authRequired, centerHeader)

	enrollments.Get("/", requirePerm(authorize.ResourceEnrollment, authorize.ActionList), eh.List)
	enrollments.Post("/", requirePerm(authorize.ResourceEnrollment, authorize.ActionCreate), eh.Create)

	e := enrollments.Group("/:id")
	e.Get("/", requirePerm(authorize.ResourceEnrollment, authorize.ActionRead), eh.Get)
	e.Patch("/", requirePerm(authorize.ResourceEnrollment, authorize.ActionUpdate), eh.Update)
	e.Delete("/", requirePerm(authorize.ResourceEnrollment, authorize.ActionDelete), eh.Cancel)

	e.Get("/freezes", requirePerm(authorize.ResourceFreezeWindow, authorize.ActionList), eh.ListFreezes)
	e.Post("/freezes", requirePerm(authorize.ResourceFreezeWindow, authorize.ActionCreate), eh.CreateFreeze)

	freezes := api.Group("/freezes", authRequired, centerHeader)
	freezes.Delete("/:id", requirePerm(authorize.ResourceFreezeWindow, authorize.ActionDelete), eh.CancelFreeze)
}
