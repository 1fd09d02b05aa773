package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/arkanhealth/jadwal_backend/internal/api/http/handler"
	"github.com/arkanhealth/jadwal_backend/pkg/authorize"
)

func (r *Router) registerScheduleRoutes(
	api fiber.Router,
	sh *handler.ScheduleHandler,
	authRequired fiber.Handler,
	centerHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	schedule := api.Group("/schedule", authRequired, centerHeader)

	schedule.Post("/generate", requirePerm(authorize.ResourceSchedule, authorize.ActionExecute), sh.Generate)
	schedule.Post("/conflicts", requirePerm(authorize.ResourceSchedule, authorize.ActionRead), sh.CheckConflicts)
	schedule.Post("/freeze", requirePerm(authorize.ResourceSchedule, authorize.ActionExecute), sh.Freeze)

	batches := schedule.Group("/batches")
	batches.Get("/", requirePerm(authorize.ResourceRescheduleBatch, authorize.ActionList), sh.ListBatches)
	batches.Get("/:id", requirePerm(authorize.ResourceRescheduleBatch, authorize.ActionRead), sh.GetBatch)
	batches.Post("/:id/rollback", requirePerm(authorize.ResourceRescheduleBatch, authorize.ActionExecute), sh.RollbackBatch)
}
