package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/arkanhealth/jadwal_backend/internal/api/http/handler"
	"github.com/arkanhealth/jadwal_backend/pkg/authorize"
)

func (r *Router) registerSessionRoutes(
	api fiber.Router,
	sh *handler.SessionHandler,
	authRequired fiber.Handler,
	centerHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	sessions := api.Group("/sessions", authRequired, centerHeader)

	sessions.Get("/", requirePerm(authorize.ResourceTherapySession, authorize.ActionList), sh.List)

	s := sessions.Group("/:id")
	s.Get("/", requirePerm(authorize.ResourceTherapySession, authorize.ActionRead), sh.Get)
	s.Post("/complete", requirePerm(authorize.ResourceTherapySession, authorize.ActionUpdate), sh.Complete)
	s.Post("/cancel", requirePerm(authorize.ResourceTherapySession, authorize.ActionUpdate), sh.Cancel)
}
