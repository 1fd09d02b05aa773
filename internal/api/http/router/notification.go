package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/arkanhealth/jadwal_backend/internal/api/http/handler"
)

func (r *Router) registerNotificationRoutes(
	api fiber.Router,
	nh *handler.NotificationHandler,
	authRequired fiber.Handler,
	centerHeader fiber.Handler,
) {
	notifications := api.Group("/notifications", authRequired, centerHeader)

	// Recipient scoping happens in the service; no extra RBAC gate here.
	notifications.Get("/", nh.List)
	notifications.Post("/read-all", nh.MarkAllRead)
	notifications.Post("/:id/read", nh.MarkRead)
}
