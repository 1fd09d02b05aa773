package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/arkanhealth/jadwal_backend/internal/service/notification"
)

type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func mapNotificationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, notification.ErrNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /notifications
func (h *NotificationHandler) List(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}
	userID, valid := userIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Page       int  `query:"page"`
		PerPage    int  `query:"per_page"`
		UnreadOnly bool `query:"unread_only"`
	}
	_ = c.Bind().Query(&q)

	items, err := h.svc.List(c.Context(), centerID, userID, q.UnreadOnly, q.Page, q.PerPage)
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, items)
}

// POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}
	userID, valid := userIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid notification id")
	}

	if err := h.svc.MarkRead(c.Context(), centerID, id, userID); err != nil {
		return mapNotificationError(c, err)
	}

	return noContent(c)
}

// POST /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}
	userID, valid := userIDFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	if err := h.svc.MarkAllRead(c.Context(), centerID, userID); err != nil {
		return mapNotificationError(c, err)
	}

	return noContent(c)
}
