package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/arkanhealth/jadwal_backend/internal/service/session"
)

type SessionHandler struct {
	svc session.Service
}

func NewSessionHandler(svc session.Service) *SessionHandler {
	return &SessionHandler{svc: svc}
}

func mapSessionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, session.ErrInvalidRange),
		errors.Is(err, session.ErrReasonRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, session.ErrNotScheduled),
		errors.Is(err, session.ErrAlreadyDone):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /sessions
func (h *SessionHandler) List(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	var q struct {
		Page         int    `query:"page"`
		PerPage      int    `query:"per_page"`
		TherapistID  string `query:"therapist_id"`
		EnrollmentID string `query:"enrollment_id"`
		StudentID    string `query:"student_id"`
		Status       string `query:"status"`
		From         string `query:"from"`
		To           string `query:"to"`
	}
	_ = c.Bind().Query(&q)

	req := session.ListRequest{Page: q.Page, PerPage: q.PerPage}
	var err error
	if req.TherapistID, err = parseUUIDPtr(q.TherapistID); err != nil {
		return badRequest(c, "invalid therapist_id")
	}
	if req.EnrollmentID, err = parseUUIDPtr(q.EnrollmentID); err != nil {
		return badRequest(c, "invalid enrollment_id")
	}
	if req.StudentID, err = parseUUIDPtr(q.StudentID); err != nil {
		return badRequest(c, "invalid student_id")
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.From != "" {
		t, err := parseDate(q.From)
		if err != nil {
			return badRequest(c, "invalid from")
		}
		req.From = &t
	}
	if q.To != "" {
		t, err := parseDate(q.To)
		if err != nil {
			return badRequest(c, "invalid to")
		}
		req.To = &t
	}

	res, err := h.svc.List(c.Context(), centerID, req)
	if err != nil {
		return mapSessionError(c, err)
	}

	return ok(c, fiber.Map{
		"items":       res.Data,
		"total":       res.Total,
		"page":        res.Page,
		"per_page":    res.PerPage,
		"total_pages": res.TotalPages,
	})
}

// GET /sessions/:id
func (h *SessionHandler) Get(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	s, err := h.svc.Get(c.Context(), centerID, id)
	if err != nil {
		return mapSessionError(c, err)
	}

	return ok(c, s)
}

// POST /sessions/:id/complete
func (h *SessionHandler) Complete(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	var body struct {
		Notes string `json:"notes"`
	}
	_ = c.Bind().JSON(&body)

	s, err := h.svc.Complete(c.Context(), centerID, id, body.Notes)
	if err != nil {
		return mapSessionError(c, err)
	}

	return ok(c, s)
}

// POST /sessions/:id/cancel
func (h *SessionHandler) Cancel(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	s, err := h.svc.Cancel(c.Context(), centerID, id, body.Reason)
	if err != nil {
		return mapSessionError(c, err)
	}

	return ok(c, s)
}
