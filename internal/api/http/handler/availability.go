package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/arkanhealth/jadwal_backend/internal/service/availability"
)

type AvailabilityHandler struct {
	svc availability.Service
}

func NewAvailabilityHandler(svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

func mapAvailabilityError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, availability.ErrTherapistNotFound),
		errors.Is(err, availability.ErrRuleNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, availability.ErrInvalidDay),
		errors.Is(err, availability.ErrInvalidTimeRange),
		errors.Is(err, availability.ErrInvalidRange):
		return badRequest(c, err.Error())
	case errors.Is(err, availability.ErrRuleOverlaps):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /therapists/:id/availability
func (h *AvailabilityHandler) ListRules(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	therapistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid therapist id")
	}

	rules, err := h.svc.ListRules(c.Context(), centerID, therapistID)
	if err != nil {
		return mapAvailabilityError(c, err)
	}

	return ok(c, rules)
}

// POST /therapists/:id/availability
func (h *AvailabilityHandler) CreateRule(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	therapistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid therapist id")
	}

	var body struct {
		DayOfWeek   int        `json:"day_of_week"`
		StartHour   int        `json:"start_hour"`
		StartMinute int        `json:"start_minute"`
		EndHour     int        `json:"end_hour"`
		EndMinute   int        `json:"end_minute"`
		ValidFrom   time.Time  `json:"valid_from"`
		ValidUntil  *time.Time `json:"valid_until"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ValidFrom.IsZero() {
		return badRequest(c, "valid_from is required")
	}

	rule, err := h.svc.CreateRule(c.Context(), centerID, therapistID, availability.CreateRuleRequest{
		DayOfWeek:   body.DayOfWeek,
		StartHour:   body.StartHour,
		StartMinute: body.StartMinute,
		EndHour:     body.EndHour,
		EndMinute:   body.EndMinute,
		ValidFrom:   body.ValidFrom,
		ValidUntil:  body.ValidUntil,
	})
	if err != nil {
		return mapAvailabilityError(c, err)
	}

	return created(c, rule)
}

// PATCH /availability/rules/:id
func (h *AvailabilityHandler) UpdateRule(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	ruleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid rule id")
	}

	var body struct {
		StartHour   *int       `json:"start_hour"`
		StartMinute *int       `json:"start_minute"`
		EndHour     *int       `json:"end_hour"`
		EndMinute   *int       `json:"end_minute"`
		ValidUntil  *time.Time `json:"valid_until"`
		IsActive    *bool      `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	rule, err := h.svc.UpdateRule(c.Context(), centerID, ruleID, availability.UpdateRuleRequest{
		StartHour:   body.StartHour,
		StartMinute: body.StartMinute,
		EndHour:     body.EndHour,
		EndMinute:   body.EndMinute,
		ValidUntil:  body.ValidUntil,
		IsActive:    body.IsActive,
	})
	if err != nil {
		return mapAvailabilityError(c, err)
	}

	return ok(c, rule)
}

// DELETE /availability/rules/:id
func (h *AvailabilityHandler) DeleteRule(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	ruleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid rule id")
	}

	if err := h.svc.DeleteRule(c.Context(), centerID, ruleID); err != nil {
		return mapAvailabilityError(c, err)
	}

	return noContent(c)
}

// GET /therapists/:id/openings
func (h *AvailabilityHandler) ListOpenings(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	therapistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid therapist id")
	}

	var q struct {
		From string `query:"from"`
		To   string `query:"to"`
	}
	_ = c.Bind().Query(&q)

	from := time.Now()
	to := from.AddDate(0, 0, 14)

	if q.From != "" {
		if t, err := parseDate(q.From); err == nil {
			from = t
		}
	}
	if q.To != "" {
		if t, err := parseDate(q.To); err == nil {
			to = t
		}
	}

	openings, err := h.svc.ListOpenings(c.Context(), centerID, therapistID, from, to)
	if err != nil {
		return mapAvailabilityError(c, err)
	}

	return ok(c, openings)
}

// PATCH /therapists/:id/accepting
func (h *AvailabilityHandler) SetAccepting(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	therapistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid therapist id")
	}

	var body struct {
		Accepting bool `json:"accepting"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	th, err := h.svc.SetAccepting(c.Context(), centerID, therapistID, body.Accepting)
	if err != nil {
		return mapAvailabilityError(c, err)
	}

	return ok(c, th)
}
