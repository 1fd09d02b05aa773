package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/arkanhealth/jadwal_backend/internal/schema"
	"github.com/arkanhealth/jadwal_backend/internal/service/enrollment"
)

type EnrollmentHandler struct {
	svc enrollment.Service
}

func NewEnrollmentHandler(svc enrollment.Service) *EnrollmentHandler {
	return &EnrollmentHandler{svc: svc}
}

func mapEnrollmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, enrollment.ErrNotFound),
		errors.Is(err, enrollment.ErrTherapistNotFound),
		errors.Is(err, enrollment.ErrRoomNotFound),
		errors.Is(err, enrollment.ErrFreezeNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, enrollment.ErrInvalidDateRange),
		errors.Is(err, enrollment.ErrInvalidFlexibility),
		errors.Is(err, enrollment.ErrInvalidWindow),
		errors.Is(err, enrollment.ErrInvalidPhone),
		errors.Is(err, enrollment.ErrFreezeOutsideTerm):
		return badRequest(c, err.Error())
	case errors.Is(err, enrollment.ErrNotActive),
		errors.Is(err, enrollment.ErrFreezeNotPending),
		errors.Is(err, enrollment.ErrFreezeOverlapsActive):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /enrollments
func (h *EnrollmentHandler) Create(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	var body struct {
		StudentID          string              `json:"student_id"`
		TherapistID        string              `json:"therapist_id"`
		RoomID             *string             `json:"room_id"`
		GuardianPhone      string              `json:"guardian_phone"`
		StartDate          time.Time           `json:"start_date"`
		EndDate            time.Time           `json:"end_date"`
		SessionCount       int                 `json:"session_count"`
		SessionsPerWeek    int                 `json:"sessions_per_week"`
		SessionDurationMin int                 `json:"session_duration_min"`
		PreferredDays      []int               `json:"preferred_days"`
		AvoidDays          []int               `json:"avoid_days"`
		PreferredWindows   []schema.TimeWindow `json:"preferred_windows"`
		AvoidWindows       []schema.TimeWindow `json:"avoid_windows"`
		Flexibility        float64             `json:"flexibility"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	studentID, err := uuid.Parse(body.StudentID)
	if err != nil {
		return badRequest(c, "invalid student_id")
	}
	therapistID, err := uuid.Parse(body.TherapistID)
	if err != nil {
		return badRequest(c, "invalid therapist_id")
	}

	req := enrollment.CreateRequest{
		StudentID:          studentID,
		TherapistID:        therapistID,
		GuardianPhone:      body.GuardianPhone,
		StartDate:          body.StartDate,
		EndDate:            body.EndDate,
		SessionCount:       body.SessionCount,
		SessionsPerWeek:    body.SessionsPerWeek,
		SessionDurationMin: body.SessionDurationMin,
		PreferredDays:      body.PreferredDays,
		AvoidDays:          body.AvoidDays,
		PreferredWindows:   body.PreferredWindows,
		AvoidWindows:       body.AvoidWindows,
		Flexibility:        body.Flexibility,
	}
	if body.RoomID != nil {
		roomID, err := uuid.Parse(*body.RoomID)
		if err != nil {
			return badRequest(c, "invalid room_id")
		}
		req.RoomID = &roomID
	}

	enr, err := h.svc.Create(c.Context(), centerID, req)
	if err != nil {
		return mapEnrollmentError(c, err)
	}

	return created(c, enr)
}

// GET /enrollments
func (h *EnrollmentHandler) List(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	var q struct {
		Page        int    `query:"page"`
		PerPage     int    `query:"per_page"`
		Status      string `query:"status"`
		TherapistID string `query:"therapist_id"`
		StudentID   string `query:"student_id"`
	}
	_ = c.Bind().Query(&q)

	req := enrollment.ListRequest{Page: q.Page, PerPage: q.PerPage}
	if q.Status != "" {
		req.Status = &q.Status
	}
	var err error
	if req.TherapistID, err = parseUUIDPtr(q.TherapistID); err != nil {
		return badRequest(c, "invalid therapist_id")
	}
	if req.StudentID, err = parseUUIDPtr(q.StudentID); err != nil {
		return badRequest(c, "invalid student_id")
	}

	res, err := h.svc.List(c.Context(), centerID, req)
	if err != nil {
		return mapEnrollmentError(c, err)
	}

	return ok(c, fiber.Map{
		"items":       res.Data,
		"total":       res.Total,
		"page":        res.Page,
		"per_page":    res.PerPage,
		"total_pages": res.TotalPages,
	})
}

// GET /enrollments/:id
func (h *EnrollmentHandler) Get(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid enrollment id")
	}

	enr, err := h.svc.Get(c.Context(), centerID, id)
	if err != nil {
		return mapEnrollmentError(c, err)
	}

	return ok(c, enr)
}

// PATCH /enrollments/:id
func (h *EnrollmentHandler) Update(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid enrollment id")
	}

	var body struct {
		TherapistID      *string             `json:"therapist_id"`
		RoomID           *string             `json:"room_id"`
		GuardianPhone    *string             `json:"guardian_phone"`
		EndDate          *time.Time          `json:"end_date"`
		PreferredDays    []int               `json:"preferred_days"`
		AvoidDays        []int               `json:"avoid_days"`
		PreferredWindows []schema.TimeWindow `json:"preferred_windows"`
		AvoidWindows     []schema.TimeWindow `json:"avoid_windows"`
		Flexibility      *float64            `json:"flexibility"`
		Status           *string             `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := enrollment.UpdateRequest{
		GuardianPhone:    body.GuardianPhone,
		EndDate:          body.EndDate,
		PreferredDays:    body.PreferredDays,
		AvoidDays:        body.AvoidDays,
		PreferredWindows: body.PreferredWindows,
		AvoidWindows:     body.AvoidWindows,
		Flexibility:      body.Flexibility,
		Status:           body.Status,
	}
	if body.TherapistID != nil {
		tid, err := uuid.Parse(*body.TherapistID)
		if err != nil {
			return badRequest(c, "invalid therapist_id")
		}
		req.TherapistID = &tid
	}
	if body.RoomID != nil {
		rid, err := uuid.Parse(*body.RoomID)
		if err != nil {
			return badRequest(c, "invalid room_id")
		}
		req.RoomID = &rid
	}

	enr, err := h.svc.Update(c.Context(), centerID, id, req)
	if err != nil {
		return mapEnrollmentError(c, err)
	}

	return ok(c, enr)
}

// DELETE /enrollments/:id
func (h *EnrollmentHandler) Cancel(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid enrollment id")
	}

	if err := h.svc.Cancel(c.Context(), centerID, id); err != nil {
		return mapEnrollmentError(c, err)
	}

	return noContent(c)
}

// ---------------------------------------------------------------------------
// Freeze windows
// ---------------------------------------------------------------------------

// POST /enrollments/:id/freezes
func (h *EnrollmentHandler) CreateFreeze(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid enrollment id")
	}

	var body struct {
		StartsOn string `json:"starts_on"`
		EndsOn   string `json:"ends_on"`
		Reason   string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	startsOn, err := parseDate(body.StartsOn)
	if err != nil {
		return badRequest(c, "invalid starts_on")
	}
	endsOn, err := parseDate(body.EndsOn)
	if err != nil {
		return badRequest(c, "invalid ends_on")
	}

	fw, err := h.svc.CreateFreeze(c.Context(), centerID, id, enrollment.CreateFreezeRequest{
		StartsOn: startsOn,
		EndsOn:   endsOn,
		Reason:   body.Reason,
	})
	if err != nil {
		return mapEnrollmentError(c, err)
	}

	return created(c, fw)
}

// GET /enrollments/:id/freezes
func (h *EnrollmentHandler) ListFreezes(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid enrollment id")
	}

	freezes, err := h.svc.ListFreezes(c.Context(), centerID, id)
	if err != nil {
		return mapEnrollmentError(c, err)
	}

	return ok(c, freezes)
}

// DELETE /freezes/:id
func (h *EnrollmentHandler) CancelFreeze(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid freeze id")
	}

	if err := h.svc.CancelFreeze(c.Context(), centerID, id); err != nil {
		return mapEnrollmentError(c, err)
	}

	return noContent(c)
}
