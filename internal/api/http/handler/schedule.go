package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/arkanhealth/jadwal_backend/internal/service/rescheduling"
	"github.com/arkanhealth/jadwal_backend/internal/service/scheduling"
)

type ScheduleHandler struct {
	schedSvc scheduling.Service
	reschSvc rescheduling.Service
}

func NewScheduleHandler(schedSvc scheduling.Service, reschSvc rescheduling.Service) *ScheduleHandler {
	return &ScheduleHandler{schedSvc: schedSvc, reschSvc: reschSvc}
}

func mapScheduleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scheduling.ErrEnrollmentNotFound),
		errors.Is(err, scheduling.ErrTherapistNotFound),
		errors.Is(err, rescheduling.ErrFreezeNotFound),
		errors.Is(err, rescheduling.ErrBatchNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, scheduling.ErrNoAvailability),
		errors.Is(err, scheduling.ErrEmptyConflictScope),
		errors.Is(err, rescheduling.ErrInvalidFreezeRange),
		errors.Is(err, rescheduling.ErrNoSessionsInWindow):
		return badRequest(c, err.Error())
	case errors.Is(err, scheduling.ErrEnrollmentNotActive),
		errors.Is(err, scheduling.ErrTherapistNotAccepting),
		errors.Is(err, rescheduling.ErrFreezeAlreadyApplied),
		errors.Is(err, rescheduling.ErrAlreadyRolledBack),
		errors.Is(err, rescheduling.ErrBatchNotApplied):
		return conflict(c, err.Error())
	case errors.Is(err, rescheduling.ErrRequestInFlight):
		return tooManyRequests(c, err.Error())
	case errors.Is(err, scheduling.ErrGenerationFailed):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /schedule/generate
func (h *ScheduleHandler) Generate(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	var body struct {
		EnrollmentID string  `json:"enrollment_id"`
		RequestID    *string `json:"request_id"`
		DryRun       bool    `json:"dry_run"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	enrollmentID, err := uuid.Parse(body.EnrollmentID)
	if err != nil {
		return badRequest(c, "invalid enrollment_id")
	}

	req := scheduling.GenerateRequest{
		EnrollmentID: enrollmentID,
		DryRun:       body.DryRun,
	}
	if body.RequestID != nil {
		rid, err := uuid.Parse(*body.RequestID)
		if err != nil {
			return badRequest(c, "invalid request_id")
		}
		req.RequestID = &rid
	}

	res, err := h.schedSvc.GenerateSchedule(c.Context(), centerID, req)
	if err != nil {
		return mapScheduleError(c, err)
	}

	out := fiber.Map{
		"optimization_score": res.OptimizationScore,
		"slots":              res.Slots,
		"conflicts":          res.Conflicts,
		"blockers":           res.Blockers,
		"dry_run":            body.DryRun,
	}
	if res.BatchID != nil {
		out["batch_id"] = res.BatchID
		out["sessions"] = res.Sessions
	}

	if body.DryRun {
		return ok(c, out)
	}
	return created(c, out)
}

// POST /schedule/conflicts
func (h *ScheduleHandler) CheckConflicts(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	var body struct {
		EnrollmentID *string  `json:"enrollment_id"`
		SessionIDs   []string `json:"session_ids"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	var req scheduling.ConflictCheckRequest
	if body.EnrollmentID != nil {
		eid, err := uuid.Parse(*body.EnrollmentID)
		if err != nil {
			return badRequest(c, "invalid enrollment_id")
		}
		req.EnrollmentID = &eid
	}
	for _, s := range body.SessionIDs {
		sid, err := uuid.Parse(s)
		if err != nil {
			return badRequest(c, "invalid session id "+s)
		}
		req.SessionIDs = append(req.SessionIDs, sid)
	}

	conflicts, err := h.schedSvc.DetectBatchConflicts(c.Context(), centerID, req)
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, fiber.Map{"conflicts": conflicts})
}

// POST /schedule/freeze
func (h *ScheduleHandler) Freeze(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	var body struct {
		EnrollmentID   string  `json:"enrollment_id"`
		FreezeStart    string  `json:"freeze_start"`
		FreezeEnd      string  `json:"freeze_end"`
		Reason         string  `json:"reason"`
		FreezeWindowID *string `json:"freeze_window_id"`
		RequestID      *string `json:"request_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := rescheduling.FreezeRequest{Reason: body.Reason}

	if body.FreezeWindowID != nil {
		fid, err := uuid.Parse(*body.FreezeWindowID)
		if err != nil {
			return badRequest(c, "invalid freeze_window_id")
		}
		req.FreezeWindowID = &fid
	} else {
		enrollmentID, err := uuid.Parse(body.EnrollmentID)
		if err != nil {
			return badRequest(c, "invalid enrollment_id")
		}
		req.EnrollmentID = enrollmentID

		if req.FreezeStart, err = parseDate(body.FreezeStart); err != nil {
			return badRequest(c, "invalid freeze_start")
		}
		if req.FreezeEnd, err = parseDate(body.FreezeEnd); err != nil {
			return badRequest(c, "invalid freeze_end")
		}
	}

	if body.RequestID != nil {
		rid, err := uuid.Parse(*body.RequestID)
		if err != nil {
			return badRequest(c, "invalid request_id")
		}
		req.RequestID = &rid
	}

	res, err := h.reschSvc.RescheduleForFreeze(c.Context(), centerID, req)
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, fiber.Map{
		"batch_id":             res.BatchID,
		"sessions_rescheduled": res.SessionsRescheduled,
		"conflicts":            res.Conflicts,
		"blockers":             res.Blockers,
		"execution_time_ms":    res.ExecutionTimeMs,
		"new_end_date":         res.NewEndDate,
		"sessions":             res.Sessions,
	})
}

// GET /schedule/batches
func (h *ScheduleHandler) ListBatches(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	var q struct {
		Page         int    `query:"page"`
		PerPage      int    `query:"per_page"`
		EnrollmentID string `query:"enrollment_id"`
		Status       string `query:"status"`
		Trigger      string `query:"trigger"`
	}
	_ = c.Bind().Query(&q)

	req := rescheduling.ListBatchesRequest{Page: q.Page, PerPage: q.PerPage}
	var err error
	if req.EnrollmentID, err = parseUUIDPtr(q.EnrollmentID); err != nil {
		return badRequest(c, "invalid enrollment_id")
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.Trigger != "" {
		req.Trigger = &q.Trigger
	}

	res, err := h.reschSvc.ListBatches(c.Context(), centerID, req)
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, fiber.Map{
		"items":       res.Data,
		"total":       res.Total,
		"page":        res.Page,
		"per_page":    res.PerPage,
		"total_pages": res.TotalPages,
	})
}

// GET /schedule/batches/:id
func (h *ScheduleHandler) GetBatch(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid batch id")
	}

	batch, err := h.reschSvc.GetBatch(c.Context(), centerID, id)
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, batch)
}

// POST /schedule/batches/:id/rollback
func (h *ScheduleHandler) RollbackBatch(c fiber.Ctx) error {
	centerID, valid := centerIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing center context")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid batch id")
	}

	batch, err := h.reschSvc.Rollback(c.Context(), centerID, id)
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, batch)
}
