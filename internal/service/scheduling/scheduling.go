package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/arkanhealth/jadwal_backend/config"
	"github.com/arkanhealth/jadwal_backend/internal/engine"
	"github.com/arkanhealth/jadwal_backend/internal/repo"
	entbatch "github.com/arkanhealth/jadwal_backend/internal/repo/reschedulebatch"
	entsession "github.com/arkanhealth/jadwal_backend/internal/repo/therapysession"
	"github.com/arkanhealth/jadwal_backend/internal/schema"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type GenerateRequest struct {
	EnrollmentID uuid.UUID
	// RequestID is the client idempotency key; nil lets the service mint one.
	RequestID *uuid.UUID
	// DryRun generates and scores without persisting anything.
	DryRun bool
}

type GenerateResult struct {
	BatchID           *uuid.UUID
	Sessions          []*repo.TherapySession
	Slots             []engine.Slot
	OptimizationScore float64
	Blockers          []schema.BlockerRecord
	Conflicts         []schema.ConflictRecord
}

type ConflictCheckRequest struct {
	EnrollmentID *uuid.UUID
	SessionIDs   []uuid.UUID
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// GenerateSchedule builds the full session plan for an enrollment:
	// generate, optimize, detect conflicts, then persist atomically.
	GenerateSchedule(ctx context.Context, centerID uuid.UUID, req GenerateRequest) (*GenerateResult, error)

	// DetectBatchConflicts re-checks stored sessions against the current
	// calendars without mutating anything.
	DetectBatchConflicts(ctx context.Context, centerID uuid.UUID, req ConflictCheckRequest) (map[uuid.UUID][]engine.Conflict, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type schedulingService struct {
	db   *repo.Client
	nc   *nats.Conn
	opts engine.Options
}

func New(db *repo.Client, nc *nats.Conn, cfg *config.Config) Service {
	return &schedulingService{
		db:   db,
		nc:   nc,
		opts: EngineOptions(cfg),
	}
}

// EngineOptions maps the scheduler config section onto engine options.
// Unset values fall back to engine defaults.
func EngineOptions(cfg *config.Config) engine.Options {
	if cfg == nil {
		return engine.DefaultOptions()
	}
	sc := cfg.Scheduler
	return engine.Options{
		GridMin:           sc.GridMinutes,
		MaxIterations:     sc.MaxIterations,
		TargetUtilization: sc.TargetUtilization,
		Weights: engine.ScoringWeights{
			Preference: sc.Weights.Preference,
			Workload:   sc.Weights.Workload,
			Gap:        sc.Weights.Gap,
		},
	}
}

func (s *schedulingService) GenerateSchedule(ctx context.Context, centerID uuid.UUID, req GenerateRequest) (*GenerateResult, error) {
	started := time.Now()

	enr, err := LoadEnrollment(ctx, s.db, centerID, req.EnrollmentID)
	if err != nil {
		return nil, err
	}
	if enr.Status != "active" {
		return nil, ErrEnrollmentNotActive
	}

	slotReq, err := BuildSlotRequest(ctx, s.db, enr)
	if err != nil {
		return nil, err
	}

	cal, err := LoadCalendars(ctx, s.db, CalendarScope{
		TherapistID:       enr.TherapistID,
		RoomID:            enr.RoomID,
		StudentID:         enr.StudentID,
		From:              slotReq.StartDate,
		To:                slotReq.EndDate.AddDate(0, 0, 7),
		ExcludeEnrollment: &enr.ID,
	})
	if err != nil {
		return nil, err
	}

	slots, blockers, err := engine.GenerateSlots(slotReq, cal, s.opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	opt := engine.Optimize(slots, slotReq, cal, s.opts)
	conflicts := engine.DetectConflicts(opt.Slots, slotReq, cal)

	result := &GenerateResult{
		Slots:             opt.Slots,
		OptimizationScore: opt.Score.Total,
		Blockers:          BlockerRecords(blockers),
		Conflicts:         ConflictRecords(nil, conflicts),
	}
	if req.DryRun {
		return result, nil
	}

	requestID := uuid.New()
	if req.RequestID != nil {
		requestID = *req.RequestID
	}

	// Replay of a known request returns the recorded outcome.
	prev, err := s.db.RescheduleBatch.Query().
		Where(entbatch.RequestID(requestID)).
		Only(ctx)
	if err == nil {
		return s.resultFromBatch(ctx, prev)
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("check request id: %w", err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Supersede the enrollment's currently scheduled sessions. They are
	// kept (status cancelled) so the batch snapshot can restore them.
	existing, err := tx.TherapySession.Query().
		Where(
			entsession.EnrollmentID(enr.ID),
			entsession.StatusEQ(entsession.StatusScheduled),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load existing sessions: %w", err)
	}

	batch, err := tx.RescheduleBatch.Create().
		SetRequestID(requestID).
		SetCenterID(centerID).
		SetEnrollmentID(enr.ID).
		SetTrigger(entbatch.TriggerRegenerate).
		SetStatus(entbatch.StatusPending).
		SetPreviousSessions(Snapshots(existing)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create batch: %w", err)
	}

	for _, sess := range existing {
		if err = tx.TherapySession.UpdateOne(sess).
			SetStatus(entsession.StatusCancelled).
			SetCancelledAt(time.Now()).
			SetCancellationReason("superseded by schedule regeneration").
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("supersede session: %w", err)
		}
	}

	created, err := CreateSessions(ctx, tx, centerID, enr, batch.ID, opt.Slots)
	if err != nil {
		return nil, err
	}

	records := ConflictRecords(created, conflicts)
	if err = tx.RescheduleBatch.UpdateOne(batch).
		SetStatus(entbatch.StatusApplied).
		SetConflicts(records).
		SetBlockers(result.Blockers).
		SetSessionsRescheduled(len(created)).
		SetOptimizationScore(opt.Score.Total).
		SetExecutionTimeMs(time.Since(started).Milliseconds()).
		SetAppliedAt(time.Now()).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("finalize batch: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.publish("jadwal.schedule.generated", batch.ID)

	result.BatchID = &batch.ID
	result.Sessions = created
	result.Conflicts = records
	return result, nil
}

func (s *schedulingService) DetectBatchConflicts(ctx context.Context, centerID uuid.UUID, req ConflictCheckRequest) (map[uuid.UUID][]engine.Conflict, error) {
	q := s.db.TherapySession.Query().
		Where(
			entsession.CenterID(centerID),
			entsession.StatusEQ(entsession.StatusScheduled),
		)
	switch {
	case len(req.SessionIDs) > 0:
		q = q.Where(entsession.IDIn(req.SessionIDs...))
	case req.EnrollmentID != nil:
		q = q.Where(entsession.EnrollmentID(*req.EnrollmentID))
	default:
		return nil, ErrEmptyConflictScope
	}

	sessions, err := q.Order(entsession.ByStartTime()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	if len(sessions) == 0 {
		return map[uuid.UUID][]engine.Conflict{}, nil
	}

	// An enrollment scope has one therapist and carries the full preference
	// context.
	if req.EnrollmentID != nil && len(req.SessionIDs) == 0 {
		enr, lerr := LoadEnrollment(ctx, s.db, centerID, *req.EnrollmentID)
		if lerr != nil {
			return nil, lerr
		}
		slotReq, lerr := BuildSlotRequest(ctx, s.db, enr)
		if lerr != nil {
			return nil, lerr
		}
		return s.detectGroup(ctx, sessions, slotReq)
	}

	// An explicit session-ID set may span therapists. Each therapist group
	// is judged against its own availability rules; sessions of the other
	// groups stay in the busy calendars, so cross-group collisions still
	// surface.
	byTherapist := make(map[uuid.UUID][]*repo.TherapySession)
	for _, sess := range sessions {
		byTherapist[sess.TherapistID] = append(byTherapist[sess.TherapistID], sess)
	}

	out := make(map[uuid.UUID][]engine.Conflict)
	for therapistID, group := range byTherapist {
		availability, aerr := LoadAvailability(ctx, s.db, therapistID)
		if aerr != nil {
			return nil, aerr
		}
		res, derr := s.detectGroup(ctx, group, engine.SlotRequest{
			TherapistID:  therapistID,
			Availability: availability,
		})
		if derr != nil {
			return nil, derr
		}
		for id, cs := range res {
			out[id] = cs
		}
	}
	return out, nil
}

// detectGroup checks sessions sharing one therapist context against the
// current calendars.
func (s *schedulingService) detectGroup(ctx context.Context, sessions []*repo.TherapySession, slotReq engine.SlotRequest) (map[uuid.UUID][]engine.Conflict, error) {
	slots := make([]engine.Slot, len(sessions))
	for i, sess := range sessions {
		slots[i] = engine.Slot{
			TherapistID: sess.TherapistID,
			StudentID:   sess.StudentID,
			RoomID:      sess.RoomID,
			Start:       sess.StartTime,
			End:         sess.EndTime,
		}
	}

	cal, err := LoadSessionCalendars(ctx, s.db, sessions)
	if err != nil {
		return nil, err
	}

	byIndex := engine.DetectConflicts(slots, slotReq, cal)
	out := make(map[uuid.UUID][]engine.Conflict, len(byIndex))
	for i, cs := range byIndex {
		out[sessions[i].ID] = cs
	}
	return out, nil
}

// resultFromBatch reconstructs a GenerateResult for an idempotent replay.
func (s *schedulingService) resultFromBatch(ctx context.Context, batch *repo.RescheduleBatch) (*GenerateResult, error) {
	sessions, err := s.db.TherapySession.Query().
		Where(entsession.GeneratedByBatchID(batch.ID)).
		Order(entsession.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load batch sessions: %w", err)
	}
	return &GenerateResult{
		BatchID:           &batch.ID,
		Sessions:          sessions,
		OptimizationScore: batch.OptimizationScore,
		Blockers:          batch.Blockers,
		Conflicts:         batch.Conflicts,
	}, nil
}

func (s *schedulingService) publish(subject string, batchID uuid.UUID) {
	if s.nc == nil {
		return
	}
	_ = s.nc.Publish(fmt.Sprintf("%s.%s", subject, batchID), []byte(batchID.String()))
}

// CreateSessions persists one session row per generated slot inside tx.
func CreateSessions(ctx context.Context, tx *repo.Tx, centerID uuid.UUID, enr *repo.Enrollment, batchID uuid.UUID, slots []engine.Slot) ([]*repo.TherapySession, error) {
	created := make([]*repo.TherapySession, 0, len(slots))
	for _, slot := range slots {
		c := tx.TherapySession.Create().
			SetCenterID(centerID).
			SetEnrollmentID(enr.ID).
			SetTherapistID(slot.TherapistID).
			SetStudentID(slot.StudentID).
			SetStartTime(slot.Start).
			SetEndTime(slot.End).
			SetGeneratedByBatchID(batchID)
		if slot.RoomID != nil {
			c = c.SetRoomID(*slot.RoomID)
		}
		sess, err := c.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create session: %w", err)
		}
		created = append(created, sess)
	}
	return created, nil
}

// BlockerRecords converts engine blockers to the form stored on the batch.
func BlockerRecords(blockers []engine.Blocker) []schema.BlockerRecord {
	out := make([]schema.BlockerRecord, 0, len(blockers))
	for _, b := range blockers {
		out = append(out, schema.BlockerRecord{
			WeekStart: b.WeekStart.Format("2006-01-02"),
			Code:      string(b.Code),
			Message:   b.Message,
		})
	}
	return out
}

// ConflictRecords flattens the engine's index-keyed conflicts into the
// denormalized audit form stored on the batch. Sessions may be nil for dry
// runs; records then carry no session id.
func ConflictRecords(sessions []*repo.TherapySession, conflicts map[int][]engine.Conflict) []schema.ConflictRecord {
	var out []schema.ConflictRecord
	for i, cs := range conflicts {
		for _, c := range cs {
			rec := schema.ConflictRecord{
				Kind:     string(c.Kind),
				Severity: string(c.Severity),
				Message:  c.Message,
			}
			if sessions != nil && i < len(sessions) {
				rec.SessionID = sessions[i].ID
			}
			out = append(out, rec)
		}
	}
	return out
}
