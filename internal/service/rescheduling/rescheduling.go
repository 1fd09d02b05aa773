package rescheduling

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"

	"github.com/arkanhealth/jadwal_backend/config"
	"github.com/arkanhealth/jadwal_backend/internal/engine"
	"github.com/arkanhealth/jadwal_backend/internal/repo"
	entfreeze "github.com/arkanhealth/jadwal_backend/internal/repo/freezewindow"
	entbatch "github.com/arkanhealth/jadwal_backend/internal/repo/reschedulebatch"
	entsession "github.com/arkanhealth/jadwal_backend/internal/repo/therapysession"
	"github.com/arkanhealth/jadwal_backend/internal/schema"
	"github.com/arkanhealth/jadwal_backend/internal/service/scheduling"
)

// requestGuardTTL bounds how long a request id stays locked when its holder
// dies before committing.
const requestGuardTTL = 2 * time.Minute

func redisKeyRequest(id uuid.UUID) string { return "reschedule:req:" + id.String() }

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type FreezeRequest struct {
	EnrollmentID uuid.UUID
	FreezeStart  time.Time
	FreezeEnd    time.Time
	Reason       string

	// FreezeWindowID applies a pending window created ahead of time instead
	// of the inline dates.
	FreezeWindowID *uuid.UUID

	// RequestID is the client idempotency key; nil lets the service mint one.
	RequestID *uuid.UUID
}

type ListBatchesRequest struct {
	Page    int
	PerPage int

	EnrollmentID *uuid.UUID
	Status       *string
	Trigger      *string
}

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type Result struct {
	BatchID             uuid.UUID
	SessionsRescheduled int
	Conflicts           []schema.ConflictRecord
	Blockers            []schema.BlockerRecord
	ExecutionTimeMs     int64
	NewEndDate          *time.Time
	Sessions            []*repo.TherapySession
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// RescheduleForFreeze freezes every scheduled session inside the window
	// and regenerates replacements after it, atomically, at most once per
	// request id.
	RescheduleForFreeze(ctx context.Context, centerID uuid.UUID, req FreezeRequest) (*Result, error)

	// Rollback undoes an applied batch: generated sessions are removed and
	// the snapshotted previous sessions are restored.
	Rollback(ctx context.Context, centerID, batchID uuid.UUID) (*repo.RescheduleBatch, error)

	GetBatch(ctx context.Context, centerID, batchID uuid.UUID) (*repo.RescheduleBatch, error)
	ListBatches(ctx context.Context, centerID uuid.UUID, req ListBatchesRequest) (*PaginatedResult[*repo.RescheduleBatch], error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type reschedulingService struct {
	db   *repo.Client
	rdb  *redis.Client
	nc   *nats.Conn
	opts engine.Options
}

func New(db *repo.Client, rdb *redis.Client, nc *nats.Conn, cfg *config.Config) Service {
	return &reschedulingService{
		db:   db,
		rdb:  rdb,
		nc:   nc,
		opts: scheduling.EngineOptions(cfg),
	}
}

func (s *reschedulingService) RescheduleForFreeze(ctx context.Context, centerID uuid.UUID, req FreezeRequest) (*Result, error) {
	started := time.Now()

	requestID := uuid.New()
	if req.RequestID != nil {
		requestID = *req.RequestID
	}

	// Replay of a committed request returns the recorded outcome; the unique
	// request_id column is the authority.
	if prev, err := s.db.RescheduleBatch.Query().
		Where(entbatch.RequestID(requestID)).
		Only(ctx); err == nil {
		return s.resultFromBatch(ctx, prev)
	} else if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("check request id: %w", err)
	}

	// Short lock so two concurrent carriers of the same request id cannot
	// both reach the transaction.
	locked, err := s.rdb.SetNX(ctx, redisKeyRequest(requestID), "1", requestGuardTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lock request: %w", err)
	}
	if !locked {
		return nil, ErrRequestInFlight
	}
	defer s.rdb.Del(context.WithoutCancel(ctx), redisKeyRequest(requestID))

	var fw *repo.FreezeWindow
	if req.FreezeWindowID != nil {
		fw, err = s.db.FreezeWindow.Query().
			Where(entfreeze.ID(*req.FreezeWindowID), entfreeze.CenterID(centerID)).
			Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return nil, ErrFreezeNotFound
			}
			return nil, fmt.Errorf("get freeze window: %w", err)
		}
		if fw.Status != entfreeze.StatusPending {
			return nil, ErrFreezeAlreadyApplied
		}
		req.EnrollmentID = fw.EnrollmentID
		req.FreezeStart = fw.StartsOn
		req.FreezeEnd = fw.EndsOn
		if fw.Reason != nil {
			req.Reason = *fw.Reason
		}
	}
	if req.FreezeEnd.Before(req.FreezeStart) {
		return nil, ErrInvalidFreezeRange
	}

	enr, err := scheduling.LoadEnrollment(ctx, s.db, centerID, req.EnrollmentID)
	if err != nil {
		return nil, err
	}

	frozen, err := s.db.TherapySession.Query().
		Where(
			entsession.EnrollmentID(enr.ID),
			entsession.StatusEQ(entsession.StatusScheduled),
			entsession.StartTimeGTE(req.FreezeStart),
			entsession.StartTimeLT(req.FreezeEnd.AddDate(0, 0, 1)),
		).
		Order(entsession.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load frozen sessions: %w", err)
	}
	if len(frozen) == 0 {
		return nil, ErrNoSessionsInWindow
	}

	slotReq, err := scheduling.BuildSlotRequest(ctx, s.db, enr)
	if err != nil {
		return nil, err
	}
	// Replacements start the day after the freeze ends and may run past the
	// enrollment end date.
	slotReq.StartDate = req.FreezeEnd.AddDate(0, 0, 1)
	slotReq.SessionCount = len(frozen)
	slotReq.AllowExtension = true

	excludeIDs := make([]uuid.UUID, len(frozen))
	for i, sess := range frozen {
		excludeIDs[i] = sess.ID
	}
	cal, err := scheduling.LoadCalendars(ctx, s.db, scheduling.CalendarScope{
		TherapistID:     enr.TherapistID,
		RoomID:          enr.RoomID,
		StudentID:       enr.StudentID,
		From:            slotReq.StartDate,
		To:              slotReq.EndDate.AddDate(0, 0, 7*53),
		ExcludeSessions: excludeIDs,
	})
	if err != nil {
		return nil, err
	}

	slots, blockers, err := engine.GenerateSlots(slotReq, cal, s.opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", scheduling.ErrGenerationFailed, err)
	}
	opt := engine.Optimize(slots, slotReq, cal, s.opts)
	conflicts := engine.DetectConflicts(opt.Slots, slotReq, cal)
	brecords := scheduling.BlockerRecords(blockers)

	var newEnd *time.Time
	var last time.Time
	for _, slot := range opt.Slots {
		if slot.End.After(last) {
			last = slot.End
		}
	}
	if last.After(enr.EndDate) {
		d := dateOnly(last)
		newEnd = &d
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

	batch, err := tx.RescheduleBatch.Create().
		SetRequestID(requestID).
		SetCenterID(centerID).
		SetEnrollmentID(enr.ID).
		SetTrigger(entbatch.TriggerFreeze).
		SetStatus(entbatch.StatusPending).
		SetPreviousSessions(scheduling.Snapshots(frozen)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create batch: %w", err)
	}

	for _, sess := range frozen {
		if err = tx.TherapySession.UpdateOne(sess).
			SetStatus(entsession.StatusFrozen).
			SetCancellationReason(req.Reason).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("freeze session: %w", err)
		}
	}

	created, err := scheduling.CreateSessions(ctx, tx, centerID, enr, batch.ID, opt.Slots)
	if err != nil {
		return nil, err
	}

	if newEnd != nil {
		if err = tx.Enrollment.UpdateOneID(enr.ID).
			SetEndDate(*newEnd).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("extend enrollment: %w", err)
		}
	}

	if fw != nil {
		err = tx.FreezeWindow.UpdateOne(fw).
			SetStatus(entfreeze.StatusApplied).
			SetBatchID(batch.ID).
			Exec(ctx)
	} else {
		_, err = tx.FreezeWindow.Create().
			SetCenterID(centerID).
			SetEnrollmentID(enr.ID).
			SetStartsOn(req.FreezeStart).
			SetEndsOn(req.FreezeEnd).
			SetReason(req.Reason).
			SetStatus(entfreeze.StatusApplied).
			SetBatchID(batch.ID).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("record freeze window: %w", err)
	}

	records := scheduling.ConflictRecords(created, conflicts)
	upd := tx.RescheduleBatch.UpdateOne(batch).
		SetStatus(entbatch.StatusApplied).
		SetConflicts(records).
		SetBlockers(brecords).
		SetSessionsRescheduled(len(created)).
		SetOptimizationScore(opt.Score.Total).
		SetExecutionTimeMs(time.Since(started).Milliseconds()).
		SetAppliedAt(time.Now())
	if newEnd != nil {
		upd = upd.SetNewEndDate(*newEnd)
	}
	// A shortfall still applies what fit, but never silently.
	if len(created) < len(frozen) {
		upd = upd.SetFailureReason(fmt.Sprintf(
			"placed %d of %d replacement sessions", len(created), len(frozen)))
	}
	if err = upd.Exec(ctx); err != nil {
		return nil, fmt.Errorf("finalize batch: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.publish("jadwal.schedule.rescheduled", batch.ID)
	slog.Info("freeze rescheduled",
		"batch_id", batch.ID,
		"enrollment_id", enr.ID,
		"sessions", len(created),
		"took_ms", time.Since(started).Milliseconds(),
	)

	return &Result{
		BatchID:             batch.ID,
		SessionsRescheduled: len(created),
		Conflicts:           records,
		Blockers:            brecords,
		ExecutionTimeMs:     time.Since(started).Milliseconds(),
		NewEndDate:          newEnd,
		Sessions:            created,
	}, nil
}

func (s *reschedulingService) Rollback(ctx context.Context, centerID, batchID uuid.UUID) (*repo.RescheduleBatch, error) {
	batch, err := s.db.RescheduleBatch.Query().
		Where(entbatch.ID(batchID), entbatch.CenterID(centerID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrBatchNotFound
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	switch batch.Status {
	case entbatch.StatusRolledBack:
		return nil, ErrAlreadyRolledBack
	case entbatch.StatusApplied:
	default:
		return nil, ErrBatchNotApplied
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

	// Generated sessions go away entirely; they never happened.
	if _, err = tx.TherapySession.Delete().
		Where(entsession.GeneratedByBatchID(batch.ID)).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("delete generated sessions: %w", err)
	}

	var latest time.Time
	for _, snap := range batch.PreviousSessions {
		start, perr := time.Parse(time.RFC3339, snap.StartTime)
		if perr != nil {
			err = fmt.Errorf("parse snapshot start: %w", perr)
			return nil, err
		}
		end, perr := time.Parse(time.RFC3339, snap.EndTime)
		if perr != nil {
			err = fmt.Errorf("parse snapshot end: %w", perr)
			return nil, err
		}
		upd := tx.TherapySession.UpdateOneID(snap.SessionID).
			SetStatus(entsession.Status(snap.Status)).
			SetStartTime(start).
			SetEndTime(end).
			ClearCancelledAt().
			ClearCancellationReason()
		if snap.RoomID != nil {
			upd = upd.SetRoomID(*snap.RoomID)
		}
		if err = upd.Exec(ctx); err != nil {
			return nil, fmt.Errorf("restore session %s: %w", snap.SessionID, err)
		}
		if end.After(latest) {
			latest = end
		}
	}

	// An extended enrollment shrinks back to its restored schedule.
	if batch.NewEndDate != nil && !latest.IsZero() {
		if err = tx.Enrollment.UpdateOneID(batch.EnrollmentID).
			SetEndDate(dateOnly(latest)).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("restore enrollment end date: %w", err)
		}
	}

	// A freeze batch reopens its window so it can be retried or cancelled.
	if batch.Trigger == entbatch.TriggerFreeze {
		if err = tx.FreezeWindow.Update().
			Where(entfreeze.BatchID(batch.ID)).
			SetStatus(entfreeze.StatusPending).
			ClearBatchID().
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("reopen freeze window: %w", err)
		}
	}

	batch, err = tx.RescheduleBatch.UpdateOne(batch).
		SetStatus(entbatch.StatusRolledBack).
		SetRolledBackAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark rolled back: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.publish("jadwal.schedule.rolledback", batch.ID)
	slog.Info("batch rolled back", "batch_id", batch.ID, "enrollment_id", batch.EnrollmentID)
	return batch, nil
}

func (s *reschedulingService) GetBatch(ctx context.Context, centerID, batchID uuid.UUID) (*repo.RescheduleBatch, error) {
	batch, err := s.db.RescheduleBatch.Query().
		Where(entbatch.ID(batchID), entbatch.CenterID(centerID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrBatchNotFound
		}
		return nil, fmt.Errorf("load batch: %w", err)
	}
	return batch, nil
}

func (s *reschedulingService) ListBatches(ctx context.Context, centerID uuid.UUID, req ListBatchesRequest) (*PaginatedResult[*repo.RescheduleBatch], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}

	q := s.db.RescheduleBatch.Query().Where(entbatch.CenterID(centerID))
	if req.EnrollmentID != nil {
		q = q.Where(entbatch.EnrollmentID(*req.EnrollmentID))
	}
	if req.Status != nil {
		q = q.Where(entbatch.StatusEQ(entbatch.Status(*req.Status)))
	}
	if req.Trigger != nil {
		q = q.Where(entbatch.TriggerEQ(entbatch.Trigger(*req.Trigger)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count batches: %w", err)
	}

	data, err := q.
		Order(entbatch.ByCreatedAt(sql.OrderDesc())).
		Offset((req.Page - 1) * req.PerPage).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}

	return &PaginatedResult[*repo.RescheduleBatch]{
		Data:       data,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: (total + req.PerPage - 1) / req.PerPage,
	}, nil
}

func (s *reschedulingService) resultFromBatch(ctx context.Context, batch *repo.RescheduleBatch) (*Result, error) {
	sessions, err := s.db.TherapySession.Query().
		Where(entsession.GeneratedByBatchID(batch.ID)).
		Order(entsession.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load batch sessions: %w", err)
	}
	return &Result{
		BatchID:             batch.ID,
		SessionsRescheduled: batch.SessionsRescheduled,
		Conflicts:           batch.Conflicts,
		Blockers:            batch.Blockers,
		ExecutionTimeMs:     batch.ExecutionTimeMs,
		NewEndDate:          batch.NewEndDate,
		Sessions:            sessions,
	}, nil
}

func (s *reschedulingService) publish(subject string, batchID uuid.UUID) {
	if s.nc == nil {
		return
	}
	_ = s.nc.Publish(fmt.Sprintf("%s.%s", subject, batchID), []byte(batchID.String()))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
