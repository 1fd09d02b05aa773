package rescheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"

	"github.com/arkanhealth/jadwal_backend/internal/repo"
	"github.com/arkanhealth/jadwal_backend/internal/repo/enttest"
	entfreeze "github.com/arkanhealth/jadwal_backend/internal/repo/freezewindow"
	entbatch "github.com/arkanhealth/jadwal_backend/internal/repo/reschedulebatch"
	entsession "github.com/arkanhealth/jadwal_backend/internal/repo/therapysession"
)

// Monday 2026-03-02.
var weekOne = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

type fixture struct {
	db  *repo.Client
	svc Service

	centerID     uuid.UUID
	therapistID  uuid.UUID
	studentID    uuid.UUID
	enrollmentID uuid.UUID
}

func openDB(t *testing.T) *repo.Client {
	t.Helper()
	db := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func openRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

// newFixture seeds a six-week enrollment with two sessions per week, every
// Monday and Wednesday at 10:00, against a therapist working Monday through
// Thursday 09:00 to 17:00.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db := openDB(t)

	center := db.Center.Create().
		SetName("Jadwal Test Center").
		SetSlug("jadwal-test").
		SaveX(ctx)
	th := db.Therapist.Create().
		SetCenterID(center.ID).
		SetDisplayName("Sara").
		SaveX(ctx)
	for dow := int8(1); dow <= 4; dow++ {
		db.AvailabilityRule.Create().
			SetTherapistID(th.ID).
			SetCenterID(center.ID).
			SetDayOfWeek(dow).
			SetStartHour(9).SetStartMinute(0).
			SetEndHour(17).SetEndMinute(0).
			SetValidFrom(weekOne.AddDate(0, -1, 0)).
			SaveX(ctx)
	}

	student := uuid.New()
	enr := db.Enrollment.Create().
		SetCenterID(center.ID).
		SetStudentID(student).
		SetTherapistID(th.ID).
		SetStartDate(weekOne).
		SetEndDate(weekOne.AddDate(0, 0, 41)).
		SetSessionCount(12).
		SetSessionsPerWeek(2).
		SaveX(ctx)

	for week := 0; week < 6; week++ {
		for _, dayOff := range []int{0, 2} {
			start := weekOne.AddDate(0, 0, week*7+dayOff).Add(10 * time.Hour)
			db.TherapySession.Create().
				SetCenterID(center.ID).
				SetEnrollmentID(enr.ID).
				SetTherapistID(th.ID).
				SetStudentID(student).
				SetStartTime(start).
				SetEndTime(start.Add(45 * time.Minute)).
				SaveX(ctx)
		}
	}

	return &fixture{
		db:           db,
		svc:          New(db, openRedis(t), nil, nil),
		centerID:     center.ID,
		therapistID:  th.ID,
		studentID:    student,
		enrollmentID: enr.ID,
	}
}

func TestRescheduleForFreezeReplaysStoredOutcome(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rid := uuid.New()
	req := FreezeRequest{
		EnrollmentID: f.enrollmentID,
		FreezeStart:  weekOne.AddDate(0, 0, 7),
		FreezeEnd:    weekOne.AddDate(0, 0, 13),
		Reason:       "family travel",
		RequestID:    &rid,
	}

	first, err := f.svc.RescheduleForFreeze(ctx, f.centerID, req)
	if err != nil {
		t.Fatalf("RescheduleForFreeze() error = %v", err)
	}
	if first.SessionsRescheduled != 2 {
		t.Fatalf("rescheduled %d sessions, want 2", first.SessionsRescheduled)
	}

	second, err := f.svc.RescheduleForFreeze(ctx, f.centerID, req)
	if err != nil {
		t.Fatalf("replay error = %v", err)
	}
	if second.BatchID != first.BatchID {
		t.Errorf("replay batch = %s, want %s", second.BatchID, first.BatchID)
	}
	if second.SessionsRescheduled != first.SessionsRescheduled {
		t.Errorf("replay rescheduled %d, want %d", second.SessionsRescheduled, first.SessionsRescheduled)
	}

	if n := f.db.RescheduleBatch.Query().Where(entbatch.RequestID(rid)).CountX(ctx); n != 1 {
		t.Errorf("batches for request id = %d, want 1", n)
	}
	generated := f.db.TherapySession.Query().
		Where(entsession.GeneratedByBatchID(first.BatchID)).
		CountX(ctx)
	if generated != first.SessionsRescheduled {
		t.Errorf("generated sessions = %d, want %d", generated, first.SessionsRescheduled)
	}
	total := f.db.TherapySession.Query().
		Where(entsession.StatusEQ(entsession.StatusScheduled)).
		CountX(ctx)
	if total != 12 {
		t.Errorf("scheduled sessions after replay = %d, want 12", total)
	}
}

func TestRescheduleForFreezeIncludesEndDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Monday through Wednesday of week two. The Wednesday session starts on
	// the freeze end date itself and must still be frozen.
	res, err := f.svc.RescheduleForFreeze(ctx, f.centerID, FreezeRequest{
		EnrollmentID: f.enrollmentID,
		FreezeStart:  weekOne.AddDate(0, 0, 7),
		FreezeEnd:    weekOne.AddDate(0, 0, 9),
		Reason:       "illness",
	})
	if err != nil {
		t.Fatalf("RescheduleForFreeze() error = %v", err)
	}
	if res.SessionsRescheduled != 2 {
		t.Fatalf("rescheduled %d sessions, want 2", res.SessionsRescheduled)
	}

	endDay := f.db.TherapySession.Query().
		Where(entsession.StartTime(weekOne.AddDate(0, 0, 9).Add(10 * time.Hour))).
		OnlyX(ctx)
	if endDay.Status != entsession.StatusFrozen {
		t.Errorf("end-day session status = %s, want frozen", endDay.Status)
	}
}

func TestRollbackRestoresPreviousSessions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.RescheduleForFreeze(ctx, f.centerID, FreezeRequest{
		EnrollmentID: f.enrollmentID,
		FreezeStart:  weekOne.AddDate(0, 0, 7),
		FreezeEnd:    weekOne.AddDate(0, 0, 13),
		Reason:       "family travel",
	})
	if err != nil {
		t.Fatalf("RescheduleForFreeze() error = %v", err)
	}

	batch, err := f.svc.Rollback(ctx, f.centerID, res.BatchID)
	if err != nil {
		t.Fatalf("Rollback() error = %v", err)
	}
	if batch.Status != entbatch.StatusRolledBack {
		t.Errorf("batch status = %s, want rolled_back", batch.Status)
	}

	if n := f.db.TherapySession.Query().
		Where(entsession.GeneratedByBatchID(res.BatchID)).
		CountX(ctx); n != 0 {
		t.Errorf("generated sessions remain after rollback: %d", n)
	}
	if n := f.db.TherapySession.Query().
		Where(entsession.StatusEQ(entsession.StatusFrozen)).
		CountX(ctx); n != 0 {
		t.Errorf("frozen sessions remain after rollback: %d", n)
	}
	if n := f.db.TherapySession.Query().
		Where(entsession.StatusEQ(entsession.StatusScheduled)).
		CountX(ctx); n != 12 {
		t.Errorf("scheduled sessions after rollback = %d, want 12", n)
	}
	fw := f.db.FreezeWindow.Query().
		Where(entfreeze.EnrollmentID(f.enrollmentID)).
		OnlyX(ctx)
	if fw.Status != entfreeze.StatusPending {
		t.Errorf("freeze window status = %s, want pending", fw.Status)
	}

	if _, err := f.svc.Rollback(ctx, f.centerID, res.BatchID); !errors.Is(err, ErrAlreadyRolledBack) {
		t.Errorf("second rollback error = %v, want ErrAlreadyRolledBack", err)
	}
}

func TestRescheduleForFreezeRecordsShortfall(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	svc := New(db, openRedis(t), nil, nil)

	center := db.Center.Create().
		SetName("Jadwal Test Center").
		SetSlug("jadwal-test").
		SaveX(ctx)
	th := db.Therapist.Create().
		SetCenterID(center.ID).
		SetDisplayName("Sara").
		SaveX(ctx)
	// A single 45-minute Monday slot, and the rule expires a month in. Only
	// one of the two replacements can land before the rule runs out.
	db.AvailabilityRule.Create().
		SetTherapistID(th.ID).
		SetCenterID(center.ID).
		SetDayOfWeek(1).
		SetStartHour(10).SetStartMinute(0).
		SetEndHour(10).SetEndMinute(45).
		SetValidFrom(weekOne.AddDate(0, -1, 0)).
		SetValidUntil(weekOne.AddDate(0, 0, 30)).
		SaveX(ctx)

	student := uuid.New()
	enr := db.Enrollment.Create().
		SetCenterID(center.ID).
		SetStudentID(student).
		SetTherapistID(th.ID).
		SetStartDate(weekOne).
		SetEndDate(weekOne.AddDate(0, 0, 27)).
		SetSessionCount(4).
		SetSessionsPerWeek(1).
		SaveX(ctx)
	for week := 0; week < 4; week++ {
		start := weekOne.AddDate(0, 0, week*7).Add(10 * time.Hour)
		db.TherapySession.Create().
			SetCenterID(center.ID).
			SetEnrollmentID(enr.ID).
			SetTherapistID(th.ID).
			SetStudentID(student).
			SetStartTime(start).
			SetEndTime(start.Add(45 * time.Minute)).
			SaveX(ctx)
	}

	res, err := svc.RescheduleForFreeze(ctx, center.ID, FreezeRequest{
		EnrollmentID: enr.ID,
		FreezeStart:  weekOne.AddDate(0, 0, 7),
		FreezeEnd:    weekOne.AddDate(0, 0, 14),
		Reason:       "family travel",
	})
	if err != nil {
		t.Fatalf("RescheduleForFreeze() error = %v", err)
	}
	if res.SessionsRescheduled != 1 {
		t.Fatalf("rescheduled %d sessions, want 1", res.SessionsRescheduled)
	}
	if len(res.Blockers) == 0 {
		t.Error("shortfall reported no blockers")
	}

	batch, err := svc.GetBatch(ctx, center.ID, res.BatchID)
	if err != nil {
		t.Fatalf("GetBatch() error = %v", err)
	}
	if batch.FailureReason == nil {
		t.Error("shortfall batch has no failure reason")
	}
	if len(batch.Blockers) == 0 {
		t.Error("shortfall batch stored no blockers")
	}
}
