package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/arkanhealth/jadwal_backend/internal/engine"
	"github.com/arkanhealth/jadwal_backend/internal/repo"
	"github.com/arkanhealth/jadwal_backend/internal/repo/enttest"
	entbatch "github.com/arkanhealth/jadwal_backend/internal/repo/reschedulebatch"
	entsession "github.com/arkanhealth/jadwal_backend/internal/repo/therapysession"
)

// Monday 2026-03-02.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func openDB(t *testing.T) *repo.Client {
	t.Helper()
	db := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedTherapist(ctx context.Context, db *repo.Client, centerID uuid.UUID, name string, days ...int8) *repo.Therapist {
	th := db.Therapist.Create().
		SetCenterID(centerID).
		SetDisplayName(name).
		SaveX(ctx)
	for _, dow := range days {
		db.AvailabilityRule.Create().
			SetTherapistID(th.ID).
			SetCenterID(centerID).
			SetDayOfWeek(dow).
			SetStartHour(9).SetStartMinute(0).
			SetEndHour(17).SetEndMinute(0).
			SetValidFrom(monday.AddDate(0, -1, 0)).
			SaveX(ctx)
	}
	return th
}

func hasConflict(cs []engine.Conflict, kind engine.ConflictKind) bool {
	for _, c := range cs {
		if c.Kind == kind {
			return true
		}
	}
	return false
}

// A session-ID scope can mix therapists. Each session must be judged against
// its own therapist's availability, while double bookings across the set
// still surface.
func TestDetectBatchConflictsAcrossTherapists(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	center := db.Center.Create().
		SetName("Jadwal Test Center").
		SetSlug("jadwal-test").
		SaveX(ctx)
	thA := seedTherapist(ctx, db, center.ID, "Sara", 1)
	thB := seedTherapist(ctx, db, center.ID, "Peyman", 2)

	student := uuid.New()
	seedEnrollment := func(therapistID uuid.UUID) *repo.Enrollment {
		return db.Enrollment.Create().
			SetCenterID(center.ID).
			SetStudentID(student).
			SetTherapistID(therapistID).
			SetStartDate(monday).
			SetEndDate(monday.AddDate(0, 0, 27)).
			SetSessionCount(4).
			SetSessionsPerWeek(1).
			SaveX(ctx)
	}
	enrA := seedEnrollment(thA.ID)
	enrB := seedEnrollment(thB.ID)

	// The same student booked twice on Monday at 10:00, once per therapist.
	at10 := monday.Add(10 * time.Hour)
	seedSession := func(enr *repo.Enrollment) *repo.TherapySession {
		return db.TherapySession.Create().
			SetCenterID(center.ID).
			SetEnrollmentID(enr.ID).
			SetTherapistID(enr.TherapistID).
			SetStudentID(student).
			SetStartTime(at10).
			SetEndTime(at10.Add(45 * time.Minute)).
			SaveX(ctx)
	}
	s1 := seedSession(enrA)
	s2 := seedSession(enrB)

	svc := New(db, nil, nil)
	out, err := svc.DetectBatchConflicts(ctx, center.ID, ConflictCheckRequest{
		SessionIDs: []uuid.UUID{s1.ID, s2.ID},
	})
	if err != nil {
		t.Fatalf("DetectBatchConflicts() error = %v", err)
	}

	if !hasConflict(out[s1.ID], engine.ConflictStudentBusy) {
		t.Error("first session missing student_busy despite the double booking")
	}
	if hasConflict(out[s1.ID], engine.ConflictOutsideAvailability) {
		t.Error("first session flagged outside availability, its therapist works Mondays")
	}
	if !hasConflict(out[s2.ID], engine.ConflictStudentBusy) {
		t.Error("second session missing student_busy despite the double booking")
	}
	if !hasConflict(out[s2.ID], engine.ConflictOutsideAvailability) {
		t.Error("second session missing outside_availability, its therapist only works Tuesdays")
	}
}

func TestGenerateScheduleReplaysStoredBatch(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	center := db.Center.Create().
		SetName("Jadwal Test Center").
		SetSlug("jadwal-test").
		SaveX(ctx)
	th := seedTherapist(ctx, db, center.ID, "Sara", 1, 2, 3, 4)
	enr := db.Enrollment.Create().
		SetCenterID(center.ID).
		SetStudentID(uuid.New()).
		SetTherapistID(th.ID).
		SetStartDate(monday).
		SetEndDate(monday.AddDate(0, 0, 27)).
		SetSessionCount(4).
		SetSessionsPerWeek(1).
		SaveX(ctx)

	svc := New(db, nil, nil)
	rid := uuid.New()
	req := GenerateRequest{EnrollmentID: enr.ID, RequestID: &rid}

	first, err := svc.GenerateSchedule(ctx, center.ID, req)
	if err != nil {
		t.Fatalf("GenerateSchedule() error = %v", err)
	}
	if first.BatchID == nil || len(first.Sessions) != 4 {
		t.Fatalf("first run: batch %v, %d sessions, want 4", first.BatchID, len(first.Sessions))
	}

	second, err := svc.GenerateSchedule(ctx, center.ID, req)
	if err != nil {
		t.Fatalf("replay error = %v", err)
	}
	if second.BatchID == nil || *second.BatchID != *first.BatchID {
		t.Errorf("replay batch = %v, want %v", second.BatchID, first.BatchID)
	}
	if len(second.Sessions) != len(first.Sessions) {
		t.Errorf("replay returned %d sessions, want %d", len(second.Sessions), len(first.Sessions))
	}

	if n := db.RescheduleBatch.Query().Where(entbatch.RequestID(rid)).CountX(ctx); n != 1 {
		t.Errorf("batches for request id = %d, want 1", n)
	}
	if n := db.TherapySession.Query().
		Where(entsession.StatusEQ(entsession.StatusScheduled)).
		CountX(ctx); n != 4 {
		t.Errorf("scheduled sessions after replay = %d, want 4", n)
	}
}
