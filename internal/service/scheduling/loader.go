package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arkanhealth/jadwal_backend/internal/engine"
	"github.com/arkanhealth/jadwal_backend/internal/repo"
	entrule "github.com/arkanhealth/jadwal_backend/internal/repo/availabilityrule"
	entenroll "github.com/arkanhealth/jadwal_backend/internal/repo/enrollment"
	"github.com/arkanhealth/jadwal_backend/internal/repo/predicate"
	entsession "github.com/arkanhealth/jadwal_backend/internal/repo/therapysession"
	enttherapist "github.com/arkanhealth/jadwal_backend/internal/repo/therapist"
	"github.com/arkanhealth/jadwal_backend/internal/schema"
)

// LoadEnrollment fetches a center-scoped enrollment or ErrEnrollmentNotFound.
func LoadEnrollment(ctx context.Context, db *repo.Client, centerID, enrollmentID uuid.UUID) (*repo.Enrollment, error) {
	enr, err := db.Enrollment.Query().
		Where(entenroll.ID(enrollmentID), entenroll.CenterID(centerID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	return enr, nil
}

// LoadAvailability converts a therapist's active rules to engine form.
func LoadAvailability(ctx context.Context, db *repo.Client, therapistID uuid.UUID) ([]engine.WeeklyRule, error) {
	rules, err := db.AvailabilityRule.Query().
		Where(
			entrule.TherapistID(therapistID),
			entrule.IsActive(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load availability rules: %w", err)
	}

	out := make([]engine.WeeklyRule, 0, len(rules))
	for _, r := range rules {
		out = append(out, engine.WeeklyRule{
			Weekday:    time.Weekday(r.DayOfWeek),
			StartMin:   int(r.StartHour)*60 + int(r.StartMinute),
			EndMin:     int(r.EndHour)*60 + int(r.EndMinute),
			ValidFrom:  r.ValidFrom,
			ValidUntil: r.ValidUntil,
		})
	}
	return out, nil
}

// BuildSlotRequest assembles the engine request for one enrollment: its
// preferences plus the therapist's availability and workload cap.
func BuildSlotRequest(ctx context.Context, db *repo.Client, enr *repo.Enrollment) (engine.SlotRequest, error) {
	var zero engine.SlotRequest

	th, err := db.Therapist.Query().
		Where(enttherapist.ID(enr.TherapistID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return zero, ErrTherapistNotFound
		}
		return zero, fmt.Errorf("get therapist: %w", err)
	}
	if !th.IsActive || !th.IsAccepting {
		return zero, ErrTherapistNotAccepting
	}

	availability, err := LoadAvailability(ctx, db, th.ID)
	if err != nil {
		return zero, err
	}
	if len(availability) == 0 {
		return zero, ErrNoAvailability
	}

	return engine.SlotRequest{
		EnrollmentID:      enr.ID,
		TherapistID:       enr.TherapistID,
		StudentID:         enr.StudentID,
		RoomID:            enr.RoomID,
		StartDate:         enr.StartDate,
		EndDate:           enr.EndDate,
		SessionCount:      enr.SessionCount,
		SessionsPerWeek:   enr.SessionsPerWeek,
		DurationMin:       enr.SessionDurationMin,
		MaxWeeklySessions: th.MaxWeeklySessions,
		Prefs: engine.Preferences{
			PreferredDays:    weekdays(enr.PreferredDays),
			AvoidDays:        weekdays(enr.AvoidDays),
			PreferredWindows: windows(enr.PreferredWindows),
			AvoidWindows:     windows(enr.AvoidWindows),
			Flexibility:      enr.Flexibility,
		},
		Availability: availability,
	}, nil
}

// CalendarScope bounds a calendar load: whose busy time, over what range,
// and which sessions to leave out because the caller is about to replace or
// re-check them.
type CalendarScope struct {
	TherapistID uuid.UUID
	RoomID      *uuid.UUID
	StudentID   uuid.UUID
	From        time.Time
	To          time.Time

	ExcludeEnrollment *uuid.UUID
	ExcludeSessions   []uuid.UUID
}

// LoadCalendars builds busy calendars from every scheduled session touching
// the scope's therapist, room, or student within the range.
func LoadCalendars(ctx context.Context, db *repo.Client, scope CalendarScope) (engine.Calendars, error) {
	cal := engine.NewCalendars()

	preds := []func(*repo.TherapySessionQuery) *repo.TherapySessionQuery{
		func(q *repo.TherapySessionQuery) *repo.TherapySessionQuery {
			return q.Where(entsession.TherapistID(scope.TherapistID))
		},
		func(q *repo.TherapySessionQuery) *repo.TherapySessionQuery {
			return q.Where(entsession.StudentID(scope.StudentID))
		},
	}
	if scope.RoomID != nil {
		preds = append(preds, func(q *repo.TherapySessionQuery) *repo.TherapySessionQuery {
			return q.Where(entsession.RoomID(*scope.RoomID))
		})
	}

	seen := make(map[uuid.UUID]struct{})
	for _, scoped := range preds {
		q := db.TherapySession.Query().
			Where(
				entsession.StatusEQ(entsession.StatusScheduled),
				entsession.StartTimeGTE(scope.From),
				entsession.StartTimeLT(scope.To),
			)
		if scope.ExcludeEnrollment != nil {
			q = q.Where(entsession.EnrollmentIDNEQ(*scope.ExcludeEnrollment))
		}
		if len(scope.ExcludeSessions) > 0 {
			q = q.Where(entsession.IDNotIn(scope.ExcludeSessions...))
		}
		sessions, err := scoped(q).All(ctx)
		if err != nil {
			return cal, fmt.Errorf("load calendar sessions: %w", err)
		}
		for _, sess := range sessions {
			if _, dup := seen[sess.ID]; dup {
				continue
			}
			seen[sess.ID] = struct{}{}
			iv := engine.Interval{Start: sess.StartTime, End: sess.EndTime}
			cal.Therapist[sess.TherapistID] = append(cal.Therapist[sess.TherapistID], iv)
			cal.Student[sess.StudentID] = append(cal.Student[sess.StudentID], iv)
			if sess.RoomID != nil {
				cal.Room[*sess.RoomID] = append(cal.Room[*sess.RoomID], iv)
			}
		}
	}
	return cal, nil
}

// LoadSessionCalendars builds busy calendars around an arbitrary session set:
// every therapist, student, and room the set touches, over the combined time
// span. The given sessions themselves are excluded.
func LoadSessionCalendars(ctx context.Context, db *repo.Client, sessions []*repo.TherapySession) (engine.Calendars, error) {
	cal := engine.NewCalendars()
	if len(sessions) == 0 {
		return cal, nil
	}

	excludeIDs := make([]uuid.UUID, 0, len(sessions))
	therapists := make(map[uuid.UUID]struct{})
	students := make(map[uuid.UUID]struct{})
	rooms := make(map[uuid.UUID]struct{})
	from, to := sessions[0].StartTime, sessions[0].EndTime
	for _, sess := range sessions {
		excludeIDs = append(excludeIDs, sess.ID)
		therapists[sess.TherapistID] = struct{}{}
		students[sess.StudentID] = struct{}{}
		if sess.RoomID != nil {
			rooms[*sess.RoomID] = struct{}{}
		}
		if sess.StartTime.Before(from) {
			from = sess.StartTime
		}
		if sess.EndTime.After(to) {
			to = sess.EndTime
		}
	}

	preds := []predicate.TherapySession{
		entsession.TherapistIDIn(uuidKeys(therapists)...),
		entsession.StudentIDIn(uuidKeys(students)...),
	}
	if len(rooms) > 0 {
		preds = append(preds, entsession.RoomIDIn(uuidKeys(rooms)...))
	}

	others, err := db.TherapySession.Query().
		Where(
			entsession.StatusEQ(entsession.StatusScheduled),
			entsession.StartTimeLT(to),
			entsession.EndTimeGT(from),
			entsession.IDNotIn(excludeIDs...),
			entsession.Or(preds...),
		).
		All(ctx)
	if err != nil {
		return cal, fmt.Errorf("load calendar sessions: %w", err)
	}
	for _, sess := range others {
		iv := engine.Interval{Start: sess.StartTime, End: sess.EndTime}
		cal.Therapist[sess.TherapistID] = append(cal.Therapist[sess.TherapistID], iv)
		cal.Student[sess.StudentID] = append(cal.Student[sess.StudentID], iv)
		if sess.RoomID != nil {
			cal.Room[*sess.RoomID] = append(cal.Room[*sess.RoomID], iv)
		}
	}
	return cal, nil
}

func uuidKeys(set map[uuid.UUID]struct{}) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

// Snapshots captures the rollback image of every session before a batch
// touches them.
func Snapshots(sessions []*repo.TherapySession) []schema.SessionSnapshot {
	out := make([]schema.SessionSnapshot, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, schema.SessionSnapshot{
			SessionID:   s.ID,
			TherapistID: s.TherapistID,
			RoomID:      s.RoomID,
			StartTime:   s.StartTime.Format(time.RFC3339),
			EndTime:     s.EndTime.Format(time.RFC3339),
			Status:      string(s.Status),
		})
	}
	return out
}

func weekdays(days []int) []time.Weekday {
	out := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		out = append(out, time.Weekday(d))
	}
	return out
}

func windows(ws []schema.TimeWindow) []engine.Window {
	out := make([]engine.Window, 0, len(ws))
	for _, w := range ws {
		out = append(out, engine.Window{StartMin: w.StartMin, EndMin: w.EndMin})
	}
	return out
}
