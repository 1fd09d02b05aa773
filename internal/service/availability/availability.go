package availability

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/arkanhealth/jadwal_backend/internal/engine"
	"github.com/arkanhealth/jadwal_backend/internal/repo"
	entrule "github.com/arkanhealth/jadwal_backend/internal/repo/availabilityrule"
	entsession "github.com/arkanhealth/jadwal_backend/internal/repo/therapysession"
	enttherapist "github.com/arkanhealth/jadwal_backend/internal/repo/therapist"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRuleRequest struct {
	DayOfWeek   int
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
	ValidFrom   time.Time
	ValidUntil  *time.Time
}

type UpdateRuleRequest struct {
	StartHour   *int
	StartMinute *int
	EndHour     *int
	EndMinute   *int
	ValidUntil  *time.Time
	IsActive    *bool
}

// Opening is a free interval inside a therapist's working hours.
type Opening struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	ListRules(ctx context.Context, centerID, therapistID uuid.UUID) ([]*repo.AvailabilityRule, error)
	CreateRule(ctx context.Context, centerID, therapistID uuid.UUID, req CreateRuleRequest) (*repo.AvailabilityRule, error)
	UpdateRule(ctx context.Context, centerID, ruleID uuid.UUID, req UpdateRuleRequest) (*repo.AvailabilityRule, error)
	DeleteRule(ctx context.Context, centerID, ruleID uuid.UUID) error

	// ListOpenings computes the therapist's free intervals over [from, to):
	// working hours from active rules minus scheduled sessions.
	ListOpenings(ctx context.Context, centerID, therapistID uuid.UUID, from, to time.Time) ([]Opening, error)

	// SetAccepting toggles whether the generator may plan new enrollments
	// onto the therapist.
	SetAccepting(ctx context.Context, centerID, therapistID uuid.UUID, accepting bool) (*repo.Therapist, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type availabilityService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &availabilityService{db: db}
}

func (s *availabilityService) therapist(ctx context.Context, centerID, therapistID uuid.UUID) (*repo.Therapist, error) {
	th, err := s.db.Therapist.Query().
		Where(enttherapist.ID(therapistID), enttherapist.CenterID(centerID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTherapistNotFound
		}
		return nil, fmt.Errorf("get therapist: %w", err)
	}
	return th, nil
}

func (s *availabilityService) ListRules(ctx context.Context, centerID, therapistID uuid.UUID) ([]*repo.AvailabilityRule, error) {
	if _, err := s.therapist(ctx, centerID, therapistID); err != nil {
		return nil, err
	}
	rules, err := s.db.AvailabilityRule.Query().
		Where(entrule.TherapistID(therapistID)).
		Order(entrule.ByDayOfWeek(), entrule.ByStartHour(), entrule.ByStartMinute()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}
	return rules, nil
}

func (s *availabilityService) CreateRule(ctx context.Context, centerID, therapistID uuid.UUID, req CreateRuleRequest) (*repo.AvailabilityRule, error) {
	if _, err := s.therapist(ctx, centerID, therapistID); err != nil {
		return nil, err
	}
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, ErrInvalidDay
	}
	startMin := req.StartHour*60 + req.StartMinute
	endMin := req.EndHour*60 + req.EndMinute
	if endMin <= startMin || startMin < 0 || endMin > 24*60 {
		return nil, ErrInvalidTimeRange
	}

	existing, err := s.db.AvailabilityRule.Query().
		Where(
			entrule.TherapistID(therapistID),
			entrule.DayOfWeek(int8(req.DayOfWeek)),
			entrule.IsActive(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("check overlap: %w", err)
	}
	for _, r := range existing {
		rStart := int(r.StartHour)*60 + int(r.StartMinute)
		rEnd := int(r.EndHour)*60 + int(r.EndMinute)
		if startMin < rEnd && rStart < endMin {
			return nil, ErrRuleOverlaps
		}
	}

	rule, err := s.db.AvailabilityRule.Create().
		SetTherapistID(therapistID).
		SetCenterID(centerID).
		SetDayOfWeek(int8(req.DayOfWeek)).
		SetStartHour(int8(req.StartHour)).
		SetStartMinute(int8(req.StartMinute)).
		SetEndHour(int8(req.EndHour)).
		SetEndMinute(int8(req.EndMinute)).
		SetValidFrom(req.ValidFrom).
		SetNillableValidUntil(req.ValidUntil).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create rule: %w", err)
	}
	return rule, nil
}

func (s *availabilityService) UpdateRule(ctx context.Context, centerID, ruleID uuid.UUID, req UpdateRuleRequest) (*repo.AvailabilityRule, error) {
	rule, err := s.db.AvailabilityRule.Query().
		Where(entrule.ID(ruleID), entrule.CenterID(centerID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrRuleNotFound
		}
		return nil, fmt.Errorf("get rule: %w", err)
	}

	start := int(rule.StartHour)*60 + int(rule.StartMinute)
	end := int(rule.EndHour)*60 + int(rule.EndMinute)
	if req.StartHour != nil {
		start = *req.StartHour*60 + start%60
	}
	if req.StartMinute != nil {
		start = (start/60)*60 + *req.StartMinute
	}
	if req.EndHour != nil {
		end = *req.EndHour*60 + end%60
	}
	if req.EndMinute != nil {
		end = (end/60)*60 + *req.EndMinute
	}
	if end <= start || start < 0 || end > 24*60 {
		return nil, ErrInvalidTimeRange
	}

	upd := s.db.AvailabilityRule.UpdateOne(rule).
		SetStartHour(int8(start / 60)).
		SetStartMinute(int8(start % 60)).
		SetEndHour(int8(end / 60)).
		SetEndMinute(int8(end % 60))
	if req.ValidUntil != nil {
		upd = upd.SetValidUntil(*req.ValidUntil)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	rule, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update rule: %w", err)
	}
	return rule, nil
}

func (s *availabilityService) DeleteRule(ctx context.Context, centerID, ruleID uuid.UUID) error {
	n, err := s.db.AvailabilityRule.Delete().
		Where(entrule.ID(ruleID), entrule.CenterID(centerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete rule: %w", err)
	}
	if n == 0 {
		return ErrRuleNotFound
	}
	return nil
}

func (s *availabilityService) ListOpenings(ctx context.Context, centerID, therapistID uuid.UUID, from, to time.Time) ([]Opening, error) {
	if !to.After(from) {
		return nil, ErrInvalidRange
	}
	if _, err := s.therapist(ctx, centerID, therapistID); err != nil {
		return nil, err
	}

	rules, err := s.db.AvailabilityRule.Query().
		Where(entrule.TherapistID(therapistID), entrule.IsActive(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}

	busy, err := s.db.TherapySession.Query().
		Where(
			entsession.TherapistID(therapistID),
			entsession.StatusEQ(entsession.StatusScheduled),
			entsession.StartTimeGTE(from),
			entsession.StartTimeLT(to),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	intervals := make([]engine.Interval, 0, len(busy))
	for _, sess := range busy {
		intervals = append(intervals, engine.Interval{Start: sess.StartTime, End: sess.EndTime})
	}
	sort.Slice(intervals, func(i, j int) bool { return intervals[i].Start.Before(intervals[j].Start) })

	var openings []Opening
	for day := dateOnly(from); day.Before(to); day = day.AddDate(0, 0, 1) {
		for _, r := range rules {
			if time.Weekday(r.DayOfWeek) != day.Weekday() {
				continue
			}
			if day.Before(dateOnly(r.ValidFrom)) {
				continue
			}
			if r.ValidUntil != nil && day.After(*r.ValidUntil) {
				continue
			}
			blockStart := day.Add(time.Duration(int(r.StartHour)*60+int(r.StartMinute)) * time.Minute)
			blockEnd := day.Add(time.Duration(int(r.EndHour)*60+int(r.EndMinute)) * time.Minute)
			openings = append(openings, subtractBusy(blockStart, blockEnd, intervals)...)
		}
	}
	sort.Slice(openings, func(i, j int) bool { return openings[i].Start.Before(openings[j].Start) })
	return openings, nil
}

func (s *availabilityService) SetAccepting(ctx context.Context, centerID, therapistID uuid.UUID, accepting bool) (*repo.Therapist, error) {
	th, err := s.therapist(ctx, centerID, therapistID)
	if err != nil {
		return nil, err
	}
	th, err = s.db.Therapist.UpdateOne(th).
		SetIsAccepting(accepting).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update therapist: %w", err)
	}
	return th, nil
}

// subtractBusy cuts the sorted busy intervals out of one working block.
func subtractBusy(start, end time.Time, busy []engine.Interval) []Opening {
	var out []Opening
	cursor := start
	for _, iv := range busy {
		if !iv.Start.Before(end) {
			break
		}
		if !iv.End.After(cursor) {
			continue
		}
		if iv.Start.After(cursor) {
			out = append(out, Opening{Start: cursor, End: iv.Start})
		}
		if iv.End.After(cursor) {
			cursor = iv.End
		}
	}
	if cursor.Before(end) {
		out = append(out, Opening{Start: cursor, End: end})
	}
	return out
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
