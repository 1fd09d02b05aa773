package engine

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrNothingPlaced is returned when not a single slot could be generated.
var ErrNothingPlaced = errors.New("no session slots could be placed")

// GenerateSlots places req.SessionCount sessions week by week from
// req.StartDate, honoring availability rules, preferences, and every busy
// calendar in cal. Output is deterministic for a given input: candidates are
// ordered by preference score, then by earlier start.
//
// Weeks that cannot be fully placed produce Blockers and generation moves
// on; the function fails only when zero slots fit.
func GenerateSlots(req SlotRequest, cal Calendars, opts Options) ([]Slot, []Blocker, error) {
	opts = opts.withDefaults()

	if len(req.Availability) == 0 {
		return nil, []Blocker{{
			WeekStart: req.StartDate,
			Code:      BlockerNoAvailability,
			Message:   "therapist has no availability rules",
		}}, ErrNothingPlaced
	}
	if req.DurationMin <= 0 || req.SessionCount <= 0 || req.SessionsPerWeek <= 0 {
		return nil, nil, fmt.Errorf("invalid request: duration=%d count=%d per_week=%d",
			req.DurationMin, req.SessionCount, req.SessionsPerWeek)
	}

	// Placed slots become busy time themselves so later weeks see them.
	scratch := cloneCalendars(cal)

	var slots []Slot
	var blockers []Blocker

	horizon := req.EndDate
	weekStart := req.StartDate

	for len(slots) < req.SessionCount {
		if weekStart.After(horizon) {
			if !req.AllowExtension {
				blockers = append(blockers, Blocker{
					WeekStart: weekStart,
					Code:      BlockerHorizonExhausted,
					Message: fmt.Sprintf("horizon ended with %d of %d sessions placed",
						len(slots), req.SessionCount),
				})
				break
			}
			// Extension guard: never run unbounded.
			if weekStart.Sub(req.EndDate) > 52*7*24*time.Hour {
				blockers = append(blockers, Blocker{
					WeekStart: weekStart,
					Code:      BlockerHorizonExhausted,
					Message:   "extension limit of 52 weeks reached",
				})
				break
			}
		}

		placed := placeWeek(&slots, scratch, req, weekStart, opts)
		if placed < req.SessionsPerWeek && len(slots) < req.SessionCount {
			blockers = append(blockers, Blocker{
				WeekStart: weekStart,
				Code:      BlockerWeekUnplaceable,
				Message: fmt.Sprintf("placed %d of %d sessions in week of %s",
					placed, req.SessionsPerWeek, weekStart.Format("2006-01-02")),
			})
		}

		weekStart = weekStart.AddDate(0, 0, 7)
	}

	if len(slots) == 0 {
		return nil, blockers, ErrNothingPlaced
	}
	return slots, blockers, nil
}

// placeWeek places up to SessionsPerWeek sessions in the week starting at
// weekStart, at most one per day, and records them in scratch. Returns how
// many were placed.
func placeWeek(slots *[]Slot, scratch Calendars, req SlotRequest, weekStart time.Time, opts Options) int {
	want := req.SessionsPerWeek
	remaining := req.SessionCount - len(*slots)
	if remaining < want {
		want = remaining
	}

	placed := 0
	for _, phase := range []candidatePhase{phasePreferred, phaseNeutral, phaseAvoided} {
		if placed >= want {
			break
		}
		if phase == phaseNeutral && req.Prefs.Flexibility < flexNeutral && len(req.Prefs.PreferredDays) > 0 {
			continue
		}
		if phase == phaseAvoided && req.Prefs.Flexibility < flexAvoid {
			continue
		}

		for _, day := range weekDays(weekStart, req, phase) {
			if placed >= want {
				break
			}
			if dayTaken(*slots, day) {
				continue
			}
			cand := bestCandidateForDay(day, req, scratch, opts, phase)
			if cand == nil {
				continue
			}
			*slots = append(*slots, *cand)
			markBusy(scratch, *cand)
			placed++
		}
	}
	return placed
}

type candidatePhase int

const (
	phasePreferred candidatePhase = iota
	phaseNeutral
	phaseAvoided
)

// weekDays lists the dates of the week matching the phase's day class,
// skipping dates before the enrollment start and, unless extension is
// allowed, dates past the horizon.
func weekDays(weekStart time.Time, req SlotRequest, phase candidatePhase) []time.Time {
	var days []time.Time
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		if day.Before(req.StartDate) {
			continue
		}
		if !req.AllowExtension && day.After(req.EndDate) {
			continue
		}
		class := req.Prefs.dayPreference(day.Weekday())
		switch phase {
		case phasePreferred:
			if class != dayPreferred {
				continue
			}
		case phaseNeutral:
			if class != dayNeutral {
				continue
			}
		case phaseAvoided:
			if class != dayAvoided {
				continue
			}
		}
		days = append(days, day)
	}
	return days
}

func dayTaken(slots []Slot, day time.Time) bool {
	y, m, d := day.Date()
	for _, s := range slots {
		sy, sm, sd := s.Start.Date()
		if sy == y && sm == m && sd == d {
			return true
		}
	}
	return false
}

// bestCandidateForDay enumerates grid-aligned start times inside the
// therapist's rules for the date and returns the highest-scoring free slot,
// or nil when nothing fits.
func bestCandidateForDay(day time.Time, req SlotRequest, cal Calendars, opts Options, phase candidatePhase) *Slot {
	type scored struct {
		slot Slot
		pref float64
	}
	var candidates []scored

	allowAvoidWindows := phase == phaseAvoided || req.Prefs.Flexibility >= flexAvoid

	for _, rule := range req.Availability {
		if !rule.coversDate(day) {
			continue
		}
		for startMin := rule.StartMin; startMin+req.DurationMin <= rule.EndMin; startMin += opts.GridMin {
			endMin := startMin + req.DurationMin

			if inAnyWindow(req.Prefs.AvoidWindows, startMin, endMin) && !allowAvoidWindows {
				continue
			}
			if len(req.Prefs.PreferredWindows) > 0 &&
				!containedInAny(req.Prefs.PreferredWindows, startMin, endMin) &&
				req.Prefs.Flexibility < flexNeutral {
				continue
			}

			slot := Slot{
				TherapistID: req.TherapistID,
				StudentID:   req.StudentID,
				RoomID:      req.RoomID,
				Start:       day.Add(time.Duration(startMin) * time.Minute),
				End:         day.Add(time.Duration(endMin) * time.Minute),
			}
			if slotBusy(cal, slot) {
				continue
			}
			candidates = append(candidates, scored{
				slot: slot,
				pref: slotPreference(slot, req.Prefs),
			})
		}
	}

	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].pref != candidates[j].pref {
			return candidates[i].pref > candidates[j].pref
		}
		return candidates[i].slot.Start.Before(candidates[j].slot.Start)
	})
	best := candidates[0].slot
	return &best
}

// inAnyWindow is the overlap test used for avoid windows: touching an avoided
// window at all counts.
func inAnyWindow(windows []Window, startMin, endMin int) bool {
	for _, w := range windows {
		if w.Overlaps(startMin, endMin) {
			return true
		}
	}
	return false
}

// containedInAny is the containment test used for preferred windows: the slot
// must sit entirely inside one window.
func containedInAny(windows []Window, startMin, endMin int) bool {
	for _, w := range windows {
		if w.Contains(startMin, endMin) {
			return true
		}
	}
	return false
}

func slotBusy(cal Calendars, s Slot) bool {
	iv := Interval{Start: s.Start, End: s.End}
	if overlapsAny(cal.Therapist[s.TherapistID], iv) {
		return true
	}
	if overlapsAny(cal.Student[s.StudentID], iv) {
		return true
	}
	if s.RoomID != nil && overlapsAny(cal.Room[*s.RoomID], iv) {
		return true
	}
	return false
}

func markBusy(cal Calendars, s Slot) {
	iv := Interval{Start: s.Start, End: s.End}
	cal.Therapist[s.TherapistID] = append(cal.Therapist[s.TherapistID], iv)
	cal.Student[s.StudentID] = append(cal.Student[s.StudentID], iv)
	if s.RoomID != nil {
		cal.Room[*s.RoomID] = append(cal.Room[*s.RoomID], iv)
	}
}

func unmarkBusy(cal Calendars, s Slot) {
	iv := Interval{Start: s.Start, End: s.End}
	cal.Therapist[s.TherapistID] = removeInterval(cal.Therapist[s.TherapistID], iv)
	cal.Student[s.StudentID] = removeInterval(cal.Student[s.StudentID], iv)
	if s.RoomID != nil {
		cal.Room[*s.RoomID] = removeInterval(cal.Room[*s.RoomID], iv)
	}
}

func removeInterval(busy []Interval, iv Interval) []Interval {
	for i, b := range busy {
		if b.Start.Equal(iv.Start) && b.End.Equal(iv.End) {
			return append(busy[:i:i], busy[i+1:]...)
		}
	}
	return busy
}

func cloneCalendars(cal Calendars) Calendars {
	out := NewCalendars()
	for id, ivs := range cal.Therapist {
		out.Therapist[id] = append([]Interval(nil), ivs...)
	}
	for id, ivs := range cal.Room {
		out.Room[id] = append([]Interval(nil), ivs...)
	}
	for id, ivs := range cal.Student {
		out.Student[id] = append([]Interval(nil), ivs...)
	}
	return out
}
