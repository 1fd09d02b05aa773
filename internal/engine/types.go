package engine

import (
	"time"

	"github.com/google/uuid"
)

// Window is a half-open [StartMin, EndMin) range in minutes from midnight.
type Window struct {
	StartMin int
	EndMin   int
}

// Contains reports whether the minute-of-day range [startMin, endMin) falls
// entirely inside the window.
func (w Window) Contains(startMin, endMin int) bool {
	return startMin >= w.StartMin && endMin <= w.EndMin
}

// Overlaps reports whether the minute-of-day range intersects the window.
func (w Window) Overlaps(startMin, endMin int) bool {
	return startMin < w.EndMin && w.StartMin < endMin
}

// WeeklyRule is one recurring availability block for a therapist.
type WeeklyRule struct {
	Weekday    time.Weekday
	StartMin   int
	EndMin     int
	ValidFrom  time.Time
	ValidUntil *time.Time
}

// coversDate reports whether the rule is in effect on the given date.
func (r WeeklyRule) coversDate(date time.Time) bool {
	if date.Weekday() != r.Weekday {
		return false
	}
	if date.Before(r.ValidFrom) {
		return false
	}
	if r.ValidUntil != nil && date.After(*r.ValidUntil) {
		return false
	}
	return true
}

// Preferences are the enrollment's time preferences. Flexibility controls how
// far the generator may deviate: below flexNeutral only preferred days are
// used, below flexAvoid avoided days/windows are never used.
type Preferences struct {
	PreferredDays    []time.Weekday
	AvoidDays        []time.Weekday
	PreferredWindows []Window
	AvoidWindows     []Window
	Flexibility      float64
}

func (p Preferences) dayPreference(d time.Weekday) dayClass {
	for _, pd := range p.PreferredDays {
		if pd == d {
			return dayPreferred
		}
	}
	for _, ad := range p.AvoidDays {
		if ad == d {
			return dayAvoided
		}
	}
	return dayNeutral
}

type dayClass int

const (
	dayPreferred dayClass = iota
	dayNeutral
	dayAvoided
)

// SlotRequest describes one enrollment's demand for generated sessions.
type SlotRequest struct {
	EnrollmentID uuid.UUID
	TherapistID  uuid.UUID
	StudentID    uuid.UUID
	RoomID       *uuid.UUID

	StartDate time.Time // midnight, center-local
	EndDate   time.Time // inclusive horizon; see AllowExtension

	SessionCount    int
	SessionsPerWeek int
	DurationMin     int

	// MaxWeeklySessions is the therapist's workload cap, used by the
	// workload-balance score component.
	MaxWeeklySessions int

	// AllowExtension lets generation continue past EndDate until
	// SessionCount is reached (used by freeze rescheduling).
	AllowExtension bool

	Prefs        Preferences
	Availability []WeeklyRule
}

// Slot is one candidate or generated session placement.
type Slot struct {
	TherapistID uuid.UUID
	StudentID   uuid.UUID
	RoomID      *uuid.UUID
	Start       time.Time
	End         time.Time
}

// Interval is a half-open busy range on some calendar.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Start.Before(o.End) && o.Start.Before(iv.End)
}

// Calendars holds the busy intervals of every entity a slot can collide with.
type Calendars struct {
	Therapist map[uuid.UUID][]Interval
	Room      map[uuid.UUID][]Interval
	Student   map[uuid.UUID][]Interval
}

// NewCalendars returns empty, ready-to-fill calendars.
func NewCalendars() Calendars {
	return Calendars{
		Therapist: make(map[uuid.UUID][]Interval),
		Room:      make(map[uuid.UUID][]Interval),
		Student:   make(map[uuid.UUID][]Interval),
	}
}

func overlapsAny(busy []Interval, iv Interval) bool {
	for _, b := range busy {
		if b.Overlaps(iv) {
			return true
		}
	}
	return false
}

// BlockerCode classifies why a week (or the whole request) could not be
// fully placed.
type BlockerCode string

const (
	BlockerNoAvailability   BlockerCode = "NO_AVAILABILITY"
	BlockerWeekUnplaceable  BlockerCode = "WEEK_UNPLACEABLE"
	BlockerHorizonExhausted BlockerCode = "HORIZON_EXHAUSTED"
)

// Blocker explains a placement shortfall without failing the whole request.
type Blocker struct {
	WeekStart time.Time
	Code      BlockerCode
	Message   string
}

// ConflictKind identifies what a slot collides with.
type ConflictKind string

const (
	ConflictTherapistBusy       ConflictKind = "therapist_busy"
	ConflictStudentBusy         ConflictKind = "student_busy"
	ConflictRoomBusy            ConflictKind = "room_busy"
	ConflictOutsideAvailability ConflictKind = "outside_availability"
	ConflictAvoidDay            ConflictKind = "avoid_day"
	ConflictAvoidWindow         ConflictKind = "avoid_window"
	ConflictBatchOverlap        ConflictKind = "batch_overlap"
)

// Severity ranks conflicts for display and for deciding whether a batch may
// still be applied.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Conflict is one detected collision or preference violation for a slot.
type Conflict struct {
	Kind     ConflictKind
	Severity Severity
	Message  string
}

// ScoringWeights weight the three objective components. They should sum to 1;
// Normalize rescales them if they don't.
type ScoringWeights struct {
	Preference float64
	Workload   float64
	Gap        float64
}

// DefaultWeights mirror the engine's shipped configuration.
func DefaultWeights() ScoringWeights {
	return ScoringWeights{Preference: 0.4, Workload: 0.3, Gap: 0.3}
}

// Normalize rescales the weights to sum to 1. Zero weights fall back to
// defaults.
func (w ScoringWeights) Normalize() ScoringWeights {
	sum := w.Preference + w.Workload + w.Gap
	if sum <= 0 {
		return DefaultWeights()
	}
	return ScoringWeights{
		Preference: w.Preference / sum,
		Workload:   w.Workload / sum,
		Gap:        w.Gap / sum,
	}
}

// Score breaks the objective into its components. All values are in [0, 1];
// Total is the weighted sum.
type Score struct {
	Preference float64
	Workload   float64
	Gap        float64
	Total      float64
}

// Options tune generation and optimization.
type Options struct {
	// GridMin is the start-time granularity in minutes.
	GridMin int
	// MaxIterations bounds the local-search optimizer.
	MaxIterations int
	// TargetUtilization is the fraction of MaxWeeklySessions the balancer
	// treats as ideal.
	TargetUtilization float64
	Weights           ScoringWeights
}

// DefaultOptions returns the engine defaults used when config leaves the
// scheduler section empty.
func DefaultOptions() Options {
	return Options{
		GridMin:           30,
		MaxIterations:     50,
		TargetUtilization: 0.85,
		Weights:           DefaultWeights(),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.GridMin <= 0 {
		o.GridMin = d.GridMin
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = d.MaxIterations
	}
	if o.TargetUtilization <= 0 || o.TargetUtilization > 1 {
		o.TargetUtilization = d.TargetUtilization
	}
	o.Weights = o.Weights.Normalize()
	return o
}

const (
	// flexNeutral is the flexibility floor for using non-preferred days and
	// windows at all.
	flexNeutral = 0.3
	// flexAvoid is the flexibility floor for falling back onto explicitly
	// avoided days or windows.
	flexAvoid = 0.7
)

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
