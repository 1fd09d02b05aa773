package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

var (
	testTherapist = uuid.MustParse("019236e0-0000-7000-8000-000000000001")
	testStudent   = uuid.MustParse("019236e0-0000-7000-8000-000000000002")
	testRoom      = uuid.MustParse("019236e0-0000-7000-8000-000000000003")
)

// Monday 2026-01-05.
var testStart = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

func weekdayRules(days []time.Weekday, startMin, endMin int) []WeeklyRule {
	rules := make([]WeeklyRule, 0, len(days))
	for _, d := range days {
		rules = append(rules, WeeklyRule{
			Weekday:   d,
			StartMin:  startMin,
			EndMin:    endMin,
			ValidFrom: testStart.AddDate(0, -1, 0),
		})
	}
	return rules
}

func baseRequest() SlotRequest {
	return SlotRequest{
		EnrollmentID:      uuid.New(),
		TherapistID:       testTherapist,
		StudentID:         testStudent,
		StartDate:         testStart,
		EndDate:           testStart.AddDate(0, 0, 6*7),
		SessionCount:      8,
		SessionsPerWeek:   2,
		DurationMin:       45,
		MaxWeeklySessions: 30,
		Prefs: Preferences{
			PreferredDays: []time.Weekday{time.Monday, time.Wednesday},
			Flexibility:   0.5,
		},
		Availability: weekdayRules(
			[]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday},
			9*60, 17*60,
		),
	}
}

func TestGenerateSlotsPlacesRequestedCount(t *testing.T) {
	req := baseRequest()

	slots, blockers, err := GenerateSlots(req, NewCalendars(), DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateSlots() error = %v", err)
	}
	if len(slots) != req.SessionCount {
		t.Fatalf("placed %d slots, want %d (blockers: %v)", len(slots), req.SessionCount, blockers)
	}
	if len(blockers) != 0 {
		t.Errorf("unexpected blockers: %v", blockers)
	}

	for i, s := range slots {
		if got := s.End.Sub(s.Start); got != 45*time.Minute {
			t.Errorf("slot %d duration = %v, want 45m", i, got)
		}
		if wd := s.Start.Weekday(); wd != time.Monday && wd != time.Wednesday {
			t.Errorf("slot %d on %s, preferred days should win with open availability", i, wd)
		}
	}
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	req := baseRequest()

	a, _, err := GenerateSlots(req, NewCalendars(), DefaultOptions())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	b, _, err := GenerateSlots(req, NewCalendars(), DefaultOptions())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("run lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Start.Equal(b[i].Start) {
			t.Errorf("slot %d differs: %v vs %v", i, a[i].Start, b[i].Start)
		}
	}
}

func TestGenerateSlotsAvoidsBusyCalendars(t *testing.T) {
	req := baseRequest()
	req.SessionCount = 2
	req.SessionsPerWeek = 2

	// Block the whole preferred Monday morning-to-evening for the therapist.
	cal := NewCalendars()
	monday := testStart
	cal.Therapist[testTherapist] = []Interval{{
		Start: monday.Add(9 * time.Hour),
		End:   monday.Add(17 * time.Hour),
	}}

	slots, _, err := GenerateSlots(req, cal, DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateSlots() error = %v", err)
	}
	for _, s := range slots {
		if s.Start.Year() == monday.Year() && s.Start.YearDay() == monday.YearDay() {
			t.Errorf("slot placed on fully busy day: %v", s.Start)
		}
	}
}

func TestGenerateSlotsFlexibilityGating(t *testing.T) {
	tests := []struct {
		name        string
		flexibility float64
		wantPlaced  bool
	}{
		{"rigid enrollment cannot leave preferred days", 0.1, false},
		{"flexible enrollment spills to neutral days", 0.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			req.SessionCount = 3
			req.SessionsPerWeek = 3 // more than the two preferred days
			req.EndDate = testStart.AddDate(0, 0, 6) // single week
			req.Prefs.Flexibility = tt.flexibility

			slots, blockers, err := GenerateSlots(req, NewCalendars(), DefaultOptions())
			if err != nil {
				t.Fatalf("GenerateSlots() error = %v", err)
			}
			if tt.wantPlaced {
				if len(slots) != 3 {
					t.Fatalf("placed %d, want 3", len(slots))
				}
			} else {
				if len(slots) != 2 {
					t.Fatalf("placed %d, want only the 2 preferred days", len(slots))
				}
				if len(blockers) == 0 {
					t.Error("expected a WEEK_UNPLACEABLE blocker")
				}
			}
		})
	}
}

func TestGenerateSlotsAvoidedDayFallback(t *testing.T) {
	req := baseRequest()
	req.SessionCount = 1
	req.SessionsPerWeek = 1
	req.EndDate = testStart.AddDate(0, 0, 6)
	req.Prefs = Preferences{
		PreferredDays: []time.Weekday{time.Monday},
		AvoidDays:     []time.Weekday{time.Tuesday, time.Wednesday, time.Thursday},
		Flexibility:   0.9,
	}
	// Only Tuesday is available, and Tuesday is avoided.
	req.Availability = weekdayRules([]time.Weekday{time.Tuesday}, 9*60, 12*60)

	slots, _, err := GenerateSlots(req, NewCalendars(), DefaultOptions())
	if err != nil {
		t.Fatalf("high-flexibility fallback should place the slot: %v", err)
	}
	if slots[0].Start.Weekday() != time.Tuesday {
		t.Errorf("slot on %s, want Tuesday", slots[0].Start.Weekday())
	}

	req.Prefs.Flexibility = 0.4
	if _, _, err := GenerateSlots(req, NewCalendars(), DefaultOptions()); err == nil {
		t.Error("low-flexibility enrollment must not land on avoided days")
	}
}

func TestGenerateSlotsNoAvailability(t *testing.T) {
	req := baseRequest()
	req.Availability = nil

	_, blockers, err := GenerateSlots(req, NewCalendars(), DefaultOptions())
	if err == nil {
		t.Fatal("expected ErrNothingPlaced")
	}
	if len(blockers) != 1 || blockers[0].Code != BlockerNoAvailability {
		t.Errorf("blockers = %v, want single NO_AVAILABILITY", blockers)
	}
}

func TestGenerateSlotsHorizonExtension(t *testing.T) {
	req := baseRequest()
	req.SessionCount = 6
	req.SessionsPerWeek = 2
	req.EndDate = testStart.AddDate(0, 0, 6) // room for one week only

	slots, blockers, err := GenerateSlots(req, NewCalendars(), DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateSlots() error = %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("without extension placed %d, want 2", len(slots))
	}
	found := false
	for _, b := range blockers {
		if b.Code == BlockerHorizonExhausted {
			found = true
		}
	}
	if !found {
		t.Error("expected HORIZON_EXHAUSTED blocker")
	}

	req.AllowExtension = true
	slots, _, err = GenerateSlots(req, NewCalendars(), DefaultOptions())
	if err != nil {
		t.Fatalf("with extension: %v", err)
	}
	if len(slots) != 6 {
		t.Fatalf("with extension placed %d, want 6", len(slots))
	}
	last := slots[len(slots)-1]
	if !last.Start.After(req.EndDate) {
		t.Error("extension should have placed sessions past the end date")
	}
}

func TestGenerateSlotsNeverOverrunsHorizon(t *testing.T) {
	req := baseRequest()
	req.SessionCount = 1
	req.SessionsPerWeek = 1
	req.EndDate = testStart.AddDate(0, 0, 1) // Tuesday 2026-01-06
	req.Prefs = Preferences{Flexibility: 0.5}

	// Every day inside the horizon is fully booked; without extension the
	// generator must report the shortfall, not spill into Wednesday.
	cal := NewCalendars()
	for i := 0; i < 2; i++ {
		day := testStart.AddDate(0, 0, i)
		cal.Therapist[testTherapist] = append(cal.Therapist[testTherapist], Interval{
			Start: day.Add(9 * time.Hour),
			End:   day.Add(17 * time.Hour),
		})
	}

	slots, blockers, err := GenerateSlots(req, cal, DefaultOptions())
	for _, s := range slots {
		if dateOf(s.Start).After(req.EndDate) {
			t.Errorf("slot at %v lies past the end date", s.Start)
		}
	}
	if err == nil {
		t.Fatal("expected ErrNothingPlaced")
	}
	found := false
	for _, b := range blockers {
		if b.Code == BlockerHorizonExhausted {
			found = true
		}
	}
	if !found {
		t.Errorf("blockers = %v, want HORIZON_EXHAUSTED", blockers)
	}
}

func TestGenerateSlotsPreferredWindow(t *testing.T) {
	req := baseRequest()
	req.SessionCount = 2
	req.Prefs.PreferredWindows = []Window{{StartMin: 14 * 60, EndMin: 17 * 60}}

	slots, _, err := GenerateSlots(req, NewCalendars(), DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateSlots() error = %v", err)
	}
	for _, s := range slots {
		if minuteOfDay(s.Start) < 14*60 {
			t.Errorf("slot at %s outside preferred afternoon window", s.Start.Format("15:04"))
		}
	}
}

func TestGenerateSlotsPreferredWindowContainment(t *testing.T) {
	req := baseRequest()
	req.SessionCount = 1
	req.SessionsPerWeek = 1
	req.Prefs.Flexibility = 0.1 // rigid: candidates must sit inside the window
	req.Prefs.PreferredWindows = []Window{{StartMin: 14 * 60, EndMin: 17 * 60}}

	slots, _, err := GenerateSlots(req, NewCalendars(), DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateSlots() error = %v", err)
	}
	s := slots[0]
	start := minuteOfDay(s.Start)
	end := start + int(s.End.Sub(s.Start).Minutes())
	// A 13:30 start overlaps the window but is not inside it; containment
	// must reject it.
	if start < 14*60 || end > 17*60 {
		t.Errorf("slot %s-%s not contained in the 14:00-17:00 window",
			s.Start.Format("15:04"), s.End.Format("15:04"))
	}
}
