package engine

import (
	"testing"
	"time"
)

func slotAt(day time.Time, hour int, durMin int) Slot {
	room := testRoom
	return Slot{
		TherapistID: testTherapist,
		StudentID:   testStudent,
		RoomID:      &room,
		Start:       day.Add(time.Duration(hour) * time.Hour),
		End:         day.Add(time.Duration(hour)*time.Hour + time.Duration(durMin)*time.Minute),
	}
}

func TestDetectConflictsKindsAndSeverities(t *testing.T) {
	req := baseRequest()
	monday := testStart

	tests := []struct {
		name     string
		cal      func() Calendars
		slot     Slot
		wantKind ConflictKind
		wantSev  Severity
	}{
		{
			name: "therapist double booked",
			cal: func() Calendars {
				c := NewCalendars()
				c.Therapist[testTherapist] = []Interval{{Start: monday.Add(10 * time.Hour), End: monday.Add(11 * time.Hour)}}
				return c
			},
			slot:     slotAt(monday, 10, 45),
			wantKind: ConflictTherapistBusy,
			wantSev:  SeverityHigh,
		},
		{
			name: "student double booked",
			cal: func() Calendars {
				c := NewCalendars()
				c.Student[testStudent] = []Interval{{Start: monday.Add(10 * time.Hour), End: monday.Add(11 * time.Hour)}}
				return c
			},
			slot:     slotAt(monday, 10, 45),
			wantKind: ConflictStudentBusy,
			wantSev:  SeverityHigh,
		},
		{
			name: "room occupied",
			cal: func() Calendars {
				c := NewCalendars()
				c.Room[testRoom] = []Interval{{Start: monday.Add(10 * time.Hour), End: monday.Add(11 * time.Hour)}}
				return c
			},
			slot:     slotAt(monday, 10, 45),
			wantKind: ConflictRoomBusy,
			wantSev:  SeverityMedium,
		},
		{
			name:     "outside availability",
			cal:      func() Calendars { return NewCalendars() },
			slot:     slotAt(monday, 20, 45),
			wantKind: ConflictOutsideAvailability,
			wantSev:  SeverityMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts := DetectConflicts([]Slot{tt.slot}, req, tt.cal())
			cs := conflicts[0]
			if len(cs) == 0 {
				t.Fatal("no conflicts detected")
			}
			found := false
			for _, c := range cs {
				if c.Kind == tt.wantKind {
					found = true
					if c.Severity != tt.wantSev {
						t.Errorf("severity = %s, want %s", c.Severity, tt.wantSev)
					}
				}
			}
			if !found {
				t.Errorf("conflicts %v missing kind %s", cs, tt.wantKind)
			}
		})
	}
}

func TestDetectConflictsAvoidDayIsLowSeverity(t *testing.T) {
	req := baseRequest()
	req.Prefs.AvoidDays = []time.Weekday{time.Friday}
	req.Prefs.PreferredDays = nil
	req.Availability = weekdayRules([]time.Weekday{time.Friday}, 9*60, 17*60)

	friday := testStart.AddDate(0, 0, 4)
	conflicts := DetectConflicts([]Slot{slotAt(friday, 10, 45)}, req, NewCalendars())

	cs := conflicts[0]
	if len(cs) != 1 || cs[0].Kind != ConflictAvoidDay || cs[0].Severity != SeverityLow {
		t.Fatalf("conflicts = %v, want single low-severity avoid_day", cs)
	}
}

func TestDetectConflictsBatchOverlap(t *testing.T) {
	req := baseRequest()
	monday := testStart

	a := slotAt(monday, 10, 45)
	b := slotAt(monday, 10, 45)

	conflicts := DetectConflicts([]Slot{a, b}, req, NewCalendars())
	if len(conflicts[0]) == 0 || len(conflicts[1]) == 0 {
		t.Fatal("both overlapping slots should carry a conflict")
	}
	for _, idx := range []int{0, 1} {
		found := false
		for _, c := range conflicts[idx] {
			if c.Kind == ConflictBatchOverlap && c.Severity == SeverityHigh {
				found = true
			}
		}
		if !found {
			t.Errorf("slot %d missing batch_overlap conflict: %v", idx, conflicts[idx])
		}
	}
}

func TestHighestSeverity(t *testing.T) {
	tests := []struct {
		name string
		in   map[int][]Conflict
		want Severity
	}{
		{"empty", map[int][]Conflict{}, ""},
		{"low only", map[int][]Conflict{0: {{Severity: SeverityLow}}}, SeverityLow},
		{
			"mixed",
			map[int][]Conflict{
				0: {{Severity: SeverityLow}},
				1: {{Severity: SeverityHigh}, {Severity: SeverityMedium}},
			},
			SeverityHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HighestSeverity(tt.in); got != tt.want {
				t.Errorf("HighestSeverity() = %q, want %q", got, tt.want)
			}
		})
	}
}
