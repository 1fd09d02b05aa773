package engine

import (
	"testing"
	"time"
)

func TestScoreScheduleBounds(t *testing.T) {
	req := baseRequest()
	slots, _, err := GenerateSlots(req, NewCalendars(), DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateSlots() error = %v", err)
	}

	score := ScoreSchedule(slots, req, NewCalendars(), DefaultOptions())
	for name, v := range map[string]float64{
		"preference": score.Preference,
		"workload":   score.Workload,
		"gap":        score.Gap,
		"total":      score.Total,
	} {
		if v < 0 || v > 1 {
			t.Errorf("%s component = %f, want [0,1]", name, v)
		}
	}
	if score.Total == 0 {
		t.Error("a fully preferred schedule should not score zero")
	}
}

func TestScorePrefersPreferredPlacement(t *testing.T) {
	req := baseRequest()
	monday := testStart
	friday := testStart.AddDate(0, 0, 4)

	onPreferred := []Slot{slotAt(monday, 10, 45)}
	offPreferred := []Slot{slotAt(friday, 10, 45)}

	a := ScoreSchedule(onPreferred, req, NewCalendars(), DefaultOptions())
	b := ScoreSchedule(offPreferred, req, NewCalendars(), DefaultOptions())
	if a.Preference <= b.Preference {
		t.Errorf("preferred-day slot scored %f, off-day %f; want strictly higher", a.Preference, b.Preference)
	}
}

func TestScoreFlexibilityEasesPenalty(t *testing.T) {
	friday := testStart.AddDate(0, 0, 4)
	slots := []Slot{slotAt(friday, 10, 45)}

	rigid := baseRequest()
	rigid.Prefs.Flexibility = 0.0
	flexible := baseRequest()
	flexible.Prefs.Flexibility = 1.0

	a := ScoreSchedule(slots, rigid, NewCalendars(), DefaultOptions())
	b := ScoreSchedule(slots, flexible, NewCalendars(), DefaultOptions())
	if b.Preference <= a.Preference {
		t.Errorf("flexible enrollment scored %f, rigid %f; flexibility should ease the miss", b.Preference, a.Preference)
	}
}

func TestScoreGapPenalty(t *testing.T) {
	req := baseRequest()
	monday := testStart

	backToBack := []Slot{
		slotAt(monday, 10, 60),
		{TherapistID: testTherapist, StudentID: testStudent, Start: monday.Add(11 * time.Hour), End: monday.Add(12 * time.Hour)},
	}
	gapped := []Slot{
		slotAt(monday, 9, 60),
		{TherapistID: testTherapist, StudentID: testStudent, Start: monday.Add(15 * time.Hour), End: monday.Add(16 * time.Hour)},
	}

	a := ScoreSchedule(backToBack, req, NewCalendars(), DefaultOptions())
	b := ScoreSchedule(gapped, req, NewCalendars(), DefaultOptions())
	if a.Gap <= b.Gap {
		t.Errorf("back-to-back gap score %f should beat gapped %f", a.Gap, b.Gap)
	}
}

func TestWeightsNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   ScoringWeights
	}{
		{"zero falls back to defaults", ScoringWeights{}},
		{"unnormalized sums rescale", ScoringWeights{Preference: 2, Workload: 1, Gap: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tt.in.Normalize()
			sum := w.Preference + w.Workload + w.Gap
			if sum < 0.999 || sum > 1.001 {
				t.Errorf("normalized weights sum = %f, want 1", sum)
			}
		})
	}
}

func TestOptimizeNeverWorsens(t *testing.T) {
	req := baseRequest()
	req.Prefs.PreferredWindows = []Window{{StartMin: 14 * 60, EndMin: 17 * 60}}

	// Handcraft a deliberately poor schedule: morning slots on neutral days.
	tuesday := testStart.AddDate(0, 0, 1)
	thursday := testStart.AddDate(0, 0, 3)
	slots := []Slot{
		slotAt(tuesday, 9, 45),
		slotAt(thursday, 9, 45),
	}

	before := ScoreSchedule(slots, req, NewCalendars(), DefaultOptions())
	res := Optimize(slots, req, NewCalendars(), DefaultOptions())

	if res.Score.Total < before.Total {
		t.Errorf("optimize worsened score: %f -> %f", before.Total, res.Score.Total)
	}
	if res.Moves > 0 && res.Score.Total <= before.Total {
		t.Errorf("accepted %d moves without improving the objective", res.Moves)
	}
	if len(res.Slots) != len(slots) {
		t.Fatalf("optimize changed slot count: %d -> %d", len(slots), len(res.Slots))
	}
}

func TestOptimizeTerminates(t *testing.T) {
	req := baseRequest()
	slots, _, err := GenerateSlots(req, NewCalendars(), DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateSlots() error = %v", err)
	}

	opts := DefaultOptions()
	opts.MaxIterations = 5
	res := Optimize(slots, req, NewCalendars(), opts)
	if res.Iterations > 5 {
		t.Errorf("ran %d iterations, cap was 5", res.Iterations)
	}
}
