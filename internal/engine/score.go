package engine

import (
	"math"
	"sort"
	"time"
)

// ScoreSchedule evaluates a set of slots against the objective:
//
//	total = wPref·preference + wLoad·workloadBalance + wGap·(1 − gapPenalty)
//
// Every component lies in [0, 1]. Calendars should hold the busy time that
// exists independently of the scored slots.
func ScoreSchedule(slots []Slot, req SlotRequest, cal Calendars, opts Options) Score {
	opts = opts.withDefaults()

	if len(slots) == 0 {
		return Score{}
	}

	pref := preferenceComponent(slots, req.Prefs)
	load := workloadComponent(slots, req, cal, opts)
	gap := gapComponent(slots, cal)

	total := opts.Weights.Preference*pref +
		opts.Weights.Workload*load +
		opts.Weights.Gap*(1-gap)

	return Score{
		Preference: pref,
		Workload:   load,
		Gap:        1 - gap,
		Total:      total,
	}
}

// slotPreference rates one slot in [0, 1] from its day and window placement.
// Flexibility eases misses: a fully flexible enrollment loses half as much
// for landing off-preference.
func slotPreference(s Slot, p Preferences) float64 {
	var day float64
	switch p.dayPreference(s.Start.Weekday()) {
	case dayPreferred:
		day = 1.0
	case dayNeutral:
		day = 0.6
	case dayAvoided:
		day = 0.2
	}
	if len(p.PreferredDays) == 0 {
		day = 1.0
	}

	startMin := minuteOfDay(s.Start)
	endMin := startMin + int(s.End.Sub(s.Start).Minutes())

	window := 1.0
	if len(p.PreferredWindows) > 0 {
		if containedInAny(p.PreferredWindows, startMin, endMin) {
			window = 1.0
		} else {
			window = 0.4
		}
	}
	if inAnyWindow(p.AvoidWindows, startMin, endMin) {
		window = math.Min(window, 0.2)
	}

	raw := (day + window) / 2
	return raw + (1-raw)*p.Flexibility*0.5
}

func preferenceComponent(slots []Slot, p Preferences) float64 {
	var sum float64
	for _, s := range slots {
		sum += slotPreference(s, p)
	}
	return sum / float64(len(slots))
}

// workloadComponent measures how close the therapist's projected weekly load
// sits to the target utilization of their cap. Overload is penalized twice as
// steeply as underload.
func workloadComponent(slots []Slot, req SlotRequest, cal Calendars, opts Options) float64 {
	if req.MaxWeeklySessions <= 0 {
		return 1.0
	}

	weekly := make(map[time.Time]int)
	for _, s := range slots {
		weekly[weekOf(s.Start)]++
	}
	for _, iv := range cal.Therapist[req.TherapistID] {
		weekly[weekOf(iv.Start)]++
	}

	target := opts.TargetUtilization * float64(req.MaxWeeklySessions)
	var sum float64
	for _, n := range weekly {
		dev := (float64(n) - target) / float64(req.MaxWeeklySessions)
		if dev > 0 {
			dev *= 2
		}
		sum += math.Max(0, 1-math.Abs(dev))
	}
	return sum / float64(len(weekly))
}

// gapComponent returns the normalized idle time between consecutive same-day
// sessions of the therapist, in [0, 1]. 0 means back-to-back days.
func gapComponent(slots []Slot, cal Calendars) float64 {
	if len(slots) == 0 {
		return 0
	}
	therapistID := slots[0].TherapistID

	byDay := make(map[time.Time][]Interval)
	for _, s := range slots {
		d := dateOf(s.Start)
		byDay[d] = append(byDay[d], Interval{Start: s.Start, End: s.End})
	}
	for _, iv := range cal.Therapist[therapistID] {
		d := dateOf(iv.Start)
		if _, ok := byDay[d]; ok {
			byDay[d] = append(byDay[d], iv)
		}
	}

	// Four idle hours in a day counts as a fully wasted day.
	const gapNorm = 4 * time.Hour

	var total float64
	for _, ivs := range byDay {
		sort.Slice(ivs, func(i, j int) bool { return ivs[i].Start.Before(ivs[j].Start) })
		var idle time.Duration
		for i := 1; i < len(ivs); i++ {
			if g := ivs[i].Start.Sub(ivs[i-1].End); g > 0 {
				idle += g
			}
		}
		total += math.Min(1, float64(idle)/float64(gapNorm))
	}
	return total / float64(len(byDay))
}

func weekOf(t time.Time) time.Time {
	d := dateOf(t)
	offset := int(d.Weekday())
	return d.AddDate(0, 0, -offset)
}
