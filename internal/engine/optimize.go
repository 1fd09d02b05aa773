package engine

import (
	"sort"
)

// OptimizeResult is what a local-search pass produced.
type OptimizeResult struct {
	Slots      []Slot
	Score      Score
	Iterations int
	Moves      int
}

// Optimize improves a generated schedule by first-improvement local search:
// each iteration picks the worst-scoring slot and tries the other candidates
// of its day and week; a move is accepted iff the total objective strictly
// improves. Terminates after opts.MaxIterations or one full pass without an
// accepted move.
func Optimize(slots []Slot, req SlotRequest, cal Calendars, opts Options) OptimizeResult {
	opts = opts.withDefaults()

	current := append([]Slot(nil), slots...)
	best := ScoreSchedule(current, req, cal, opts)

	// scratch carries external busy time plus the current placement, so
	// candidate probing respects every other slot.
	scratch := cloneCalendars(cal)
	for _, s := range current {
		markBusy(scratch, s)
	}

	iterations := 0
	moves := 0

	for iterations < opts.MaxIterations {
		iterations++

		order := slotsByPreference(current, req.Prefs)
		improved := false

		for _, idx := range order {
			old := current[idx]
			unmarkBusy(scratch, old)

			candidate := bestAlternative(old, current, idx, req, scratch, opts)
			if candidate == nil {
				markBusy(scratch, old)
				continue
			}

			current[idx] = *candidate
			score := ScoreSchedule(current, req, cal, opts)
			if score.Total > best.Total {
				best = score
				markBusy(scratch, *candidate)
				moves++
				improved = true
				break // restart from the new worst slot
			}

			// Revert.
			current[idx] = old
			markBusy(scratch, old)
		}

		if !improved {
			break
		}
	}

	return OptimizeResult{
		Slots:      current,
		Score:      best,
		Iterations: iterations,
		Moves:      moves,
	}
}

// slotsByPreference returns slot indices ordered worst-first.
func slotsByPreference(slots []Slot, p Preferences) []int {
	idx := make([]int, len(slots))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return slotPreference(slots[idx[a]], p) < slotPreference(slots[idx[b]], p)
	})
	return idx
}

// bestAlternative searches the week around the slot for a different free
// placement, skipping the day already used by another slot of the batch.
func bestAlternative(old Slot, current []Slot, selfIdx int, req SlotRequest, scratch Calendars, opts Options) *Slot {
	weekStart := weekOf(old.Start)

	others := make([]Slot, 0, len(current)-1)
	for i, s := range current {
		if i != selfIdx {
			others = append(others, s)
		}
	}

	var best *Slot
	bestPref := slotPreference(old, req.Prefs)

	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		if day.Before(req.StartDate) {
			continue
		}
		if !req.AllowExtension && day.After(req.EndDate) {
			continue
		}
		if dayTaken(others, day) {
			continue
		}
		for _, phase := range []candidatePhase{phasePreferred, phaseNeutral, phaseAvoided} {
			if phase == phaseNeutral && req.Prefs.Flexibility < flexNeutral && len(req.Prefs.PreferredDays) > 0 {
				continue
			}
			if phase == phaseAvoided && req.Prefs.Flexibility < flexAvoid {
				continue
			}
			class := req.Prefs.dayPreference(day.Weekday())
			if (phase == phasePreferred && class != dayPreferred) ||
				(phase == phaseNeutral && class != dayNeutral) ||
				(phase == phaseAvoided && class != dayAvoided) {
				continue
			}
			cand := bestCandidateForDay(day, req, scratch, opts, phase)
			if cand == nil {
				continue
			}
			if cand.Start.Equal(old.Start) {
				continue
			}
			if p := slotPreference(*cand, req.Prefs); p > bestPref {
				bestPref = p
				best = cand
			}
		}
	}
	return best
}
