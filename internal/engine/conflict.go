package engine

import (
	"fmt"
	"time"
)

// DetectConflicts checks every slot against the busy calendars, the
// availability rules, the enrollment preferences, and the other slots of the
// same batch. The result is keyed by slot index; the service layer maps
// indices back to session IDs.
func DetectConflicts(slots []Slot, req SlotRequest, cal Calendars) map[int][]Conflict {
	out := make(map[int][]Conflict)

	add := func(i int, c Conflict) {
		out[i] = append(out[i], c)
	}

	for i, s := range slots {
		iv := Interval{Start: s.Start, End: s.End}

		if overlapsAny(cal.Therapist[s.TherapistID], iv) {
			add(i, Conflict{
				Kind:     ConflictTherapistBusy,
				Severity: SeverityHigh,
				Message:  fmt.Sprintf("therapist is booked at %s", s.Start.Format("2006-01-02 15:04")),
			})
		}
		if overlapsAny(cal.Student[s.StudentID], iv) {
			add(i, Conflict{
				Kind:     ConflictStudentBusy,
				Severity: SeverityHigh,
				Message:  fmt.Sprintf("student has another session at %s", s.Start.Format("2006-01-02 15:04")),
			})
		}
		if s.RoomID != nil && overlapsAny(cal.Room[*s.RoomID], iv) {
			add(i, Conflict{
				Kind:     ConflictRoomBusy,
				Severity: SeverityMedium,
				Message:  fmt.Sprintf("room is occupied at %s", s.Start.Format("2006-01-02 15:04")),
			})
		}

		if !coveredByAvailability(s, req.Availability) {
			add(i, Conflict{
				Kind:     ConflictOutsideAvailability,
				Severity: SeverityMedium,
				Message:  "slot lies outside the therapist's availability rules",
			})
		}

		if req.Prefs.dayPreference(s.Start.Weekday()) == dayAvoided {
			add(i, Conflict{
				Kind:     ConflictAvoidDay,
				Severity: SeverityLow,
				Message:  fmt.Sprintf("slot falls on avoided day %s", s.Start.Weekday()),
			})
		}
		if inAnyWindow(req.Prefs.AvoidWindows, minuteOfDay(s.Start), minuteOfDay(s.Start)+int(s.End.Sub(s.Start).Minutes())) {
			add(i, Conflict{
				Kind:     ConflictAvoidWindow,
				Severity: SeverityLow,
				Message:  "slot overlaps an avoided time window",
			})
		}

		// Pairwise check within the batch itself.
		for j := i + 1; j < len(slots); j++ {
			o := slots[j]
			if !iv.Overlaps(Interval{Start: o.Start, End: o.End}) {
				continue
			}
			if s.TherapistID == o.TherapistID || s.StudentID == o.StudentID ||
				(s.RoomID != nil && o.RoomID != nil && *s.RoomID == *o.RoomID) {
				c := Conflict{
					Kind:     ConflictBatchOverlap,
					Severity: SeverityHigh,
					Message:  fmt.Sprintf("overlaps another slot of the same batch at %s", o.Start.Format("2006-01-02 15:04")),
				}
				add(i, c)
				add(j, c)
			}
		}
	}

	return out
}

// HighestSeverity returns the worst severity present, or "" when the map is
// empty.
func HighestSeverity(conflicts map[int][]Conflict) Severity {
	var worst Severity
	rank := map[Severity]int{SeverityLow: 1, SeverityMedium: 2, SeverityHigh: 3}
	for _, cs := range conflicts {
		for _, c := range cs {
			if rank[c.Severity] > rank[worst] {
				worst = c.Severity
			}
		}
	}
	return worst
}

func coveredByAvailability(s Slot, rules []WeeklyRule) bool {
	startMin := minuteOfDay(s.Start)
	endMin := startMin + int(s.End.Sub(s.Start).Minutes())
	for _, r := range rules {
		if !r.coversDate(dateOf(s.Start)) {
			continue
		}
		if startMin >= r.StartMin && endMin <= r.EndMin {
			return true
		}
	}
	return false
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
