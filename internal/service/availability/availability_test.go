package availability

import (
	"testing"
	"time"

	"github.com/arkanhealth/jadwal_backend/internal/engine"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func TestSubtractBusy(t *testing.T) {
	tests := []struct {
		name string
		busy []engine.Interval
		want []Opening
	}{
		{
			name: "no busy intervals keeps the whole window",
			want: []Opening{{Start: at(9, 0), End: at(17, 0)}},
		},
		{
			name: "single session splits the window",
			busy: []engine.Interval{{Start: at(10, 0), End: at(11, 0)}},
			want: []Opening{
				{Start: at(9, 0), End: at(10, 0)},
				{Start: at(11, 0), End: at(17, 0)},
			},
		},
		{
			name: "back to back sessions leave no gap between them",
			busy: []engine.Interval{
				{Start: at(10, 0), End: at(11, 0)},
				{Start: at(11, 0), End: at(12, 0)},
			},
			want: []Opening{
				{Start: at(9, 0), End: at(10, 0)},
				{Start: at(12, 0), End: at(17, 0)},
			},
		},
		{
			name: "session overlapping the window start trims the head",
			busy: []engine.Interval{{Start: at(8, 0), End: at(9, 30)}},
			want: []Opening{{Start: at(9, 30), End: at(17, 0)}},
		},
		{
			name: "session overlapping the window end trims the tail",
			busy: []engine.Interval{{Start: at(16, 30), End: at(18, 0)}},
			want: []Opening{{Start: at(9, 0), End: at(16, 30)}},
		},
		{
			name: "session covering the whole window removes it",
			busy: []engine.Interval{{Start: at(8, 0), End: at(18, 0)}},
			want: nil,
		},
		{
			name: "session outside the window is ignored",
			busy: []engine.Interval{{Start: at(18, 0), End: at(19, 0)}},
			want: []Opening{{Start: at(9, 0), End: at(17, 0)}},
		},
		{
			name: "nested sessions do not move the cursor backwards",
			busy: []engine.Interval{
				{Start: at(10, 0), End: at(14, 0)},
				{Start: at(11, 0), End: at(12, 0)},
			},
			want: []Opening{
				{Start: at(9, 0), End: at(10, 0)},
				{Start: at(14, 0), End: at(17, 0)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := subtractBusy(at(9, 0), at(17, 0), tt.busy)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d openings, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if !got[i].Start.Equal(tt.want[i].Start) || !got[i].End.Equal(tt.want[i].End) {
					t.Errorf("opening %d: got [%v, %v), want [%v, %v)",
						i, got[i].Start, got[i].End, tt.want[i].Start, tt.want[i].End)
				}
			}
		})
	}
}
