package email

import (
	"strings"
	"testing"
)

func TestBuildConflictDigestEmail(t *testing.T) {
	msg := BuildConflictDigestEmail(ConflictDigestData{
		CenterName: "Noor Center",
		Email:      "admin@noor.example",
		BatchID:    "b9b0e6a2-0000-0000-0000-000000000001",
		Trigger:    "freeze",
		Conflicts: []ConflictLine{
			{SessionID: "s-1", Kind: "therapist_overlap", Severity: "high", Message: "two sessions at once"},
			{SessionID: "s-2", Kind: "room_overlap", Severity: "high", Message: "room double booked"},
		},
	})

	if len(msg.To) != 1 || msg.To[0] != "admin@noor.example" {
		t.Fatalf("unexpected recipients: %v", msg.To)
	}
	if !strings.Contains(msg.Subject, "2 scheduling conflicts") {
		t.Errorf("subject missing conflict count: %q", msg.Subject)
	}
	for _, want := range []string{"Noor Center", "freeze", "therapist_overlap", "room double booked"} {
		if !strings.Contains(msg.TextBody, want) {
			t.Errorf("text body missing %q", want)
		}
	}
	if !strings.Contains(msg.HTMLBody, "<tr>") {
		t.Errorf("html body has no table rows")
	}
}

func TestBuildRescheduleSummaryEmail(t *testing.T) {
	tests := []struct {
		name       string
		newEndDate string
		wantInBody string
	}{
		{"with extension", "2026-07-15", "2026-07-15"},
		{"without extension", "", "end date was unchanged"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := BuildRescheduleSummaryEmail(RescheduleSummaryData{
				CenterName:          "Noor Center",
				Email:               "admin@noor.example",
				BatchID:             "b9b0e6a2-0000-0000-0000-000000000002",
				SessionsRescheduled: 4,
				NewEndDate:          tt.newEndDate,
			})
			if !strings.Contains(msg.TextBody, tt.wantInBody) {
				t.Errorf("text body missing %q:\n%s", tt.wantInBody, msg.TextBody)
			}
		})
	}
}
