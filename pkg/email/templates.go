package email

import (
	"fmt"
	"strings"
)

// ConflictDigestData contains the data needed for the conflict digest email
// sent to a center contact after a batch produced high-severity conflicts.
type ConflictDigestData struct {
	CenterName string
	Email      string
	BatchID    string
	Trigger    string
	Conflicts  []ConflictLine
	AppName    string
}

// ConflictLine is one row of the digest table.
type ConflictLine struct {
	SessionID string
	Kind      string
	Severity  string
	Message   string
}

// BuildConflictDigestEmail creates the digest message for a batch that ended
// with unresolved conflicts.
func BuildConflictDigestEmail(data ConflictDigestData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Jadwal"
	}

	subject := fmt.Sprintf("[%s] %d scheduling conflicts need review", appName, len(data.Conflicts))

	var textRows strings.Builder
	var htmlRows strings.Builder
	for _, c := range data.Conflicts {
		fmt.Fprintf(&textRows, "- [%s] %s: %s (session %s)\n", c.Severity, c.Kind, c.Message, c.SessionID)
		fmt.Fprintf(&htmlRows,
			`<tr><td style="padding: 6px 10px;">%s</td><td style="padding: 6px 10px;">%s</td><td style="padding: 6px 10px;">%s</td><td style="padding: 6px 10px; font-family: monospace; font-size: 12px;">%s</td></tr>`,
			c.Severity, c.Kind, c.Message, c.SessionID)
	}

	textBody := fmt.Sprintf(`Hi %s team,

A %s batch (%s) finished with conflicts that need manual review:

%s
Open the schedule dashboard to resolve them.

Thanks,
The %s Team`,
		data.CenterName, data.Trigger, data.BatchID, textRows.String(), appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s team,</h2>
    <p>A <strong>%s</strong> batch (<code>%s</code>) finished with conflicts that need manual review:</p>
    <table style="border-collapse: collapse; width: 100%%; background-color: #f3f4f6; border-radius: 6px;">
        <tr><th style="text-align: left; padding: 6px 10px;">Severity</th><th style="text-align: left; padding: 6px 10px;">Kind</th><th style="text-align: left; padding: 6px 10px;">Detail</th><th style="text-align: left; padding: 6px 10px;">Session</th></tr>
        %s
    </table>
    <p>Open the schedule dashboard to resolve them.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.CenterName, data.Trigger, data.BatchID, htmlRows.String(), appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// RescheduleSummaryData contains the data for the summary email sent after a
// freeze reschedule is applied.
type RescheduleSummaryData struct {
	CenterName          string
	Email               string
	BatchID             string
	SessionsRescheduled int
	NewEndDate          string // empty when the enrollment was not extended
	AppName             string
}

// BuildRescheduleSummaryEmail creates the post-apply summary message.
func BuildRescheduleSummaryEmail(data RescheduleSummaryData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Jadwal"
	}

	subject := fmt.Sprintf("[%s] %d sessions rescheduled", appName, data.SessionsRescheduled)

	extension := "The enrollment end date was unchanged."
	if data.NewEndDate != "" {
		extension = fmt.Sprintf("The enrollment was extended to %s.", data.NewEndDate)
	}

	textBody := fmt.Sprintf(`Hi %s team,

A freeze reschedule (batch %s) was applied: %d sessions were moved.
%s

Thanks,
The %s Team`,
		data.CenterName, data.BatchID, data.SessionsRescheduled, extension, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s team,</h2>
    <p>A freeze reschedule (batch <code>%s</code>) was applied: <strong>%d</strong> sessions were moved.</p>
    <p>%s</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.CenterName, data.BatchID, data.SessionsRescheduled, extension, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
