package app

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/arkanhealth/jadwal_backend/config"
	"github.com/arkanhealth/jadwal_backend/internal/repo"
	entcenter "github.com/arkanhealth/jadwal_backend/internal/repo/center"
	entenroll "github.com/arkanhealth/jadwal_backend/internal/repo/enrollment"
	entbatch "github.com/arkanhealth/jadwal_backend/internal/repo/reschedulebatch"
	"github.com/arkanhealth/jadwal_backend/internal/service/enrollment"
	"github.com/arkanhealth/jadwal_backend/internal/service/notification"
	"github.com/arkanhealth/jadwal_backend/pkg/email"
	"github.com/arkanhealth/jadwal_backend/pkg/reqctx"
	svcsms "github.com/arkanhealth/jadwal_backend/pkg/sms"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc        fx.Lifecycle
	NC        *nats.Conn
	DB        *repo.Client
	Cfg       *config.Config
	NotifSvc  notification.Service
	EnrollSvc enrollment.Service
	SMS       *svcsms.Client
	Email     *email.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startNotificationWorker(p.NC, p.DB, p.NotifSvc)
			startSMSWorker(p.NC, p.DB, p.Cfg, p.EnrollSvc, p.SMS)
			startDigestWorker(p.NC, p.DB, p.Email)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// workerContext roots a fresh trace for one message handling run, so worker
// log lines correlate the same way request-scoped ones do.
func workerContext() context.Context {
	return reqctx.WithTrace(context.Background(), reqctx.NewTraceInfo())
}

func batchFromMsg(ctx context.Context, db *repo.Client, msg *nats.Msg, worker string) *repo.RescheduleBatch {
	batchIDStr := strings.TrimSpace(string(msg.Data))
	batchID, err := uuid.Parse(batchIDStr)
	if err != nil {
		return nil
	}
	batch, err := db.RescheduleBatch.Query().
		Where(entbatch.ID(batchID)).
		Only(ctx)
	if err != nil {
		slog.Warn(worker+": batch not found",
			"id", batchIDStr, "trace_id", reqctx.TraceIDFromContext(ctx), "err", err)
		return nil
	}
	return batch
}

// ---------------------------------------------------------------------------
// notification_worker
// ---------------------------------------------------------------------------

func startNotificationWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service) {
	notify := func(ctx context.Context, batch *repo.RescheduleBatch, typ, title string) {
		enr, err := db.Enrollment.Query().
			Where(entenroll.ID(batch.EnrollmentID)).
			Only(ctx)
		if err != nil {
			slog.Warn("notification_worker: enrollment not found", "id", batch.EnrollmentID, "err", err)
			return
		}

		data := map[string]any{
			"batch_id":             batch.ID.String(),
			"enrollment_id":        enr.ID.String(),
			"sessions_rescheduled": batch.SessionsRescheduled,
		}
		for _, recipient := range []uuid.UUID{enr.StudentID, enr.TherapistID} {
			_, err := notifSvc.Create(ctx, batch.CenterID, notification.CreateRequest{
				RecipientID: recipient,
				Type:        typ,
				Title:       title,
				Data:        data,
			})
			if err != nil {
				slog.Warn("notification_worker: create notification failed", "recipient", recipient, "err", err)
			}
		}
	}

	_, err := nc.Subscribe("jadwal.schedule.rescheduled.*", func(msg *nats.Msg) {
		ctx := workerContext()
		batch := batchFromMsg(ctx, db, msg, "notification_worker")
		if batch == nil {
			return
		}
		notify(ctx, batch, "schedule_rescheduled", "Sessions rescheduled")
	})
	if err != nil {
		slog.Error("notification_worker: subscribe schedule.rescheduled failed", "err", err)
	}

	_, err = nc.Subscribe("jadwal.schedule.rolledback.*", func(msg *nats.Msg) {
		ctx := workerContext()
		batch := batchFromMsg(ctx, db, msg, "notification_worker")
		if batch == nil {
			return
		}
		notify(ctx, batch, "schedule_rolled_back", "Schedule change reverted")
	})
	if err != nil {
		slog.Error("notification_worker: subscribe schedule.rolledback failed", "err", err)
	}

	slog.Info("notification_worker: started")
}

// ---------------------------------------------------------------------------
// sms_worker
// ---------------------------------------------------------------------------

func startSMSWorker(nc *nats.Conn, db *repo.Client, cfg *config.Config, enrollSvc enrollment.Service, smsCli *svcsms.Client) {
	_, err := nc.Subscribe("jadwal.schedule.rescheduled.*", func(msg *nats.Msg) {
		if !smsCli.IsEnabled() {
			return
		}
		ctx := workerContext()
		batch := batchFromMsg(ctx, db, msg, "sms_worker")
		if batch == nil {
			return
		}

		enr, err := db.Enrollment.Query().
			Where(entenroll.ID(batch.EnrollmentID)).
			Only(ctx)
		if err != nil {
			slog.Warn("sms_worker: enrollment not found", "id", batch.EnrollmentID, "err", err)
			return
		}

		phone, err := enrollSvc.GuardianPhone(enr)
		if err != nil {
			slog.Warn("sms_worker: decrypt guardian phone failed", "enrollment_id", enr.ID, "err", err)
			return
		}
		if phone == "" {
			return
		}

		newEnd := ""
		if batch.NewEndDate != nil {
			newEnd = batch.NewEndDate.Format("2006-01-02")
		}
		err = smsCli.SendTemplate(ctx, phone, cfg.SMS.SMSIR.TemplateID, map[string]string{
			"SESSIONS": strconv.Itoa(batch.SessionsRescheduled),
			"END_DATE": newEnd,
		})
		if err != nil {
			slog.Warn("sms_worker: send failed", "enrollment_id", enr.ID, "err", err)
			return
		}
		slog.Debug("sms_worker: reschedule sms sent", "batch_id", batch.ID)
	})
	if err != nil {
		slog.Error("sms_worker: subscribe schedule.rescheduled failed", "err", err)
	}

	slog.Info("sms_worker: started")
}

// ---------------------------------------------------------------------------
// digest_worker (center contact emails)
// ---------------------------------------------------------------------------

func startDigestWorker(nc *nats.Conn, db *repo.Client, emailCli *email.Client) {
	// Centers without a contact email opted out of batch mail entirely.
	centerContact := func(ctx context.Context, batch *repo.RescheduleBatch) (*repo.Center, string) {
		center, err := db.Center.Query().
			Where(entcenter.ID(batch.CenterID)).
			Only(ctx)
		if err != nil {
			slog.Warn("digest_worker: center not found", "id", batch.CenterID, "err", err)
			return nil, ""
		}
		if center.ContactEmail == nil || *center.ContactEmail == "" {
			return nil, ""
		}
		return center, *center.ContactEmail
	}

	sendDigest := func(ctx context.Context, batch *repo.RescheduleBatch, center *repo.Center, to string) {
		var lines []email.ConflictLine
		for _, c := range batch.Conflicts {
			if c.Severity != "high" {
				continue
			}
			sessionID := ""
			if c.SessionID != uuid.Nil {
				sessionID = c.SessionID.String()
			}
			lines = append(lines, email.ConflictLine{
				SessionID: sessionID,
				Kind:      c.Kind,
				Severity:  c.Severity,
				Message:   c.Message,
			})
		}
		if len(lines) == 0 {
			return
		}

		m := email.BuildConflictDigestEmail(email.ConflictDigestData{
			CenterName: center.Name,
			Email:      to,
			BatchID:    batch.ID.String(),
			Trigger:    string(batch.Trigger),
			Conflicts:  lines,
		})
		if err := emailCli.Send(ctx, m); err != nil {
			slog.Warn("digest_worker: digest send failed", "batch_id", batch.ID, "err", err)
			return
		}
		slog.Debug("digest_worker: conflict digest sent", "batch_id", batch.ID, "conflicts", len(lines))
	}

	sendSummary := func(ctx context.Context, batch *repo.RescheduleBatch, center *repo.Center, to string) {
		newEnd := ""
		if batch.NewEndDate != nil {
			newEnd = batch.NewEndDate.Format("2006-01-02")
		}
		m := email.BuildRescheduleSummaryEmail(email.RescheduleSummaryData{
			CenterName:          center.Name,
			Email:               to,
			BatchID:             batch.ID.String(),
			SessionsRescheduled: batch.SessionsRescheduled,
			NewEndDate:          newEnd,
		})
		if err := emailCli.Send(ctx, m); err != nil {
			slog.Warn("digest_worker: summary send failed", "batch_id", batch.ID, "err", err)
			return
		}
		slog.Debug("digest_worker: reschedule summary sent", "batch_id", batch.ID)
	}

	_, err := nc.Subscribe("jadwal.schedule.generated.*", func(msg *nats.Msg) {
		ctx := workerContext()
		batch := batchFromMsg(ctx, db, msg, "digest_worker")
		if batch == nil {
			return
		}
		center, to := centerContact(ctx, batch)
		if center == nil {
			return
		}
		sendDigest(ctx, batch, center, to)
	})
	if err != nil {
		slog.Error("digest_worker: subscribe schedule.generated failed", "err", err)
	}

	// Freeze reschedules always get a summary; the conflict digest goes out
	// on top when the batch carries high-severity conflicts.
	_, err = nc.Subscribe("jadwal.schedule.rescheduled.*", func(msg *nats.Msg) {
		ctx := workerContext()
		batch := batchFromMsg(ctx, db, msg, "digest_worker")
		if batch == nil {
			return
		}
		center, to := centerContact(ctx, batch)
		if center == nil {
			return
		}
		sendSummary(ctx, batch, center, to)
		sendDigest(ctx, batch, center, to)
	})
	if err != nil {
		slog.Error("digest_worker: subscribe schedule.rescheduled failed", "err", err)
	}

	slog.Info("digest_worker: started")
}
