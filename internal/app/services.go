package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/arkanhealth/jadwal_backend/config"
	"github.com/arkanhealth/jadwal_backend/internal/repo"
	"github.com/arkanhealth/jadwal_backend/internal/service/availability"
	"github.com/arkanhealth/jadwal_backend/internal/service/enrollment"
	"github.com/arkanhealth/jadwal_backend/internal/service/notification"
	"github.com/arkanhealth/jadwal_backend/internal/service/rescheduling"
	"github.com/arkanhealth/jadwal_backend/internal/service/scheduling"
	"github.com/arkanhealth/jadwal_backend/internal/service/session"
	pasetotoken "github.com/arkanhealth/jadwal_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideSchedulingService,
		ProvideReschedulingService,
		ProvideEnrollmentService,
		ProvideAvailabilityService,
		ProvideSessionService,
		ProvideNotificationService,
		ProvidePasetoManager,
	),
)

func ProvideSchedulingService(db *repo.Client, nc *nats.Conn, cfg *config.Config) scheduling.Service {
	return scheduling.New(db, nc, cfg)
}

func ProvideReschedulingService(db *repo.Client, rdb *redis.Client, nc *nats.Conn, cfg *config.Config) rescheduling.Service {
	return rescheduling.New(db, rdb, nc, cfg)
}

func ProvideEnrollmentService(db *repo.Client, cfg *config.Config) (enrollment.Service, error) {
	return enrollment.New(db, cfg)
}

func ProvideAvailabilityService(db *repo.Client) availability.Service {
	return availability.New(db)
}

func ProvideSessionService(db *repo.Client) session.Service {
	return session.New(db)
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
