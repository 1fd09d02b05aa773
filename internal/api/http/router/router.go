package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/arkanhealth/jadwal_backend/config"
	"github.com/arkanhealth/jadwal_backend/internal/api/http/handler"
	"github.com/arkanhealth/jadwal_backend/internal/api/http/middleware"
	"github.com/arkanhealth/jadwal_backend/internal/repo"
	"github.com/arkanhealth/jadwal_backend/internal/service/availability"
	"github.com/arkanhealth/jadwal_backend/internal/service/enrollment"
	"github.com/arkanhealth/jadwal_backend/internal/service/notification"
	"github.com/arkanhealth/jadwal_backend/internal/service/rescheduling"
	"github.com/arkanhealth/jadwal_backend/internal/service/scheduling"
	"github.com/arkanhealth/jadwal_backend/internal/service/session"
	"github.com/arkanhealth/jadwal_backend/pkg/authorize"
	pasetotoken "github.com/arkanhealth/jadwal_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            authorize.IAuthorization
	DB              *repo.Client
	SchedulingSvc   scheduling.Service
	ReschedulingSvc rescheduling.Service
	EnrollmentSvc   enrollment.Service
	AvailabilitySvc availability.Service
	SessionSvc      session.Service
	NotificationSvc notification.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	centerHeader := middleware.CenterHeader(r.p.DB)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	enrollmentH := handler.NewEnrollmentHandler(r.p.EnrollmentSvc)
	availabilityH := handler.NewAvailabilityHandler(r.p.AvailabilitySvc)
	sessionH := handler.NewSessionHandler(r.p.SessionSvc)
	scheduleH := handler.NewScheduleHandler(r.p.SchedulingSvc, r.p.ReschedulingSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerEnrollmentRoutes(api, enrollmentH, authRequired, centerHeader, requirePerm)
	r.registerAvailabilityRoutes(api, availabilityH, authRequired, centerHeader, requirePerm)
	r.registerSessionRoutes(api, sessionH, authRequired, centerHeader, requirePerm)
	r.registerScheduleRoutes(api, scheduleH, authRequired, centerHeader, requirePerm)
	r.registerNotificationRoutes(api, notificationH, authRequired, centerHeader)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
