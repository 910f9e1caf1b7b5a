package http

import (
	"log/slog"
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/leonguyen52/sprout-track-sub004/internal/config"
	"github.com/leonguyen52/sprout-track-sub004/internal/http/features/activities"
	authfeature "github.com/leonguyen52/sprout-track-sub004/internal/http/features/auth"
	"github.com/leonguyen52/sprout-track-sub004/internal/http/features/babies"
	"github.com/leonguyen52/sprout-track-sub004/internal/http/features/family"
	"github.com/leonguyen52/sprout-track-sub004/internal/http/features/notify"
	settingsfeature "github.com/leonguyen52/sprout-track-sub004/internal/http/features/settings"
	setupfeature "github.com/leonguyen52/sprout-track-sub004/internal/http/features/setup"
	"github.com/leonguyen52/sprout-track-sub004/internal/http/middleware"
	"github.com/leonguyen52/sprout-track-sub004/internal/httputil"
	"github.com/leonguyen52/sprout-track-sub004/pkg/auth"
)

// Handlers bundles the feature handlers mounted by the router.
type Handlers struct {
	Setup      *setupfeature.Handler
	Family     *family.Handler
	Auth       *authfeature.Handler
	Babies     *babies.Handler
	Activities *activities.Handler
	Settings   *settingsfeature.Handler
	Notify     *notify.Handler
}

// NewRouter builds the HTTP routing tree. Public routes carry their own
// rate limiter groups; everything under the authenticated group requires a
// valid family access token.
func NewRouter(
	logger *slog.Logger,
	cfg *config.Config,
	sessionService *auth.SessionService,
	h Handlers,
) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recover(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.SecurityHeaders(cfg.SecurityHeaders))
	r.Use(middleware.RequestSizeLimit(cfg.Validation.MaxRequestBodySize))

	limiters := middleware.CreateRateLimiters(cfg.RateLimit, logger)

	r.Get("/health", func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		httputil.OK(w, stdhttp.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		// Public routes.
		r.Group(func(r chi.Router) {
			r.Use(limiters["api"])
			r.Get("/family/by-slug/{slug}", h.Family.GetBySlug)
		})
		r.Group(func(r chi.Router) {
			r.Use(limiters["setup"])
			r.Post("/setup/start", h.Setup.Start)
		})
		r.Group(func(r chi.Router) {
			r.Use(limiters["auth"])
			r.Post("/auth/login", h.Auth.Login)
			r.Post("/auth/logout", h.Auth.Logout)
		})

		// Authenticated routes.
		r.Group(func(r chi.Router) {
			r.Use(limiters["api"])
			r.Use(middleware.Auth(sessionService))

			r.Get("/family", h.Family.Get)
			r.Post("/family/invite", h.Family.Invite)

			r.Get("/settings", h.Settings.Get)
			r.Put("/settings", h.Settings.Update)
			r.Put("/settings/pin", h.Settings.ChangePin)
			r.Get("/settings/email", h.Settings.GetEmailConfig)
			r.Put("/settings/email", h.Settings.UpdateEmailConfig)

			r.Route("/babies", func(r chi.Router) {
				r.Get("/", h.Babies.List)
				r.Post("/", h.Babies.Create)
				r.Get("/{id}", h.Babies.Get)
				r.Put("/{id}", h.Babies.Update)
				r.Delete("/{id}", h.Babies.Delete)
				r.Get("/{id}/last-activities", h.Activities.GetLastActivities)
			})

			r.Route("/feed-log", func(r chi.Router) {
				r.Get("/", h.Activities.ListFeedLogs)
				r.Post("/", h.Activities.CreateFeedLog)
				r.Get("/{id}", h.Activities.GetFeedLog)
				r.Put("/{id}", h.Activities.UpdateFeedLog)
				r.Delete("/{id}", h.Activities.DeleteFeedLog)
			})
			r.Route("/diaper-log", func(r chi.Router) {
				r.Get("/", h.Activities.ListDiaperLogs)
				r.Post("/", h.Activities.CreateDiaperLog)
				r.Get("/{id}", h.Activities.GetDiaperLog)
				r.Put("/{id}", h.Activities.UpdateDiaperLog)
				r.Delete("/{id}", h.Activities.DeleteDiaperLog)
			})
			r.Route("/sleep-log", func(r chi.Router) {
				r.Get("/", h.Activities.ListSleepLogs)
				r.Post("/", h.Activities.CreateSleepLog)
				r.Get("/{id}", h.Activities.GetSleepLog)
				r.Put("/{id}", h.Activities.UpdateSleepLog)
				r.Delete("/{id}", h.Activities.DeleteSleepLog)
			})
			r.Route("/medicine-log", func(r chi.Router) {
				r.Get("/", h.Activities.ListMedicineLogs)
				r.Post("/", h.Activities.CreateMedicineLog)
				r.Get("/{id}", h.Activities.GetMedicineLog)
				r.Put("/{id}", h.Activities.UpdateMedicineLog)
				r.Delete("/{id}", h.Activities.DeleteMedicineLog)
			})
			r.Route("/measurement-log", func(r chi.Router) {
				r.Get("/", h.Activities.ListMeasurements)
				r.Post("/", h.Activities.CreateMeasurement)
				r.Get("/{id}", h.Activities.GetMeasurement)
				r.Put("/{id}", h.Activities.UpdateMeasurement)
				r.Delete("/{id}", h.Activities.DeleteMeasurement)
			})

			r.Group(func(r chi.Router) {
				r.Use(limiters["notify"])
				r.Post("/notify/test", h.Notify.Test)
			})
		})
	})

	return r
}
