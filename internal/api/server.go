package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/chai/internal/service"
	"github.com/limbo/chai/pkg/logger"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

type Server struct {
	mx                  *chi.Mux
	httpServer          *http.Server
	limiter             *clientLimiter
	tipsService         service.TipsServiceI
	statsService        service.StatsServiceI
	achievementsService service.AchievementsServiceI
	settingsService     service.SettingsServiceI
	shiftsService       service.ShiftsServiceI
}

type ServicesList struct {
	TipsService         service.TipsServiceI
	StatsService        service.StatsServiceI
	AchievementsService service.AchievementsServiceI
	SettingsService     service.SettingsServiceI
	ShiftsService       service.ShiftsServiceI
	// Requests per minute per client address, 0 disables limiting
	RateLimitPerMinute int
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                  chi.NewMux(),
		limiter:             newClientLimiter(servicesOptions.RateLimitPerMinute),
		tipsService:         servicesOptions.TipsService,
		statsService:        servicesOptions.StatsService,
		achievementsService: servicesOptions.AchievementsService,
		settingsService:     servicesOptions.SettingsService,
		shiftsService:       servicesOptions.ShiftsService,
	}
	s.MountHandlers()
	return s
}

func (s *Server) MountHandlers() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.RateLimitMiddleware)

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Route("/tips", func(r chi.Router) {
			r.Get("/", s.ListTips)
			r.Post("/", s.AddTip)
			r.Get("/summary", s.GetSummary)
			r.Get("/analytics", s.GetAnalytics)
			r.Get("/export", s.ExportTips)
			r.Patch("/{id}", s.UpdateTip)
			r.Delete("/{id}", s.DeleteTip)
		})
		r.Route("/achievements", func(r chi.Router) {
			r.Get("/", s.GetAchievements)
			r.Get("/unlocked", s.GetUnlockedAchievements)
			r.Post("/reset", s.ResetAchievements)
		})
		r.Route("/streaks", func(r chi.Router) {
			r.Get("/", s.GetStreaks)
			r.Get("/{category}", s.GetStreak)
		})
		r.Get("/settings", s.GetSettings)
		r.Put("/settings", s.UpdateSettings)
		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", s.ListShifts)
			r.Get("/current", s.CurrentShift)
			r.Post("/start", s.StartShift)
			r.Post("/stop", s.StopShift)
		})
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run blocks until the server stops. A graceful Shutdown is not an error.
func (s *Server) Run(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.L().Info("http server listening", zap.String("addr", addr))
	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
