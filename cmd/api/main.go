package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/chai/internal/api"
	"github.com/limbo/chai/internal/app"
	"github.com/limbo/chai/internal/scheduler"
	"github.com/limbo/chai/internal/service"
	"github.com/limbo/chai/pkg/cleanup"
	"github.com/limbo/chai/pkg/config"
	"github.com/limbo/chai/pkg/logger"
	"go.uber.org/zap"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	log := logger.Init(logger.Options{
		Level: cfg.GetString("LOG_LEVEL"),
		Path:  cfg.GetString("LOG_PATH"),
	})
	cleanup.Register(&cleanup.Job{
		Name: "syncing logger",
		F: func() error {
			_ = log.Sync()
			return nil
		},
	})
	defer cleanup.CleanUp()

	a, err := app.Build(cfg)
	if err != nil {
		log.Error("building app error", zap.Error(err))
		return
	}

	ctx := context.Background()
	if err := a.Achievements.Load(ctx); err != nil {
		log.Error("loading achievements error", zap.Error(err))
		return
	}
	// catch up with tips stored while the server was down
	if err := a.Tips.Reevaluate(ctx); err != nil {
		log.Error("initial evaluation error", zap.Error(err))
	}
	if _, err := a.Shifts.EnsureTodayShift(ctx); err != nil {
		log.Error("ensuring today's shift error", zap.Error(err))
	}

	shiftScheduler := scheduler.NewShiftScheduler(a.Shifts, a.Location)
	if err := shiftScheduler.Start(); err != nil {
		log.Error("starting scheduler error", zap.Error(err))
		return
	}
	cleanup.Register(&cleanup.Job{
		Name: "stopping scheduler",
		F: func() error {
			shiftScheduler.Stop()
			return nil
		},
	})

	serv := api.New(&api.ServicesList{
		TipsService:         a.Tips,
		StatsService:        a.Stats,
		AchievementsService: a.Achievements,
		SettingsService:     a.Settings,
		ShiftsService:       a.Shifts,
		RateLimitPerMinute:  cfg.GetInt("RATE_LIMIT_PER_MINUTE"),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- serv.Run(cfg.GetString("API_ADDRESS"))
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			log.Error("server error", zap.Error(err))
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GetDuration("SHUTDOWN_TIMEOUT"))
	defer cancel()
	if err := serv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown error", zap.Error(err))
	}
}
