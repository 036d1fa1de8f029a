// Package app assembles repositories and services for the server and the CLI.
package app

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	"github.com/limbo/chai/internal/repository"
	"github.com/limbo/chai/internal/repository/memory"
	"github.com/limbo/chai/internal/repository/sqlite"
	"github.com/limbo/chai/internal/service"
	"github.com/limbo/chai/pkg/cleanup"
	"github.com/limbo/chai/pkg/clock"
	"github.com/limbo/chai/pkg/config"
	"github.com/limbo/chai/pkg/logger"
	"github.com/pressly/goose"
	"go.uber.org/zap"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Repositories struct {
	Tips         repository.TipsRepositoryI
	Shifts       repository.ShiftsRepositoryI
	Settings     repository.SettingsRepositoryI
	Achievements repository.AchievementsRepositoryI
	Streaks      repository.StreaksRepositoryI
}

type App struct {
	Tips         *service.TipsService
	Stats        *service.StatsService
	Achievements *service.AchievementsService
	Settings     *service.SettingsService
	Shifts       *service.ShiftsService
	Location     *time.Location
}

// Build opens the configured storage and wires every service on top of it.
// Storage handles are released by cleanup.CleanUp.
func Build(cfg *config.Config) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	repos, err := OpenRepositories(cfg)
	if err != nil {
		return nil, err
	}
	return New(repos, clock.Real(), loc), nil
}

func New(repos Repositories, c clock.Clock, loc *time.Location) *App {
	if c == nil {
		c = clock.Real()
	}
	if loc == nil {
		loc = time.Local
	}
	achievements := service.NewAchievementsService(repos.Achievements, repos.Streaks,
		service.WithClock(c),
		service.WithLocation(loc),
	)
	settings := service.NewSettingsService(repos.Settings)
	return &App{
		Tips:         service.NewTipsService(repos.Tips, repos.Shifts, settings, achievements, c),
		Stats:        service.NewStatsService(repos.Tips, settings, c, loc),
		Achievements: achievements,
		Settings:     settings,
		Shifts:       service.NewShiftsService(repos.Shifts, c, loc),
		Location:     loc,
	}
}

func OpenRepositories(cfg *config.Config) (Repositories, error) {
	driver := cfg.GetString("STORAGE_DRIVER")
	switch driver {
	case DriverSQLite:
		return openSQLite(cfg.GetString("SQLITE_PATH"))
	case DriverPostgres:
		return openPostgres(cfg)
	case DriverMemory:
		logger.L().Warn("using in-memory storage, data is lost on exit")
		return MemoryRepositories(), nil
	default:
		return Repositories{}, errors.New("unknown storage driver: " + driver)
	}
}

func MemoryRepositories() Repositories {
	return Repositories{
		Tips:         memory.NewTipsRepo(),
		Shifts:       memory.NewShiftsRepo(),
		Settings:     memory.NewSettingsRepo(),
		Achievements: memory.NewAchievementsRepo(),
		Streaks:      memory.NewStreaksRepo(),
	}
}

func openSQLite(path string) (Repositories, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Repositories{}, errors.New("creating sqlite directory error: " + err.Error())
		}
	}
	store, err := sqlite.Open(path)
	if err != nil {
		return Repositories{}, err
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing sqlite store",
		F:    store.Close,
	})
	logger.L().Info("sqlite storage opened", zap.String("path", path))
	return Repositories{
		Tips:         sqlite.NewTipsRepo(store),
		Shifts:       sqlite.NewShiftsRepo(store),
		Settings:     sqlite.NewSettingsRepo(store),
		Achievements: sqlite.NewAchievementsRepo(store),
		Streaks:      sqlite.NewStreaksRepo(store),
	}, nil
}

func openPostgres(cfg *config.Config) (Repositories, error) {
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	if dir := cfg.GetString("MIGRATIONS_DIR"); dir != "" {
		if err := migrate(dbCfg.ConnString(), dir); err != nil {
			return Repositories{}, err
		}
	}
	return Repositories{
		Tips:         repository.NewTipsRepo(&dbCfg),
		Shifts:       repository.NewShiftsRepo(&dbCfg),
		Settings:     repository.NewSettingsRepo(&dbCfg),
		Achievements: repository.NewAchievementsRepo(&dbCfg),
		Streaks:      repository.NewStreaksRepo(&dbCfg),
	}, nil
}

func migrate(connString, dir string) error {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return errors.New("opening migrations connection error: " + err.Error())
	}
	defer db.Close()
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.New("setting goose dialect error: " + err.Error())
	}
	if err := goose.Up(db, dir); err != nil {
		return errors.New("applying migrations error: " + err.Error())
	}
	logger.L().Info("migrations applied", zap.String("dir", dir))
	return nil
}
