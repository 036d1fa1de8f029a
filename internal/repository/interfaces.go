package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/chai/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type TipsRepositoryI interface {
	// Inserts a new tip. ID must be set by the caller
	Create(ctx context.Context, tip *entity.Tip) error
	// Looks up tip by id
	GetByID(ctx context.Context, id string) (*entity.Tip, error)
	// Lists every tip, newest first
	List(ctx context.Context) ([]entity.Tip, error)
	// Lists tips created in [from, to), newest first
	ListRange(ctx context.Context, from, to time.Time) ([]entity.Tip, error)
	// Overwrites amount, method, note and tables of the tip with tip.ID
	Update(ctx context.Context, tip *entity.Tip) error
	// Deletes tip with id
	Delete(ctx context.Context, id string) error
}

type ShiftsRepositoryI interface {
	// Upserts shift by ID
	Put(ctx context.Context, shift *entity.Shift) error
	GetByID(ctx context.Context, id string) (*entity.Shift, error)
	// Returns the most recently started shift without end, nil if none
	GetOpen(ctx context.Context) (*entity.Shift, error)
	// Lists shifts, newest first
	List(ctx context.Context) ([]entity.Shift, error)
	Clear(ctx context.Context) error
}

type SettingsRepositoryI interface {
	// Returns stored settings or ErrSettingsNotFound
	Get(ctx context.Context) (*entity.Settings, error)
	Save(ctx context.Context, settings *entity.Settings) error
}

type AchievementsRepositoryI interface {
	// Lists every stored achievement row, most recently unlocked first
	GetAll(ctx context.Context) ([]entity.Achievement, error)
	// Upserts achievement by ID
	Put(ctx context.Context, achievement *entity.Achievement) error
	Clear(ctx context.Context) error
}

type StreaksRepositoryI interface {
	GetAll(ctx context.Context) ([]entity.Streak, error)
	// Returns streak of category or ErrStreakNotFound
	GetByCategory(ctx context.Context, category entity.StreakCategory) (*entity.Streak, error)
	// Upserts streak by ID
	Put(ctx context.Context, streak *entity.Streak) error
	Clear(ctx context.Context) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
