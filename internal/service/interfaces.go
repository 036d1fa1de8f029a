package service

import (
	"context"

	"github.com/limbo/chai/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type AddTipRequest struct {
	Amount       float64          `validate:"gt=0,finite"`
	Method       entity.TipMethod `validate:"required,tip_method"`
	Note         string           `validate:"max=500"`
	TablesServed int              `validate:"gte=0"`
}

// UpdateTipRequest is a partial patch, nil fields stay as stored.
type UpdateTipRequest struct {
	Amount       *float64          `validate:"omitempty,gt=0,finite"`
	Method       *entity.TipMethod `validate:"omitempty,tip_method"`
	Note         *string           `validate:"omitempty,max=500"`
	TablesServed *int              `validate:"omitempty,gte=0"`
}

type SettingsPatch struct {
	Currency     *string
	Rounding     *entity.Rounding
	QuickAmounts []float64
	Lang         *string
	DailyTarget  *float64
}

type TipsServiceI interface {
	// Validates and rounds the amount, stamps currency and open shift, stores the tip and re-evaluates achievements
	Add(ctx context.Context, req AddTipRequest) (*entity.Tip, error)
	Update(ctx context.Context, id string, req UpdateTipRequest) (*entity.Tip, error)
	Remove(ctx context.Context, id string) error
	// Newest first
	List(ctx context.Context) ([]entity.Tip, error)
	Get(ctx context.Context, id string) (*entity.Tip, error)
	// Runs the achievements engine over every stored tip
	Reevaluate(ctx context.Context) error
}

type StatsServiceI interface {
	// Period is one of today, week, month, all
	Summary(ctx context.Context, period string) (*entity.TipsSummary, error)
	// Breakdown of the last 30 days with a forecast for the next week
	Analytics(ctx context.Context) (*entity.TipsAnalytics, error)
}

type AchievementsServiceI interface {
	Load(ctx context.Context) error
	Evaluate(ctx context.Context, tips []entity.Tip, dailyTarget float64) error
	UpdateStreak(ctx context.Context, category entity.StreakCategory, achieved bool) error
	ResetAll(ctx context.Context) error
	Achievements() []entity.Achievement
	GetUnlocked() []entity.Achievement
	Streaks() []entity.Streak
	GetStreak(category entity.StreakCategory) (*entity.Streak, error)
}

type SettingsServiceI interface {
	// Stored settings over defaults. Defaults are persisted on first read
	Get(ctx context.Context) (*entity.Settings, error)
	Save(ctx context.Context, patch SettingsPatch) (*entity.Settings, error)
}

type ShiftsServiceI interface {
	// Returns the open shift if there is one, otherwise opens a new one
	Start(ctx context.Context) (*entity.Shift, error)
	Stop(ctx context.Context) (*entity.Shift, error)
	Current(ctx context.Context) (*entity.Shift, error)
	List(ctx context.Context) ([]entity.Shift, error)
	// Closes an open shift left over from a previous day and opens today's
	EnsureTodayShift(ctx context.Context) (*entity.Shift, error)
	ClearAll(ctx context.Context) error
}

// Evaluator is the part of the achievements engine the tips service drives.
type Evaluator interface {
	Evaluate(ctx context.Context, tips []entity.Tip, dailyTarget float64) error
}

type SettingsProvider interface {
	Get(ctx context.Context) (*entity.Settings, error)
}
