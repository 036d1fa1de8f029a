package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	errorvalues "github.com/limbo/chai/internal/error_values"
	"github.com/limbo/chai/internal/repository"
	"github.com/limbo/chai/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ repository.TipsRepositoryI         = (*TipsRepository)(nil)
	_ repository.ShiftsRepositoryI       = (*ShiftsRepository)(nil)
	_ repository.SettingsRepositoryI     = (*SettingsRepository)(nil)
	_ repository.AchievementsRepositoryI = (*AchievementsRepository)(nil)
	_ repository.StreaksRepositoryI      = (*StreaksRepository)(nil)
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "chai.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chai.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	var mode string
	require.NoError(t, s.db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestTipsRepository(t *testing.T) {
	repo := NewTipsRepo(openTestStore(t))
	ctx := context.Background()
	base := time.UnixMilli(1718000000000)
	first := entity.Tip{ID: "tip-1", Amount: 150, Currency: "RUB", Method: entity.MethodCash, CreatedAt: base}
	second := entity.Tip{ID: "tip-2", Amount: 700.5, Currency: "RUB", Method: entity.MethodSBP, Note: "birthday", TablesServed: 2, ShiftID: "shift-1", CreatedAt: base.Add(time.Hour)}

	t.Run("create", func(t *testing.T) {
		assert.NoError(t, repo.Create(ctx, &first))
		assert.NoError(t, repo.Create(ctx, &second))
		assert.ErrorIs(t, repo.Create(ctx, &first), errorvalues.ErrTipExists)
	})
	t.Run("list newest first", func(t *testing.T) {
		tips, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []entity.Tip{second, first}, tips)
	})
	t.Run("list range is half open", func(t *testing.T) {
		tips, err := repo.ListRange(ctx, base, base.Add(time.Hour))
		assert.NoError(t, err)
		assert.Equal(t, []entity.Tip{first}, tips)
	})
	t.Run("update", func(t *testing.T) {
		changed := first
		changed.Amount = 200
		changed.Method = entity.MethodCard
		assert.NoError(t, repo.Update(ctx, &changed))
		got, err := repo.GetByID(ctx, first.ID)
		assert.NoError(t, err)
		assert.Equal(t, changed, *got)
		assert.ErrorIs(t, repo.Update(ctx, &entity.Tip{ID: "missing"}), errorvalues.ErrTipNotFound)
	})
	t.Run("delete", func(t *testing.T) {
		assert.NoError(t, repo.Delete(ctx, first.ID))
		_, err := repo.GetByID(ctx, first.ID)
		assert.ErrorIs(t, err, errorvalues.ErrTipNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, first.ID), errorvalues.ErrTipNotFound)
	})
}

func TestShiftsRepository(t *testing.T) {
	repo := NewShiftsRepo(openTestStore(t))
	ctx := context.Background()
	base := time.UnixMilli(1718000000000)

	open, err := repo.GetOpen(ctx)
	assert.NoError(t, err)
	assert.Nil(t, open)

	older := entity.Shift{ID: "shift-1", StartedAt: base, EndedAt: base.Add(8 * time.Hour)}
	newer := entity.Shift{ID: "shift-2", StartedAt: base.Add(24 * time.Hour), Target: 3000, Venue: "Chaihona"}
	assert.NoError(t, repo.Put(ctx, &older))
	assert.NoError(t, repo.Put(ctx, &newer))

	open, err = repo.GetOpen(ctx)
	assert.NoError(t, err)
	assert.Equal(t, newer, *open)

	list, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []entity.Shift{newer, older}, list)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, errorvalues.ErrShiftNotFound)

	assert.NoError(t, repo.Clear(ctx))
	list, err = repo.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, list)
}

func TestSettingsRepository(t *testing.T) {
	repo := NewSettingsRepo(openTestStore(t))
	ctx := context.Background()

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, errorvalues.ErrSettingsNotFound)

	settings := entity.DefaultSettings()
	assert.NoError(t, repo.Save(ctx, &settings))
	settings.Currency = "USD"
	settings.QuickAmounts = []float64{1, 2.5}
	assert.NoError(t, repo.Save(ctx, &settings))

	got, err := repo.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, settings, *got)
}

func TestAchievementsAndStreaks(t *testing.T) {
	store := openTestStore(t)
	achievements := NewAchievementsRepo(store)
	streaks := NewStreaksRepo(store)
	ctx := context.Background()
	unlocked := time.UnixMilli(1718000000000)

	locked := entity.Achievement{ID: "total_10000", Category: entity.CategoryTotalAmount, Title: "t", Description: "d", Icon: "i", Progress: 10, MaxProgress: 10000, Rarity: entity.RarityRare}
	done := entity.Achievement{ID: "big_tip_500", Category: entity.CategoryBigTip, Title: "t", Description: "d", Icon: "i", Progress: 500, MaxProgress: 500, UnlockedAt: unlocked, Rarity: entity.RarityCommon}
	assert.NoError(t, achievements.Put(ctx, &locked))
	assert.NoError(t, achievements.Put(ctx, &done))
	locked.Progress = 20
	assert.NoError(t, achievements.Put(ctx, &locked))

	all, err := achievements.GetAll(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []entity.Achievement{done, locked}, all)

	s := entity.Streak{ID: "s-1", Category: entity.StreakDailyTarget, CurrentStreak: 3, LongestStreak: 4, LastAchievedDate: "2024-06-10", CreatedAt: unlocked, UpdatedAt: unlocked}
	assert.NoError(t, streaks.Put(ctx, &s))
	dup := s
	dup.ID = "s-2"
	assert.Error(t, streaks.Put(ctx, &dup))

	got, err := streaks.GetByCategory(ctx, entity.StreakDailyTarget)
	assert.NoError(t, err)
	assert.Equal(t, s, *got)

	assert.NoError(t, achievements.Clear(ctx))
	assert.NoError(t, streaks.Clear(ctx))
	all, err = achievements.GetAll(ctx)
	assert.NoError(t, err)
	assert.Empty(t, all)
	_, err = streaks.GetByCategory(ctx, entity.StreakDailyTarget)
	assert.ErrorIs(t, err, errorvalues.ErrStreakNotFound)
}
