package service_test

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"sync"
	"testing"
	"time"

	errorvalues "github.com/limbo/chai/internal/error_values"
	"github.com/limbo/chai/internal/repository/memory"
	"github.com/limbo/chai/internal/repository/sqlite"
	"github.com/limbo/chai/internal/service"
	"github.com/limbo/chai/pkg/clock"
	"github.com/limbo/chai/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	msk      = time.FixedZone("MSK", 3*60*60)
	dayStart = time.Date(2024, time.June, 10, 12, 0, 0, 0, msk)
)

type engineFixture struct {
	engine       *service.AchievementsService
	achievements *memory.AchievementsRepository
	streaks      *memory.StreaksRepository
	clock        *clock.FakeClock
}

func newEngine(t *testing.T) *engineFixture {
	t.Helper()
	f := &engineFixture{
		achievements: memory.NewAchievementsRepo(),
		streaks:      memory.NewStreaksRepo(),
		clock:        clock.Fake(dayStart),
	}
	f.engine = service.NewAchievementsService(f.achievements, f.streaks,
		service.WithClock(f.clock),
		service.WithLocation(msk),
	)
	return f
}

func tipAt(amount float64, at time.Time) entity.Tip {
	return entity.Tip{ID: at.String(), Amount: amount, Method: entity.MethodCash, CreatedAt: at}
}

func findAchievement(t *testing.T, list []entity.Achievement, id string) entity.Achievement {
	t.Helper()
	for _, a := range list {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("achievement %s not found", id)
	return entity.Achievement{}
}

func stored(t *testing.T, f *engineFixture, id string) entity.Achievement {
	t.Helper()
	all, err := f.achievements.GetAll(context.Background())
	require.NoError(t, err)
	return findAchievement(t, all, id)
}

func TestEvaluateEmptyInput(t *testing.T) {
	f := newEngine(t)
	ctx := context.Background()
	require.NoError(t, f.engine.Evaluate(ctx, nil, 3000))

	all := f.engine.Achievements()
	assert.Len(t, all, len(service.Catalog()))
	for _, a := range all {
		assert.Zero(t, a.Progress, a.ID)
		assert.True(t, a.UnlockedAt.IsZero(), a.ID)
	}
	assert.Empty(t, f.engine.Streaks())
	assert.Empty(t, f.engine.GetUnlocked())
}

func TestEvaluateTotalAmountBoundary(t *testing.T) {
	testCases := []struct {
		Desc     string
		Tips     []entity.Tip
		Progress float64
		Unlocked bool
	}{
		{
			Desc:     "exactly the threshold unlocks",
			Tips:     []entity.Tip{tipAt(400, dayStart.Add(-48*time.Hour)), tipAt(600, dayStart)},
			Progress: 1000,
			Unlocked: true,
		},
		{
			Desc:     "one below stays locked",
			Tips:     []entity.Tip{tipAt(400, dayStart.Add(-48*time.Hour)), tipAt(599, dayStart)},
			Progress: 999,
			Unlocked: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			f := newEngine(t)
			require.NoError(t, f.engine.Evaluate(context.Background(), tc.Tips, 1e9))
			a := stored(t, f, "first_1000")
			assert.Equal(t, tc.Progress, a.Progress)
			assert.Equal(t, tc.Unlocked, !a.UnlockedAt.IsZero())
			assert.Equal(t, tc.Unlocked, a.Unlocked())
			assert.Equal(t, tc.Progress, stored(t, f, "first_10000").Progress)
		})
	}
}

func TestEvaluateBigTipIsBinary(t *testing.T) {
	t.Run("threshold tip unlocks in one call", func(t *testing.T) {
		f := newEngine(t)
		require.NoError(t, f.engine.Evaluate(context.Background(), []entity.Tip{tipAt(500, dayStart)}, 1e9))
		a := stored(t, f, "big_tip_500")
		assert.Equal(t, float64(500), a.Progress)
		assert.Equal(t, dayStart, a.UnlockedAt)
		assert.Zero(t, stored(t, f, "big_tip_1000").Progress)
	})
	t.Run("one below the threshold leaves it untouched", func(t *testing.T) {
		f := newEngine(t)
		require.NoError(t, f.engine.Evaluate(context.Background(), []entity.Tip{tipAt(499, dayStart)}, 1e9))
		a := stored(t, f, "big_tip_500")
		assert.Zero(t, a.Progress)
		assert.True(t, a.UnlockedAt.IsZero())
	})
	t.Run("biggest tip unlocks every lower tier", func(t *testing.T) {
		f := newEngine(t)
		require.NoError(t, f.engine.Evaluate(context.Background(), []entity.Tip{tipAt(2500, dayStart)}, 1e9))
		for _, id := range []string{"big_tip_500", "big_tip_1000", "big_tip_2000"} {
			assert.True(t, stored(t, f, id).Unlocked(), id)
		}
	})
}

func TestEvaluateProgressIsMonotonic(t *testing.T) {
	f := newEngine(t)
	ctx := context.Background()
	tips := []entity.Tip{tipAt(1200, dayStart), tipAt(300, dayStart.Add(time.Minute))}
	require.NoError(t, f.engine.Evaluate(ctx, tips, 1e9))
	unlockedAt := stored(t, f, "first_1000").UnlockedAt
	require.Equal(t, dayStart, unlockedAt)

	// tips deleted later must not roll anything back
	f.clock.Advance(time.Hour)
	require.NoError(t, f.engine.Evaluate(ctx, tips[1:], 1e9))
	first := stored(t, f, "first_1000")
	assert.Equal(t, float64(1000), first.Progress)
	assert.Equal(t, unlockedAt, first.UnlockedAt)
	assert.Equal(t, float64(1500), stored(t, f, "first_10000").Progress)
	assert.True(t, stored(t, f, "big_tip_1000").Unlocked())

	// re-crossing keeps the first unlock timestamp
	f.clock.Advance(time.Hour)
	require.NoError(t, f.engine.Evaluate(ctx, append(tips, tipAt(5000, dayStart)), 1e9))
	assert.Equal(t, unlockedAt, stored(t, f, "first_1000").UnlockedAt)
	assert.Equal(t, float64(6500), stored(t, f, "first_10000").Progress)
}

func TestEvaluateConsistencyAnchorsAtLatestDay(t *testing.T) {
	testCases := []struct {
		Desc     string
		DaysAgo  []int
		Progress float64
	}{
		{Desc: "run ending yesterday still counts", DaysAgo: []int{5, 4, 3, 2, 1}, Progress: 5},
		{Desc: "run ending three days ago", DaysAgo: []int{5, 4, 3}, Progress: 3},
		{Desc: "gap stops the count", DaysAgo: []int{0, 1, 3, 4, 5, 6}, Progress: 2},
		{Desc: "several tips per day count once", DaysAgo: []int{0, 0, 0, 1, 1}, Progress: 2},
		{Desc: "capped at max progress", DaysAgo: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, Progress: 7},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			f := newEngine(t)
			tips := make([]entity.Tip, 0, len(tc.DaysAgo))
			for i, ago := range tc.DaysAgo {
				tips = append(tips, tipAt(10, dayStart.AddDate(0, 0, -ago).Add(time.Duration(i)*time.Minute)))
			}
			require.NoError(t, f.engine.Evaluate(context.Background(), tips, 1e9))
			assert.Equal(t, tc.Progress, stored(t, f, "consistency_7").Progress)
		})
	}
}

func TestEvaluateDayBoundaryIsLocalMidnight(t *testing.T) {
	f := newEngine(t)
	// 23:30 local yesterday is 20:30 UTC, still a different local day
	lateYesterday := time.Date(2024, time.June, 9, 23, 30, 0, 0, msk)
	earlyToday := time.Date(2024, time.June, 10, 0, 10, 0, 0, msk)
	require.NoError(t, f.engine.Evaluate(context.Background(), []entity.Tip{
		tipAt(2000, lateYesterday),
		tipAt(500, earlyToday),
	}, 1000))
	assert.Zero(t, stored(t, f, "first_target").Progress)
	assert.Empty(t, f.engine.Streaks())
	assert.Equal(t, float64(2), stored(t, f, "consistency_7").Progress)
}

func TestEvaluateIgnoresMalformedAmounts(t *testing.T) {
	f := newEngine(t)
	tips := []entity.Tip{
		tipAt(math.NaN(), dayStart),
		tipAt(math.Inf(1), dayStart),
		tipAt(-700, dayStart),
		tipAt(0, dayStart.AddDate(0, 0, -1)),
		tipAt(100, dayStart),
	}
	require.NoError(t, f.engine.Evaluate(context.Background(), tips, 1e9))
	assert.Equal(t, float64(100), stored(t, f, "first_1000").Progress)
	assert.Zero(t, stored(t, f, "big_tip_500").Progress)
	assert.Equal(t, float64(1), stored(t, f, "consistency_7").Progress)
}

func TestEvaluateDailyTargetAdvancesPerQualifyingCall(t *testing.T) {
	f := newEngine(t)
	ctx := context.Background()
	tips := []entity.Tip{tipAt(3000, dayStart)}
	for range 3 {
		require.NoError(t, f.engine.Evaluate(ctx, tips, 3000))
	}
	assert.Equal(t, float64(1), stored(t, f, "first_target").Progress)
	assert.True(t, stored(t, f, "first_target").Unlocked())
	assert.Equal(t, float64(3), stored(t, f, "target_3_days").Progress)
	assert.Equal(t, float64(3), stored(t, f, "target_7_days").Progress)

	streak, err := f.engine.GetStreak(entity.StreakDailyTarget)
	require.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)

	// not met: nothing moves
	require.NoError(t, f.engine.Evaluate(ctx, tips, 5000))
	assert.Equal(t, float64(3), stored(t, f, "target_7_days").Progress)
}

func TestEvaluateKeepsUnknownRows(t *testing.T) {
	f := newEngine(t)
	ctx := context.Background()
	legacy := entity.Achievement{ID: "legacy_badge", Category: entity.CategoryBigTip, Title: "old", MaxProgress: 1, Progress: 1, UnlockedAt: dayStart.AddDate(-1, 0, 0)}
	require.NoError(t, f.achievements.Put(ctx, &legacy))

	require.NoError(t, f.engine.Evaluate(ctx, []entity.Tip{tipAt(50, dayStart)}, 1e9))
	assert.Equal(t, legacy, stored(t, f, "legacy_badge"))
	all, err := f.achievements.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(service.Catalog())+1)
}

func TestEvaluateSyncsCatalogMetadata(t *testing.T) {
	f := newEngine(t)
	ctx := context.Background()
	outdated := entity.Achievement{ID: "first_1000", Category: entity.CategoryTotalAmount, Title: "Old title", Progress: 300, MaxProgress: 1000, Rarity: entity.RarityRare}
	require.NoError(t, f.achievements.Put(ctx, &outdated))

	require.NoError(t, f.engine.Evaluate(ctx, nil, 1e9))
	def, ok := service.DefinitionByID("first_1000")
	require.True(t, ok)
	a := stored(t, f, "first_1000")
	assert.Equal(t, def.Title, a.Title)
	assert.Equal(t, def.Rarity, a.Rarity)
	assert.Equal(t, float64(300), a.Progress)
}

func TestUpdateStreak(t *testing.T) {
	ctx := context.Background()
	t.Run("not achieved is a no-op", func(t *testing.T) {
		f := newEngine(t)
		require.NoError(t, f.engine.UpdateStreak(ctx, entity.StreakDailyTarget, false))
		_, err := f.streaks.GetByCategory(ctx, entity.StreakDailyTarget)
		assert.ErrorIs(t, err, errorvalues.ErrStreakNotFound)
		_, err = f.engine.GetStreak(entity.StreakDailyTarget)
		assert.ErrorIs(t, err, errorvalues.ErrStreakNotFound)
	})
	t.Run("idempotent within a day", func(t *testing.T) {
		f := newEngine(t)
		require.NoError(t, f.engine.UpdateStreak(ctx, entity.StreakDailyTarget, true))
		f.clock.Advance(6 * time.Hour)
		require.NoError(t, f.engine.UpdateStreak(ctx, entity.StreakDailyTarget, true))
		s, err := f.streaks.GetByCategory(ctx, entity.StreakDailyTarget)
		require.NoError(t, err)
		assert.Equal(t, 1, s.CurrentStreak)
		assert.Equal(t, 1, s.LongestStreak)
		assert.Equal(t, "2024-06-10", s.LastAchievedDate)
		assert.Equal(t, dayStart.Add(6*time.Hour), s.UpdatedAt)
		assert.Equal(t, dayStart, s.CreatedAt)
	})
	t.Run("continues on the next day", func(t *testing.T) {
		f := newEngine(t)
		require.NoError(t, f.engine.UpdateStreak(ctx, entity.StreakDailyTarget, true))
		f.clock.AddDays(1)
		require.NoError(t, f.engine.UpdateStreak(ctx, entity.StreakDailyTarget, true))
		s, err := f.engine.GetStreak(entity.StreakDailyTarget)
		require.NoError(t, err)
		assert.Equal(t, 2, s.CurrentStreak)
		assert.Equal(t, 2, s.LongestStreak)
		assert.Equal(t, "2024-06-11", s.LastAchievedDate)
	})
	t.Run("breaks on a gap", func(t *testing.T) {
		f := newEngine(t)
		for _, step := range []int{0, 1, 1, 2} {
			f.clock.AddDays(step)
			require.NoError(t, f.engine.UpdateStreak(ctx, entity.StreakDailyTarget, true))
		}
		s, err := f.engine.GetStreak(entity.StreakDailyTarget)
		require.NoError(t, err)
		assert.Equal(t, 1, s.CurrentStreak)
		assert.Equal(t, 3, s.LongestStreak)
		assert.Equal(t, "2024-06-14", s.LastAchievedDate)
	})
	t.Run("late evening and early morning are consecutive days", func(t *testing.T) {
		f := newEngine(t)
		f.clock.Set(time.Date(2024, time.June, 10, 23, 59, 0, 0, msk))
		require.NoError(t, f.engine.UpdateStreak(ctx, entity.StreakDailyTarget, true))
		f.clock.Advance(2 * time.Minute)
		require.NoError(t, f.engine.UpdateStreak(ctx, entity.StreakDailyTarget, true))
		s, err := f.engine.GetStreak(entity.StreakDailyTarget)
		require.NoError(t, err)
		assert.Equal(t, 2, s.CurrentStreak)
	})
	t.Run("clock moved back keeps the counter", func(t *testing.T) {
		f := newEngine(t)
		require.NoError(t, f.engine.UpdateStreak(ctx, entity.StreakDailyTarget, true))
		f.clock.AddDays(1)
		require.NoError(t, f.engine.UpdateStreak(ctx, entity.StreakDailyTarget, true))
		f.clock.AddDays(-3)
		require.NoError(t, f.engine.UpdateStreak(ctx, entity.StreakDailyTarget, true))
		s, err := f.engine.GetStreak(entity.StreakDailyTarget)
		require.NoError(t, err)
		assert.Equal(t, 2, s.CurrentStreak)
		assert.Equal(t, "2024-06-08", s.LastAchievedDate)
	})
	t.Run("unknown category", func(t *testing.T) {
		f := newEngine(t)
		err := f.engine.UpdateStreak(ctx, entity.StreakCategory("weekly"), true)
		assert.ErrorIs(t, err, errorvalues.ErrUnknownCategory)
	})
}

func TestResetAll(t *testing.T) {
	f := newEngine(t)
	ctx := context.Background()
	require.NoError(t, f.engine.Evaluate(ctx, []entity.Tip{tipAt(5000, dayStart)}, 3000))
	require.NotEmpty(t, f.engine.GetUnlocked())
	require.NotEmpty(t, f.engine.Streaks())

	for range 2 {
		require.NoError(t, f.engine.ResetAll(ctx))
		assert.Empty(t, f.engine.Achievements())
		assert.Empty(t, f.engine.Streaks())
		all, err := f.achievements.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
		streaks, err := f.streaks.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, streaks)
	}

	// next evaluation recreates rows from scratch
	f.clock.Advance(time.Hour)
	require.NoError(t, f.engine.Evaluate(ctx, []entity.Tip{tipAt(5000, dayStart)}, 3000))
	assert.Equal(t, dayStart.Add(time.Hour), stored(t, f, "first_1000").UnlockedAt)
}

func TestResetAllThenEvaluateEmpty(t *testing.T) {
	f := newEngine(t)
	ctx := context.Background()
	require.NoError(t, f.engine.Evaluate(ctx, []entity.Tip{tipAt(5000, dayStart)}, 3000))
	require.NoError(t, f.engine.ResetAll(ctx))

	require.NoError(t, f.engine.Evaluate(ctx, nil, 3000))
	all := f.engine.Achievements()
	assert.Len(t, all, len(service.Catalog()))
	for _, a := range all {
		assert.Zero(t, a.Progress, a.ID)
		assert.True(t, a.UnlockedAt.IsZero(), a.ID)
	}
	assert.Empty(t, f.engine.GetUnlocked())
	assert.Empty(t, f.engine.Streaks())
	streaks, err := f.streaks.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, streaks)
}

func TestLoadRestoresSnapshot(t *testing.T) {
	f := newEngine(t)
	ctx := context.Background()
	require.NoError(t, f.engine.Evaluate(ctx, []entity.Tip{tipAt(1000, dayStart)}, 500))

	restarted := service.NewAchievementsService(f.achievements, f.streaks, service.WithClock(f.clock), service.WithLocation(msk))
	assert.Empty(t, restarted.Achievements())
	require.NoError(t, restarted.Load(ctx))
	assert.ElementsMatch(t, f.engine.Achievements(), restarted.Achievements())
	assert.Equal(t, f.engine.Streaks(), restarted.Streaks())
	// most recently unlocked first
	assert.False(t, restarted.Achievements()[0].UnlockedAt.IsZero())
}

func TestLoadConcurrentWithEvaluate(t *testing.T) {
	f := newEngine(t)
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			tips := []entity.Tip{tipAt(float64(100*(i+1)), dayStart)}
			assert.NoError(t, f.engine.Evaluate(ctx, tips, 1e9))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, f.engine.Load(ctx))
		}()
	}
	wg.Wait()

	all, err := f.achievements.GetAll(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, all, f.engine.Achievements())
	assert.Equal(t, float64(1000), stored(t, f, "first_1000").Progress)
}

func TestUnlockTimeSurvivesSQLiteReload(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "chai.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	c := clock.Fake(time.Date(2024, time.June, 10, 12, 0, 0, 123456789, msk))
	achievementsRepo := sqlite.NewAchievementsRepo(store)
	streaksRepo := sqlite.NewStreaksRepo(store)
	engine := service.NewAchievementsService(achievementsRepo, streaksRepo,
		service.WithClock(c),
		service.WithLocation(msk),
	)
	require.NoError(t, engine.Evaluate(ctx, []entity.Tip{tipAt(1200, dayStart)}, 1000))
	before := findAchievement(t, engine.Achievements(), "first_1000")
	require.True(t, before.Unlocked())
	streakBefore, err := engine.GetStreak(entity.StreakDailyTarget)
	require.NoError(t, err)

	require.NoError(t, engine.Load(ctx))
	after := findAchievement(t, engine.Achievements(), "first_1000")
	assert.True(t, before.UnlockedAt.Equal(after.UnlockedAt), "before %s after %s", before.UnlockedAt, after.UnlockedAt)
	assert.Equal(t, 123*time.Millisecond, time.Duration(after.UnlockedAt.Nanosecond()))

	streakAfter, err := engine.GetStreak(entity.StreakDailyTarget)
	require.NoError(t, err)
	assert.True(t, streakBefore.UpdatedAt.Equal(streakAfter.UpdatedAt))
}

func TestSnapshotIsACopy(t *testing.T) {
	f := newEngine(t)
	require.NoError(t, f.engine.Evaluate(context.Background(), nil, 1e9))
	list := f.engine.Achievements()
	list[0].Progress = 999999
	assert.NotEqual(t, float64(999999), f.engine.Achievements()[0].Progress)
}

type failingAchievementsRepo struct {
	*memory.AchievementsRepository
	failAfter int
	puts      int
}

func (r *failingAchievementsRepo) Put(ctx context.Context, a *entity.Achievement) error {
	r.puts++
	if r.puts > r.failAfter {
		return errors.New("disk full")
	}
	return r.AchievementsRepository.Put(ctx, a)
}

func TestEvaluateWritesBeforePublishing(t *testing.T) {
	repo := &failingAchievementsRepo{AchievementsRepository: memory.NewAchievementsRepo(), failAfter: 2}
	engine := service.NewAchievementsService(repo, memory.NewStreaksRepo(), service.WithClock(clock.Fake(dayStart)), service.WithLocation(msk))
	err := engine.Evaluate(context.Background(), []entity.Tip{tipAt(100, dayStart)}, 1e9)
	assert.Error(t, err)

	persisted, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, persisted, engine.Achievements())
}

func TestEvaluateConcurrentCalls(t *testing.T) {
	f := newEngine(t)
	ctx := context.Background()
	tips := []entity.Tip{tipAt(2500, dayStart)}
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, f.engine.Evaluate(ctx, tips, 1e9))
			_ = f.engine.Achievements()
		}()
	}
	wg.Wait()
	assert.Len(t, f.engine.Achievements(), len(service.Catalog()))
	assert.Equal(t, dayStart, stored(t, f, "big_tip_2000").UnlockedAt)
}
