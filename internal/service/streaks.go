package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/chai/pkg/entity"
)

func newStreak(category entity.StreakCategory, now time.Time) *entity.Streak {
	return &entity.Streak{
		ID:        uuid.NewString(),
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// advanceStreak applies a qualifying day to the streak. The same day twice
// changes nothing, the next day extends it, a longer gap restarts it.
// A last date after today (clock moved back) counts as the same day.
func advanceStreak(streak *entity.Streak, today string) {
	switch {
	case streak.LastAchievedDate == "":
		streak.CurrentStreak = 1
	default:
		gap, err := gapDays(streak.LastAchievedDate, today)
		switch {
		case err != nil:
			streak.CurrentStreak = 1
		case gap == 1:
			streak.CurrentStreak++
		case gap > 1:
			streak.CurrentStreak = 1
		}
	}
	streak.LongestStreak = max(streak.LongestStreak, streak.CurrentStreak)
	streak.LastAchievedDate = today
}
