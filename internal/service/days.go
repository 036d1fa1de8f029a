package service

import (
	"math"
	"sort"
	"time"

	"github.com/limbo/chai/pkg/entity"
)

const dayLayout = "2006-01-02"

func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayLayout)
}

// startOfDay is local midnight of t's calendar day in loc.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// gapDays counts calendar days from "from" to "to", both "2006-01-02".
// Parsing in UTC keeps DST shifts out of the difference.
func gapDays(from, to string) (int, error) {
	a, err := time.Parse(dayLayout, from)
	if err != nil {
		return 0, err
	}
	b, err := time.Parse(dayLayout, to)
	if err != nil {
		return 0, err
	}
	return int(b.Sub(a).Hours() / 24), nil
}

func validAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}

// consecutiveDays counts contiguous calendar days with at least one tip,
// walking back from the most recent such day, not from today.
func consecutiveDays(tips []entity.Tip, loc *time.Location) int {
	seen := make(map[string]struct{})
	for _, tip := range tips {
		if !validAmount(tip.Amount) {
			continue
		}
		seen[dayKey(tip.CreatedAt, loc)] = struct{}{}
	}
	if len(seen) == 0 {
		return 0
	}
	days := make([]string, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	count := 1
	for i := 1; i < len(days); i++ {
		gap, err := gapDays(days[i], days[i-1])
		if err != nil || gap != 1 {
			break
		}
		count++
	}
	return count
}

// collectFacts folds the tip list into the inputs of every catalog rule.
func collectFacts(tips []entity.Tip, dailyTarget float64, now time.Time, loc *time.Location) (tipFacts, float64) {
	var (
		facts      tipFacts
		todayTotal float64
	)
	today := dayKey(now, loc)
	for _, tip := range tips {
		if !validAmount(tip.Amount) {
			continue
		}
		facts.lifetimeTotal += tip.Amount
		facts.biggestTip = max(facts.biggestTip, tip.Amount)
		if dayKey(tip.CreatedAt, loc) == today {
			todayTotal += tip.Amount
		}
	}
	facts.targetMet = todayTotal >= dailyTarget
	facts.consecutiveDays = consecutiveDays(tips, loc)
	return facts, todayTotal
}
