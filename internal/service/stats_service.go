package service

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	errorvalues "github.com/limbo/chai/internal/error_values"
	"github.com/limbo/chai/internal/repository"
	"github.com/limbo/chai/pkg/clock"
	"github.com/limbo/chai/pkg/entity"
)

const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"

	analyticsDays  = 30
	forecastWeeks  = 4
	forecastGrowth = 1.1
)

type StatsService struct {
	tipsRepo repository.TipsRepositoryI
	settings SettingsProvider
	clock    clock.Clock
	loc      *time.Location
}

func NewStatsService(tipsRepo repository.TipsRepositoryI, settings SettingsProvider, c clock.Clock, loc *time.Location) *StatsService {
	if tipsRepo == nil || settings == nil {
		log.Fatal("on stats service provided nil dependencies")
	}
	if c == nil {
		c = clock.Real()
	}
	if loc == nil {
		loc = time.Local
	}
	return &StatsService{
		tipsRepo: tipsRepo,
		settings: settings,
		clock:    c,
		loc:      loc,
	}
}

// periodRange resolves a period name to [from, to) in local days.
// The zero from of "all" means unbounded.
func periodRange(period string, now time.Time, loc *time.Location) (time.Time, time.Time, error) {
	today := startOfDay(now, loc)
	tomorrow := today.AddDate(0, 0, 1)
	switch period {
	case PeriodToday:
		return today, tomorrow, nil
	case PeriodWeek:
		return today.AddDate(0, 0, -6), tomorrow, nil
	case PeriodMonth:
		return today.AddDate(0, 0, -(analyticsDays - 1)), tomorrow, nil
	case PeriodAll:
		return time.Time{}, tomorrow, nil
	default:
		return time.Time{}, time.Time{}, errorvalues.ErrUnknownPeriod
	}
}

func (ss *StatsService) Summary(ctx context.Context, period string) (*entity.TipsSummary, error) {
	now := ss.clock.Now()
	from, to, err := periodRange(period, now, ss.loc)
	if err != nil {
		return nil, err
	}
	settings, err := ss.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	var tips []entity.Tip
	if from.IsZero() {
		tips, err = ss.tipsRepo.List(ctx)
	} else {
		tips, err = ss.tipsRepo.ListRange(ctx, from, to)
	}
	if err != nil {
		return nil, errors.New("tips repository error: " + err.Error())
	}

	summary := &entity.TipsSummary{
		Period:      period,
		From:        from,
		To:          to,
		ByMethod:    make(map[entity.TipMethod]float64),
		DailyTarget: settings.DailyTarget,
	}
	today := dayKey(now, ss.loc)
	for _, tip := range tips {
		if !validAmount(tip.Amount) {
			continue
		}
		summary.Count++
		summary.Total += tip.Amount
		summary.Max = max(summary.Max, tip.Amount)
		summary.TablesServed += tip.TablesServed
		summary.ByMethod[tip.Method] += tip.Amount
		if dayKey(tip.CreatedAt, ss.loc) == today {
			summary.TodayTotal += tip.Amount
		}
	}
	if summary.Count > 0 {
		summary.Average = summary.Total / float64(summary.Count)
	}
	summary.TargetProgress = targetProgress(summary.TodayTotal, settings.DailyTarget)
	return summary, nil
}

func targetProgress(todayTotal, target float64) float64 {
	if target <= 0 {
		return 1
	}
	return min(1, todayTotal/target)
}

func (ss *StatsService) Analytics(ctx context.Context) (*entity.TipsAnalytics, error) {
	now := ss.clock.Now()
	from, to, _ := periodRange(PeriodMonth, now, ss.loc)
	tips, err := ss.tipsRepo.ListRange(ctx, from, to)
	if err != nil {
		return nil, errors.New("tips repository error: " + err.Error())
	}

	result := &entity.TipsAnalytics{
		From:         from,
		To:           to,
		Weekdays:     make([]entity.WeekdayStats, 7),
		WeeklyTotals: make([]float64, forecastWeeks),
	}
	for day := range result.Weekdays {
		result.Weekdays[day].Weekday = time.Weekday(day)
	}
	// window 0 is the oldest, the last one ends today
	windowsStart := to.AddDate(0, 0, -7*forecastWeeks)
	for _, tip := range tips {
		if !validAmount(tip.Amount) {
			continue
		}
		local := tip.CreatedAt.In(ss.loc)
		wd := &result.Weekdays[local.Weekday()]
		wd.Count++
		wd.Total += tip.Amount
		result.Hours[local.Hour()] += tip.Amount
		if local.Before(windowsStart) {
			continue
		}
		for w := range forecastWeeks {
			end := windowsStart.AddDate(0, 0, 7*(w+1))
			if local.Before(end) {
				result.WeeklyTotals[w] += tip.Amount
				break
			}
		}
	}
	for i := range result.Weekdays {
		if result.Weekdays[i].Count > 0 {
			result.Weekdays[i].Average = result.Weekdays[i].Total / float64(result.Weekdays[i].Count)
		}
	}
	var weeksTotal float64
	for _, total := range result.WeeklyTotals {
		weeksTotal += total
	}
	result.Forecast = math.Round(weeksTotal / forecastWeeks * forecastGrowth)
	return result, nil
}
