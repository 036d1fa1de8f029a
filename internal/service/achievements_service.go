package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	errorvalues "github.com/limbo/chai/internal/error_values"
	"github.com/limbo/chai/internal/repository"
	"github.com/limbo/chai/pkg/clock"
	"github.com/limbo/chai/pkg/entity"
	"github.com/limbo/chai/pkg/logger"
	"go.uber.org/zap"
)

// AchievementsService owns achievement and streak rows. Writes go to the
// repositories first, the in-memory snapshot is republished afterwards.
type AchievementsService struct {
	achievementsRepo repository.AchievementsRepositoryI
	streaksRepo      repository.StreaksRepositoryI
	clock            clock.Clock
	loc              *time.Location

	// serializes Evaluate, UpdateStreak and ResetAll
	evalMu sync.Mutex

	mu           sync.RWMutex
	achievements []entity.Achievement
	streaks      []entity.Streak
}

type EngineOption func(*AchievementsService)

func WithClock(c clock.Clock) EngineOption {
	return func(s *AchievementsService) {
		s.clock = c
	}
}

// WithLocation sets the zone whose midnight separates calendar days.
func WithLocation(loc *time.Location) EngineOption {
	return func(s *AchievementsService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func NewAchievementsService(achievementsRepo repository.AchievementsRepositoryI, streaksRepo repository.StreaksRepositoryI, opts ...EngineOption) *AchievementsService {
	if achievementsRepo == nil || streaksRepo == nil {
		log.Fatal("on achievements service provided nil repos")
	}
	s := &AchievementsService{
		achievementsRepo: achievementsRepo,
		streaksRepo:      streaksRepo,
		clock:            clock.Real(),
		loc:              time.Local,
		achievements:     make([]entity.Achievement, 0),
		streaks:          make([]entity.Streak, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the snapshot with what the repositories hold.
func (s *AchievementsService) Load(ctx context.Context) error {
	s.evalMu.Lock()
	defer s.evalMu.Unlock()
	achievements, err := s.achievementsRepo.GetAll(ctx)
	if err != nil {
		return errors.New("achievements repository error: " + err.Error())
	}
	streaks, err := s.streaksRepo.GetAll(ctx)
	if err != nil {
		return errors.New("streaks repository error: " + err.Error())
	}
	s.mu.Lock()
	s.achievements = achievements
	s.streaks = streaks
	s.mu.Unlock()
	return nil
}

// Evaluate recomputes every catalog achievement from the full tip list.
// Progress only grows and UnlockedAt is stamped once, so repeated calls with
// the same input settle after the first one (daily_target aside, which
// advances once per call while today's target is met).
func (s *AchievementsService) Evaluate(ctx context.Context, tips []entity.Tip, dailyTarget float64) error {
	s.evalMu.Lock()
	defer s.evalMu.Unlock()

	now := s.now()
	facts, todayTotal := collectFacts(tips, dailyTarget, now, s.loc)
	if facts.targetMet {
		if err := s.updateStreak(ctx, entity.StreakDailyTarget, now); err != nil {
			return err
		}
	}

	stored, err := s.achievementsRepo.GetAll(ctx)
	if err != nil {
		return errors.New("achievements repository error: " + err.Error())
	}
	byID := make(map[string]entity.Achievement, len(stored))
	for _, a := range stored {
		byID[a.ID] = a
	}

	for _, def := range catalog {
		record, ok := byID[def.ID]
		if !ok {
			record = def.newRecord()
			if err := s.achievementsRepo.Put(ctx, &record); err != nil {
				return errors.New("achievements repository error: " + err.Error())
			}
			s.publishAchievement(record)
		}
		changed := syncDefinition(&record, def)
		if next, ok := def.candidate(record.Progress, facts); ok && next > record.Progress {
			record.Progress = next
			changed = true
			if record.Progress >= record.MaxProgress && record.UnlockedAt.IsZero() {
				record.UnlockedAt = now
				logger.L().Info("achievement unlocked",
					zap.String("id", record.ID),
					zap.String("rarity", string(record.Rarity)),
				)
			}
		}
		if !changed {
			continue
		}
		if err := s.achievementsRepo.Put(ctx, &record); err != nil {
			return errors.New("achievements repository error: " + err.Error())
		}
		s.publishAchievement(record)
	}
	logger.L().Debug("achievements evaluated",
		zap.Int("tips", len(tips)),
		zap.Float64("today_total", todayTotal),
		zap.Bool("target_met", facts.targetMet),
	)
	return nil
}

// now is truncated to the millisecond precision the stores keep.
func (s *AchievementsService) now() time.Time {
	return s.clock.Now().Truncate(time.Millisecond)
}

// syncDefinition copies catalog metadata onto a stored row and reports
// whether anything differed. Progress and UnlockedAt are left alone.
func syncDefinition(record *entity.Achievement, def AchievementDefinition) bool {
	want := def.newRecord()
	want.Progress = record.Progress
	want.UnlockedAt = record.UnlockedAt
	if *record == want {
		return false
	}
	*record = want
	return true
}

// UpdateStreak records that category's goal was (or wasn't) reached today.
// A false achieved is a no-op.
func (s *AchievementsService) UpdateStreak(ctx context.Context, category entity.StreakCategory, achieved bool) error {
	if !achieved {
		return nil
	}
	s.evalMu.Lock()
	defer s.evalMu.Unlock()
	return s.updateStreak(ctx, category, s.now())
}

func (s *AchievementsService) updateStreak(ctx context.Context, category entity.StreakCategory, now time.Time) error {
	if category != entity.StreakDailyTarget {
		return errorvalues.ErrUnknownCategory
	}
	streak, err := s.streaksRepo.GetByCategory(ctx, category)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrStreakNotFound) {
			return errors.New("streaks repository error: " + err.Error())
		}
		streak = newStreak(category, now)
	}
	today := dayKey(now, s.loc)
	advanceStreak(streak, today)
	streak.UpdatedAt = now
	if err := s.streaksRepo.Put(ctx, streak); err != nil {
		return errors.New("streaks repository error: " + err.Error())
	}
	s.publishStreak(*streak)
	return nil
}

func (s *AchievementsService) ResetAll(ctx context.Context) error {
	s.evalMu.Lock()
	defer s.evalMu.Unlock()
	if err := s.achievementsRepo.Clear(ctx); err != nil {
		return errors.New("achievements repository error: " + err.Error())
	}
	s.mu.Lock()
	s.achievements = make([]entity.Achievement, 0)
	s.mu.Unlock()
	if err := s.streaksRepo.Clear(ctx); err != nil {
		return errors.New("streaks repository error: " + err.Error())
	}
	s.mu.Lock()
	s.streaks = make([]entity.Streak, 0)
	s.mu.Unlock()
	logger.L().Info("achievements and streaks reset")
	return nil
}

func (s *AchievementsService) Achievements() []entity.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Achievement, len(s.achievements))
	copy(out, s.achievements)
	return out
}

func (s *AchievementsService) GetUnlocked() []entity.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Achievement, 0)
	for _, a := range s.achievements {
		if a.Unlocked() {
			out = append(out, a)
		}
	}
	return out
}

func (s *AchievementsService) Streaks() []entity.Streak {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Streak, len(s.streaks))
	copy(out, s.streaks)
	return out
}

func (s *AchievementsService) GetStreak(category entity.StreakCategory) (*entity.Streak, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, streak := range s.streaks {
		if streak.Category == category {
			return &streak, nil
		}
	}
	return nil, errorvalues.ErrStreakNotFound
}

func (s *AchievementsService) publishAchievement(a entity.Achievement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.achievements {
		if s.achievements[i].ID == a.ID {
			s.achievements[i] = a
			return
		}
	}
	s.achievements = append(s.achievements, a)
}

func (s *AchievementsService) publishStreak(streak entity.Streak) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.streaks {
		if s.streaks[i].Category == streak.Category {
			s.streaks[i] = streak
			return
		}
	}
	s.streaks = append(s.streaks, streak)
}
