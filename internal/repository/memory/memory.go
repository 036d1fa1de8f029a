// Package memory keeps every table in process maps. It backs the "memory"
// storage driver and doubles as the repository fake in service tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	errorvalues "github.com/limbo/chai/internal/error_values"
	"github.com/limbo/chai/pkg/entity"
)

type TipsRepository struct {
	mu   sync.RWMutex
	tips map[string]entity.Tip
}

func NewTipsRepo() *TipsRepository {
	return &TipsRepository{tips: make(map[string]entity.Tip)}
}

func (r *TipsRepository) Create(_ context.Context, tip *entity.Tip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tips[tip.ID]; ok {
		return errorvalues.ErrTipExists
	}
	r.tips[tip.ID] = *tip
	return nil
}

func (r *TipsRepository) GetByID(_ context.Context, id string) (*entity.Tip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tip, ok := r.tips[id]
	if !ok {
		return nil, errorvalues.ErrTipNotFound
	}
	return &tip, nil
}

func (r *TipsRepository) List(_ context.Context) ([]entity.Tip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tips := make([]entity.Tip, 0, len(r.tips))
	for _, tip := range r.tips {
		tips = append(tips, tip)
	}
	sortTips(tips)
	return tips, nil
}

func (r *TipsRepository) ListRange(_ context.Context, from, to time.Time) ([]entity.Tip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tips := make([]entity.Tip, 0)
	for _, tip := range r.tips {
		if !tip.CreatedAt.Before(from) && tip.CreatedAt.Before(to) {
			tips = append(tips, tip)
		}
	}
	sortTips(tips)
	return tips, nil
}

func (r *TipsRepository) Update(_ context.Context, tip *entity.Tip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.tips[tip.ID]
	if !ok {
		return errorvalues.ErrTipNotFound
	}
	stored.Amount = tip.Amount
	stored.Method = tip.Method
	stored.Note = tip.Note
	stored.TablesServed = tip.TablesServed
	r.tips[tip.ID] = stored
	return nil
}

func (r *TipsRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tips[id]; !ok {
		return errorvalues.ErrTipNotFound
	}
	delete(r.tips, id)
	return nil
}

func sortTips(tips []entity.Tip) {
	sort.Slice(tips, func(i, j int) bool {
		if !tips[i].CreatedAt.Equal(tips[j].CreatedAt) {
			return tips[i].CreatedAt.After(tips[j].CreatedAt)
		}
		return tips[i].ID < tips[j].ID
	})
}

type ShiftsRepository struct {
	mu     sync.RWMutex
	shifts map[string]entity.Shift
}

func NewShiftsRepo() *ShiftsRepository {
	return &ShiftsRepository{shifts: make(map[string]entity.Shift)}
}

func (r *ShiftsRepository) Put(_ context.Context, shift *entity.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shifts[shift.ID] = *shift
	return nil
}

func (r *ShiftsRepository) GetByID(_ context.Context, id string) (*entity.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	shift, ok := r.shifts[id]
	if !ok {
		return nil, errorvalues.ErrShiftNotFound
	}
	return &shift, nil
}

func (r *ShiftsRepository) GetOpen(ctx context.Context) (*entity.Shift, error) {
	shifts, _ := r.List(ctx)
	for _, shift := range shifts {
		if shift.Open() {
			return &shift, nil
		}
	}
	return nil, nil
}

func (r *ShiftsRepository) List(_ context.Context) ([]entity.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	shifts := make([]entity.Shift, 0, len(r.shifts))
	for _, shift := range r.shifts {
		shifts = append(shifts, shift)
	}
	sort.Slice(shifts, func(i, j int) bool {
		return shifts[i].StartedAt.After(shifts[j].StartedAt)
	})
	return shifts, nil
}

func (r *ShiftsRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shifts = make(map[string]entity.Shift)
	return nil
}

type SettingsRepository struct {
	mu       sync.RWMutex
	settings *entity.Settings
}

func NewSettingsRepo() *SettingsRepository {
	return &SettingsRepository{}
}

func (r *SettingsRepository) Get(_ context.Context) (*entity.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.settings == nil {
		return nil, errorvalues.ErrSettingsNotFound
	}
	settings := *r.settings
	settings.QuickAmounts = append([]float64(nil), r.settings.QuickAmounts...)
	return &settings, nil
}

func (r *SettingsRepository) Save(_ context.Context, settings *entity.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *settings
	stored.QuickAmounts = append([]float64(nil), settings.QuickAmounts...)
	r.settings = &stored
	return nil
}

type AchievementsRepository struct {
	mu           sync.RWMutex
	achievements map[string]entity.Achievement
}

func NewAchievementsRepo() *AchievementsRepository {
	return &AchievementsRepository{achievements: make(map[string]entity.Achievement)}
}

func (r *AchievementsRepository) GetAll(_ context.Context) ([]entity.Achievement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]entity.Achievement, 0, len(r.achievements))
	for _, a := range r.achievements {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].UnlockedAt.Equal(all[j].UnlockedAt) {
			return all[i].UnlockedAt.After(all[j].UnlockedAt)
		}
		return all[i].ID < all[j].ID
	})
	return all, nil
}

func (r *AchievementsRepository) Put(_ context.Context, a *entity.Achievement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.achievements[a.ID] = *a
	return nil
}

func (r *AchievementsRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.achievements = make(map[string]entity.Achievement)
	return nil
}

type StreaksRepository struct {
	mu      sync.RWMutex
	streaks map[string]entity.Streak
}

func NewStreaksRepo() *StreaksRepository {
	return &StreaksRepository{streaks: make(map[string]entity.Streak)}
}

func (r *StreaksRepository) GetAll(_ context.Context) ([]entity.Streak, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]entity.Streak, 0, len(r.streaks))
	for _, s := range r.streaks {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	return all, nil
}

func (r *StreaksRepository) GetByCategory(_ context.Context, category entity.StreakCategory) (*entity.Streak, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.streaks {
		if s.Category == category {
			return &s, nil
		}
	}
	return nil, errorvalues.ErrStreakNotFound
}

func (r *StreaksRepository) Put(_ context.Context, s *entity.Streak) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.streaks[s.ID] = *s
	return nil
}

func (r *StreaksRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.streaks = make(map[string]entity.Streak)
	return nil
}
