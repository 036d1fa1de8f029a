package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/chai/internal/error_values"
	"github.com/limbo/chai/internal/repository"
	"github.com/limbo/chai/pkg/entity"
)

type SettingsService struct {
	repo repository.SettingsRepositoryI
}

func NewSettingsService(settingsRepo repository.SettingsRepositoryI) *SettingsService {
	if settingsRepo == nil {
		log.Fatal("provided nil settingsRepo")
	}
	return &SettingsService{
		repo: settingsRepo,
	}
}

type settingsRules struct {
	Currency     string    `validate:"required,max=8"`
	Rounding     string    `validate:"rounding"`
	QuickAmounts []float64 `validate:"max=8,dive,gt=0,finite"`
	Lang         string    `validate:"oneof=ru en"`
	DailyTarget  float64   `validate:"gte=0,finite"`
}

func (ss *SettingsService) Get(ctx context.Context) (*entity.Settings, error) {
	stored, err := ss.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrSettingsNotFound) {
			return nil, errors.New("settings repository error: " + err.Error())
		}
		defaults := entity.DefaultSettings()
		if err := ss.repo.Save(ctx, &defaults); err != nil {
			return nil, errors.New("settings repository error: " + err.Error())
		}
		return &defaults, nil
	}
	merged := withDefaults(*stored)
	return &merged, nil
}

func (ss *SettingsService) Save(ctx context.Context, patch SettingsPatch) (*entity.Settings, error) {
	current, err := ss.Get(ctx)
	if err != nil {
		return nil, err
	}
	next := *current
	if patch.Currency != nil {
		next.Currency = *patch.Currency
	}
	if patch.Rounding != nil {
		next.Rounding = *patch.Rounding
	}
	if patch.QuickAmounts != nil {
		next.QuickAmounts = append([]float64(nil), patch.QuickAmounts...)
	}
	if patch.Lang != nil {
		next.Lang = *patch.Lang
	}
	if patch.DailyTarget != nil {
		next.DailyTarget = *patch.DailyTarget
	}
	err = validateStruct(settingsRules{
		Currency:     next.Currency,
		Rounding:     string(next.Rounding),
		QuickAmounts: next.QuickAmounts,
		Lang:         next.Lang,
		DailyTarget:  next.DailyTarget,
	})
	if err != nil {
		return nil, err
	}
	if err := ss.repo.Save(ctx, &next); err != nil {
		return nil, errors.New("settings repository error: " + err.Error())
	}
	return &next, nil
}

// withDefaults fills fields a stored row left empty.
func withDefaults(s entity.Settings) entity.Settings {
	defaults := entity.DefaultSettings()
	if s.Currency == "" {
		s.Currency = defaults.Currency
	}
	if s.Rounding == "" {
		s.Rounding = defaults.Rounding
	}
	if s.QuickAmounts == nil {
		s.QuickAmounts = defaults.QuickAmounts
	}
	if s.Lang == "" {
		s.Lang = defaults.Lang
	}
	return s
}
