package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/chai/internal/error_values"
	"github.com/limbo/chai/internal/repository"
	"github.com/limbo/chai/pkg/clock"
	"github.com/limbo/chai/pkg/entity"
	"github.com/limbo/chai/pkg/logger"
	"go.uber.org/zap"
)

type ShiftsService struct {
	repo  repository.ShiftsRepositoryI
	clock clock.Clock
	loc   *time.Location
}

func NewShiftsService(shiftsRepo repository.ShiftsRepositoryI, c clock.Clock, loc *time.Location) *ShiftsService {
	if shiftsRepo == nil {
		log.Fatal("provided nil shiftsRepo")
	}
	if c == nil {
		c = clock.Real()
	}
	if loc == nil {
		loc = time.Local
	}
	return &ShiftsService{
		repo:  shiftsRepo,
		clock: c,
		loc:   loc,
	}
}

func (ss *ShiftsService) Start(ctx context.Context) (*entity.Shift, error) {
	open, err := ss.repo.GetOpen(ctx)
	if err != nil {
		return nil, errors.New("shifts repository error: " + err.Error())
	}
	if open != nil {
		return open, nil
	}
	return ss.open(ctx)
}

func (ss *ShiftsService) Stop(ctx context.Context) (*entity.Shift, error) {
	open, err := ss.repo.GetOpen(ctx)
	if err != nil {
		return nil, errors.New("shifts repository error: " + err.Error())
	}
	if open == nil {
		return nil, errorvalues.ErrNoOpenShift
	}
	if err := ss.close(ctx, open); err != nil {
		return nil, err
	}
	return open, nil
}

func (ss *ShiftsService) Current(ctx context.Context) (*entity.Shift, error) {
	open, err := ss.repo.GetOpen(ctx)
	if err != nil {
		return nil, errors.New("shifts repository error: " + err.Error())
	}
	if open == nil {
		return nil, errorvalues.ErrNoOpenShift
	}
	return open, nil
}

func (ss *ShiftsService) List(ctx context.Context) ([]entity.Shift, error) {
	shifts, err := ss.repo.List(ctx)
	if err != nil {
		return nil, errors.New("shifts repository error: " + err.Error())
	}
	return shifts, nil
}

func (ss *ShiftsService) EnsureTodayShift(ctx context.Context) (*entity.Shift, error) {
	open, err := ss.repo.GetOpen(ctx)
	if err != nil {
		return nil, errors.New("shifts repository error: " + err.Error())
	}
	if open != nil {
		if !open.StartedAt.Before(startOfDay(ss.clock.Now(), ss.loc)) {
			return open, nil
		}
		if err := ss.close(ctx, open); err != nil {
			return nil, err
		}
		logger.L().Info("closed shift left open from a previous day", zap.String("shift_id", open.ID))
	}
	return ss.open(ctx)
}

func (ss *ShiftsService) ClearAll(ctx context.Context) error {
	if err := ss.repo.Clear(ctx); err != nil {
		return errors.New("shifts repository error: " + err.Error())
	}
	return nil
}

func (ss *ShiftsService) open(ctx context.Context) (*entity.Shift, error) {
	shift := entity.Shift{
		ID:        uuid.NewString(),
		StartedAt: ss.clock.Now(),
	}
	if err := ss.repo.Put(ctx, &shift); err != nil {
		return nil, errors.New("shifts repository error: " + err.Error())
	}
	return &shift, nil
}

func (ss *ShiftsService) close(ctx context.Context, shift *entity.Shift) error {
	shift.EndedAt = ss.clock.Now()
	if err := ss.repo.Put(ctx, shift); err != nil {
		return errors.New("shifts repository error: " + err.Error())
	}
	return nil
}
