package scheduler

import (
	"context"
	"time"

	"github.com/limbo/chai/internal/service"
	"github.com/limbo/chai/pkg/logger"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Local midnight in the scheduler's location.
const midnightSpec = "0 0 * * *"

const jobTimeout = 30 * time.Second

// ShiftScheduler rolls the open shift over to a new one at every local midnight.
type ShiftScheduler struct {
	cron   *cron.Cron
	shifts service.ShiftsServiceI
}

func NewShiftScheduler(shifts service.ShiftsServiceI, loc *time.Location) *ShiftScheduler {
	if loc == nil {
		loc = time.Local
	}
	return &ShiftScheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		shifts: shifts,
	}
}

func (s *ShiftScheduler) Start() error {
	if _, err := s.cron.AddFunc(midnightSpec, s.rollShift); err != nil {
		return err
	}
	s.cron.Start()
	logger.L().Info("shift scheduler started", zap.String("spec", midnightSpec))
	return nil
}

// Stop waits for a running job to finish.
func (s *ShiftScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.L().Info("shift scheduler stopped")
}

func (s *ShiftScheduler) rollShift() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	shift, err := s.shifts.EnsureTodayShift(ctx)
	if err != nil {
		logger.L().Error("rolling shift over error", zap.Error(err))
		return
	}
	logger.L().Info("today's shift ensured", zap.String("shift_id", shift.ID))
}
