package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/chai/internal/error_values"
	"github.com/limbo/chai/internal/repository"
	"github.com/limbo/chai/pkg/clock"
	"github.com/limbo/chai/pkg/entity"
	"github.com/limbo/chai/pkg/logger"
	"go.uber.org/zap"
)

type TipsService struct {
	tipsRepo   repository.TipsRepositoryI
	shiftsRepo repository.ShiftsRepositoryI
	settings   SettingsProvider
	evaluator  Evaluator
	clock      clock.Clock
}

func NewTipsService(tipsRepo repository.TipsRepositoryI, shiftsRepo repository.ShiftsRepositoryI, settings SettingsProvider, evaluator Evaluator, c clock.Clock) *TipsService {
	if tipsRepo == nil || shiftsRepo == nil {
		log.Fatal("on tips service provided nil repos")
	}
	if settings == nil || evaluator == nil {
		log.Fatal("on tips service provided nil settings or evaluator")
	}
	if c == nil {
		c = clock.Real()
	}
	return &TipsService{
		tipsRepo:   tipsRepo,
		shiftsRepo: shiftsRepo,
		settings:   settings,
		evaluator:  evaluator,
		clock:      c,
	}
}

func (ts *TipsService) Add(ctx context.Context, req AddTipRequest) (*entity.Tip, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	settings, err := ts.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	amount := ApplyRounding(req.Amount, settings.Rounding)
	if amount <= 0 {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("amount rounds down to zero"))
	}
	tip := entity.Tip{
		ID:           uuid.NewString(),
		Amount:       amount,
		Currency:     settings.Currency,
		Method:       req.Method,
		Note:         req.Note,
		TablesServed: req.TablesServed,
		CreatedAt:    ts.clock.Now(),
	}
	shift, err := ts.shiftsRepo.GetOpen(ctx)
	if err != nil {
		return nil, errors.New("shifts repository error: " + err.Error())
	}
	if shift != nil {
		tip.ShiftID = shift.ID
	}
	if err := ts.tipsRepo.Create(ctx, &tip); err != nil {
		if errors.Is(err, errorvalues.ErrTipExists) {
			return nil, err
		}
		return nil, errors.New("tips repository error: " + err.Error())
	}
	ts.reevaluateAfterChange(ctx)
	return &tip, nil
}

func (ts *TipsService) Update(ctx context.Context, id string, req UpdateTipRequest) (*entity.Tip, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	tip, err := ts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Amount != nil {
		tip.Amount = *req.Amount
	}
	if req.Method != nil {
		tip.Method = *req.Method
	}
	if req.Note != nil {
		tip.Note = *req.Note
	}
	if req.TablesServed != nil {
		tip.TablesServed = *req.TablesServed
	}
	if err := ts.tipsRepo.Update(ctx, tip); err != nil {
		if errors.Is(err, errorvalues.ErrTipNotFound) {
			return nil, err
		}
		return nil, errors.New("tips repository error: " + err.Error())
	}
	ts.reevaluateAfterChange(ctx)
	return tip, nil
}

func (ts *TipsService) Remove(ctx context.Context, id string) error {
	if err := ts.tipsRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrTipNotFound) {
			return err
		}
		return errors.New("tips repository error: " + err.Error())
	}
	ts.reevaluateAfterChange(ctx)
	return nil
}

func (ts *TipsService) List(ctx context.Context) ([]entity.Tip, error) {
	tips, err := ts.tipsRepo.List(ctx)
	if err != nil {
		return nil, errors.New("tips repository error: " + err.Error())
	}
	return tips, nil
}

func (ts *TipsService) Get(ctx context.Context, id string) (*entity.Tip, error) {
	tip, err := ts.tipsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTipNotFound) {
			return nil, err
		}
		return nil, errors.New("tips repository error: " + err.Error())
	}
	return tip, nil
}

func (ts *TipsService) Reevaluate(ctx context.Context) error {
	settings, err := ts.settings.Get(ctx)
	if err != nil {
		return err
	}
	tips, err := ts.List(ctx)
	if err != nil {
		return err
	}
	if err := ts.evaluator.Evaluate(ctx, tips, settings.DailyTarget); err != nil {
		return errors.New("evaluating achievements error: " + err.Error())
	}
	return nil
}

// reevaluateAfterChange runs the engine once a tip change is already stored.
// A failure is logged and not returned: the change itself succeeded and the
// next evaluation catches up.
func (ts *TipsService) reevaluateAfterChange(ctx context.Context) {
	if err := ts.Reevaluate(ctx); err != nil {
		logger.L().Error("re-evaluating achievements after tip change failed", zap.Error(err))
	}
}
