package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/chai/internal/error_values"
	"github.com/limbo/chai/internal/service"
	"github.com/limbo/chai/pkg/entity"
	"github.com/limbo/chai/pkg/httputil"
	"go.uber.org/zap"
)

type AddTipRequest struct {
	Amount       float64 `json:"amount"`
	Method       string  `json:"method"`
	Note         string  `json:"note"`
	TablesServed int     `json:"tables_served"`
}

type UpdateTipRequest struct {
	Amount       *float64 `json:"amount"`
	Method       *string  `json:"method"`
	Note         *string  `json:"note"`
	TablesServed *int     `json:"tables_served"`
}

type UpdateSettingsRequest struct {
	Currency     *string   `json:"currency"`
	Rounding     *string   `json:"rounding"`
	QuickAmounts []float64 `json:"quick_amounts"`
	Lang         *string   `json:"lang"`
	DailyTarget  *float64  `json:"daily_target"`
}

type TipsListResponse struct {
	Count int          `json:"count"`
	Tips  []entity.Tip `json:"tips"`
}

type AchievementsResponse struct {
	Achievements []entity.Achievement `json:"achievements"`
}

type StreaksResponse struct {
	Streaks []entity.Streak `json:"streaks"`
}

type ShiftsResponse struct {
	Shifts []entity.Shift `json:"shifts"`
}

func (s *Server) ListTips(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	tips, err := s.tipsService.List(ctx)
	if err != nil {
		logger.Error("listing tips error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while listing tips", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TipsListResponse{Count: len(tips), Tips: tips})
}

func (s *Server) AddTip(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req AddTipRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add tip error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	tip, err := s.tipsService.Add(ctx, service.AddTipRequest{
		Amount:       req.Amount,
		Method:       entity.TipMethod(req.Method),
		Note:         req.Note,
		TablesServed: req.TablesServed,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("add tip error: invalid tip", zap.Error(err))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid tip", err)
		case errors.Is(err, errorvalues.ErrTipExists):
			logger.Error("add tip error: duplicate id")
			httputil.WriteErrorResponse(w, http.StatusConflict, "tip already exists", nil)
		default:
			logger.Error("add tip error: service error", zap.Error(err))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while adding tip", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, tip)
	logger.Info("tip added", zap.String("tip_id", tip.ID), zap.Float64("amount", tip.Amount))
}

func (s *Server) UpdateTip(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id := r.PathValue("id")
	var req UpdateTipRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update tip error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	patch := service.UpdateTipRequest{
		Amount:       req.Amount,
		Note:         req.Note,
		TablesServed: req.TablesServed,
	}
	if req.Method != nil {
		method := entity.TipMethod(*req.Method)
		patch.Method = &method
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	tip, err := s.tipsService.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("update tip error: invalid patch", zap.Error(err))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid tip", err)
		case errors.Is(err, errorvalues.ErrTipNotFound):
			logger.Error("update tip error: tip not found", zap.String("tip_id", id))
			httputil.WriteErrorResponse(w, http.StatusNotFound, "tip not found", nil)
		default:
			logger.Error("update tip error: service error", zap.Error(err))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating tip", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tip)
	logger.Info("tip updated", zap.String("tip_id", id))
}

func (s *Server) DeleteTip(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id := r.PathValue("id")
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err := s.tipsService.Remove(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTipNotFound) {
			logger.Error("delete tip error: tip not found", zap.String("tip_id", id))
			httputil.WriteErrorResponse(w, http.StatusNotFound, "tip not found", nil)
			return
		}
		logger.Error("delete tip error: service error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting tip", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("tip deleted", zap.String("tip_id", id))
}

func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	period := r.URL.Query().Get("period")
	if period == "" {
		period = service.PeriodToday
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	summary, err := s.statsService.Summary(ctx, period)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUnknownPeriod) {
			logger.Error("summary error: unknown period", zap.String("period", period))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "period must be one of today, week, month, all", nil)
			return
		}
		logger.Error("summary error: service error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building summary", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
}

func (s *Server) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	analytics, err := s.statsService.Analytics(ctx)
	if err != nil {
		logger.Error("analytics error: service error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building analytics", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, analytics)
}

func (s *Server) ExportTips(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	tips, err := s.tipsService.List(ctx)
	if err != nil {
		logger.Error("export error: listing tips", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while exporting tips", nil)
		return
	}
	err = httputil.WriteCSVAttachment(w, "tips.csv", func(out io.Writer) error {
		return service.WriteTipsCSV(out, tips)
	})
	if err != nil {
		logger.Error("export error: writing csv", zap.Error(err))
		return
	}
	logger.Info("tips exported", zap.Int("count", len(tips)))
}

func (s *Server) GetAchievements(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, AchievementsResponse{
		Achievements: s.achievementsService.Achievements(),
	})
}

func (s *Server) GetUnlockedAchievements(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, AchievementsResponse{
		Achievements: s.achievementsService.GetUnlocked(),
	})
}

func (s *Server) ResetAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.achievementsService.ResetAll(ctx); err != nil {
		logger.Error("reset achievements error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while resetting achievements", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Warn("achievements and streaks reset")
}

func (s *Server) GetStreaks(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, StreaksResponse{
		Streaks: s.achievementsService.Streaks(),
	})
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	category := entity.StreakCategory(r.PathValue("category"))
	streak, err := s.achievementsService.GetStreak(category)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStreakNotFound) {
			logger.Info("streak not started yet", zap.String("category", string(category)))
			httputil.WriteErrorResponse(w, http.StatusNotFound, "streak not found", nil)
			return
		}
		logger.Error("get streak error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting streak", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, streak)
}

func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	settings, err := s.settingsService.Get(ctx)
	if err != nil {
		logger.Error("get settings error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while reading settings", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
}

func (s *Server) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req UpdateSettingsRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update settings error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	patch := service.SettingsPatch{
		Currency:     req.Currency,
		QuickAmounts: req.QuickAmounts,
		Lang:         req.Lang,
		DailyTarget:  req.DailyTarget,
	}
	if req.Rounding != nil {
		rounding := entity.Rounding(*req.Rounding)
		patch.Rounding = &rounding
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	settings, err := s.settingsService.Save(ctx, patch)
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Error("update settings error: invalid settings", zap.Error(err))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid settings", err)
			return
		}
		logger.Error("update settings error: service error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving settings", nil)
		return
	}
	// the daily target feeds the engine, so progress is recomputed right away
	if req.DailyTarget != nil {
		if err := s.tipsService.Reevaluate(ctx); err != nil {
			logger.Error("re-evaluating achievements after settings change failed", zap.Error(err))
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
	logger.Info("settings updated")
}

func (s *Server) ListShifts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	shifts, err := s.shiftsService.List(ctx)
	if err != nil {
		logger.Error("listing shifts error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while listing shifts", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ShiftsResponse{Shifts: shifts})
}

func (s *Server) CurrentShift(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	shift, err := s.shiftsService.Current(ctx)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoOpenShift) {
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no open shift", nil)
			return
		}
		logger.Error("current shift error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting shift", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, shift)
}

func (s *Server) StartShift(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	shift, err := s.shiftsService.Start(ctx)
	if err != nil {
		logger.Error("start shift error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while starting shift", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, shift)
	logger.Info("shift started", zap.String("shift_id", shift.ID))
}

func (s *Server) StopShift(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	shift, err := s.shiftsService.Stop(ctx)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoOpenShift) {
			logger.Error("stop shift error: nothing open")
			httputil.WriteErrorResponse(w, http.StatusConflict, "no open shift", nil)
			return
		}
		logger.Error("stop shift error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while stopping shift", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, shift)
	logger.Info("shift stopped", zap.String("shift_id", shift.ID))
}
