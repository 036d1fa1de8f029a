package api_test

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/limbo/chai/internal/api"
	errorvalues "github.com/limbo/chai/internal/error_values"
	"github.com/limbo/chai/internal/service"
	"github.com/limbo/chai/internal/service/mocks"
	"github.com/limbo/chai/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type servicesMocks struct {
	tips         *mocks.MockTipsServiceI
	stats        *mocks.MockStatsServiceI
	achievements *mocks.MockAchievementsServiceI
	settings     *mocks.MockSettingsServiceI
	shifts       *mocks.MockShiftsServiceI
}

func newServer(t *testing.T, ratePerMinute int) (*api.Server, servicesMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := servicesMocks{
		tips:         mocks.NewMockTipsServiceI(ctrl),
		stats:        mocks.NewMockStatsServiceI(ctrl),
		achievements: mocks.NewMockAchievementsServiceI(ctrl),
		settings:     mocks.NewMockSettingsServiceI(ctrl),
		shifts:       mocks.NewMockShiftsServiceI(ctrl),
	}
	serv := api.New(&api.ServicesList{
		TipsService:         m.tips,
		StatsService:        m.stats,
		AchievementsService: m.achievements,
		SettingsService:     m.settings,
		ShiftsService:       m.shifts,
		RateLimitPerMinute:  ratePerMinute,
	})
	return serv, m
}

var testTip = entity.Tip{
	ID:        "tip-1",
	Amount:    250,
	Currency:  "RUB",
	Method:    entity.MethodCash,
	CreatedAt: time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC),
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	body, err := sonic.ConfigDefault.Marshal(v)
	require.NoError(t, err)
	return body
}

func TestAddTip(t *testing.T) {
	serv, m := newServer(t, 0)
	body := mustMarshal(t, api.AddTipRequest{Amount: 250, Method: "cash", Note: "table 4"})
	expectedReq := service.AddTipRequest{Amount: 250, Method: entity.MethodCash, Note: "table 4"}

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			Desc:         "created",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				m.tips.EXPECT().Add(gomock.Any(), expectedReq).Return(&testTip, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "validation",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				m.tips.EXPECT().Add(gomock.Any(), expectedReq).Return(nil, errors.Join(errorvalues.ErrValidation, errors.New("amount")))
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "duplicate",
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				m.tips.EXPECT().Add(gomock.Any(), expectedReq).Return(nil, errorvalues.ErrTipExists)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				m.tips.EXPECT().Add(gomock.Any(), expectedReq).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "corrupted body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/tips", tc.Body)
			serv.AddTip(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}

	t.Run("response body", func(t *testing.T) {
		m.tips.EXPECT().Add(gomock.Any(), expectedReq).Return(&testTip, nil)
		rr := httptest.NewRecorder()
		serv.AddTip(rr, httptest.NewRequest(http.MethodPost, "/api/v1/tips", bytes.NewReader(body)))
		var got entity.Tip
		require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "tip-1", got.ID)
		assert.Equal(t, 250.0, got.Amount)
	})
}

func TestUpdateTip(t *testing.T) {
	serv, m := newServer(t, 0)
	note := "updated"
	body := mustMarshal(t, api.UpdateTipRequest{Note: &note})

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "updated",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				m.tips.EXPECT().Update(gomock.Any(), "tip-1", service.UpdateTipRequest{Note: &note}).Return(&testTip, nil)
			},
		},
		{
			Desc:         "not found",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				m.tips.EXPECT().Update(gomock.Any(), "tip-1", gomock.Any()).Return(nil, errorvalues.ErrTipNotFound)
			},
		},
		{
			Desc:         "validation",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				m.tips.EXPECT().Update(gomock.Any(), "tip-1", gomock.Any()).Return(nil, errorvalues.ErrValidation)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPatch, "/api/v1/tips/tip-1", bytes.NewReader(body))
			r.SetPathValue("id", "tip-1")
			serv.UpdateTip(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestDeleteTip(t *testing.T) {
	serv, m := newServer(t, 0)
	testCases := []struct {
		Desc         string
		ExpectedCode int
		Err          error
	}{
		{Desc: "deleted", ExpectedCode: http.StatusNoContent},
		{Desc: "not found", ExpectedCode: http.StatusNotFound, Err: errorvalues.ErrTipNotFound},
		{Desc: "service error", ExpectedCode: http.StatusInternalServerError, Err: errors.New("service error")},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			m.tips.EXPECT().Remove(gomock.Any(), "tip-1").Return(tc.Err)
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodDelete, "/api/v1/tips/tip-1", nil)
			r.SetPathValue("id", "tip-1")
			serv.DeleteTip(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestGetSummary(t *testing.T) {
	serv, m := newServer(t, 0)
	t.Run("defaults to today", func(t *testing.T) {
		m.stats.EXPECT().Summary(gomock.Any(), service.PeriodToday).Return(&entity.TipsSummary{Period: service.PeriodToday, Count: 3}, nil)
		rr := httptest.NewRecorder()
		serv.GetSummary(rr, httptest.NewRequest(http.MethodGet, "/api/v1/tips/summary", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var got entity.TipsSummary
		require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, 3, got.Count)
	})
	t.Run("unknown period", func(t *testing.T) {
		m.stats.EXPECT().Summary(gomock.Any(), "year").Return(nil, errorvalues.ErrUnknownPeriod)
		rr := httptest.NewRecorder()
		serv.GetSummary(rr, httptest.NewRequest(http.MethodGet, "/api/v1/tips/summary?period=year", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("analytics error", func(t *testing.T) {
		m.stats.EXPECT().Analytics(gomock.Any()).Return(nil, errors.New("db down"))
		rr := httptest.NewRecorder()
		serv.GetAnalytics(rr, httptest.NewRequest(http.MethodGet, "/api/v1/tips/analytics", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestExportTips(t *testing.T) {
	serv, m := newServer(t, 0)
	m.tips.EXPECT().List(gomock.Any()).Return([]entity.Tip{testTip}, nil)
	rr := httptest.NewRecorder()
	serv.ExportTips(rr, httptest.NewRequest(http.MethodGet, "/api/v1/tips/export", nil))

	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Type"), "text/csv"))
	lines := strings.Split(strings.TrimSpace(rr.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,createdAt,amount,currency,method,shiftId,note,source", lines[0])
	assert.Equal(t, "tip-1,2024-06-10T09:00:00.000Z,250,RUB,cash,,,", lines[1])
}

func TestAchievementsEndpoints(t *testing.T) {
	serv, m := newServer(t, 0)
	unlocked := entity.Achievement{ID: "first_1000", Progress: 1000, MaxProgress: 1000}

	t.Run("unlocked", func(t *testing.T) {
		m.achievements.EXPECT().GetUnlocked().Return([]entity.Achievement{unlocked})
		rr := httptest.NewRecorder()
		serv.GetUnlockedAchievements(rr, httptest.NewRequest(http.MethodGet, "/api/v1/achievements/unlocked", nil))
		var got api.AchievementsResponse
		require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got.Achievements, 1)
		assert.Equal(t, "first_1000", got.Achievements[0].ID)
	})
	t.Run("reset", func(t *testing.T) {
		m.achievements.EXPECT().ResetAll(gomock.Any()).Return(nil)
		rr := httptest.NewRecorder()
		serv.ResetAchievements(rr, httptest.NewRequest(http.MethodPost, "/api/v1/achievements/reset", nil))
		assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
	})
	t.Run("streak not started", func(t *testing.T) {
		m.achievements.EXPECT().GetStreak(entity.StreakDailyTarget).Return(nil, errorvalues.ErrStreakNotFound)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/streaks/daily_target", nil)
		r.SetPathValue("category", "daily_target")
		serv.GetStreak(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("streak", func(t *testing.T) {
		m.achievements.EXPECT().GetStreak(entity.StreakDailyTarget).Return(&entity.Streak{
			ID:            "s-1",
			Category:      entity.StreakDailyTarget,
			CurrentStreak: 2,
			LongestStreak: 5,
		}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/streaks/daily_target", nil)
		r.SetPathValue("category", "daily_target")
		serv.GetStreak(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var got entity.Streak
		require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, 5, got.LongestStreak)
	})
}

func TestUpdateSettings(t *testing.T) {
	serv, m := newServer(t, 0)
	target := 4000.0
	lang := "en"
	saved := entity.DefaultSettings()
	saved.DailyTarget = target

	t.Run("target change re-evaluates", func(t *testing.T) {
		body := mustMarshal(t, api.UpdateSettingsRequest{DailyTarget: &target})
		m.settings.EXPECT().Save(gomock.Any(), service.SettingsPatch{DailyTarget: &target}).Return(&saved, nil)
		m.tips.EXPECT().Reevaluate(gomock.Any()).Return(nil)
		rr := httptest.NewRecorder()
		serv.UpdateSettings(rr, httptest.NewRequest(http.MethodPut, "/api/v1/settings", bytes.NewReader(body)))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("lang change only saves", func(t *testing.T) {
		body := mustMarshal(t, api.UpdateSettingsRequest{Lang: &lang})
		m.settings.EXPECT().Save(gomock.Any(), service.SettingsPatch{Lang: &lang}).Return(&saved, nil)
		rr := httptest.NewRecorder()
		serv.UpdateSettings(rr, httptest.NewRequest(http.MethodPut, "/api/v1/settings", bytes.NewReader(body)))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("validation", func(t *testing.T) {
		body := mustMarshal(t, api.UpdateSettingsRequest{Lang: &lang})
		m.settings.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrValidation)
		rr := httptest.NewRecorder()
		serv.UpdateSettings(rr, httptest.NewRequest(http.MethodPut, "/api/v1/settings", bytes.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestShiftEndpoints(t *testing.T) {
	serv, m := newServer(t, 0)
	t.Run("no current shift", func(t *testing.T) {
		m.shifts.EXPECT().Current(gomock.Any()).Return(nil, errorvalues.ErrNoOpenShift)
		rr := httptest.NewRecorder()
		serv.CurrentShift(rr, httptest.NewRequest(http.MethodGet, "/api/v1/shifts/current", nil))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("stop without shift", func(t *testing.T) {
		m.shifts.EXPECT().Stop(gomock.Any()).Return(nil, errorvalues.ErrNoOpenShift)
		rr := httptest.NewRecorder()
		serv.StopShift(rr, httptest.NewRequest(http.MethodPost, "/api/v1/shifts/stop", nil))
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("start", func(t *testing.T) {
		m.shifts.EXPECT().Start(gomock.Any()).Return(&entity.Shift{ID: "shift-1", StartedAt: testTip.CreatedAt}, nil)
		rr := httptest.NewRecorder()
		serv.StartShift(rr, httptest.NewRequest(http.MethodPost, "/api/v1/shifts/start", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
}

func TestRouter(t *testing.T) {
	t.Run("routes path values and sets request id", func(t *testing.T) {
		serv, m := newServer(t, 0)
		m.tips.EXPECT().Remove(gomock.Any(), "abc").Return(nil)
		rr := httptest.NewRecorder()
		serv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/v1/tips/abc", nil))
		assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})
	t.Run("unknown route", func(t *testing.T) {
		serv, _ := newServer(t, 0)
		rr := httptest.NewRecorder()
		serv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/nothing", nil))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("rate limited per client", func(t *testing.T) {
		serv, m := newServer(t, 2)
		m.achievements.EXPECT().Achievements().Return([]entity.Achievement{}).Times(2)

		do := func(addr string) int {
			r := httptest.NewRequest(http.MethodGet, "/api/v1/achievements", nil)
			r.RemoteAddr = addr
			rr := httptest.NewRecorder()
			serv.Handler().ServeHTTP(rr, r)
			return rr.Result().StatusCode
		}
		assert.Equal(t, http.StatusOK, do("10.0.0.1:5000"))
		assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:5001"))
		assert.Equal(t, http.StatusOK, do("10.0.0.2:5000"))
	})
}
