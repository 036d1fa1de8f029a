package entity

import (
	"time"
)

type TipMethod string

const (
	MethodCash  TipMethod = "cash"
	MethodCard  TipMethod = "card"
	MethodSBP   TipMethod = "sbp"
	MethodQR    TipMethod = "qr"
	MethodOther TipMethod = "other"
)

var TipMethods = []TipMethod{MethodCash, MethodCard, MethodSBP, MethodQR, MethodOther}

func (m TipMethod) Valid() bool {
	for _, known := range TipMethods {
		if m == known {
			return true
		}
	}
	return false
}

type Tip struct {
	ID           string    `json:"id"`
	Amount       float64   `json:"amount"`
	Currency     string    `json:"currency"`
	Method       TipMethod `json:"method"`
	Note         string    `json:"note,omitempty"`
	TablesServed int       `json:"tables_served,omitempty"`
	ShiftID      string    `json:"shift_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Shift struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	// Zero while the shift is open
	EndedAt time.Time `json:"ended_at"`
	Target  float64   `json:"target,omitempty"`
	Venue   string    `json:"venue,omitempty"`
}

func (s *Shift) Open() bool {
	return s.EndedAt.IsZero()
}

type Rounding string

const (
	RoundingNone Rounding = "none"
	RoundingOne  Rounding = "1"
	RoundingFive Rounding = "5"
)

type Settings struct {
	Currency     string    `json:"currency"`
	Rounding     Rounding  `json:"rounding"`
	QuickAmounts []float64 `json:"quick_amounts"`
	Lang         string    `json:"lang"`
	DailyTarget  float64   `json:"daily_target"`
}

func DefaultSettings() Settings {
	return Settings{
		Currency:     "RUB",
		Rounding:     RoundingNone,
		QuickAmounts: []float64{50, 100, 200, 500},
		Lang:         "ru",
		DailyTarget:  3000,
	}
}

type AchievementCategory string

const (
	CategoryDailyTarget AchievementCategory = "daily_target"
	CategoryTotalAmount AchievementCategory = "total_amount"
	CategoryBigTip      AchievementCategory = "big_tip"
	CategoryConsistency AchievementCategory = "consistency"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Achievement is the persisted progress row of one catalog definition.
// UnlockedAt stays zero until Progress reaches MaxProgress.
type Achievement struct {
	ID          string              `json:"id"`
	Category    AchievementCategory `json:"category"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	UnlockedAt  time.Time           `json:"unlocked_at"`
	Progress    float64             `json:"progress"`
	MaxProgress float64             `json:"max_progress"`
	Rarity      Rarity              `json:"rarity"`
}

func (a Achievement) Unlocked() bool {
	return a.Progress >= a.MaxProgress
}

type StreakCategory string

const (
	StreakDailyTarget StreakCategory = "daily_target"
)

type Streak struct {
	ID            string         `json:"id"`
	Category      StreakCategory `json:"category"`
	CurrentStreak int            `json:"current_streak"`
	LongestStreak int            `json:"longest_streak"`
	// Calendar date "2006-01-02" in the tracker's location, empty until the first qualifying day
	LastAchievedDate string    `json:"last_achieved_date,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type TipsSummary struct {
	Period         string                `json:"period"`
	From           time.Time             `json:"from"`
	To             time.Time             `json:"to"`
	Count          int                   `json:"count"`
	Total          float64               `json:"total"`
	Average        float64               `json:"average"`
	Max            float64               `json:"max"`
	TablesServed   int                   `json:"tables_served"`
	ByMethod       map[TipMethod]float64 `json:"by_method"`
	DailyTarget    float64               `json:"daily_target"`
	TodayTotal     float64               `json:"today_total"`
	TargetProgress float64               `json:"target_progress"`
}

type WeekdayStats struct {
	Weekday time.Weekday `json:"weekday"`
	Count   int          `json:"count"`
	Total   float64      `json:"total"`
	Average float64      `json:"average"`
}

type TipsAnalytics struct {
	From         time.Time      `json:"from"`
	To           time.Time      `json:"to"`
	Weekdays     []WeekdayStats `json:"weekdays"`
	Hours        [24]float64    `json:"hours"`
	WeeklyTotals []float64      `json:"weekly_totals"`
	Forecast     float64        `json:"forecast"`
}

// ToMillis encodes t as Unix milliseconds, the zero time as 0.
func ToMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// FromMillis is the inverse of ToMillis.
func FromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
