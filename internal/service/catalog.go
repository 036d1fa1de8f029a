package service

import "github.com/limbo/chai/pkg/entity"

// AchievementDefinition is the compiled-in rule behind one achievement row.
// For big_tip definitions MaxProgress doubles as the single-tip threshold.
type AchievementDefinition struct {
	ID          string
	Category    entity.AchievementCategory
	Title       string
	Description string
	Icon        string
	MaxProgress float64
	Rarity      entity.Rarity
}

var catalog = []AchievementDefinition{
	{ID: "first_target", Category: entity.CategoryDailyTarget, Title: "First target", Description: "Reach your daily target for the first time", Icon: "🎯", MaxProgress: 1, Rarity: entity.RarityCommon},
	{ID: "target_3_days", Category: entity.CategoryDailyTarget, Title: "Three in a row", Description: "Reach your daily target 3 times", Icon: "🔥", MaxProgress: 3, Rarity: entity.RarityRare},
	{ID: "target_7_days", Category: entity.CategoryDailyTarget, Title: "Week of success", Description: "Reach your daily target 7 times", Icon: "💪", MaxProgress: 7, Rarity: entity.RarityEpic},
	{ID: "target_30_days", Category: entity.CategoryDailyTarget, Title: "Month of mastery", Description: "Reach your daily target 30 times", Icon: "👑", MaxProgress: 30, Rarity: entity.RarityLegendary},

	{ID: "first_1000", Category: entity.CategoryTotalAmount, Title: "First thousand", Description: "Earn 1000 in tips", Icon: "💰", MaxProgress: 1000, Rarity: entity.RarityCommon},
	{ID: "first_10000", Category: entity.CategoryTotalAmount, Title: "Ten thousand", Description: "Earn 10000 in tips", Icon: "💎", MaxProgress: 10000, Rarity: entity.RarityRare},
	{ID: "first_50000", Category: entity.CategoryTotalAmount, Title: "Fifty thousand", Description: "Earn 50000 in tips", Icon: "🏆", MaxProgress: 50000, Rarity: entity.RarityEpic},
	{ID: "first_100000", Category: entity.CategoryTotalAmount, Title: "Hundred thousand", Description: "Earn 100000 in tips", Icon: "💸", MaxProgress: 100000, Rarity: entity.RarityLegendary},

	{ID: "big_tip_500", Category: entity.CategoryBigTip, Title: "Generous guest", Description: "Receive a single tip of 500 or more", Icon: "🎁", MaxProgress: 500, Rarity: entity.RarityRare},
	{ID: "big_tip_1000", Category: entity.CategoryBigTip, Title: "Very generous", Description: "Receive a single tip of 1000 or more", Icon: "💝", MaxProgress: 1000, Rarity: entity.RarityEpic},
	{ID: "big_tip_2000", Category: entity.CategoryBigTip, Title: "Incredibly generous", Description: "Receive a single tip of 2000 or more", Icon: "🎊", MaxProgress: 2000, Rarity: entity.RarityLegendary},

	{ID: "consistency_7", Category: entity.CategoryConsistency, Title: "Steady hand", Description: "Log tips 7 days in a row", Icon: "📈", MaxProgress: 7, Rarity: entity.RarityRare},
	{ID: "consistency_30", Category: entity.CategoryConsistency, Title: "Habit", Description: "Log tips 30 days in a row", Icon: "📊", MaxProgress: 30, Rarity: entity.RarityEpic},
}

// Catalog returns a copy of every definition in display order.
func Catalog() []AchievementDefinition {
	out := make([]AchievementDefinition, len(catalog))
	copy(out, catalog)
	return out
}

func DefinitionByID(id string) (AchievementDefinition, bool) {
	for _, def := range catalog {
		if def.ID == id {
			return def, true
		}
	}
	return AchievementDefinition{}, false
}

// newRecord is the lazily created row of a definition: no progress, locked.
func (def AchievementDefinition) newRecord() entity.Achievement {
	return entity.Achievement{
		ID:          def.ID,
		Category:    def.Category,
		Title:       def.Title,
		Description: def.Description,
		Icon:        def.Icon,
		MaxProgress: def.MaxProgress,
		Rarity:      def.Rarity,
	}
}

// tipFacts is everything the rules need from one evaluation's tip list.
type tipFacts struct {
	targetMet       bool
	lifetimeTotal   float64
	biggestTip      float64
	consecutiveDays int
}

// candidate returns the progress the definition would move to, and false when
// the rule has nothing to say on this call.
func (def AchievementDefinition) candidate(stored float64, facts tipFacts) (float64, bool) {
	switch def.Category {
	case entity.CategoryDailyTarget:
		if !facts.targetMet {
			return 0, false
		}
		return min(def.MaxProgress, stored+1), true
	case entity.CategoryTotalAmount:
		return min(def.MaxProgress, facts.lifetimeTotal), true
	case entity.CategoryBigTip:
		if facts.biggestTip >= def.MaxProgress {
			return def.MaxProgress, true
		}
		return 0, false
	case entity.CategoryConsistency:
		return min(def.MaxProgress, float64(facts.consecutiveDays)), true
	default:
		return 0, false
	}
}
