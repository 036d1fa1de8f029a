package sqlite

import (
	"context"
	"database/sql"
	"errors"

	errorvalues "github.com/limbo/chai/internal/error_values"
	"github.com/limbo/chai/pkg/entity"
)

const achievementColumns = `id, category, title, description, icon, unlocked_at, progress, max_progress, rarity`

type AchievementsRepository struct {
	db *sql.DB
}

func NewAchievementsRepo(s *Store) *AchievementsRepository {
	return &AchievementsRepository{db: s.db}
}

func (ar *AchievementsRepository) GetAll(ctx context.Context) ([]entity.Achievement, error) {
	rows, err := ar.db.QueryContext(ctx, `SELECT `+achievementColumns+` FROM achievements ORDER BY unlocked_at DESC, id ASC`)
	if err != nil {
		return nil, errors.New("listing achievements error: " + err.Error())
	}
	defer rows.Close()
	achievements := make([]entity.Achievement, 0)
	for rows.Next() {
		var (
			a                entity.Achievement
			category, rarity string
			unlockedAt       int64
		)
		err := rows.Scan(&a.ID, &category, &a.Title, &a.Description, &a.Icon, &unlockedAt, &a.Progress, &a.MaxProgress, &rarity)
		if err != nil {
			return nil, errors.New("achievement row parsing error: " + err.Error())
		}
		a.Category = entity.AchievementCategory(category)
		a.Rarity = entity.Rarity(rarity)
		a.UnlockedAt = entity.FromMillis(unlockedAt)
		achievements = append(achievements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected achievement rows error: " + err.Error())
	}
	return achievements, nil
}

func (ar *AchievementsRepository) Put(ctx context.Context, a *entity.Achievement) error {
	if a == nil {
		return errors.New("achievement is nil")
	}
	_, err := ar.db.ExecContext(ctx,
		`INSERT INTO achievements (`+achievementColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET category = excluded.category, title = excluded.title, description = excluded.description, icon = excluded.icon,
		unlocked_at = excluded.unlocked_at, progress = excluded.progress, max_progress = excluded.max_progress, rarity = excluded.rarity`,
		a.ID,
		string(a.Category),
		a.Title,
		a.Description,
		a.Icon,
		entity.ToMillis(a.UnlockedAt),
		a.Progress,
		a.MaxProgress,
		string(a.Rarity),
	)
	if err != nil {
		return errors.New("saving achievement error: " + err.Error())
	}
	return nil
}

func (ar *AchievementsRepository) Clear(ctx context.Context) error {
	if _, err := ar.db.ExecContext(ctx, `DELETE FROM achievements`); err != nil {
		return errors.New("clearing achievements error: " + err.Error())
	}
	return nil
}

type StreaksRepository struct {
	db *sql.DB
}

func NewStreaksRepo(s *Store) *StreaksRepository {
	return &StreaksRepository{db: s.db}
}

const streakColumns = `id, category, current_streak, longest_streak, last_achieved_date, created_at, updated_at`

func (sr *StreaksRepository) GetAll(ctx context.Context) ([]entity.Streak, error) {
	rows, err := sr.db.QueryContext(ctx, `SELECT `+streakColumns+` FROM streaks ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, errors.New("listing streaks error: " + err.Error())
	}
	defer rows.Close()
	streaks := make([]entity.Streak, 0)
	for rows.Next() {
		s, err := scanStreak(rows)
		if err != nil {
			return nil, errors.New("streak row parsing error: " + err.Error())
		}
		streaks = append(streaks, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected streak rows error: " + err.Error())
	}
	return streaks, nil
}

func (sr *StreaksRepository) GetByCategory(ctx context.Context, category entity.StreakCategory) (*entity.Streak, error) {
	row := sr.db.QueryRowContext(ctx, `SELECT `+streakColumns+` FROM streaks WHERE category = ?`, string(category))
	s, err := scanStreak(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrStreakNotFound
		}
		return nil, errors.New("getting streak by category error: " + err.Error())
	}
	return s, nil
}

func (sr *StreaksRepository) Put(ctx context.Context, s *entity.Streak) error {
	if s == nil {
		return errors.New("streak is nil")
	}
	_, err := sr.db.ExecContext(ctx,
		`INSERT INTO streaks (`+streakColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET current_streak = excluded.current_streak, longest_streak = excluded.longest_streak,
		last_achieved_date = excluded.last_achieved_date, updated_at = excluded.updated_at`,
		s.ID,
		string(s.Category),
		s.CurrentStreak,
		s.LongestStreak,
		s.LastAchievedDate,
		entity.ToMillis(s.CreatedAt),
		entity.ToMillis(s.UpdatedAt),
	)
	if err != nil {
		return errors.New("saving streak error: " + err.Error())
	}
	return nil
}

func (sr *StreaksRepository) Clear(ctx context.Context) error {
	if _, err := sr.db.ExecContext(ctx, `DELETE FROM streaks`); err != nil {
		return errors.New("clearing streaks error: " + err.Error())
	}
	return nil
}

func scanStreak(row scanner) (*entity.Streak, error) {
	var (
		s                entity.Streak
		category         string
		created, updated int64
	)
	err := row.Scan(&s.ID, &category, &s.CurrentStreak, &s.LongestStreak, &s.LastAchievedDate, &created, &updated)
	if err != nil {
		return nil, err
	}
	s.Category = entity.StreakCategory(category)
	s.CreatedAt = entity.FromMillis(created)
	s.UpdatedAt = entity.FromMillis(updated)
	return &s, nil
}
