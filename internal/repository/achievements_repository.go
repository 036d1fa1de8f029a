package repository

import (
	"context"
	"errors"

	"github.com/limbo/chai/pkg/entity"
)

const achievementColumns = `id, category, title, description, icon, unlocked_at, progress, max_progress, rarity`

type AchievementsRepository struct {
	conn PgConnection
}

func NewAchievementsRepo(cfg DBConfig) *AchievementsRepository {
	return NewAchievementsRepoWithConn(connect(cfg))
}

func NewAchievementsRepoWithConn(conn PgConnection) *AchievementsRepository {
	mustPing(conn, "achievementsRepo")
	return &AchievementsRepository{
		conn: conn,
	}
}

func (ar *AchievementsRepository) GetAll(ctx context.Context) ([]entity.Achievement, error) {
	rows, err := ar.conn.Query(ctx, `SELECT `+achievementColumns+` FROM achievements ORDER BY unlocked_at DESC, id ASC;`)
	if err != nil {
		return nil, errors.New("listing achievements error: " + err.Error())
	}
	defer rows.Close()
	achievements := make([]entity.Achievement, 0)
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, errors.New("achievement row parsing error: " + err.Error())
		}
		achievements = append(achievements, *a)
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
	_, err := ar.conn.Exec(ctx,
		`INSERT INTO achievements (`+achievementColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET category = EXCLUDED.category, title = EXCLUDED.title, description = EXCLUDED.description, icon = EXCLUDED.icon,
		unlocked_at = EXCLUDED.unlocked_at, progress = EXCLUDED.progress, max_progress = EXCLUDED.max_progress, rarity = EXCLUDED.rarity;`,
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
	_, err := ar.conn.Exec(ctx, `DELETE FROM achievements;`)
	if err != nil {
		return errors.New("clearing achievements error: " + err.Error())
	}
	return nil
}

func scanAchievement(row scanner) (*entity.Achievement, error) {
	var (
		a                entity.Achievement
		category, rarity string
		unlockedAt       int64
	)
	err := row.Scan(&a.ID, &category, &a.Title, &a.Description, &a.Icon, &unlockedAt, &a.Progress, &a.MaxProgress, &rarity)
	if err != nil {
		return nil, err
	}
	a.Category = entity.AchievementCategory(category)
	a.Rarity = entity.Rarity(rarity)
	a.UnlockedAt = entity.FromMillis(unlockedAt)
	return &a, nil
}
