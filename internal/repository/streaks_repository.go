package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/chai/internal/error_values"
	"github.com/limbo/chai/pkg/entity"
)

const streakColumns = `id, category, current_streak, longest_streak, last_achieved_date, created_at, updated_at`

type StreaksRepository struct {
	conn PgConnection
}

func NewStreaksRepo(cfg DBConfig) *StreaksRepository {
	return NewStreaksRepoWithConn(connect(cfg))
}

func NewStreaksRepoWithConn(conn PgConnection) *StreaksRepository {
	mustPing(conn, "streaksRepo")
	return &StreaksRepository{
		conn: conn,
	}
}

func (sr *StreaksRepository) GetAll(ctx context.Context) ([]entity.Streak, error) {
	rows, err := sr.conn.Query(ctx, `SELECT `+streakColumns+` FROM streaks ORDER BY created_at ASC, id ASC;`)
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
	row := sr.conn.QueryRow(ctx, `SELECT `+streakColumns+` FROM streaks WHERE category = $1;`, string(category))
	s, err := scanStreak(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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
	_, err := sr.conn.Exec(ctx,
		`INSERT INTO streaks (`+streakColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET current_streak = EXCLUDED.current_streak, longest_streak = EXCLUDED.longest_streak,
		last_achieved_date = EXCLUDED.last_achieved_date, updated_at = EXCLUDED.updated_at;`,
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
	_, err := sr.conn.Exec(ctx, `DELETE FROM streaks;`)
	if err != nil {
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
