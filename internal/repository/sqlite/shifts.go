package sqlite

import (
	"context"
	"database/sql"
	"errors"

	errorvalues "github.com/limbo/chai/internal/error_values"
	"github.com/limbo/chai/pkg/entity"
)

const shiftColumns = `id, started_at, ended_at, target, venue`

type ShiftsRepository struct {
	db *sql.DB
}

func NewShiftsRepo(s *Store) *ShiftsRepository {
	return &ShiftsRepository{db: s.db}
}

func (sr *ShiftsRepository) Put(ctx context.Context, shift *entity.Shift) error {
	if shift == nil {
		return errors.New("shift is nil")
	}
	_, err := sr.db.ExecContext(ctx,
		`INSERT INTO shifts (`+shiftColumns+`) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET started_at = excluded.started_at, ended_at = excluded.ended_at, target = excluded.target, venue = excluded.venue`,
		shift.ID,
		entity.ToMillis(shift.StartedAt),
		entity.ToMillis(shift.EndedAt),
		shift.Target,
		shift.Venue,
	)
	if err != nil {
		return errors.New("saving shift error: " + err.Error())
	}
	return nil
}

func (sr *ShiftsRepository) GetByID(ctx context.Context, id string) (*entity.Shift, error) {
	row := sr.db.QueryRowContext(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE id = ?`, id)
	shift, err := scanShift(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrShiftNotFound
		}
		return nil, errors.New("getting shift by id error: " + err.Error())
	}
	return shift, nil
}

func (sr *ShiftsRepository) GetOpen(ctx context.Context) (*entity.Shift, error) {
	row := sr.db.QueryRowContext(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE ended_at = 0 ORDER BY started_at DESC LIMIT 1`)
	shift, err := scanShift(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting open shift error: " + err.Error())
	}
	return shift, nil
}

func (sr *ShiftsRepository) List(ctx context.Context) ([]entity.Shift, error) {
	rows, err := sr.db.QueryContext(ctx, `SELECT `+shiftColumns+` FROM shifts ORDER BY started_at DESC`)
	if err != nil {
		return nil, errors.New("listing shifts error: " + err.Error())
	}
	defer rows.Close()
	shifts := make([]entity.Shift, 0)
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, errors.New("shift row parsing error: " + err.Error())
		}
		shifts = append(shifts, *shift)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected shift rows error: " + err.Error())
	}
	return shifts, nil
}

func (sr *ShiftsRepository) Clear(ctx context.Context) error {
	if _, err := sr.db.ExecContext(ctx, `DELETE FROM shifts`); err != nil {
		return errors.New("clearing shifts error: " + err.Error())
	}
	return nil
}

func scanShift(row scanner) (*entity.Shift, error) {
	var (
		shift            entity.Shift
		started, stopped int64
	)
	if err := row.Scan(&shift.ID, &started, &stopped, &shift.Target, &shift.Venue); err != nil {
		return nil, err
	}
	shift.StartedAt = entity.FromMillis(started)
	shift.EndedAt = entity.FromMillis(stopped)
	return &shift, nil
}
