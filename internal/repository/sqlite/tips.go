package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	errorvalues "github.com/limbo/chai/internal/error_values"
	"github.com/limbo/chai/pkg/entity"
)

const tipColumns = `id, amount, currency, method, note, tables_served, shift_id, created_at`

type TipsRepository struct {
	db *sql.DB
}

func NewTipsRepo(s *Store) *TipsRepository {
	return &TipsRepository{db: s.db}
}

func (tr *TipsRepository) Create(ctx context.Context, tip *entity.Tip) error {
	if tip == nil {
		return errors.New("tip is nil")
	}
	_, err := tr.db.ExecContext(ctx,
		`INSERT INTO tips (`+tipColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		tip.ID,
		tip.Amount,
		tip.Currency,
		string(tip.Method),
		tip.Note,
		tip.TablesServed,
		tip.ShiftID,
		entity.ToMillis(tip.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errorvalues.ErrTipExists
		}
		return errors.New("creating tip error: " + err.Error())
	}
	return nil
}

func (tr *TipsRepository) GetByID(ctx context.Context, id string) (*entity.Tip, error) {
	row := tr.db.QueryRowContext(ctx, `SELECT `+tipColumns+` FROM tips WHERE id = ?`, id)
	tip, err := scanTip(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrTipNotFound
		}
		return nil, errors.New("getting tip by id error: " + err.Error())
	}
	return tip, nil
}

func (tr *TipsRepository) List(ctx context.Context) ([]entity.Tip, error) {
	rows, err := tr.db.QueryContext(ctx, `SELECT `+tipColumns+` FROM tips ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, errors.New("listing tips error: " + err.Error())
	}
	return collectTips(rows)
}

func (tr *TipsRepository) ListRange(ctx context.Context, from, to time.Time) ([]entity.Tip, error) {
	rows, err := tr.db.QueryContext(ctx,
		`SELECT `+tipColumns+` FROM tips WHERE created_at >= ? AND created_at < ? ORDER BY created_at DESC, id ASC`,
		entity.ToMillis(from),
		entity.ToMillis(to),
	)
	if err != nil {
		return nil, errors.New("listing tips for period error: " + err.Error())
	}
	return collectTips(rows)
}

func (tr *TipsRepository) Update(ctx context.Context, tip *entity.Tip) error {
	res, err := tr.db.ExecContext(ctx,
		`UPDATE tips SET amount = ?, method = ?, note = ?, tables_served = ? WHERE id = ?`,
		tip.Amount,
		string(tip.Method),
		tip.Note,
		tip.TablesServed,
		tip.ID,
	)
	if err != nil {
		return errors.New("updating tip error: " + err.Error())
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errorvalues.ErrTipNotFound
	}
	return nil
}

func (tr *TipsRepository) Delete(ctx context.Context, id string) error {
	res, err := tr.db.ExecContext(ctx, `DELETE FROM tips WHERE id = ?`, id)
	if err != nil {
		return errors.New("deleting tip error: " + err.Error())
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errorvalues.ErrTipNotFound
	}
	return nil
}

func scanTip(row scanner) (*entity.Tip, error) {
	var (
		tip       entity.Tip
		method    string
		createdAt int64
	)
	err := row.Scan(&tip.ID, &tip.Amount, &tip.Currency, &method, &tip.Note, &tip.TablesServed, &tip.ShiftID, &createdAt)
	if err != nil {
		return nil, err
	}
	tip.Method = entity.TipMethod(method)
	tip.CreatedAt = entity.FromMillis(createdAt)
	return &tip, nil
}

func collectTips(rows *sql.Rows) ([]entity.Tip, error) {
	defer rows.Close()
	tips := make([]entity.Tip, 0)
	for rows.Next() {
		tip, err := scanTip(rows)
		if err != nil {
			return nil, errors.New("tip row parsing error: " + err.Error())
		}
		tips = append(tips, *tip)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected tip rows error: " + err.Error())
	}
	return tips, nil
}
