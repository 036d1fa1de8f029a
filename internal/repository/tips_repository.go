package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/chai/internal/error_values"
	"github.com/limbo/chai/pkg/entity"
)

const tipColumns = `id, amount, currency, method, note, tables_served, shift_id, created_at`

type TipsRepository struct {
	conn PgConnection
}

func NewTipsRepo(cfg DBConfig) *TipsRepository {
	return NewTipsRepoWithConn(connect(cfg))
}

func NewTipsRepoWithConn(conn PgConnection) *TipsRepository {
	mustPing(conn, "tipsRepo")
	return &TipsRepository{
		conn: conn,
	}
}

func (tr *TipsRepository) Create(ctx context.Context, tip *entity.Tip) error {
	if tip == nil {
		return errors.New("tip is nil")
	}
	_, err := tr.conn.Exec(ctx,
		`INSERT INTO tips (`+tipColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
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
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrTipExists
			}
		}
		return errors.New("creating tip error: " + err.Error())
	}
	return nil
}

func (tr *TipsRepository) GetByID(ctx context.Context, id string) (*entity.Tip, error) {
	row := tr.conn.QueryRow(ctx, `SELECT `+tipColumns+` FROM tips WHERE id = $1;`, id)
	tip, err := scanTip(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTipNotFound
		}
		return nil, errors.New("getting tip by id error: " + err.Error())
	}
	return tip, nil
}

func (tr *TipsRepository) List(ctx context.Context) ([]entity.Tip, error) {
	rows, err := tr.conn.Query(ctx, `SELECT `+tipColumns+` FROM tips ORDER BY created_at DESC, id ASC;`)
	if err != nil {
		return nil, errors.New("listing tips error: " + err.Error())
	}
	return collectTips(rows)
}

func (tr *TipsRepository) ListRange(ctx context.Context, from, to time.Time) ([]entity.Tip, error) {
	rows, err := tr.conn.Query(ctx,
		`SELECT `+tipColumns+` FROM tips WHERE created_at >= $1 AND created_at < $2 ORDER BY created_at DESC, id ASC;`,
		entity.ToMillis(from),
		entity.ToMillis(to),
	)
	if err != nil {
		return nil, errors.New("listing tips for period error: " + err.Error())
	}
	return collectTips(rows)
}

func (tr *TipsRepository) Update(ctx context.Context, tip *entity.Tip) error {
	ct, err := tr.conn.Exec(ctx,
		`UPDATE tips SET amount = $1, method = $2, note = $3, tables_served = $4 WHERE id = $5;`,
		tip.Amount,
		string(tip.Method),
		tip.Note,
		tip.TablesServed,
		tip.ID,
	)
	if err != nil {
		return errors.New("updating tip error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTipNotFound
	}
	return nil
}

func (tr *TipsRepository) Delete(ctx context.Context, id string) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM tips WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting tip error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
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

func collectTips(rows pgx.Rows) ([]entity.Tip, error) {
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
