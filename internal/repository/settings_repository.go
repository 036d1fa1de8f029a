package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/chai/internal/error_values"
	"github.com/limbo/chai/pkg/entity"
)

// Settings live in a single row keyed by settingsRowID.
const settingsRowID = "settings"

type SettingsRepository struct {
	conn PgConnection
}

func NewSettingsRepo(cfg DBConfig) *SettingsRepository {
	return NewSettingsRepoWithConn(connect(cfg))
}

func NewSettingsRepoWithConn(conn PgConnection) *SettingsRepository {
	mustPing(conn, "settingsRepo")
	return &SettingsRepository{
		conn: conn,
	}
}

func (sr *SettingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var (
		settings     entity.Settings
		rounding     string
		quickAmounts string
	)
	row := sr.conn.QueryRow(ctx,
		`SELECT currency, rounding, quick_amounts, lang, daily_target FROM settings WHERE id = $1;`,
		settingsRowID,
	)
	err := row.Scan(&settings.Currency, &rounding, &quickAmounts, &settings.Lang, &settings.DailyTarget)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSettingsNotFound
		}
		return nil, errors.New("getting settings error: " + err.Error())
	}
	settings.Rounding = entity.Rounding(rounding)
	settings.QuickAmounts, err = DecodeQuickAmounts(quickAmounts)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (sr *SettingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	if settings == nil {
		return errors.New("settings are nil")
	}
	quickAmounts, err := EncodeQuickAmounts(settings.QuickAmounts)
	if err != nil {
		return err
	}
	_, err = sr.conn.Exec(ctx,
		`INSERT INTO settings (id, currency, rounding, quick_amounts, lang, daily_target) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET currency = EXCLUDED.currency, rounding = EXCLUDED.rounding, quick_amounts = EXCLUDED.quick_amounts, lang = EXCLUDED.lang, daily_target = EXCLUDED.daily_target;`,
		settingsRowID,
		settings.Currency,
		string(settings.Rounding),
		quickAmounts,
		settings.Lang,
		settings.DailyTarget,
	)
	if err != nil {
		return errors.New("saving settings error: " + err.Error())
	}
	return nil
}

// EncodeQuickAmounts renders quick amounts as the JSON array stored in the quick_amounts column.
func EncodeQuickAmounts(amounts []float64) (string, error) {
	if amounts == nil {
		amounts = []float64{}
	}
	data, err := sonic.Marshal(amounts)
	if err != nil {
		return "", errors.New("encoding quick amounts error: " + err.Error())
	}
	return string(data), nil
}

func DecodeQuickAmounts(raw string) ([]float64, error) {
	amounts := make([]float64, 0)
	if raw == "" {
		return amounts, nil
	}
	if err := sonic.UnmarshalString(raw, &amounts); err != nil {
		return nil, errors.New("decoding quick amounts error: " + err.Error())
	}
	return amounts, nil
}
