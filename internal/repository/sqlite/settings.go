package sqlite

import (
	"context"
	"database/sql"
	"errors"

	errorvalues "github.com/limbo/chai/internal/error_values"
	"github.com/limbo/chai/internal/repository"
	"github.com/limbo/chai/pkg/entity"
)

const settingsRowID = "settings"

type SettingsRepository struct {
	db *sql.DB
}

func NewSettingsRepo(s *Store) *SettingsRepository {
	return &SettingsRepository{db: s.db}
}

func (sr *SettingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var (
		settings     entity.Settings
		rounding     string
		quickAmounts string
	)
	row := sr.db.QueryRowContext(ctx,
		`SELECT currency, rounding, quick_amounts, lang, daily_target FROM settings WHERE id = ?`,
		settingsRowID,
	)
	err := row.Scan(&settings.Currency, &rounding, &quickAmounts, &settings.Lang, &settings.DailyTarget)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errorvalues.ErrSettingsNotFound
		}
		return nil, errors.New("getting settings error: " + err.Error())
	}
	settings.Rounding = entity.Rounding(rounding)
	settings.QuickAmounts, err = repository.DecodeQuickAmounts(quickAmounts)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (sr *SettingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	if settings == nil {
		return errors.New("settings are nil")
	}
	quickAmounts, err := repository.EncodeQuickAmounts(settings.QuickAmounts)
	if err != nil {
		return err
	}
	_, err = sr.db.ExecContext(ctx,
		`INSERT INTO settings (id, currency, rounding, quick_amounts, lang, daily_target) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET currency = excluded.currency, rounding = excluded.rounding, quick_amounts = excluded.quick_amounts, lang = excluded.lang, daily_target = excluded.daily_target`,
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
