package errorvalues

import "errors"

var (
	ErrTipNotFound      = errors.New("tip doesn't exist")
	ErrTipExists        = errors.New("tip with such id already exists")
	ErrShiftNotFound    = errors.New("shift doesn't exist")
	ErrNoOpenShift      = errors.New("there is no open shift")
	ErrSettingsNotFound = errors.New("settings are not stored yet")
	ErrStreakNotFound   = errors.New("streak doesn't exist")
	ErrUnknownCategory  = errors.New("unknown achievement category")
	ErrUnknownPeriod    = errors.New("unknown stats period")
	ErrValidation       = errors.New("validation error")
)
