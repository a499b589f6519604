package domain

import "errors"

var (
	// ErrMissingSelector is returned when --db is omitted and the configured
	// databases do not designate exactly one.
	ErrMissingSelector = errors.New("missing --db option")

	// ErrUnknownDatabase is returned when --db names no configured database.
	ErrUnknownDatabase = errors.New("unknown database")

	// ErrUnsupportedDriver is returned for schemes outside the supported families.
	ErrUnsupportedDriver = errors.New("unsupported driver")

	// ErrConsoleDisabled is returned when the console section is not activated.
	ErrConsoleDisabled = errors.New("console is not activated")
)
