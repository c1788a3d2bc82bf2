/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package schedule

import "errors"

var (
	ErrInvalidSchedule = errors.New("invalid schedule")
	ErrUnknownDay      = errors.New("unknown day of week")
	ErrNotASchedule    = errors.New(`no "schedule" key found`)
)

const (
	errEmptySchedule     = "schedule must have at least one entry: %w"
	errInvalidTimeFormat = "invalid time format %q, must be HH:MM: %w"
	errTempOutOfRange    = "temperature %v°C out of range (%v-%v°C): %w"
	errInvalidTemp       = "invalid temperature %q: %w"
	errInvalidEntrySpec  = "invalid schedule entry %q, must be HH:MM=temp: %w"
	errUnknownDay        = "%q: %w"
	errBadScheduleJSON   = "cannot decode schedule: %w"
)
