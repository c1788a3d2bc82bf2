/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package main

import "errors"

// nolint
var (
	ErrInvalidNumberOfArguments = errors.New("invalid number of arguments")
	ErrNoScheduleGiven          = errors.New("no schedule given, use --profile or --entry")
)

const (
	errNoConfigDir = "cannot prepare the config dir: %w"
	errBadEvery    = "invalid --every schedule: %w"
)
