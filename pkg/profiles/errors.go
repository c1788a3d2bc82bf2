/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package profiles

import "errors"

var (
	ErrUnknownProfile      = errors.New("unknown profile")
	ErrProfilesFileExists  = errors.New("profiles file already exists")
	ErrCannotCreateProfile = errors.New("cannot create profiles file")
)

const (
	errUnknownProfile = "unknown profile %q, available: %s: %w"
	errCannotCreate   = "%s: %w"
)
