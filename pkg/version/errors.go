/*
* Copyright (c) 2024-present Sigma-Soft, Ltd.
* @author Dmitry Molchanovsky
 */

package version

import "errors"

var (
	ErrInvalidFormat       = errors.New("invalid version format, expected <prefix><int>(.<int>)*")
	ErrInvalidManifest     = errors.New("version manifest is not valid JSON")
	ErrVersionKeyMissing   = errors.New(`version manifest has no "version" field`)
	ErrVersionKeyAmbiguous = errors.New(`version manifest has more than one "version" field`)
)

const (
	errCannotParseVersion    = "cannot parse version %q: %w"
	errCannotReadVersionFile = "cannot read version file %s: %w"
	errCannotSaveVersionFile = "cannot save version file %s: %w"
	errInvalidManifest       = "%s: %w"
)
