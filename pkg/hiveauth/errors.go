/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package hiveauth

import "errors"

var (
	ErrNoTokens       = errors.New("no authentication tokens available, import a session first")
	ErrNoRefreshToken = errors.New("no refresh token available, full re-authentication needed")
	ErrReauthRequired = errors.New("refresh token is invalid or expired, re-import a fresh session")
)

const (
	errRefreshRejected         = "%s: %w"
	errRefreshFailed           = "failed to refresh token: %w"
	errCannotLoadSession       = "cannot load session file %s: %w"
	errCannotSaveSession       = "cannot save session file %s: %w"
	errUnexpectedCognitoStatus = "cognito returned status %d: %s"
	errEmptyAuthResult         = "cognito response carries no authentication result"
)
