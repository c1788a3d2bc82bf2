/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package beekeeper

import "errors"

var (
	ErrAuthFailed   = errors.New("Hive authentication failed")
	ErrNodeNotFound = errors.New("invalid node ID")
)

const (
	errNodeNotFound     = "node %s not known to the Hive account: %w"
	errUnexpectedStatus = "failed to update schedule, status %d: %s"
	errRequestFailed    = "request to Hive API failed: %w"
)
