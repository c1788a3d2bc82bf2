/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package main

import "io/fs"

// nolint
const (
	sessionFileName  = "session.json"
	profilesFileName = "profiles.yaml"
	historyFileName  = "history.db"

	// config files live under <user config dir>/<configDirName> unless
	// --config-dir points elsewhere
	configDirName = "hivesched"

	// the session file holds tokens, keep the dir private
	configDirMode = fs.FileMode(0700)

	defaultWatchSchedule = "@every 30m"

	dryRunPrefix = "[dry run]"
)
