/*
* Copyright (c) 2024-present Sigma-Soft, Ltd.
* @author Dmitry Molchanovsky
 */

package version

import "io/fs"

// nolint
const (
	decimalBase = 10
	bitSize64   = 64

	// files with this extension are JSON manifests, anything else is a
	// flat file holding just the version string
	manifestExt = ".json"

	backupExt = ".bak"

	versionFileMode = fs.FileMode(0644)
)
