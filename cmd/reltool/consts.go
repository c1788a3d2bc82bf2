/*
* Copyright (c) 2024-present Sigma-Soft, Ltd.
* @author Dmitry Molchanovsky
 */

package main

// nolint
const (
	gitCmd = "git"
	ghCmd  = "gh"

	gitRemote = "origin"

	defaultBranch      = "main"
	defaultVersionFile = "manifest.json"

	// commit message when -m is not given, "Release <new version>"
	defaultMessagePrefix = "Release "

	dryRunPrefix = "[dry run]"
)
