/*
* Copyright (c) 2024-present Sigma-Soft, Ltd.
* @author Dmitry Molchanovsky
 */

package main

import "errors"

// nolint
var (
	ErrWrongBranch      = errors.New("not on the release branch")
	ErrTagAlreadyExists = errors.New("tag already exists")
	ErrBumpNotApplied   = errors.New("version file does not carry the bumped version")
)

const (
	errCheckoutFailed   = "cannot switch to branch %s: %w"
	errStagingFailed    = "staging failed: %w"
	errCommitFailed     = "commit failed: %w"
	errTagCollision     = "tag %s: %w"
	errTagFailed        = "cannot create tag %s: %w"
	errPushFailed       = "cannot push %s: %w"
	errBumpNotApplied   = "%s carries %s, expected %s: %w"
	errGitProbeFailed   = "git failed: %s: %w"
	errVersionNotNewer  = "new version %s does not compare newer than %s"
	errBranchNotCurrent = "current branch is %s: %w"
)
