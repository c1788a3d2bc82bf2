/*
* Copyright (c) 2024-present Sigma-Soft, Ltd.
* @author Dmitry Molchanovsky
 */

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

type deployParams struct {
	dir         string
	branch      string
	message     string
	versionFile string
}

func newDeployCmd() *cobra.Command {
	params := deployParams{}
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Bump the version, commit, tag, push and cut the hosted release",
		RunE: func(cmd *cobra.Command, args []string) error {
			return deploy(params)
		},
	}
	cmd.Flags().StringVarP(&params.dir, "dir", "C", ".", "Repository to deploy from")
	cmd.Flags().StringVarP(&params.branch, "branch", "b", defaultBranch, "Branch the release is pushed to")
	cmd.Flags().StringVarP(&params.message, "message", "m", "", `Commit message, default "Release <new version>"`)
	cmd.Flags().StringVarP(&params.versionFile, "file", "f", defaultVersionFile, "File the version is stored in")
	cmd.Flags().BoolVar(&assumeYes, "yes", false, "Assume yes on every prompt")
	return cmd
}

// deploy runs the release pipeline: one linear pass, no retries and no
// rollback. Steps 2 and 10 are advisory, everything else is fatal.
func deploy(params deployParams) error {
	versionFile := params.versionFile
	if !filepath.IsAbs(versionFile) {
		versionFile = filepath.Join(params.dir, versionFile)
	}

	// 1. verify the branch
	if dryRun {
		loggerInfo(dryRunPrefix, "git rev-parse --abbrev-ref HEAD")
	} else {
		branch, err := gitCurrentBranch(params.dir)
		if err != nil {
			return err
		}
		if branch != params.branch {
			loggerWarning("current branch is", branch+",", "the release goes to", params.branch)
			if !confirm("switch to branch " + params.branch + "?") {
				return fmt.Errorf(errBranchNotCurrent, branch, ErrWrongBranch)
			}
			if err := runExternal(params.dir, gitCmd, "checkout", params.branch); err != nil {
				return fmt.Errorf(errCheckoutFailed, params.branch, err)
			}
		}
	}

	// 2. sync with the remote, advisory
	if err := runExternal(params.dir, gitCmd, "pull", "--ff-only", gitRemote, params.branch); err != nil {
		loggerWarning("pull failed, deploying the local state:", err.Error())
	}

	// 3. bump the version
	old, bumped, err := bumpVersionFile(versionFile)
	if err != nil {
		return err
	}
	loggerInfo("version:", old.String(), "->", bumped.String())

	message := params.message
	if message == "" {
		message = defaultMessagePrefix + bumped.String()
	}

	// 4. stage everything
	if err := runExternal(params.dir, gitCmd, "add", "-A"); err != nil {
		return fmt.Errorf(errStagingFailed, err)
	}

	// 5.-6. commit, unless nothing is staged and the operator chooses
	// to tag the current HEAD instead
	commit := true
	if dryRun {
		loggerInfo(dryRunPrefix, "git diff --cached --quiet")
	} else if !gitHasStagedChanges(params.dir) {
		loggerWarning("no changes staged for commit")
		if !confirm("continue without a new commit?") {
			loggerInfo("deployment canceled")
			return nil
		}
		commit = false
	}
	if commit {
		if err := runExternal(params.dir, gitCmd, "commit", "-m", message); err != nil {
			return fmt.Errorf(errCommitFailed, err)
		}
	}

	// 7. annotated tag, an existing one is never moved
	tag := bumped.TagName()
	if !dryRun && gitTagExists(params.dir, tag) {
		return fmt.Errorf(errTagCollision, tag, ErrTagAlreadyExists)
	}
	if err := runExternal(params.dir, gitCmd, "tag", "-a", tag, "-m", message); err != nil {
		return fmt.Errorf(errTagFailed, tag, err)
	}

	// 8.-9. push the branch, then the tag
	if err := runExternal(params.dir, gitCmd, "push", gitRemote, params.branch); err != nil {
		return fmt.Errorf(errPushFailed, params.branch, err)
	}
	if err := runExternal(params.dir, gitCmd, "push", gitRemote, tag); err != nil {
		return fmt.Errorf(errPushFailed, tag, err)
	}

	// 10. hosted release, advisory: the pushed tag already marks the
	// release
	if err := ghRepoView(params.dir); err != nil {
		loggerWarning("gh is not available, skipping the hosted release:", err.Error())
	} else if err := ghCreateRelease(params.dir, tag, message); err != nil {
		loggerWarning("could not create the hosted release:", err.Error())
	}

	loggerInfoGreen("deployed", bumped.String(), "to", params.branch)
	return nil
}
