/*
* Copyright (c) 2024-present Sigma-Soft, Ltd.
* @author Dmitry Molchanovsky
 */

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/untillpro/goutils/exec"
)

// runExternal executes a git/gh command in dir with the output shown
// to the operator. Under --dry-run the command line is printed
// instead.
func runExternal(dir string, name string, args ...string) error {
	if dryRun {
		loggerInfo(dryRunPrefix, name+" "+strings.Join(args, " "))
		return nil
	}
	return new(exec.PipedExec).
		Command(name, args...).
		WorkingDir(dir).
		Run(os.Stdout, os.Stderr)
}

// probe runs a read-only command, discarding its output. Under
// --dry-run it is printed like everything else.
func probeExternal(dir string, name string, args ...string) error {
	if dryRun {
		loggerInfo(dryRunPrefix, name+" "+strings.Join(args, " "))
		return nil
	}
	_, _, err := new(exec.PipedExec).
		Command(name, args...).
		WorkingDir(dir).
		RunToStrings()
	return err
}

func gitCurrentBranch(dir string) (string, error) {
	stdout, stderr, err := new(exec.PipedExec).
		Command(gitCmd, "rev-parse", "--abbrev-ref", "HEAD").
		WorkingDir(dir).
		RunToStrings()
	if err != nil {
		return "", fmt.Errorf(errGitProbeFailed, strings.TrimSpace(stderr), err)
	}
	return strings.TrimSpace(stdout), nil
}

// gitHasStagedChanges reports whether anything is staged. git diff
// --cached --quiet exits non-zero exactly when the index differs from
// HEAD.
func gitHasStagedChanges(dir string) bool {
	_, _, err := new(exec.PipedExec).
		Command(gitCmd, "diff", "--cached", "--quiet").
		WorkingDir(dir).
		RunToStrings()
	return err != nil
}

// gitTagExists is a best-effort probe: when it cannot tell, tag
// creation is still the authoritative failure point.
func gitTagExists(dir string, tag string) bool {
	_, _, err := new(exec.PipedExec).
		Command(gitCmd, "rev-parse", "-q", "--verify", "refs/tags/"+tag).
		WorkingDir(dir).
		RunToStrings()
	return err == nil
}

func ghRepoView(dir string) error {
	return probeExternal(dir, ghCmd, "repo", "view")
}

func ghCreateRelease(dir string, tag string, notes string) error {
	return runExternal(dir, ghCmd, "release", "create", tag, "--title", tag, "--notes", notes)
}
