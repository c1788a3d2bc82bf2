/*
* Copyright (c) 2024-present Sigma-Soft, Ltd.
* @author Dmitry Molchanovsky
 */

package main

import (
	_ "embed"
	"os"

	"github.com/untillpro/goutils/cobrau"
)

//go:embed version
var version string

// print the external commands instead of executing them (flag --dry-run)
var dryRun bool

// answer every prompt with yes (flag --yes)
var assumeYes bool

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		loggerError(err.Error())
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	rootCmd := cobrau.PrepareRootCmd(
		"reltool",
		"Release utility: version bump, commit, tag, push, hosted release",
		args,
		ver,
		newDeployCmd(),
		newBumpCmd(),
	)

	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print the external commands instead of executing them")

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}
