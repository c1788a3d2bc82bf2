/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package main

import (
	_ "embed"
	"os"

	"github.com/untillpro/goutils/cobrau"
)

//go:embed version
var version string

// nolint
var (
	// directory holding session.json, profiles.yaml and history.db
	// (flag --config-dir), empty means <user config dir>/hivesched
	configDir string

	// Cognito pool overrides for non-UK accounts (flags --region and
	// --client-id)
	region   string
	clientID string

	// print the would-be API payload instead of pushing it
	// (flag --dry-run)
	dryRun bool
)

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		loggerError(err.Error())
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	rootCmd := cobrau.PrepareRootCmd(
		"schedctl",
		"Hive heating schedule control: push day schedules, decode payloads, manage profiles and sessions",
		args,
		ver,
		newSetDayCmd(),
		newDecodeCmd(),
		newProfilesCmd(),
		newAuthCmd(),
		newHistoryCmd(),
		newDiffCmd(),
	)

	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory for the session, profiles and history files")
	rootCmd.PersistentFlags().StringVar(&region, "region", "", "Cognito region of the Hive account pool")
	rootCmd.PersistentFlags().StringVar(&clientID, "client-id", "", "Cognito app client ID of the Hive account pool")

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}
