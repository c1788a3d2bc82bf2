/*
* Copyright (c) 2024-present Sigma-Soft, Ltd.
* @author Dmitry Molchanovsky
 */

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	pkgversion "github.com/hivesched/hivesched/pkg/version"
)

func newBumpCmd() *cobra.Command {
	params := deployParams{}
	cmd := &cobra.Command{
		Use:   "bump",
		Short: "Increment the version in the version file, nothing else",
		RunE: func(cmd *cobra.Command, args []string) error {
			return bump(params)
		},
	}
	cmd.Flags().StringVarP(&params.dir, "dir", "C", ".", "Repository the version file lives in")
	cmd.Flags().StringVarP(&params.versionFile, "file", "f", defaultVersionFile, "File the version is stored in")
	return cmd
}

func bump(params deployParams) error {
	versionFile := params.versionFile
	if !filepath.IsAbs(versionFile) {
		versionFile = filepath.Join(params.dir, versionFile)
	}
	old, bumped, err := bumpVersionFile(versionFile)
	if err != nil {
		return err
	}
	loggerInfoGreen("version:", old.String(), "->", bumped.String())
	return nil
}

// bumpVersionFile rewrites the version file and re-reads it to make
// sure the surgery really landed. In dry run mode the file is only
// read.
func bumpVersionFile(path string) (old, bumped pkgversion.Version, err error) {
	if dryRun {
		old, err = pkgversion.Load(path)
		if err != nil {
			return old, bumped, err
		}
		bumped = old.Bump()
		loggerInfo(dryRunPrefix, "update", path, "to", bumped.String())
		return old, bumped, nil
	}
	old, bumped, err = pkgversion.BumpFile(path)
	if err != nil {
		return old, bumped, err
	}
	reloaded, err := pkgversion.Load(path)
	if err != nil {
		return old, bumped, err
	}
	if reloaded.String() != bumped.String() {
		return old, bumped, fmt.Errorf(errBumpNotApplied, path, reloaded.String(), bumped.String(), ErrBumpNotApplied)
	}
	if oldSem, newSem := old.Semver(), reloaded.Semver(); oldSem != "" && newSem != "" && semver.Compare(newSem, oldSem) <= 0 {
		return old, bumped, fmt.Errorf(errVersionNotNewer, reloaded.String(), old.String())
	}
	return old, bumped, nil
}
