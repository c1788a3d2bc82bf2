/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// nolint
func newProfilesCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the available profiles",
		RunE:  profilesList,
	}

	showCmd := &cobra.Command{
		Use:   "show [<name>]",
		Short: "Show the switching points of a profile",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return ErrInvalidNumberOfArguments
			}
			return nil
		},
		RunE: profilesShow,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in profiles to the profiles file for editing",
		RunE:  profilesInit,
	}

	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage the named schedule profiles",
	}
	profilesCmd.AddCommand(listCmd, showCmd, initCmd)

	return profilesCmd
}

func profilesList(cmd *cobra.Command, args []string) error {
	store, err := openProfiles()
	if err != nil {
		return err
	}
	all := store.Load()

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%s: %d entries\n", name, len(all[name]))
	}
	return nil
}

func profilesShow(cmd *cobra.Command, args []string) error {
	store, err := openProfiles()
	if err != nil {
		return err
	}
	prof, err := store.Get(args[0])
	if err != nil {
		return err
	}
	for _, entry := range prof {
		fmt.Println(entry.String())
	}
	return nil
}

func profilesInit(cmd *cobra.Command, args []string) error {
	store, err := openProfiles()
	if err != nil {
		return err
	}
	if err := store.Init(); err != nil {
		return err
	}
	loggerInfoGreen("profiles written to", store.Path())
	return nil
}
