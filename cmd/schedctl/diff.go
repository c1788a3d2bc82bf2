/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hivesched/hivesched/pkg/schedule"
)

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [<node> <day>]",
		Short: "Compare a profile or explicit entries with the last recorded push",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return ErrInvalidNumberOfArguments
			}
			return nil
		},
		RunE: diff,
	}
	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "Named profile from the profiles file")
	cmd.Flags().StringArrayVarP(&entryFlags, "entry", "e", nil, `Schedule entry "HH:MM=temp", repeatable`)
	return cmd
}

func diff(cmd *cobra.Command, args []string) error {
	nodeID := args[0]
	day, err := schedule.ParseDay(args[1])
	if err != nil {
		return err
	}
	entries, err := resolveEntries()
	if err != nil {
		return err
	}

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	rec, ok, err := store.Last(nodeID, day)
	if err != nil {
		return err
	}
	if !ok {
		loggerInfo("no recorded push for node", nodeID, "on", string(day))
		return nil
	}

	if daySchedulesEqual(rec.Entries, entries) {
		loggerInfoGreen("in sync with the push from", rec.When.Format(time.RFC3339))
		return nil
	}

	fmt.Printf("recorded %s:\n", rec.When.Format(time.RFC3339))
	for _, e := range rec.Entries {
		fmt.Println("  " + e.String())
	}
	fmt.Println("given:")
	for _, e := range entries {
		fmt.Println("  " + e.String())
	}
	return nil
}

func daySchedulesEqual(a, b schedule.DaySchedule) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
