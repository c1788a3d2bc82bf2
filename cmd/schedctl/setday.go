/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hivesched/hivesched/pkg/beekeeper"
	"github.com/hivesched/hivesched/pkg/history"
	"github.com/hivesched/hivesched/pkg/schedule"
)

// nolint
var (
	profileName string
	entryFlags  []string
	apiURL      string
)

func newSetDayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-day [<node> <day>]",
		Short: "Push a one-day heating schedule to a Hive thermostat",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return ErrInvalidNumberOfArguments
			}
			return nil
		},
		RunE: setDay,
	}
	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "Named profile from the profiles file")
	cmd.Flags().StringArrayVarP(&entryFlags, "entry", "e", nil, `Schedule entry "HH:MM=temp", repeatable`)
	cmd.Flags().StringVar(&apiURL, "api-url", "", "Override the beekeeper API base URL")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the payload instead of calling the Hive API")
	return cmd
}

func setDay(cmd *cobra.Command, args []string) error {
	nodeID := args[0]
	day, err := schedule.ParseDay(args[1])
	if err != nil {
		return err
	}
	entries, err := resolveEntries()
	if err != nil {
		return err
	}

	if dryRun {
		payload, err := schedule.DayPayload(day, entries)
		if err != nil {
			return err
		}
		loggerInfo(dryRunPrefix, "node", nodeID+":", string(payload))
		return nil
	}

	session, err := openSession()
	if err != nil {
		return err
	}
	client := beekeeper.New(session)
	if apiURL != "" {
		client.SetBaseURL(apiURL)
	}

	confirmed, err := client.SetDaySchedule(cmd.Context(), nodeID, day, entries)
	if err != nil {
		return err
	}
	loggerInfoGreen("schedule for", string(day), "pushed to node", nodeID)
	if confirmed != nil {
		fmt.Print(confirmed.Format())
	}

	if err := recordPush(nodeID, day, entries); err != nil {
		loggerWarning("push is done but not recorded:", err.Error())
	}
	return nil
}

// resolveEntries picks the schedule source: explicit --entry flags win
// over --profile, using neither is an error.
func resolveEntries() (schedule.DaySchedule, error) {
	entries := make(schedule.DaySchedule, 0, len(entryFlags))
	for _, e := range entryFlags {
		entry, err := schedule.ParseEntry(e)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if len(entries) > 0 {
		if profileName != "" {
			loggerWarning("both --profile and --entry given, the explicit entries win")
		}
		return entries, nil
	}
	if profileName == "" {
		return nil, ErrNoScheduleGiven
	}
	store, err := openProfiles()
	if err != nil {
		return nil, err
	}
	return store.Get(profileName)
}

func recordPush(nodeID string, day schedule.Day, entries schedule.DaySchedule) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	return store.Append(nodeID, history.Record{When: time.Now(), Day: day, Entries: entries})
}
