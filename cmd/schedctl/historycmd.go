/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history [<node>]",
		Short: "List the schedule pushes recorded for a node",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return ErrInvalidNumberOfArguments
			}
			return nil
		},
		RunE: historyList,
	}
}

func historyList(cmd *cobra.Command, args []string) error {
	nodeID := args[0]

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := store.List(nodeID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		loggerInfo("no pushes recorded for node", nodeID)
		return nil
	}
	for _, rec := range records {
		fmt.Printf("%s %s: %d entries\n", rec.When.Format(time.RFC3339), rec.Day, len(rec.Entries))
	}
	return nil
}
