/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hivesched/hivesched/pkg/schedule"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [<file>]",
		Short: "Pretty-print a raw Hive schedule payload, from a file or stdin",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return ErrInvalidNumberOfArguments
			}
			return nil
		},
		RunE: decode,
	}
}

func decode(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}

	sched, err := schedule.Decode(data)
	if err != nil {
		return err
	}
	fmt.Print(sched.Format())
	return nil
}
