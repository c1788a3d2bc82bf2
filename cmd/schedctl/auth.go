/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
	"golang.org/x/term"

	"github.com/hivesched/hivesched/pkg/hiveauth"
)

// nolint
var (
	refreshTokenFlag string
	idTokenFlag      string
	accessTokenFlag  string
	everySpec        string
)

// nolint
func newAuthCmd() *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Store Hive session tokens for later use",
		RunE:  authImport,
	}
	importCmd.Flags().StringVar(&refreshTokenFlag, "refresh-token", "", "Cognito refresh token, prompted for when not given")
	importCmd.Flags().StringVar(&idTokenFlag, "id-token", "", "Current ID token, optional")
	importCmd.Flags().StringVar(&accessTokenFlag, "access-token", "", "Current access token, optional")

	refreshCmd := &cobra.Command{
		Use:   "refresh",
		Short: "Refresh the stored tokens if they are about to expire",
		RunE:  authRefresh,
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the stored session without revealing the tokens",
		RunE:  authStatus,
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the session fresh by refreshing it on a schedule",
		RunE:  authWatch,
	}
	watchCmd.Flags().StringVar(&everySpec, "every", defaultWatchSchedule, "Refresh schedule in cron syntax")

	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the Hive session tokens",
	}
	authCmd.AddCommand(importCmd, refreshCmd, statusCmd, watchCmd)

	return authCmd
}

func authImport(cmd *cobra.Command, args []string) error {
	refreshToken := refreshTokenFlag
	if refreshToken == "" {
		var err error
		refreshToken, err = readSecret("Refresh token: ")
		if err != nil {
			return err
		}
	}
	if refreshToken == "" {
		return hiveauth.ErrNoRefreshToken
	}

	session, err := openSession()
	if err != nil {
		return err
	}
	if err := session.Import(hiveauth.Tokens{
		IDToken:      idTokenFlag,
		AccessToken:  accessTokenFlag,
		RefreshToken: refreshToken,
	}); err != nil {
		return err
	}
	loggerInfoGreen("session saved to", session.Path())
	return nil
}

func authRefresh(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}
	if err := session.Refresh(cmd.Context()); err != nil {
		return err
	}
	loggerInfoGreen("session valid until", session.Tokens().Expiry.Format(time.RFC3339))
	return nil
}

func authStatus(cmd *cobra.Command, args []string) error {
	session, err := openSession()
	if err != nil {
		return err
	}
	t := session.Tokens()
	if t.RefreshToken == "" && t.IDToken == "" {
		fmt.Println("no session, run: schedctl auth import")
		return nil
	}

	fmt.Println("session file:", session.Path())
	fmt.Println("refresh token:", presence(t.RefreshToken))
	fmt.Println("id token:", presence(t.IDToken))
	if !t.Expiry.IsZero() {
		if remaining := time.Until(t.Expiry); remaining > 0 {
			fmt.Printf("expires: %s (in %s)\n", t.Expiry.Format(time.RFC3339), remaining.Round(time.Second))
		} else {
			fmt.Printf("expires: %s (expired)\n", t.Expiry.Format(time.RFC3339))
		}
	}
	return nil
}

// authWatch refreshes the session on a schedule until interrupted.
// A rejected refresh token is fatal, the operator has to re-import,
// anything else is retried on the next tick.
func authWatch(cmd *cobra.Command, args []string) error {
	sched, err := cron.ParseStandard(everySpec)
	if err != nil {
		return fmt.Errorf(errBadEvery, err)
	}

	session, err := openSession()
	if err != nil {
		return err
	}
	if _, err := session.IDToken(cmd.Context()); err != nil {
		return err
	}
	loggerInfo("watching the session, refresh schedule:", everySpec)

	ctx := cmd.Context()
	for {
		next := sched.Next(time.Now())
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(time.Until(next)):
		}
		if err := session.Refresh(ctx); err != nil {
			if errors.Is(err, hiveauth.ErrReauthRequired) {
				return err
			}
			loggerWarning("refresh failed, keeping the old tokens:", err.Error())
			continue
		}
		logger.Verbose("session checked, valid until", session.Tokens().Expiry.Format(time.RFC3339))
	}
}

func presence(token string) string {
	if token == "" {
		return "absent"
	}
	return "present"
}

// readSecret reads a token without echoing it. A non-terminal stdin is
// read as a plain line so the command stays scriptable.
func readSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	defer fmt.Println()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		return strings.TrimSpace(line), nil
	}

	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(secret)), nil
}
