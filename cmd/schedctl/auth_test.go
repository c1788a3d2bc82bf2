/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/hivesched/hivesched/pkg/hiveauth"
)

func signTestToken(t *testing.T, exp time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).
		SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestAuthStatusWithoutSession(t *testing.T) {
	require := require.New(t)

	out := captureStdout(t, func() {
		require.NoError(execRootCmd([]string{"./schedctl", "auth", "status", "--config-dir", t.TempDir()}, version))
	})
	require.Contains(out, "no session")
}

func TestAuthImportAndStatus(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	exp := time.Now().Add(50 * time.Minute).Truncate(time.Second)

	out := captureStdout(t, func() {
		require.NoError(execRootCmd([]string{
			"./schedctl", "auth", "import", "--config-dir", dir,
			"--refresh-token", "rt-1", "--id-token", signTestToken(t, exp),
		}, version))
	})
	require.Contains(out, "session saved to")

	// tokens are secrets, the file must not be world-readable
	info, err := os.Stat(filepath.Join(dir, sessionFileName))
	require.NoError(err)
	require.Equal(fs.FileMode(0600), info.Mode().Perm())

	out = captureStdout(t, func() {
		require.NoError(execRootCmd([]string{"./schedctl", "auth", "status", "--config-dir", dir}, version))
	})
	require.Contains(out, "refresh token: present")
	require.Contains(out, "id token: present")
	// the expiry is taken from the token's exp claim
	require.Contains(out, exp.Format(time.RFC3339))
	require.NotContains(out, "rt-1")
}

func TestAuthImportPromptsWhenFlagMissing(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	restore := feedStdin(t, "rt-stdin\n")
	defer restore()

	out := captureStdout(t, func() {
		require.NoError(execRootCmd([]string{"./schedctl", "auth", "import", "--config-dir", dir}, version))
	})
	require.Contains(out, "Refresh token:")

	content, err := os.ReadFile(filepath.Join(dir, sessionFileName))
	require.NoError(err)
	require.Contains(string(content), "rt-stdin")
}

func TestAuthImportRejectsEmptyToken(t *testing.T) {
	require := require.New(t)

	restore := feedStdin(t, "\n")
	defer restore()

	var err error
	captureStdout(t, func() {
		err = execRootCmd([]string{"./schedctl", "auth", "import", "--config-dir", t.TempDir()}, version)
	})
	require.ErrorIs(err, hiveauth.ErrNoRefreshToken)
}

func TestAuthRefreshSkipsFreshTokens(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	writeSessionFile(t, dir, freshTokens())

	// well within the expiry window, no network round trip happens
	out := captureStdout(t, func() {
		require.NoError(execRootCmd([]string{"./schedctl", "auth", "refresh", "--config-dir", dir}, version))
	})
	require.Contains(out, "session valid until")
}

func TestAuthRefreshWithoutSession(t *testing.T) {
	require := require.New(t)

	err := execRootCmd([]string{"./schedctl", "auth", "refresh", "--config-dir", t.TempDir()}, version)
	require.ErrorIs(err, hiveauth.ErrNoRefreshToken)
}

func TestAuthWatchRejectsBadSchedule(t *testing.T) {
	require := require.New(t)

	err := execRootCmd([]string{
		"./schedctl", "auth", "watch", "--every", "not a schedule", "--config-dir", t.TempDir(),
	}, version)
	require.Error(err)
	require.Contains(err.Error(), "invalid --every schedule")
}
