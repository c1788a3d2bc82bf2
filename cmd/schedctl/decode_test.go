/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hivesched/hivesched/pkg/schedule"
)

const testPayload = `{"schedule":{` +
	`"sunday":[{"value":{"target":16},"start":0},{"value":{"target":19.5},"start":510}],` +
	`"monday":[{"value":{"target":18.5},"start":320}]}}`

func TestDecodeFile(t *testing.T) {
	require := require.New(t)

	file := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(os.WriteFile(file, []byte(testPayload), 0644))

	out := captureStdout(t, func() {
		require.NoError(execRootCmd([]string{"./schedctl", "decode", file}, version))
	})

	require.Contains(out, "MONDAY:")
	require.Contains(out, "  05:20 → 18.5°C")
	require.Contains(out, "SUNDAY:")
	require.Contains(out, "  00:00 → 16.0°C")
	require.Contains(out, "  08:30 → 19.5°C")

	// days come out in week order no matter how the payload orders them
	require.Less(strings.Index(out, "MONDAY:"), strings.Index(out, "SUNDAY:"))
}

func TestDecodeStdin(t *testing.T) {
	require := require.New(t)

	restore := feedStdin(t, testPayload)
	defer restore()

	out := captureStdout(t, func() {
		require.NoError(execRootCmd([]string{"./schedctl", "decode"}, version))
	})
	require.Contains(out, "MONDAY:")
	require.Contains(out, "SUNDAY:")
}

func TestDecodeRejectsForeignPayload(t *testing.T) {
	require := require.New(t)

	restore := feedStdin(t, `{"products":[]}`)
	defer restore()

	err := execRootCmd([]string{"./schedctl", "decode"}, version)
	require.ErrorIs(err, schedule.ErrNotASchedule)
}
