/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Nikolay Nikitin
 */

package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hivesched/hivesched/pkg/schedule"
)

func testStore(t *testing.T) *Store {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })
	return store
}

func testRecord(day schedule.Day, hour int, temp float64) Record {
	return Record{
		When:    time.Date(2024, 11, 5, hour, 0, 0, 0, time.UTC),
		Day:     day,
		Entries: schedule.DaySchedule{{Time: "06:30", Temp: temp}},
	}
}

func TestAppendAndList(t *testing.T) {
	require := require.New(t)
	store := testStore(t)

	require.NoError(store.Append("node-1", testRecord(schedule.Monday, 8, 18.5)))
	require.NoError(store.Append("node-1", testRecord(schedule.Tuesday, 9, 19.0)))
	require.NoError(store.Append("node-2", testRecord(schedule.Monday, 10, 20.0)))

	records, err := store.List("node-1")
	require.NoError(err)
	require.Len(records, 2)
	require.Equal(schedule.Monday, records[0].Day)
	require.Equal(schedule.Tuesday, records[1].Day)

	// nodes are isolated from each other
	records, err = store.List("node-2")
	require.NoError(err)
	require.Len(records, 1)
	require.Equal(20.0, records[0].Entries[0].Temp)
}

func TestListUnknownNode(t *testing.T) {
	require := require.New(t)

	records, err := testStore(t).List("never-pushed")
	require.NoError(err)
	require.Empty(records)
}

func TestLast(t *testing.T) {
	require := require.New(t)
	store := testStore(t)

	require.NoError(store.Append("node-1", testRecord(schedule.Monday, 8, 18.0)))
	require.NoError(store.Append("node-1", testRecord(schedule.Tuesday, 9, 17.0)))
	require.NoError(store.Append("node-1", testRecord(schedule.Monday, 10, 19.5)))

	rec, ok, err := store.Last("node-1", schedule.Monday)
	require.NoError(err)
	require.True(ok)
	require.Equal(19.5, rec.Entries[0].Temp)

	_, ok, err = store.Last("node-1", schedule.Sunday)
	require.NoError(err)
	require.False(ok)

	_, ok, err = store.Last("node-9", schedule.Monday)
	require.NoError(err)
	require.False(ok)
}

func TestHistorySurvivesReopen(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(path)
	require.NoError(err)
	require.NoError(store.Append("node-1", testRecord(schedule.Friday, 8, 18.5)))
	require.NoError(store.Close())

	store, err = Open(path)
	require.NoError(err)
	defer store.Close()

	records, err := store.List("node-1")
	require.NoError(err)
	require.Len(records, 1)
	require.Equal(schedule.Friday, records[0].Day)
}
