/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package schedule

import (
	"encoding/json"
	"fmt"
	"strings"
)

// wire format of the beekeeper heating endpoint: switching points keyed
// by day, times as minutes from midnight
//
//	{"schedule":{"wednesday":[{"value":{"target":18.5},"start":330}]}}
type wireSchedule struct {
	Schedule map[Day][]wireEntry `json:"schedule"`
}

type wireEntry struct {
	Value wireValue `json:"value"`
	Start int       `json:"start"`
}

type wireValue struct {
	Target float64 `json:"target"`
}

// DayPayload builds the update body for a single day. Only the given
// day is ever sent, the other days of the node are left untouched.
func DayPayload(day Day, entries DaySchedule) ([]byte, error) {
	if err := entries.Validate(); err != nil {
		return nil, err
	}
	wire := make([]wireEntry, len(entries))
	for i, e := range entries {
		start, _ := TimeToMinutes(e.Time)
		wire[i] = wireEntry{Value: wireValue{Target: e.Temp}, Start: start}
	}
	return json.Marshal(wireSchedule{Schedule: map[Day][]wireEntry{day: wire}})
}

// Decode parses a beekeeper schedule document, e.g. the response of an
// update or a snippet pasted from the logs.
func Decode(data []byte) (Schedule, error) {
	var wire wireSchedule
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf(errBadScheduleJSON, err)
	}
	if wire.Schedule == nil {
		return nil, fmt.Errorf(errBadScheduleJSON, ErrNotASchedule)
	}
	decoded := make(Schedule, len(wire.Schedule))
	for day, entries := range wire.Schedule {
		ds := make(DaySchedule, len(entries))
		for i, e := range entries {
			ds[i] = Entry{Time: MinutesToTime(e.Start), Temp: e.Value.Target}
		}
		decoded[day] = ds
	}
	return decoded, nil
}

// Format renders the schedule the way it is shown to the operator:
// days in week order, one switching point per line.
func (s Schedule) Format() string {
	var sb strings.Builder
	for _, day := range Days {
		entries, ok := s[day]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "%s:\n", strings.ToUpper(string(day)))
		for _, e := range entries {
			fmt.Fprintf(&sb, "  %s\n", e.String())
		}
	}
	return sb.String()
}
