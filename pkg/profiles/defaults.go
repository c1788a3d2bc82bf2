/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package profiles

import "github.com/hivesched/hivesched/pkg/schedule"

// Defaults returns the built-in profiles, used as the template for a
// fresh profiles file and as the fallback when the file cannot be
// read.
func Defaults() map[string]schedule.DaySchedule {
	return map[string]schedule.DaySchedule{
		"workday": {
			{Time: "05:20", Temp: 18.5},
			{Time: "07:00", Temp: 18.0},
			{Time: "16:30", Temp: 19.5},
			{Time: "21:45", Temp: 16.0},
		},
		"weekend": {
			{Time: "07:30", Temp: 18.5},
			{Time: "09:00", Temp: 18.0},
			{Time: "16:30", Temp: 19.5},
			{Time: "22:00", Temp: 16.0},
		},
		"nonworkday": {
			{Time: "06:30", Temp: 18.5},
			{Time: "08:00", Temp: 18.0},
			{Time: "16:30", Temp: 19.5},
			{Time: "22:00", Temp: 16.0},
		},
		"holiday": {
			{Time: "00:00", Temp: 15.0},
		},
		"all_day_comfort": {
			{Time: "00:00", Temp: 19.0},
		},
		"custom1": {
			{Time: "05:30", Temp: 17.0},
			{Time: "08:00", Temp: 16.5},
			{Time: "12:00", Temp: 18.0},
			{Time: "17:00", Temp: 19.0},
			{Time: "22:30", Temp: 16.0},
		},
		"custom2": {
			{Time: "06:00", Temp: 18.0},
			{Time: "09:00", Temp: 17.5},
			{Time: "13:00", Temp: 18.5},
			{Time: "18:00", Temp: 19.5},
			{Time: "23:00", Temp: 16.5},
		},
	}
}

// defaultProfilesYAML is written as is on first use so the operator
// gets a commented file to edit.
const defaultProfilesYAML = `# Hive Schedule Profiles
# Edit this file to customize your heating schedules
# After editing, changes take effect on the next command (no restart needed)
# Time format: "HH:MM" (24-hour)
# Temperature: Celsius (5.0 - 32.0)

# Standard weekday schedule (Mon-Thur)
workday:
  - time: "05:20"
    temp: 18.5  # Morning warmup
  - time: "07:00"
    temp: 18.0  # Away during day
  - time: "16:30"
    temp: 19.5  # Evening warmup
  - time: "21:45"
    temp: 16.0  # Night setback

# Weekend schedule
weekend:
  - time: "07:30"
    temp: 18.5  # Later morning warmup
  - time: "09:00"
    temp: 18.0  # Comfortable day temperature
  - time: "16:30"
    temp: 19.5  # Evening warmup
  - time: "22:00"
    temp: 16.0  # Later night setback

# Non working weekday, later start
nonworkday:
  - time: "06:30"
    temp: 18.5
  - time: "08:00"
    temp: 18.0
  - time: "16:30"
    temp: 19.5
  - time: "22:00"
    temp: 16.0

# Away/vacation mode (frost protection)
holiday:
  - time: "00:00"
    temp: 15.0

# All day comfort (constant temperature)
all_day_comfort:
  - time: "00:00"
    temp: 19.0

# Custom profile 1 (5 states)
custom1:
  - time: "05:30"
    temp: 17.0
  - time: "08:00"
    temp: 16.5
  - time: "12:00"
    temp: 18.0
  - time: "17:00"
    temp: 19.0
  - time: "22:30"
    temp: 16.0

# Custom profile 2 (5 states)
custom2:
  - time: "06:00"
    temp: 18.0
  - time: "09:00"
    temp: 17.5
  - time: "13:00"
    temp: 18.5
  - time: "18:00"
    temp: 19.5
  - time: "23:00"
    temp: 16.5
`
