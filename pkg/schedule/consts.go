/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package schedule

// nolint
const (
	// heating target bounds accepted by Hive thermostats, °C
	MinTemp = 5.0
	MaxTemp = 32.0

	minutesPerHour = 60
	maxHour        = 23
	maxMinute      = 59
)
