/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Day is a lowercase weekday name as the Hive cloud knows it.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// Days lists the week in schedule order.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func ParseDay(s string) (Day, error) {
	d := Day(strings.ToLower(strings.TrimSpace(s)))
	for _, day := range Days {
		if day == d {
			return day, nil
		}
	}
	return "", fmt.Errorf(errUnknownDay, s, ErrUnknownDay)
}

// Entry is one switching point of a heating day: from Time on, hold
// Temp.
type Entry struct {
	Time string  `json:"time" yaml:"time"`
	Temp float64 `json:"temp" yaml:"temp"`
}

func (e Entry) Validate() error {
	if _, err := TimeToMinutes(e.Time); err != nil {
		return err
	}
	if e.Temp < MinTemp || e.Temp > MaxTemp {
		return fmt.Errorf(errTempOutOfRange, e.Temp, MinTemp, MaxTemp, ErrInvalidSchedule)
	}
	return nil
}

func (e Entry) String() string {
	return fmt.Sprintf("%s → %.1f°C", e.Time, e.Temp)
}

// ParseEntry parses the HH:MM=temp form used on the command line.
func ParseEntry(s string) (Entry, error) {
	timeStr, tempStr, found := strings.Cut(s, "=")
	if !found {
		return Entry{}, fmt.Errorf(errInvalidEntrySpec, s, ErrInvalidSchedule)
	}
	temp, err := strconv.ParseFloat(tempStr, 64)
	if err != nil {
		return Entry{}, fmt.Errorf(errInvalidTemp, tempStr, ErrInvalidSchedule)
	}
	e := Entry{Time: timeStr, Temp: temp}
	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// DaySchedule is the ordered switching points of a single day.
type DaySchedule []Entry

func (ds DaySchedule) Validate() error {
	if len(ds) == 0 {
		return fmt.Errorf(errEmptySchedule, ErrInvalidSchedule)
	}
	var err error
	for _, e := range ds {
		err = errors.Join(err, e.Validate())
	}
	return err
}

// Schedule is a heating week, or the part of it the cloud returned.
type Schedule map[Day]DaySchedule

// TimeToMinutes converts "HH:MM" to minutes from midnight.
func TimeToMinutes(s string) (int, error) {
	hourStr, minuteStr, found := strings.Cut(s, ":")
	if !found {
		return 0, fmt.Errorf(errInvalidTimeFormat, s, ErrInvalidSchedule)
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 0 || hour > maxHour {
		return 0, fmt.Errorf(errInvalidTimeFormat, s, ErrInvalidSchedule)
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil || minute < 0 || minute > maxMinute {
		return 0, fmt.Errorf(errInvalidTimeFormat, s, ErrInvalidSchedule)
	}
	return hour*minutesPerHour + minute, nil
}

// MinutesToTime converts minutes from midnight to "HH:MM".
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour)
}
