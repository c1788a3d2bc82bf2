/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/untillpro/goutils/logger"
)

var red = color.New(color.FgRed).SprintFunc()
var green = color.New(color.FgGreen).SprintFunc()

func loggerInfo(args ...interface{}) {
	logger.Info(args...)
}

func loggerInfoGreen(args ...interface{}) {
	logger.Info(green(sprint(args...)))
}

func loggerWarning(args ...interface{}) {
	logger.Warning(args...)
}

func loggerError(args ...interface{}) {
	logger.Error(red(sprint(args...)))
}

func sprint(args ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
