/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package beekeeper

import "time"

// nolint
const (
	// the UK production endpoint the Hive web client talks to
	DefaultBaseURL = "https://beekeeper-uk.hivehome.com/1.0"

	headerOrigin  = "https://my.hivehome.com"
	headerReferer = "https://my.hivehome.com/"

	requestTimeout = 30 * time.Second

	// shown characters at either end of a logged token
	tokenPeekLen = 10

	maxLoggedBodyLen = 500
)
