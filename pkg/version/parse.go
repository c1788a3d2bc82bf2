/*
* Copyright (c) 2024-present Sigma-Soft, Ltd.
* @author Dmitry Molchanovsky
 */

package version

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Version is a parsed release version: an optional textual prefix
// followed by one or more dot-separated decimal components.
// Values are immutable, Bump returns a copy.
type Version struct {
	Prefix  string
	Numbers []string
}

// Parse accepts strings of the form <prefix><int>(.<int>)* where the
// prefix is zero or more non-digit characters. Everything after the
// first digit must be dot-separated decimal components.
func Parse(s string) (Version, error) {
	numStart := strings.IndexFunc(s, isDigit)
	if numStart < 0 {
		return Version{}, fmt.Errorf(errCannotParseVersion, s, ErrInvalidFormat)
	}
	numbers := strings.Split(s[numStart:], ".")
	for _, n := range numbers {
		if _, err := strconv.ParseUint(n, decimalBase, bitSize64); err != nil {
			return Version{}, fmt.Errorf(errCannotParseVersion, s, ErrInvalidFormat)
		}
	}
	return Version{Prefix: s[:numStart], Numbers: numbers}, nil
}

// Bump returns the version with its last component incremented by one.
// The prefix and all leading components are kept verbatim.
func (v Version) Bump() Version {
	numbers := make([]string, len(v.Numbers))
	copy(numbers, v.Numbers)
	last, _ := strconv.ParseUint(numbers[len(numbers)-1], decimalBase, bitSize64)
	numbers[len(numbers)-1] = strconv.FormatUint(last+1, decimalBase)
	return Version{Prefix: v.Prefix, Numbers: numbers}
}

func (v Version) String() string {
	return v.Prefix + strings.Join(v.Numbers, ".")
}

// TagName returns the git tag for the version: prefixed versions tag
// verbatim, bare numeric ones get the conventional "v".
func (v Version) TagName() string {
	if v.Prefix != "" {
		return v.String()
	}
	return "v" + v.String()
}

// Semver returns the numeric part in the "vMAJOR[.MINOR[.PATCH]]" form
// understood by golang.org/x/mod/semver, or "" when the version is not
// semver-shaped (too many components, leading zeros and so on).
func (v Version) Semver() string {
	s := "v" + strings.Join(v.Numbers, ".")
	if !semver.IsValid(s) {
		return ""
	}
	return s
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
