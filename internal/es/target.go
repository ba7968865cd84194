// Package es names the ECMAScript editions the output may rely on.
package es

import (
	"fmt"
	"strings"
)

// Target is the newest language edition transformed output may use. The
// ordering follows publication years, with Next above every numbered edition.
type Target uint8

const (
	ES2015 Target = iota + 1
	ES2016
	ES2017
	ES2018
	ES2019
	ES2020
	ES2021
	ES2022
	ES2023
	ES2024
	// Next places no edition limit on the output.
	Next
)

// String returns the tag form of the target, as written in configuration.
func (t Target) String() string {
	switch t {
	case ES2015:
		return "es2015"
	case ES2016:
		return "es2016"
	case ES2017:
		return "es2017"
	case ES2018:
		return "es2018"
	case ES2019:
		return "es2019"
	case ES2020:
		return "es2020"
	case ES2021:
		return "es2021"
	case ES2022:
		return "es2022"
	case ES2023:
		return "es2023"
	case ES2024:
		return "es2024"
	case Next:
		return "esnext"
	default:
		return "unknown"
	}
}

// ParseTarget converts a configuration tag to a Target.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(s) {
	case "es2015", "es6":
		return ES2015, nil
	case "es2016":
		return ES2016, nil
	case "es2017":
		return ES2017, nil
	case "es2018":
		return ES2018, nil
	case "es2019":
		return ES2019, nil
	case "es2020":
		return ES2020, nil
	case "es2021":
		return ES2021, nil
	case "es2022":
		return ES2022, nil
	case "es2023":
		return ES2023, nil
	case "es2024":
		return ES2024, nil
	case "esnext":
		return Next, nil
	default:
		return 0, fmt.Errorf("invalid target: %q (expected: es2015..es2024|esnext)", s)
	}
}

// AtLeast reports whether output for t may use features introduced in e.
func (t Target) AtLeast(e Target) bool {
	return t >= e
}
