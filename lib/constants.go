// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// released under the MIT license

package ircname

import (
	"fmt"
)

const (
	// SemVer is the semantic version of ircname.
	SemVer = "0.1.0-unreleased"
)

var (
	// Ver is the full version of ircname.
	Ver = fmt.Sprintf("ircname-%s", SemVer)
)
