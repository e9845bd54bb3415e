// Copyright (c) 2017 Darren Whitlen <darren@kiwiirc.com>
// released under the MIT license

package ircctcp

import (
	"strings"
)

// Delim marks the start and end of a CTCP body inside a PRIVMSG or NOTICE.
const Delim = "\x01"

const (
	ACTION     = "ACTION"
	CLIENTINFO = "CLIENTINFO"
	DCC        = "DCC"
	ERRMSG     = "ERRMSG"
	FINGER     = "FINGER"
	PING       = "PING"
	SOURCE     = "SOURCE"
	TIME       = "TIME"
	USERINFO   = "USERINFO"
	VERSION    = "VERSION"
)

// Quote wraps a CTCP command and its params into a message body.
func Quote(command string, params ...string) string {
	body := strings.Join(append([]string{command}, params...), " ")
	return Delim + body + Delim
}

// IsQuoted returns true if text is a complete CTCP body.
func IsQuoted(text string) bool {
	return len(text) > 1 && strings.HasPrefix(text, Delim) && strings.HasSuffix(text, Delim)
}
