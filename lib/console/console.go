// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// released under the MIT license

package ircconsole

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	CbBlue   = color.New(color.Bold, color.FgHiBlue).SprintfFunc()
	CbCyan   = color.New(color.Bold, color.FgHiCyan).SprintfFunc()
	CbGreen  = color.New(color.Bold, color.FgHiGreen).SprintfFunc()
	CbYellow = color.New(color.Bold, color.FgHiYellow).SprintfFunc()
	CbRed    = color.New(color.Bold, color.FgHiRed).SprintfFunc()
)

// Output is where everything in this package is written.
var Output io.Writer = color.Output

// Section displays a section to the user
func Section(text string) {
	Note("")
	fmt.Fprintln(Output, CbBlue("["), CbYellow("**"), CbBlue("]"), "--", text, "--")
	Note("")
}

// Note displays a note to the user
func Note(text string) {
	fmt.Fprintln(Output, CbBlue("["), CbYellow("**"), CbBlue("]"), text)
}

// Good tells the user something worked
func Good(text string) {
	fmt.Fprintln(Output, CbBlue("["), CbGreen("ok"), CbBlue("]"), text)
}

// Warn warns the user about something
func Warn(text string) {
	fmt.Fprintln(Output, CbBlue("["), CbRed("**"), CbBlue("]"), text)
}

// Error shows the user an error
func Error(text string) {
	fmt.Fprintln(Output, CbBlue("["), CbRed("!!"), CbBlue("]"), CbRed(text))
}
