// Copyright (c) 2017 Darren Whitlen <darren@kiwiirc.com>
// released under the MIT license

package ircconsole

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
)

/**
 * Table writer outputs to a Writer interface but we want to hand lines to
 * the console helpers. This wraps tablewriter.Table with a buffer.
 */

type Table struct {
	*tablewriter.Table
	Out *bytes.Buffer
}

func NewTable(header ...string) *Table {
	table := &Table{
		Out: new(bytes.Buffer),
	}
	table.Table = tablewriter.NewWriter(table.Out)
	table.SetHeader(header)
	return table
}

func (table *Table) RenderToString() string {
	table.Render()
	return table.Out.String()
}

// RenderToOutput writes the table to Output.
func (table *Table) RenderToOutput() {
	out := strings.Trim(table.RenderToString(), "\n")
	for _, line := range strings.Split(out, "\n") {
		fmt.Fprintln(Output, line)
	}
}
