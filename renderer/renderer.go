// Package renderer turns the core report types into markdown for terminal
// display. Amount columns are rendered inside fenced code blocks so the
// indentation that encodes account depth survives the markdown pipeline.
package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// ConditionalBlock lets a section be fully written and decided on at the end:
// if the block function returns true the content is printed to w, otherwise
// it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// column widths for the fenced account/amount tables.
const (
	nameWidth   = 40
	amountWidth = 24
)

// tableLine renders one aligned "account  amount" line, the name indented two
// spaces per depth level.
func tableLine(w io.Writer, depth int, name, amount string) {
	indented := strings.Repeat("  ", depth) + name
	fmt.Fprintf(w, "%-*s  %*s\n", nameWidth, indented, amountWidth, amount)
}

func rule(w io.Writer) {
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", nameWidth+amountWidth+2))
}

func fence(w io.Writer, body func(io.Writer)) {
	fmt.Fprintln(w, "```")
	body(w)
	fmt.Fprintln(w, "```")
}
