package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown report on the terminal. When rendering
// fails (unknown terminal, broken style) the raw markdown is still printed.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: markdown rendering failed:", err)
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
