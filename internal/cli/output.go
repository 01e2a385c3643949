package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

// printPaths writes a "Created:" or "Would create:" header and one " - path"
// line per entry.
func printPaths(w io.Writer, dryRun bool, paths []string) {
	if dryRun {
		fmt.Fprintln(w, "Would create:")
	} else {
		fmt.Fprintln(w, "Created:")
	}
	for _, p := range paths {
		fmt.Fprintf(w, " - %s\n", p)
	}
}
