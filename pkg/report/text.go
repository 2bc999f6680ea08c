package report

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/bundlecheck/pkg/bundle"
)

// TextOptions configures [WriteText].
type TextOptions struct {
	Color bool
}

var (
	styleBundled = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleMissing = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("167"))
	styleUnused  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
)

// reasonGap is the space between the longest name and the reason column.
const reasonGap = 4

// WriteText writes the human-readable report.
func WriteText(w io.Writer, res *bundle.Result, opts TextOptions) error {
	bw := bufio.NewWriter(w)
	header := func(s lipgloss.Style, title string) {
		if opts.Color {
			title = s.Render(title)
		}
		fmt.Fprintln(bw, title)
	}

	fmt.Fprintln(bw)
	header(styleBundled, "Bundled dependencies:")
	pad := maxLen(res.Names()) + reasonGap
	for _, e := range res.Bundled {
		fmt.Fprintf(bw, "%-*s%s\n", pad, "* "+e.Name, e.Reason)
	}

	if len(res.Missing) > 0 {
		header(styleMissing, "Missing dependencies:")
		writeList(bw, res.Missing)
	}
	if len(res.Unused) > 0 {
		header(styleUnused, "Unused dependencies:")
		writeList(bw, res.Unused)
	}
	fmt.Fprintln(bw)
	return bw.Flush()
}

func writeList(w io.Writer, names []string) {
	for _, n := range names {
		fmt.Fprintf(w, "* %s\n", n)
	}
}

func maxLen(names []string) int {
	n := 0
	for _, s := range names {
		n = max(n, utf8.RuneCountInString(s))
	}
	return n
}
