package tui

import (
	"fmt"
	"strings"
)

const uiDivider = "────────────────────────────────────────────────────────────"

const (
	idColumnWidth   = 5
	nameColumnWidth = 30
)

func (t *TUI) println(s string) {
	_, _ = fmt.Fprintln(t.out, s)
}

func (t *TUI) printTitle(title string) {
	t.println(t.styles.title.Render(title))
	t.println(uiDivider)
}

func (t *TUI) printError(msg string) {
	t.println(t.styles.err.Render(msg))
}

func (t *TUI) printSuccess(msg string) {
	t.println(t.styles.success.Render(msg))
}

// fitColumn cuts v to at most width runes. Unlike an ellipsis this keeps
// exactly width characters of v.
func fitColumn(v string, width int) string {
	runes := []rune(v)
	if width <= 0 || len(runes) <= width {
		return v
	}
	return string(runes[:width])
}

func joinNonEmpty(values []string, sep string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			kept = append(kept, v)
		}
	}
	return strings.Join(kept, sep)
}
