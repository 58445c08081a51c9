package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/receitas-client/internal/app"
)

// readLine reads one line without its trailing newline. A final line
// without newline is returned as is; io.EOF is only reported when nothing
// was read.
func (t *TUI) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// prompt prints label without a newline and reads the answer. A read error
// yields an empty answer, which every action treats as "cancel".
func (t *TUI) prompt(label string) string {
	_, _ = fmt.Fprint(t.out, label)
	answer, err := t.readLine()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			t.logger.Warn().Err(err).Msg("read prompt answer")
		}
		return ""
	}
	return answer
}

func (t *TUI) waitForEnter() {
	_, _ = fmt.Fprint(t.out, t.styles.help.Render(app.MsgPressEnter))
	_, _ = t.readLine()
	t.println("")
}
