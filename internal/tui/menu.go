package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/receitas-client/internal/app"
)

const (
	menuExit    = "0"
	menuList    = "1"
	menuAdd     = "2"
	menuDelete  = "3"
	menuPairing = "4"
)

// MainLoop shows the menu and runs the selected action until the user picks
// 0 or input is exhausted. Action failures are printed and never end the
// loop; only a failing input stream does.
func (t *TUI) MainLoop(ctx context.Context) error {
	for {
		t.printMenu()

		choice, err := t.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				t.println("")
				t.println(app.MsgGoodbye)
				return nil
			}
			return fmt.Errorf("read menu choice: %w", err)
		}

		choice = strings.TrimSpace(choice)
		t.logger.Debug().Str("choice", choice).Msg("menu selection")

		switch choice {
		case menuExit:
			t.println(app.MsgGoodbye)
			return nil
		case menuList:
			t.listFavorites(ctx)
		case menuAdd:
			t.addFavorite(ctx)
		case menuDelete:
			t.deleteFavorite(ctx)
		case menuPairing:
			t.showPairing(ctx)
		default:
			t.printError(app.MsgInvalidOption)
			continue
		}

		t.waitForEnter()
	}
}

func (t *TUI) printMenu() {
	t.println("")
	t.println(t.styles.title.Render(app.MsgMenuTitle))
	for _, option := range strings.Split(app.MsgMenuOptions, "\n") {
		t.println(option)
	}
	_, _ = fmt.Fprint(t.out, app.MsgMenuPrompt)
}
