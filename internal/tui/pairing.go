package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/receitas-client/internal/adapter"
	"github.com/MKhiriev/receitas-client/internal/app"
	"github.com/MKhiriev/receitas-client/models"
)

func (t *TUI) showPairing(ctx context.Context) {
	t.printTitle(app.MsgPairingTitle)

	suggestion, err := t.pairing.Suggest(ctx)
	if err != nil {
		t.logger.Err(err).Msg("pairing suggestion")
		if errors.Is(err, adapter.ErrInternalServerError) {
			t.printError(app.MsgPairingUpstreamError)
			return
		}
		t.printError(app.MsgPairingFailed)
		return
	}

	t.println(renderPairing(suggestion))
}

// renderPairing prints the message, the dish and the drink. Category, area
// and ingredients are optional and skipped when the server omits them.
func renderPairing(s models.PairingSuggestion) string {
	lines := []string{s.Message, ""}
	lines = append(lines, fmt.Sprintf(app.MsgPairingMainCourse, s.MainCourse.Name))
	if s.MainCourse.Category != "" || s.MainCourse.Area != "" {
		lines = append(lines, fmt.Sprintf(app.MsgPairingDetails,
			orDash(s.MainCourse.Category), orDash(s.MainCourse.Area)))
	}

	lines = append(lines, fmt.Sprintf(app.MsgPairingDrink, s.SuggestedDrink.Name, s.SuggestedDrink.Type))
	if ingredients := joinNonEmpty(s.SuggestedDrink.Ingredients, ", "); ingredients != "" {
		lines = append(lines, fmt.Sprintf(app.MsgPairingIngredients, ingredients))
	}

	return strings.Join(lines, "\n")
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
