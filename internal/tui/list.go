package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/receitas-client/internal/app"
	"github.com/MKhiriev/receitas-client/models"
)

func (t *TUI) listFavorites(ctx context.Context) {
	t.printTitle(app.MsgListTitle)

	recipes, err := t.favorites.List(ctx)
	if err != nil {
		t.logger.Err(err).Msg("list favorites")
		if statusErr, ok := statusOf(err); ok {
			t.printError(fmt.Sprintf(app.MsgListHTTPError, statusErr.Code, statusErr.Body))
			return
		}
		t.printError(describeFailure(err))
		return
	}

	t.println(renderRecipeList(recipes))
}

// renderRecipeList formats the favorites as a fixed-width table. An empty
// list renders as a single notice without header.
func renderRecipeList(recipes models.RecipeList) string {
	if len(recipes) == 0 {
		return app.MsgNoFavorites
	}

	var b strings.Builder
	fmt.Fprintf(&b, app.MsgFavoritesFound+"\n\n", len(recipes))
	fmt.Fprintf(&b, "%-*s %-*s %s\n", idColumnWidth, "ID", nameColumnWidth, "Nome", "Categoria")
	b.WriteString(uiDivider)
	for _, r := range recipes {
		b.WriteString("\n")
		b.WriteString(renderRecipeRow(r))
	}
	return b.String()
}

func renderRecipeRow(r models.RecipeEntry) string {
	return fmt.Sprintf("%-*d %-*s %s",
		idColumnWidth, r.ID,
		nameColumnWidth, fitColumn(r.Name, nameColumnWidth),
		r.Category,
	)
}
