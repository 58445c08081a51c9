package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/receitas-client/internal/adapter"
	"github.com/MKhiriev/receitas-client/internal/app"
	"github.com/MKhiriev/receitas-client/internal/service"
)

func (t *TUI) addFavorite(ctx context.Context) {
	mealName := t.prompt(app.MsgAddPrompt)

	favorite, err := t.favorites.Add(ctx, mealName)
	if err != nil {
		if errors.Is(err, service.ErrBlankInput) {
			return
		}
		t.logger.Err(err).Str("meal_name", mealName).Msg("add favorite")

		statusErr, ok := statusOf(err)
		switch {
		case !ok:
			t.printError(describeFailure(err))
		case errors.Is(err, adapter.ErrConflict):
			t.printError(app.MsgFavoriteAlreadyExists)
		case errors.Is(err, adapter.ErrNotFound):
			t.printError(app.MsgMealNotFoundExternal)
		default:
			t.printError(fmt.Sprintf(app.MsgAddFailed, statusErr.Code))
		}
		return
	}

	t.printSuccess(fmt.Sprintf(app.MsgFavoriteAdded, favorite.Name, favorite.ID))
}
