package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/receitas-client/internal/adapter"
	"github.com/MKhiriev/receitas-client/internal/app"
	"github.com/MKhiriev/receitas-client/internal/service"
)

func (t *TUI) deleteFavorite(ctx context.Context) {
	id := t.prompt(app.MsgDeletePrompt)

	err := t.favorites.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrBlankInput) {
			return
		}
		t.logger.Err(err).Str("favorite_id", id).Msg("delete favorite")

		statusErr, ok := statusOf(err)
		switch {
		case !ok:
			t.printError(describeFailure(err))
		case errors.Is(err, adapter.ErrNotFound):
			t.printError(app.MsgFavoriteNotFound)
		default:
			t.printError(fmt.Sprintf(app.MsgDeleteFailed, statusErr.Code))
		}
		return
	}

	t.printSuccess(app.MsgFavoriteDeleted)
}
