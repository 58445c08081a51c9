// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings printed by the
// receitas console client.
//
// Keeping them in one place ensures consistent wording across the menu
// actions and lets tests assert on exact output. Messages with verbs are
// fmt format strings.
package app

const (
	// MsgMenuTitle heads the main menu.
	MsgMenuTitle = "=== Receitas Favoritas ==="

	// MsgMenuOptions lists the menu choices, one per line.
	MsgMenuOptions = "1 - Listar favoritos\n" +
		"2 - Adicionar favorito\n" +
		"3 - Remover favorito\n" +
		"4 - Sugestão de prato e bebida\n" +
		"0 - Sair"

	// MsgMenuPrompt asks for a menu selection.
	MsgMenuPrompt = "Escolha uma opção: "

	// MsgInvalidOption is printed for any selection outside 0-4.
	MsgInvalidOption = "Opção inválida."

	// MsgPressEnter blocks after each action until the user hits Enter.
	MsgPressEnter = "Pressione Enter para continuar..."

	// MsgGoodbye is printed when the user selects 0.
	MsgGoodbye = "Até logo!"
)

const (
	// MsgConnectionError reports a transport failure (DNS, refused
	// connection, timeout). Argument: the underlying error.
	MsgConnectionError = "Erro de conexão com o servidor: %v"

	// MsgDecodeError reports a response body that could not be decoded.
	// Argument: the underlying error.
	MsgDecodeError = "Erro ao interpretar a resposta do servidor: %v"
)

const (
	// MsgListTitle heads the favorites table.
	MsgListTitle = "Receitas favoritas"

	// MsgNoFavorites is the single notice printed for an empty list.
	MsgNoFavorites = "Nenhuma receita favorita cadastrada."

	// MsgFavoritesFound precedes the table. Argument: entry count.
	MsgFavoritesFound = "%d receitas encontradas"

	// MsgListHTTPError reports a non-200 list response. Arguments: status
	// code and raw body.
	MsgListHTTPError = "Erro: %d - %s"
)

const (
	// MsgAddPrompt asks for the meal name to add.
	MsgAddPrompt = "Nome da receita: "

	// MsgFavoriteAdded confirms a 201. Arguments: name and id.
	MsgFavoriteAdded = "Receita '%s' adicionada aos favoritos com ID %d."

	// MsgFavoriteAlreadyExists reports a 409.
	MsgFavoriteAlreadyExists = "Essa receita já está nos favoritos."

	// MsgMealNotFoundExternal reports a 404: the server could not find the
	// meal in its external recipe database.
	MsgMealNotFoundExternal = "Receita não encontrada na base externa (TheMealDB)."

	// MsgAddFailed reports any other status. Argument: status code.
	MsgAddFailed = "Erro ao adicionar favorito. Status: %d"
)

const (
	// MsgDeletePrompt asks for the favorite id to delete.
	MsgDeletePrompt = "ID da receita a remover: "

	// MsgFavoriteDeleted confirms a 204.
	MsgFavoriteDeleted = "Receita removida dos favoritos."

	// MsgFavoriteNotFound reports a 404 on delete.
	MsgFavoriteNotFound = "Receita favorita não encontrada."

	// MsgDeleteFailed reports any other status. Argument: status code.
	MsgDeleteFailed = "Erro ao remover favorito. Status: %d"
)

const (
	// MsgPairingTitle heads the pairing output.
	MsgPairingTitle = "Sugestão do chef"

	// MsgPairingMainCourse introduces the dish. Argument: dish name.
	MsgPairingMainCourse = "Prato principal: %s"

	// MsgPairingDetails adds category and area when present. Arguments:
	// category and area.
	MsgPairingDetails = "Categoria: %s | Origem: %s"

	// MsgPairingDrink introduces the drink. Arguments: name and type.
	MsgPairingDrink = "Bebida: %s (%s)"

	// MsgPairingIngredients lists the drink ingredients. Argument: the
	// comma-joined list.
	MsgPairingIngredients = "Ingredientes: %s"

	// MsgPairingUpstreamError reports a 500: the server failed to reach
	// the recipe or cocktail APIs.
	MsgPairingUpstreamError = "Erro no servidor ao consultar as APIs de receitas e cocktails."

	// MsgPairingFailed is the generic failure for any other status or a
	// transport error.
	MsgPairingFailed = "Não foi possível obter uma sugestão no momento."
)

const (
	// MsgDecoderUnavailable is printed to stderr when the protobuf decoder
	// cannot be assembled at startup. Argument: the probe error.
	MsgDecoderUnavailable = "Decodificador Protocol Buffers indisponível: %v"

	// MsgDecoderRemediation tells the user how to fix a failed probe.
	MsgDecoderRemediation = "Verifique se o esquema em proto/receitas.proto corresponde ao servidor " +
		"e recompile o cliente com: go build ./cmd/client"
)
