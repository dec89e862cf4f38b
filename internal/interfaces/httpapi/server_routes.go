package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsHandler http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}
}

func registerImportRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/tournaments/import-complete", handler.ImportTournament)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/matches/batch", handler.BatchCreateMatches)
	mux.HandleFunc("POST /v1/matches", handler.CreateMatch)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("PUT /v1/matches/{matchID}", handler.UpdateMatch)
	mux.HandleFunc("DELETE /v1/matches/{matchID}", handler.DeleteMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}/games", handler.ListGames)
	mux.HandleFunc("POST /v1/matches/{matchID}/games", handler.AddGame)
	mux.HandleFunc("PUT /v1/matches/{matchID}/games/{gameID}", handler.UpdateGame)
	mux.HandleFunc("DELETE /v1/games/{gameID}", handler.DeleteGame)
}

func registerStatisticsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/statistics/players", handler.ListPlayerStatistics)
	mux.HandleFunc("GET /v1/statistics/players/{playerID}", handler.GetPlayerStatistics)
	mux.HandleFunc("GET /v1/statistics/decks", handler.ListDeckStatistics)
	mux.HandleFunc("GET /v1/statistics/decks/{deckID}", handler.GetDeckStatistics)
	mux.HandleFunc("GET /v1/statistics/matchups", handler.ListDeckMatchups)
	mux.HandleFunc("GET /v1/statistics/matchups/{deckAID}/{deckBID}", handler.GetDeckMatchup)
	mux.HandleFunc("GET /v1/statistics/season-standings", handler.ListSeasonStandings)
	mux.HandleFunc("GET /v1/statistics/season-standings/{seasonID}", handler.GetSeasonStandings)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/overview", handler.GetSeasonOverview)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/seasons", handler.CreateSeason)
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/seasons/{seasonID}", handler.GetSeason)
	mux.HandleFunc("PUT /v1/seasons/{seasonID}", handler.UpdateSeason)
	mux.HandleFunc("DELETE /v1/seasons/{seasonID}", handler.DeleteSeason)

	mux.HandleFunc("POST /v1/tournament-types", handler.CreateTournamentType)
	mux.HandleFunc("GET /v1/tournament-types", handler.ListTournamentTypes)
	mux.HandleFunc("GET /v1/tournament-types/{typeID}", handler.GetTournamentType)
	mux.HandleFunc("PUT /v1/tournament-types/{typeID}", handler.UpdateTournamentType)
	mux.HandleFunc("DELETE /v1/tournament-types/{typeID}", handler.DeleteTournamentType)

	mux.HandleFunc("POST /v1/tournaments", handler.CreateTournament)
	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}", handler.GetTournament)
	mux.HandleFunc("PUT /v1/tournaments/{tournamentID}", handler.UpdateTournament)
	mux.HandleFunc("DELETE /v1/tournaments/{tournamentID}", handler.DeleteTournament)

	mux.HandleFunc("POST /v1/players", handler.CreatePlayer)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("PUT /v1/players/{playerID}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /v1/players/{playerID}", handler.DeletePlayer)

	mux.HandleFunc("POST /v1/decks", handler.CreateDeck)
	mux.HandleFunc("GET /v1/decks", handler.ListDecks)
	mux.HandleFunc("GET /v1/decks/{deckID}", handler.GetDeck)
	mux.HandleFunc("PUT /v1/decks/{deckID}", handler.UpdateDeck)
	mux.HandleFunc("DELETE /v1/decks/{deckID}", handler.DeleteDeck)
}
