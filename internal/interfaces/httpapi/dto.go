package httpapi

import (
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/deck"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/match"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/player"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/season"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/statistics"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournament"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamenttype"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/usecase"
)

type seasonDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type tournamentTypeDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PointsWin   int    `json:"points_win"`
	PointsDraw  int    `json:"points_draw"`
	Description string `json:"description,omitempty"`
}

type tournamentDTO struct {
	ID               int64     `json:"id"`
	SeasonID         int64     `json:"season_id"`
	TournamentTypeID int64     `json:"tournament_type_id"`
	Name             string    `json:"name"`
	TournamentDate   string    `json:"tournament_date"`
	Location         string    `json:"location,omitempty"`
	Format           string    `json:"format,omitempty"`
	Description      string    `json:"description,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type playerDTO struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email,omitempty"`
	Active           bool      `json:"active"`
	RegistrationDate string    `json:"registration_date"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type deckDTO struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	ColorIdentity string    `json:"color_identity"`
	ArchetypeType string    `json:"archetype_type"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type gameDTO struct {
	ID              int64     `json:"id"`
	MatchID         int64     `json:"match_id"`
	GameNumber      int       `json:"game_number"`
	WinnerID        int64     `json:"winner_id"`
	GameResult      string    `json:"game_result"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type matchDTO struct {
	ID            int64     `json:"id"`
	TournamentID  int64     `json:"tournament_id"`
	Player1ID     int64     `json:"player1_id"`
	Player2ID     int64     `json:"player2_id"`
	Player1DeckID int64     `json:"player1_deck_id"`
	Player2DeckID int64     `json:"player2_deck_id"`
	RoundNumber   *int      `json:"round_number,omitempty"`
	MatchStatus   string    `json:"match_status"`
	MatchDate     time.Time `json:"match_date"`
	Notes         string    `json:"notes,omitempty"`
	Games         []gameDTO `json:"games"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type batchErrorDTO struct {
	Index           int            `json:"index"`
	OffendingFields map[string]any `json:"offending_fields"`
	Message         string         `json:"message"`
}

type batchResultDTO struct {
	SuccessCount    int             `json:"success_count"`
	FailedCount     int             `json:"failed_count"`
	CreatedMatchIDs []int64         `json:"created_match_ids"`
	Errors          []batchErrorDTO `json:"errors"`
}

type playerStatDTO struct {
	PlayerID          int64    `json:"player_id"`
	PlayerName        string   `json:"player_name"`
	TotalMatches      int      `json:"total_matches"`
	MatchesWon        int      `json:"matches_won"`
	MatchesDrawn      int      `json:"matches_drawn"`
	MatchesLost       int      `json:"matches_lost"`
	WinRatePercentage *float64 `json:"win_rate_percentage"`
	DecksPlayed       int      `json:"decks_played"`
	TournamentsPlayed int      `json:"tournaments_played"`
}

type deckStatDTO struct {
	DeckID            int64    `json:"deck_id"`
	DeckName          string   `json:"deck_name"`
	ColorIdentity     string   `json:"color_identity"`
	ArchetypeType     string   `json:"archetype_type"`
	TotalMatches      int      `json:"total_matches"`
	MatchesWon        int      `json:"matches_won"`
	MatchesDrawn      int      `json:"matches_drawn"`
	MatchesLost       int      `json:"matches_lost"`
	WinRatePercentage *float64 `json:"win_rate_percentage"`
	UniquePlayers     int      `json:"unique_players"`
	TournamentsPlayed int      `json:"tournaments_played"`
}

type matchupDTO struct {
	DeckAID                int64    `json:"deck_a_id"`
	DeckAName              string   `json:"deck_a_name"`
	DeckBID                int64    `json:"deck_b_id"`
	DeckBName              string   `json:"deck_b_name"`
	TotalMatches           int      `json:"total_matches"`
	DeckAWins              int      `json:"deck_a_wins"`
	Draws                  int      `json:"draws"`
	DeckALosses            int      `json:"deck_a_losses"`
	DeckAWinRatePercentage *float64 `json:"deck_a_win_rate_percentage"`
	DeckBWinRatePercentage *float64 `json:"deck_b_win_rate_percentage"`
}

type standingDTO struct {
	SeasonID      int64  `json:"season_id"`
	SeasonName    string `json:"season_name"`
	PlayerID      int64  `json:"player_id"`
	PlayerName    string `json:"player_name"`
	MatchesPlayed int    `json:"matches_played"`
	Wins          int    `json:"wins"`
	Draws         int    `json:"draws"`
	Losses        int    `json:"losses"`
	Points        int    `json:"points"`
}

type seasonOverviewDTO struct {
	Season    seasonDTO     `json:"season"`
	Standings []standingDTO `json:"standings"`
	Decks     []deckStatDTO `json:"decks"`
	Matchups  []matchupDTO  `json:"matchups"`
}

func seasonToDTO(v season.Season) seasonDTO {
	return seasonDTO{
		ID:          v.ID,
		Name:        v.Name,
		StartDate:   v.StartDate.Format(dateLayout),
		EndDate:     formatOptionalDate(v.EndDate),
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func tournamentTypeToDTO(v tournamenttype.TournamentType) tournamentTypeDTO {
	return tournamentTypeDTO{
		ID:          v.ID,
		Name:        v.Name,
		PointsWin:   v.PointsWin,
		PointsDraw:  v.PointsDraw,
		Description: v.Description,
	}
}

func tournamentToDTO(v tournament.Tournament) tournamentDTO {
	return tournamentDTO{
		ID:               v.ID,
		SeasonID:         v.SeasonID,
		TournamentTypeID: v.TournamentTypeID,
		Name:             v.Name,
		TournamentDate:   v.Date.Format(dateLayout),
		Location:         v.Location,
		Format:           v.Format,
		Description:      v.Description,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:               v.ID,
		Name:             v.Name,
		Email:            v.Email,
		Active:           v.Active,
		RegistrationDate: v.RegistrationDate.Format(dateLayout),
		Notes:            v.Notes,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func deckToDTO(v deck.Archetype) deckDTO {
	return deckDTO{
		ID:            v.ID,
		Name:          v.Name,
		ColorIdentity: v.ColorIdentity,
		ArchetypeType: v.ArchetypeType,
		Description:   v.Description,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func gameToDTO(v match.Game) gameDTO {
	return gameDTO{
		ID:              v.ID,
		MatchID:         v.MatchID,
		GameNumber:      v.GameNumber,
		WinnerID:        v.WinnerID,
		GameResult:      string(v.Result),
		DurationMinutes: v.DurationMinutes,
		Notes:           v.Notes,
		CreatedAt:       v.CreatedAt,
	}
}

func matchToDTO(v match.Match) matchDTO {
	games := make([]gameDTO, 0, len(v.Games))
	for _, g := range v.Games {
		games = append(games, gameToDTO(g))
	}
	return matchDTO{
		ID:            v.ID,
		TournamentID:  v.TournamentID,
		Player1ID:     v.Player1ID,
		Player2ID:     v.Player2ID,
		Player1DeckID: v.Player1DeckID,
		Player2DeckID: v.Player2DeckID,
		RoundNumber:   v.RoundNumber,
		MatchStatus:   string(v.Status),
		MatchDate:     v.MatchDate,
		Notes:         v.Notes,
		Games:         games,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func batchResultToDTO(v usecase.BatchResult) batchResultDTO {
	out := batchResultDTO{
		SuccessCount:    v.SuccessCount,
		FailedCount:     v.FailedCount,
		CreatedMatchIDs: v.CreatedMatchIDs,
		Errors:          make([]batchErrorDTO, 0, len(v.Errors)),
	}
	if out.CreatedMatchIDs == nil {
		out.CreatedMatchIDs = []int64{}
	}
	for _, e := range v.Errors {
		out.Errors = append(out.Errors, batchErrorDTO{Index: e.Index, OffendingFields: e.OffendingFields, Message: e.Message})
	}
	return out
}

func playerStatsToDTO(items []statistics.PlayerStat) []playerStatDTO {
	out := make([]playerStatDTO, 0, len(items))
	for _, v := range items {
		out = append(out, playerStatDTO(v))
	}
	return out
}

func deckStatsToDTO(items []statistics.DeckStat) []deckStatDTO {
	out := make([]deckStatDTO, 0, len(items))
	for _, v := range items {
		out = append(out, deckStatDTO(v))
	}
	return out
}

func matchupsToDTO(items []statistics.Matchup) []matchupDTO {
	out := make([]matchupDTO, 0, len(items))
	for _, v := range items {
		out = append(out, matchupDTO(v))
	}
	return out
}

func standingsToDTO(items []statistics.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(items))
	for _, v := range items {
		out = append(out, standingDTO(v))
	}
	return out
}
