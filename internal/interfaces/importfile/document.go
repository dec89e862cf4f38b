// Package importfile defines the JSON document used to import one complete
// tournament, shared by the HTTP endpoint and the importer CLI.
package importfile

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/match"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamentimport"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/usecase"
)

// DateLayout is the calendar date format of tournament_date.
const DateLayout = "2006-01-02"

type Document struct {
	SeasonID   int64           `json:"season_id" validate:"required,gt=0"`
	Tournament TournamentEntry `json:"tournament"`
	Players    []PlayerEntry   `json:"players" validate:"omitempty,dive"`
	Decks      []DeckEntry     `json:"decks" validate:"omitempty,dive"`
	Matches    []MatchEntry    `json:"matches" validate:"required,min=1,dive"`
}

type TournamentEntry struct {
	Name               string `json:"name" validate:"required,max=150"`
	TournamentDate     string `json:"tournament_date" validate:"required,datetime=2006-01-02"`
	Location           string `json:"location,omitempty" validate:"max=200"`
	Format             string `json:"format,omitempty" validate:"max=50"`
	Description        string `json:"description,omitempty"`
	TournamentTypeID   *int64 `json:"tournament_type_id,omitempty" validate:"omitempty,gt=0"`
	TournamentTypeName string `json:"tournament_type_name,omitempty" validate:"max=100"`
}

type PlayerEntry struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email,omitempty" validate:"omitempty,max=150"`
}

type DeckEntry struct {
	Name          string `json:"name" validate:"required,max=100"`
	ColorIdentity string `json:"color_identity,omitempty" validate:"max=10"`
	ArchetypeType string `json:"archetype_type,omitempty" validate:"max=50"`
	Description   string `json:"description,omitempty"`
}

type MatchEntry struct {
	RoundNumber     *int        `json:"round_number,omitempty"`
	Player1Name     string      `json:"player1_name" validate:"required,max=100"`
	Player2Name     string      `json:"player2_name" validate:"required,max=100"`
	Player1DeckName string      `json:"player1_deck_name" validate:"required,max=100"`
	Player2DeckName string      `json:"player2_deck_name" validate:"required,max=100"`
	Notes           string      `json:"notes,omitempty"`
	Games           []GameEntry `json:"games" validate:"required,dive"`
}

type GameEntry struct {
	GameNumber      int    `json:"game_number" validate:"required"`
	WinnerName      string `json:"winner_name" validate:"required,max=100"`
	GameResult      string `json:"game_result,omitempty" validate:"omitempty,oneof=WIN DRAW win draw Win Draw"`
	DurationMinutes *int   `json:"duration_minutes,omitempty"`
}

// Result is the JSON form of a committed import.
type Result struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	RunID          string `json:"run_id"`
	TournamentID   int64  `json:"tournament_id"`
	TournamentName string `json:"tournament_name"`
	PlayersCreated int    `json:"players_created"`
	DecksCreated   int    `json:"decks_created"`
	MatchesCreated int    `json:"matches_created"`
	GamesCreated   int    `json:"games_created"`
}

var validate = validator.New()

// Decode reads one document from r. Unknown fields are rejected.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	decoder := sonic.ConfigDefault.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("%w: invalid import document: %v", usecase.ErrInvalidInput, err)
	}
	return doc, nil
}

func ReadFile(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read import file: %w", err)
	}
	return Decode(bytes.NewReader(raw))
}

// Validate checks field formats. Cross-entity rules such as winner
// attribution and game counts belong to tournamentimport.Validate.
func (d Document) Validate(ctx context.Context) error {
	if err := validate.StructCtx(ctx, d); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// ToPayload converts d into the import payload, trimming display names.
func (d Document) ToPayload() (tournamentimport.Payload, error) {
	date, err := time.Parse(DateLayout, strings.TrimSpace(d.Tournament.TournamentDate))
	if err != nil {
		return tournamentimport.Payload{}, fmt.Errorf("%w: tournament.tournament_date: %v", usecase.ErrInvalidInput, err)
	}

	p := tournamentimport.Payload{
		SeasonID: d.SeasonID,
		Tournament: tournamentimport.TournamentSpec{
			Name:        strings.TrimSpace(d.Tournament.Name),
			Date:        date,
			Location:    d.Tournament.Location,
			Format:      d.Tournament.Format,
			Description: d.Tournament.Description,
			TypeID:      d.Tournament.TournamentTypeID,
			TypeName:    strings.TrimSpace(d.Tournament.TournamentTypeName),
		},
		Players: make([]tournamentimport.PlayerEntry, 0, len(d.Players)),
		Decks:   make([]tournamentimport.DeckEntry, 0, len(d.Decks)),
		Matches: make([]tournamentimport.MatchEntry, 0, len(d.Matches)),
	}
	for _, e := range d.Players {
		p.Players = append(p.Players, tournamentimport.PlayerEntry{
			Name:  strings.TrimSpace(e.Name),
			Email: strings.TrimSpace(e.Email),
		})
	}
	for _, e := range d.Decks {
		p.Decks = append(p.Decks, tournamentimport.DeckEntry{
			Name:          strings.TrimSpace(e.Name),
			ColorIdentity: strings.TrimSpace(e.ColorIdentity),
			ArchetypeType: strings.TrimSpace(e.ArchetypeType),
			Description:   e.Description,
		})
	}
	for _, m := range d.Matches {
		entry := tournamentimport.MatchEntry{
			RoundNumber:     m.RoundNumber,
			Player1Name:     strings.TrimSpace(m.Player1Name),
			Player2Name:     strings.TrimSpace(m.Player2Name),
			Player1DeckName: strings.TrimSpace(m.Player1DeckName),
			Player2DeckName: strings.TrimSpace(m.Player2DeckName),
			Notes:           m.Notes,
			Games:           make([]tournamentimport.GameEntry, 0, len(m.Games)),
		}
		for _, g := range m.Games {
			entry.Games = append(entry.Games, tournamentimport.GameEntry{
				GameNumber:      g.GameNumber,
				WinnerName:      strings.TrimSpace(g.WinnerName),
				Result:          match.GameResult(strings.ToUpper(strings.TrimSpace(g.GameResult))),
				DurationMinutes: g.DurationMinutes,
			})
		}
		p.Matches = append(p.Matches, entry)
	}

	return p, nil
}

func FromResult(r tournamentimport.Result) Result {
	return Result{
		Success:        true,
		Message:        usecase.ImportMessage(r),
		RunID:          r.RunID,
		TournamentID:   r.TournamentID,
		TournamentName: r.TournamentName,
		PlayersCreated: r.PlayersCreated,
		DecksCreated:   r.DecksCreated,
		MatchesCreated: r.MatchesCreated,
		GamesCreated:   r.GamesCreated,
	}
}
