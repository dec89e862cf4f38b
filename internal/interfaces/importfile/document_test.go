package importfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/match"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamentimport"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/usecase"
)

const sampleDocument = `{
  "season_id": 1,
  "tournament": {
    "name": " January FNM ",
    "tournament_date": "2026-01-20",
    "location": "Local Game Store",
    "format": "Standard",
    "tournament_type_name": "LGS Tournament"
  },
  "players": [
    {"name": "Alice Johnson", "email": "alice@email.com"},
    {"name": "Bob Smith"}
  ],
  "decks": [
    {"name": "Mono Red Aggro", "color_identity": "R", "archetype_type": "Aggro"},
    {"name": "Azorius Control", "color_identity": "WU", "archetype_type": "Control"}
  ],
  "matches": [
    {
      "round_number": 1,
      "player1_name": "Alice Johnson",
      "player2_name": "Bob Smith",
      "player1_deck_name": "Mono Red Aggro",
      "player2_deck_name": "Azorius Control",
      "games": [
        {"game_number": 1, "winner_name": "Alice Johnson", "duration_minutes": 12},
        {"game_number": 2, "winner_name": "Bob Smith", "game_result": "draw"},
        {"game_number": 3, "winner_name": "Alice Johnson"}
      ]
    }
  ]
}`

func TestDecodeAndConvert(t *testing.T) {
	t.Parallel()

	doc, err := Decode(strings.NewReader(sampleDocument))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := doc.Validate(t.Context()); err != nil {
		t.Fatalf("validate: %v", err)
	}

	p, err := doc.ToPayload()
	if err != nil {
		t.Fatalf("to payload: %v", err)
	}
	if p.SeasonID != 1 || p.Tournament.Name != "January FNM" {
		t.Fatalf("unexpected tournament: %+v", p.Tournament)
	}
	if !p.Tournament.Date.Equal(time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %s", p.Tournament.Date)
	}
	if len(p.Matches) != 1 || len(p.Matches[0].Games) != 3 {
		t.Fatalf("unexpected matches: %+v", p.Matches)
	}
	if got := p.Matches[0].Games[1].Result; got != match.ResultDraw {
		t.Fatalf("expected game result to be normalized to DRAW, got %q", got)
	}
	if got := p.Matches[0].Games[0].ResultOrDefault(); got != match.ResultWin {
		t.Fatalf("expected missing game result to default to WIN, got %q", got)
	}
	if violations := tournamentimport.Validate(p); len(violations) != 0 {
		t.Fatalf("expected converted payload to be valid, got %v", violations)
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader(`{"season_id": 1, "venue": "garage"}`))
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestValidateRejectsBadFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(d *Document)
	}{
		{name: "bad date", mutate: func(d *Document) { d.Tournament.TournamentDate = "20/01/2026" }},
		{name: "missing season", mutate: func(d *Document) { d.SeasonID = 0 }},
		{name: "no matches", mutate: func(d *Document) { d.Matches = nil }},
		{name: "unknown game result", mutate: func(d *Document) { d.Matches[0].Games[0].GameResult = "LOSS" }},
		{name: "long color identity", mutate: func(d *Document) { d.Decks[0].ColorIdentity = "WUBRGWUBRGC" }},
		{name: "long match player name", mutate: func(d *Document) { d.Matches[0].Player1Name = strings.Repeat("a", 101) }},
		{name: "long match deck name", mutate: func(d *Document) { d.Matches[0].Player2DeckName = strings.Repeat("d", 101) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := Decode(strings.NewReader(sampleDocument))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			tt.mutate(&doc)
			if err := doc.Validate(t.Context()); !errors.Is(err, usecase.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fnm.json")
	if err := os.WriteFile(path, []byte(sampleDocument), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	doc, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if len(doc.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(doc.Players))
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFromResult(t *testing.T) {
	t.Parallel()

	got := FromResult(tournamentimport.Result{RunID: "run-1", TournamentID: 7, TournamentName: "January FNM", MatchesCreated: 3})
	if !got.Success || got.TournamentID != 7 || got.MatchesCreated != 3 {
		t.Fatalf("unexpected result: %+v", got)
	}
	if !strings.Contains(got.Message, "January FNM") {
		t.Fatalf("expected message to name the tournament, got %q", got.Message)
	}
}
