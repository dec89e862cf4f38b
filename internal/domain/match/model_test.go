package match

import "testing"

func validMatch() Match {
	return Match{
		TournamentID:  1,
		Player1ID:     1,
		Player2ID:     2,
		Player1DeckID: 1,
		Player2DeckID: 2,
		Status:        StatusCompleted,
		Games: []Game{
			{GameNumber: 1, WinnerID: 1, Result: ResultWin},
			{GameNumber: 2, WinnerID: 9, Result: ResultWin},
		},
	}
}

func TestMatchValidate(t *testing.T) {
	t.Parallel()

	round := 0
	duration := -5
	tests := []struct {
		name    string
		mutate  func(m *Match)
		wantErr bool
	}{
		{name: "valid with winner outside match", mutate: func(*Match) {}},
		{name: "single game allowed", mutate: func(m *Match) { m.Games = m.Games[:1] }},
		{name: "same players", mutate: func(m *Match) { m.Player2ID = m.Player1ID }, wantErr: true},
		{name: "no games", mutate: func(m *Match) { m.Games = nil }, wantErr: true},
		{name: "duplicate game number", mutate: func(m *Match) { m.Games[1].GameNumber = 1 }, wantErr: true},
		{name: "game number out of range", mutate: func(m *Match) { m.Games[1].GameNumber = 4 }, wantErr: true},
		{name: "bad status", mutate: func(m *Match) { m.Status = "PAUSED" }, wantErr: true},
		{name: "bad result", mutate: func(m *Match) { m.Games[0].Result = "LOSS" }, wantErr: true},
		{name: "round below one", mutate: func(m *Match) { m.RoundNumber = &round }, wantErr: true},
		{name: "non-positive duration", mutate: func(m *Match) { m.Games[0].DurationMinutes = &duration }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := validMatch()
			tc.mutate(&m)
			err := m.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestMatchValidateRowIgnoresGames(t *testing.T) {
	t.Parallel()

	m := validMatch()
	m.Games = nil
	if err := m.ValidateRow(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.Player2ID = m.Player1ID
	if err := m.ValidateRow(); err == nil {
		t.Fatalf("expected error for same players")
	}
}
