package statistics

// MatchRecord is the read model of one committed match: who played which deck,
// how many games each side won, and the points its tournament type awards.
type MatchRecord struct {
	MatchID         int64
	TournamentID    int64
	SeasonID        int64
	SeasonName      string
	PointsWin       int
	PointsDraw      int
	Player1ID       int64
	Player1Name     string
	Player2ID       int64
	Player2Name     string
	Player1DeckID   int64
	Player1DeckName string
	Player2DeckID   int64
	Player2DeckName string
	Player1GameWins int
	Player2GameWins int
}

// Filter narrows the records fed to an aggregation. Zero values mean no filter.
type Filter struct {
	SeasonID int64
	PlayerID int64
	DeckID   int64
}

type PlayerStat struct {
	PlayerID          int64
	PlayerName        string
	TotalMatches      int
	MatchesWon        int
	MatchesDrawn      int
	MatchesLost       int
	WinRatePercentage *float64
	DecksPlayed       int
	TournamentsPlayed int
}

type DeckStat struct {
	DeckID            int64
	DeckName          string
	ColorIdentity     string
	ArchetypeType     string
	TotalMatches      int
	MatchesWon        int
	MatchesDrawn      int
	MatchesLost       int
	WinRatePercentage *float64
	UniquePlayers     int
	TournamentsPlayed int
}

// Matchup summarizes every match between two distinct decks from deck A's side.
type Matchup struct {
	DeckAID                int64
	DeckAName              string
	DeckBID                int64
	DeckBName              string
	TotalMatches           int
	DeckAWins              int
	Draws                  int
	DeckALosses            int
	DeckAWinRatePercentage *float64
	DeckBWinRatePercentage *float64
}

type Standing struct {
	SeasonID      int64
	SeasonName    string
	PlayerID      int64
	PlayerName    string
	MatchesPlayed int
	Wins          int
	Draws         int
	Losses        int
	Points        int
}
