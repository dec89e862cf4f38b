package statistics

import "math"

type Outcome int

const (
	OutcomeLoss Outcome = iota - 1
	OutcomeDraw
	OutcomeWin
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	default:
		return "loss"
	}
}

// Decide returns the outcome for the side holding ownWins. Strictly more game
// wins takes the match; equal counts are a draw.
func Decide(ownWins, opponentWins int) Outcome {
	switch {
	case ownWins > opponentWins:
		return OutcomeWin
	case ownWins == opponentWins:
		return OutcomeDraw
	default:
		return OutcomeLoss
	}
}

// OutcomeForPlayer reports the outcome from playerID's side. ok is false when
// the player did not take part.
func (r MatchRecord) OutcomeForPlayer(playerID int64) (Outcome, bool) {
	switch playerID {
	case r.Player1ID:
		return Decide(r.Player1GameWins, r.Player2GameWins), true
	case r.Player2ID:
		return Decide(r.Player2GameWins, r.Player1GameWins), true
	default:
		return OutcomeLoss, false
	}
}

// Points awarded to a side with the given outcome under the record's tournament type.
func (r MatchRecord) Points(o Outcome) int {
	switch o {
	case OutcomeWin:
		return r.PointsWin
	case OutcomeDraw:
		return r.PointsDraw
	default:
		return 0
	}
}

type side struct {
	playerID   int64
	playerName string
	deckID     int64
	deckName   string
	outcome    Outcome
}

func (r MatchRecord) sides() [2]side {
	return [2]side{
		{
			playerID:   r.Player1ID,
			playerName: r.Player1Name,
			deckID:     r.Player1DeckID,
			deckName:   r.Player1DeckName,
			outcome:    Decide(r.Player1GameWins, r.Player2GameWins),
		},
		{
			playerID:   r.Player2ID,
			playerName: r.Player2Name,
			deckID:     r.Player2DeckID,
			deckName:   r.Player2DeckName,
			outcome:    Decide(r.Player2GameWins, r.Player1GameWins),
		},
	}
}

// percentage returns part/total*100 rounded to two decimals, or nil when total is zero.
func percentage(part, total int) *float64 {
	if total <= 0 {
		return nil
	}
	v := math.Round(float64(part)*10000/float64(total)) / 100
	return &v
}

type tally struct {
	total, won, drawn, lost int
}

func (t *tally) add(o Outcome) {
	t.total++
	switch o {
	case OutcomeWin:
		t.won++
	case OutcomeDraw:
		t.drawn++
	default:
		t.lost++
	}
}
