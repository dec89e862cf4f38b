package statistics

import (
	"math"
	"sort"
	"strings"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/deck"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/player"
)

// Players aggregates per-player results. Every roster entry gets a row, so a
// player without matches reports zero totals and a nil win rate.
func Players(records []MatchRecord, roster []player.Player) []PlayerStat {
	type acc struct {
		tally
		decks       map[int64]struct{}
		tournaments map[int64]struct{}
	}
	byPlayer := make(map[int64]*acc, len(roster))
	for _, p := range roster {
		byPlayer[p.ID] = &acc{decks: map[int64]struct{}{}, tournaments: map[int64]struct{}{}}
	}

	for _, r := range records {
		for _, s := range r.sides() {
			a, ok := byPlayer[s.playerID]
			if !ok {
				continue
			}
			a.add(s.outcome)
			a.decks[s.deckID] = struct{}{}
			a.tournaments[r.TournamentID] = struct{}{}
		}
	}

	out := make([]PlayerStat, 0, len(roster))
	for _, p := range roster {
		a := byPlayer[p.ID]
		out = append(out, PlayerStat{
			PlayerID:          p.ID,
			PlayerName:        p.Name,
			TotalMatches:      a.total,
			MatchesWon:        a.won,
			MatchesDrawn:      a.drawn,
			MatchesLost:       a.lost,
			WinRatePercentage: percentage(a.won, a.total),
			DecksPlayed:       len(a.decks),
			TournamentsPlayed: len(a.tournaments),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if c := compareRate(out[i].WinRatePercentage, out[j].WinRatePercentage); c != 0 {
			return c > 0
		}
		if out[i].MatchesWon != out[j].MatchesWon {
			return out[i].MatchesWon > out[j].MatchesWon
		}
		return lessByName(out[i].PlayerName, out[j].PlayerName, out[i].PlayerID, out[j].PlayerID)
	})

	return out
}

// Decks aggregates per-deck results. Each side of a match is one appearance,
// so a mirror match counts twice for its deck.
func Decks(records []MatchRecord, roster []deck.Archetype) []DeckStat {
	type acc struct {
		tally
		players     map[int64]struct{}
		tournaments map[int64]struct{}
	}
	byDeck := make(map[int64]*acc, len(roster))
	for _, d := range roster {
		byDeck[d.ID] = &acc{players: map[int64]struct{}{}, tournaments: map[int64]struct{}{}}
	}

	for _, r := range records {
		for _, s := range r.sides() {
			a, ok := byDeck[s.deckID]
			if !ok {
				continue
			}
			a.add(s.outcome)
			a.players[s.playerID] = struct{}{}
			a.tournaments[r.TournamentID] = struct{}{}
		}
	}

	out := make([]DeckStat, 0, len(roster))
	for _, d := range roster {
		a := byDeck[d.ID]
		out = append(out, DeckStat{
			DeckID:            d.ID,
			DeckName:          d.Name,
			ColorIdentity:     d.ColorIdentity,
			ArchetypeType:     d.ArchetypeType,
			TotalMatches:      a.total,
			MatchesWon:        a.won,
			MatchesDrawn:      a.drawn,
			MatchesLost:       a.lost,
			WinRatePercentage: percentage(a.won, a.total),
			UniquePlayers:     len(a.players),
			TournamentsPlayed: len(a.tournaments),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if c := compareRate(out[i].WinRatePercentage, out[j].WinRatePercentage); c != 0 {
			return c > 0
		}
		if out[i].MatchesWon != out[j].MatchesWon {
			return out[i].MatchesWon > out[j].MatchesWon
		}
		return lessByName(out[i].DeckName, out[j].DeckName, out[i].DeckID, out[j].DeckID)
	})

	return out
}

type deckPair struct {
	lo, hi int64
}

// Matchups builds one row per unordered pair of distinct decks that met, with
// the lower deck id as deck A. Mirror matches are not matchups.
func Matchups(records []MatchRecord) []Matchup {
	byPair := make(map[deckPair]*Matchup)
	for _, r := range records {
		if r.Player1DeckID == r.Player2DeckID {
			continue
		}
		s := r.sides()
		a, b := s[0], s[1]
		if b.deckID < a.deckID {
			a, b = b, a
		}

		key := deckPair{lo: a.deckID, hi: b.deckID}
		m, ok := byPair[key]
		if !ok {
			m = &Matchup{DeckAID: a.deckID, DeckAName: a.deckName, DeckBID: b.deckID, DeckBName: b.deckName}
			byPair[key] = m
		}
		m.TotalMatches++
		switch a.outcome {
		case OutcomeWin:
			m.DeckAWins++
		case OutcomeDraw:
			m.Draws++
		default:
			m.DeckALosses++
		}
	}

	out := make([]Matchup, 0, len(byPair))
	for _, m := range byPair {
		out = append(out, withRates(*m))
	}
	sortMatchups(out)

	return out
}

// Orient returns m seen from deckID's side. A deck outside the pair leaves m unchanged.
func Orient(m Matchup, deckID int64) Matchup {
	if m.DeckAID == deckID || m.DeckBID != deckID {
		return m
	}
	return withRates(Matchup{
		DeckAID:      m.DeckBID,
		DeckAName:    m.DeckBName,
		DeckBID:      m.DeckAID,
		DeckBName:    m.DeckAName,
		TotalMatches: m.TotalMatches,
		DeckAWins:    m.DeckALosses,
		Draws:        m.Draws,
		DeckALosses:  m.DeckAWins,
	})
}

// SelectMatchups narrows canonical matchups to those involving deckAID (and
// deckBID when set), oriented with deckAID as deck A.
func SelectMatchups(all []Matchup, deckAID, deckBID int64) []Matchup {
	if deckAID == 0 && deckBID == 0 {
		return all
	}
	if deckAID == 0 {
		deckAID, deckBID = deckBID, 0
	}

	out := make([]Matchup, 0)
	for _, m := range all {
		if m.DeckAID != deckAID && m.DeckBID != deckAID {
			continue
		}
		oriented := Orient(m, deckAID)
		if deckBID != 0 && oriented.DeckBID != deckBID {
			continue
		}
		out = append(out, oriented)
	}
	sortMatchups(out)

	return out
}

func withRates(m Matchup) Matchup {
	m.DeckAWinRatePercentage = percentage(m.DeckAWins, m.TotalMatches)
	if m.Draws == 0 && m.DeckAWinRatePercentage != nil {
		b := math.Round((100-*m.DeckAWinRatePercentage)*100) / 100
		m.DeckBWinRatePercentage = &b
	} else {
		m.DeckBWinRatePercentage = percentage(m.DeckALosses, m.TotalMatches)
	}
	return m
}

func sortMatchups(out []Matchup) {
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalMatches != out[j].TotalMatches {
			return out[i].TotalMatches > out[j].TotalMatches
		}
		if c := compareRate(out[i].DeckAWinRatePercentage, out[j].DeckAWinRatePercentage); c != 0 {
			return c > 0
		}
		if out[i].DeckAID != out[j].DeckAID {
			return out[i].DeckAID < out[j].DeckAID
		}
		return out[i].DeckBID < out[j].DeckBID
	})
}

type seasonPlayer struct {
	seasonID, playerID int64
}

// Standings computes season points per player. Each match contributes the
// points of its own tournament's type.
func Standings(records []MatchRecord) []Standing {
	bySeasonPlayer := make(map[seasonPlayer]*Standing)
	for _, r := range records {
		for _, s := range r.sides() {
			key := seasonPlayer{seasonID: r.SeasonID, playerID: s.playerID}
			st, ok := bySeasonPlayer[key]
			if !ok {
				st = &Standing{
					SeasonID:   r.SeasonID,
					SeasonName: r.SeasonName,
					PlayerID:   s.playerID,
					PlayerName: s.playerName,
				}
				bySeasonPlayer[key] = st
			}
			st.MatchesPlayed++
			st.Points += r.Points(s.outcome)
			switch s.outcome {
			case OutcomeWin:
				st.Wins++
			case OutcomeDraw:
				st.Draws++
			default:
				st.Losses++
			}
		}
	}

	out := make([]Standing, 0, len(bySeasonPlayer))
	for _, st := range bySeasonPlayer {
		out = append(out, *st)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SeasonID != out[j].SeasonID {
			return out[i].SeasonID < out[j].SeasonID
		}
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return lessByName(out[i].PlayerName, out[j].PlayerName, out[i].PlayerID, out[j].PlayerID)
	})

	return out
}

// compareRate orders rates descending-friendly with nil last: it returns 1
// when a ranks before b, -1 when after, 0 when tied.
func compareRate(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case *a > *b:
		return 1
	case *a < *b:
		return -1
	default:
		return 0
	}
}

func lessByName(a, b string, aID, bID int64) bool {
	if c := strings.Compare(a, b); c != 0 {
		return c < 0
	}
	return aID < bID
}
