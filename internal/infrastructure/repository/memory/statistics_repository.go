package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/match"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/statistics"
)

type StatisticsRepository struct {
	c conn
}

func (r *StatisticsRepository) ListMatchRecords(_ context.Context, filter statistics.Filter) ([]statistics.MatchRecord, error) {
	out := make([]statistics.MatchRecord, 0)
	r.c.read(func(d *dataset) {
		wins := make(map[int64]map[int64]int, len(d.matches))
		for _, g := range d.games {
			if g.Result != match.ResultWin {
				continue
			}
			if wins[g.MatchID] == nil {
				wins[g.MatchID] = map[int64]int{}
			}
			wins[g.MatchID][g.WinnerID]++
		}

		for _, m := range d.matches {
			if m.Status != match.StatusCompleted {
				continue
			}
			t := d.tournaments[m.TournamentID]
			if filter.SeasonID != 0 && t.SeasonID != filter.SeasonID {
				continue
			}
			if filter.PlayerID != 0 && m.Player1ID != filter.PlayerID && m.Player2ID != filter.PlayerID {
				continue
			}
			if filter.DeckID != 0 && m.Player1DeckID != filter.DeckID && m.Player2DeckID != filter.DeckID {
				continue
			}

			tt := d.types[t.TournamentTypeID]
			out = append(out, statistics.MatchRecord{
				MatchID:         m.ID,
				TournamentID:    t.ID,
				SeasonID:        t.SeasonID,
				SeasonName:      d.seasons[t.SeasonID].Name,
				PointsWin:       tt.PointsWin,
				PointsDraw:      tt.PointsDraw,
				Player1ID:       m.Player1ID,
				Player1Name:     d.players[m.Player1ID].Name,
				Player2ID:       m.Player2ID,
				Player2Name:     d.players[m.Player2ID].Name,
				Player1DeckID:   m.Player1DeckID,
				Player1DeckName: d.decks[m.Player1DeckID].Name,
				Player2DeckID:   m.Player2DeckID,
				Player2DeckName: d.decks[m.Player2DeckID].Name,
				Player1GameWins: wins[m.ID][m.Player1ID],
				Player2GameWins: wins[m.ID][m.Player2ID],
			})
		}
	})

	sort.Slice(out, func(i, j int) bool { return out[i].MatchID < out[j].MatchID })
	return out, nil
}
