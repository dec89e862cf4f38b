package memory

import (
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamenttype"
)

// SeedTournamentTypes mirrors the rows inserted by the tournament type migration.
func SeedTournamentTypes() []tournamenttype.TournamentType {
	return []tournamenttype.TournamentType{
		{Name: tournamenttype.DefaultName, PointsWin: 3, PointsDraw: 1, Description: "Local game store event"},
		{Name: "Regional Championship", PointsWin: 6, PointsDraw: 2, Description: "Regional qualifier event"},
		{Name: "Nationals", PointsWin: 12, PointsDraw: 4, Description: "National championship"},
	}
}

// NewSeededStore returns a store holding the default tournament types.
func NewSeededStore() *Store {
	s := NewStore()
	for _, t := range SeedTournamentTypes() {
		d := s.data
		t.ID = d.newID()
		d.types[t.ID] = t
	}
	return s
}
