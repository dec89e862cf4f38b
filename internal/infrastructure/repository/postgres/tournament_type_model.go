package postgres

import (
	"database/sql"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/tournamenttype"
)

type tournamentTypeTableModel struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	PointsWin   int    `db:"points_win"`
	PointsDraw  int    `db:"points_draw"`
	Description string `db:"description"`
}

type tournamentTypeInsertModel struct {
	Name        string         `db:"name"`
	PointsWin   int            `db:"points_win"`
	PointsDraw  int            `db:"points_draw"`
	Description sql.NullString `db:"description"`
}

func (m tournamentTypeTableModel) toDomain() tournamenttype.TournamentType {
	return tournamenttype.TournamentType{
		ID:          m.ID,
		Name:        m.Name,
		PointsWin:   m.PointsWin,
		PointsDraw:  m.PointsDraw,
		Description: m.Description,
	}
}
