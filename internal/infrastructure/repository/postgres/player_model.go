package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/player"
)

type playerTableModel struct {
	ID               int64     `db:"id"`
	Name             string    `db:"name"`
	Email            string    `db:"email"`
	Active           bool      `db:"active"`
	RegistrationDate time.Time `db:"registration_date"`
	Notes            string    `db:"notes"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type playerInsertModel struct {
	Name             string         `db:"name"`
	Email            sql.NullString `db:"email"`
	Active           bool           `db:"active"`
	RegistrationDate time.Time      `db:"registration_date"`
	Notes            sql.NullString `db:"notes"`
}

func newPlayerInsertModel(p player.Player) playerInsertModel {
	return playerInsertModel{
		Name:             p.Name,
		Email:            nullString(p.Email),
		Active:           p.Active,
		RegistrationDate: p.RegistrationDate,
		Notes:            nullString(p.Notes),
	}
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:               m.ID,
		Name:             m.Name,
		Email:            m.Email,
		Active:           m.Active,
		RegistrationDate: m.RegistrationDate,
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
