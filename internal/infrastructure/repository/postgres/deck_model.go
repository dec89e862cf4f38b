package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/deck"
)

type deckTableModel struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	ColorIdentity string    `db:"color_identity"`
	ArchetypeType string    `db:"archetype_type"`
	Description   string    `db:"description"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type deckInsertModel struct {
	Name          string         `db:"name"`
	ColorIdentity sql.NullString `db:"color_identity"`
	ArchetypeType sql.NullString `db:"archetype_type"`
	Description   sql.NullString `db:"description"`
}

func newDeckInsertModel(a deck.Archetype) deckInsertModel {
	return deckInsertModel{
		Name:          a.Name,
		ColorIdentity: nullString(a.ColorIdentity),
		ArchetypeType: nullString(a.ArchetypeType),
		Description:   nullString(a.Description),
	}
}

func (m deckTableModel) toDomain() deck.Archetype {
	return deck.Archetype{
		ID:            m.ID,
		Name:          m.Name,
		ColorIdentity: m.ColorIdentity,
		ArchetypeType: m.ArchetypeType,
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
