package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/deck"
	"github.com/riskibarqy/mtg-tournament-tracker/internal/domain/store"
)

type DeckRepository struct {
	c conn
}

func (r *DeckRepository) List(_ context.Context) ([]deck.Archetype, error) {
	var out []deck.Archetype
	r.c.read(func(d *dataset) {
		out = make([]deck.Archetype, 0, len(d.decks))
		for _, a := range d.decks {
			out = append(out, a)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *DeckRepository) GetByID(_ context.Context, id int64) (deck.Archetype, bool, error) {
	var (
		item   deck.Archetype
		exists bool
	)
	r.c.read(func(d *dataset) {
		item, exists = d.decks[id]
	})
	return item, exists, nil
}

func (r *DeckRepository) GetByName(_ context.Context, name string) (deck.Archetype, bool, error) {
	var (
		item   deck.Archetype
		exists bool
	)
	r.c.read(func(d *dataset) {
		item, exists = findDeckByName(d, name)
	})
	return item, exists, nil
}

func (r *DeckRepository) Create(_ context.Context, a deck.Archetype) (deck.Archetype, error) {
	err := r.c.write(func(d *dataset) error {
		var err error
		a, err = insertDeck(d, a, r.c.now())
		return err
	})
	if err != nil {
		return deck.Archetype{}, err
	}
	return a, nil
}

func (r *DeckRepository) CreateIfAbsent(_ context.Context, a deck.Archetype) (deck.Archetype, bool, error) {
	created := false
	err := r.c.write(func(d *dataset) error {
		if existing, ok := findDeckByName(d, a.Name); ok {
			a = existing
			return nil
		}
		var err error
		a, err = insertDeck(d, a, r.c.now())
		created = err == nil
		return err
	})
	if err != nil {
		return deck.Archetype{}, false, err
	}
	return a, created, nil
}

func (r *DeckRepository) Update(_ context.Context, a deck.Archetype) (deck.Archetype, bool, error) {
	exists := false
	err := r.c.write(func(d *dataset) error {
		current, ok := d.decks[a.ID]
		if !ok {
			return nil
		}
		if existing, found := findDeckByName(d, a.Name); found && existing.ID != a.ID {
			return store.Unique("deck_archetypes_name_key", fmt.Sprintf("name=%s", a.Name))
		}
		exists = true
		a.CreatedAt = current.CreatedAt
		a.UpdatedAt = r.c.now()
		d.decks[a.ID] = a
		return nil
	})
	if err != nil || !exists {
		return deck.Archetype{}, exists, err
	}
	return a, true, nil
}

func (r *DeckRepository) Delete(_ context.Context, id int64) (bool, error) {
	deleted := false
	err := r.c.write(func(d *dataset) error {
		if _, ok := d.decks[id]; !ok {
			return nil
		}
		for _, m := range d.matches {
			if m.Player1DeckID == id {
				return store.ForeignKey("matches_player1_deck_id_fkey", fmt.Sprintf("deck_id=%d is still referenced from matches", id))
			}
			if m.Player2DeckID == id {
				return store.ForeignKey("matches_player2_deck_id_fkey", fmt.Sprintf("deck_id=%d is still referenced from matches", id))
			}
		}
		delete(d.decks, id)
		deleted = true
		return nil
	})
	return deleted, err
}

func insertDeck(d *dataset, a deck.Archetype, now time.Time) (deck.Archetype, error) {
	if _, exists := findDeckByName(d, a.Name); exists {
		return deck.Archetype{}, store.Unique("deck_archetypes_name_key", fmt.Sprintf("name=%s", a.Name))
	}
	a.ID = d.newID()
	a.CreatedAt, a.UpdatedAt = now, now
	d.decks[a.ID] = a
	return a, nil
}

func findDeckByName(d *dataset, name string) (deck.Archetype, bool) {
	for _, a := range d.decks {
		if a.Name == name {
			return a, true
		}
	}
	return deck.Archetype{}, false
}
