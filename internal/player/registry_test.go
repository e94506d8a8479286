package player

import (
	"testing"

	"clue-mansion/internal/config"
	"clue-mansion/internal/deck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	green, _ := cfg.SuspectID("Reverend Green")

	t.Run("human first, then CPUs in suspect order", func(t *testing.T) {
		// GIVEN the human plays Reverend Green in a four player game
		r, err := NewRegistry(cfg, green, 4)
		require.NoError(t, err)

		// THEN the CPUs are the first three other suspects
		var names []string
		for _, p := range r.All() {
			names = append(names, p.Name())
		}
		assert.Equal(t, []string{"Reverend Green", "Professor Plum", "Miss Scarlet", "Mrs White"}, names)
		assert.True(t, r.Human().IsHuman())
		for _, p := range r.CPUs() {
			assert.False(t, p.IsHuman())
		}
	})

	t.Run("starting rooms", func(t *testing.T) {
		r, _ := NewRegistry(cfg, green, 6)

		assert.Equal(t, cfg.HumanStart(), r.Human().Room())
		for _, p := range r.CPUs() {
			assert.Equal(t, config.RoomID(p.Suspect()), p.Room(), p.Name())
		}
	})

	t.Run("every suspect is seated at most once", func(t *testing.T) {
		r, _ := NewRegistry(cfg, 0, 6)
		seen := make(map[config.SuspectID]bool)
		for _, p := range r.All() {
			assert.False(t, seen[p.Suspect()])
			seen[p.Suspect()] = true
		}
		assert.Len(t, seen, 6)
	})

	t.Run("player count bounds", func(t *testing.T) {
		for _, n := range []int{1, 7} {
			_, err := NewRegistry(cfg, green, n)
			assert.ErrorIs(t, err, ErrInvalidPlayerCount)
		}
	})

	t.Run("unknown suspect", func(t *testing.T) {
		_, err := NewRegistry(cfg, config.SuspectID(6), 3)
		assert.ErrorIs(t, err, ErrUnknownSuspect)
	})

	t.Run("lookup by suspect", func(t *testing.T) {
		r, _ := NewRegistry(cfg, green, 2)
		p, ok := r.Get(0)
		require.True(t, ok)
		assert.Equal(t, "Professor Plum", p.Name())
		_, ok = r.Get(green + 1)
		assert.False(t, ok)
	})
}

func TestDealCard(t *testing.T) {
	cfg, _ := config.Default()
	r, _ := NewRegistry(cfg, 0, 2)
	p := r.Human()

	assert.True(t, p.DealCard(deck.WeaponCard(1)))
	assert.True(t, p.DealCard(deck.RoomCard(3)))
	assert.False(t, p.DealCard(deck.WeaponCard(1)))

	assert.Equal(t, []deck.Card{deck.WeaponCard(1), deck.RoomCard(3)}, p.Hand())
	assert.True(t, p.Holds(deck.RoomCard(3)))
	assert.False(t, p.Holds(deck.SuspectCard(3)))
}
