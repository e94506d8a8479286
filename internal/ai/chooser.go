package ai

import (
	"clue-mansion/internal/config"
	"math/rand"
)

// MovePolicy picks where a CPU player goes from the rooms it may legally enter.
// Options arrive in adjacency order; ok is false when the player should stay.
type MovePolicy interface {
	ChooseRoom(options []config.RoomID) (room config.RoomID, ok bool)
}

// --- Implementations ---

// FirstFree always takes the first free room in adjacency order. It is the
// default policy and keeps games reproducible.
type FirstFree struct{}

func (FirstFree) ChooseRoom(options []config.RoomID) (config.RoomID, bool) {
	if len(options) == 0 {
		return 0, false
	}
	return options[0], true
}

// RandomFree wanders to any free adjacent room.
type RandomFree struct {
	rand *rand.Rand
}

// NewRandomFree creates a policy drawing from its own random source.
func NewRandomFree(rand *rand.Rand) *RandomFree {
	return &RandomFree{rand: rand}
}

func (r *RandomFree) ChooseRoom(options []config.RoomID) (config.RoomID, bool) {
	if len(options) == 0 {
		return 0, false
	}
	return options[r.rand.Intn(len(options))], true
}

// PolicyByName maps a command line name to a policy.
func PolicyByName(name string, rand *rand.Rand) (MovePolicy, bool) {
	switch name {
	case "", "first":
		return FirstFree{}, true
	case "random":
		return NewRandomFree(rand), true
	default:
		return nil, false
	}
}
