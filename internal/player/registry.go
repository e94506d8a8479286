package player

import (
	"clue-mansion/internal/config"
	"errors"
	"fmt"
)

var (
	ErrInvalidPlayerCount = errors.New("invalid number of players")
	ErrUnknownSuspect     = errors.New("unknown suspect")
)

// Registry holds every player in turn order: the human first, then the CPU
// players in the order they were seated against the suspect list.
type Registry struct {
	players []*Player
}

// NewRegistry seats the human as the chosen suspect in the configured start
// room, then seats CPU players for the other suspects in vocabulary order until
// totalPlayers are seated. Suspect i starts in room i.
func NewRegistry(cfg *config.GameConfig, human config.SuspectID, totalPlayers int) (*Registry, error) {
	if totalPlayers < 2 || totalPlayers > len(cfg.Suspects) {
		return nil, fmt.Errorf("%w: %d, want 2-%d", ErrInvalidPlayerCount, totalPlayers, len(cfg.Suspects))
	}
	if cfg.SuspectName(human) == "" {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSuspect, human)
	}

	r := &Registry{}
	r.players = append(r.players, &Player{
		suspect: human,
		name:    cfg.SuspectName(human),
		human:   true,
		room:    cfg.HumanStart(),
	})
	for i, name := range cfg.Suspects {
		if len(r.players) >= totalPlayers {
			break
		}
		if config.SuspectID(i) == human {
			continue
		}
		r.players = append(r.players, &Player{
			suspect: config.SuspectID(i),
			name:    name,
			room:    config.RoomID(i),
		})
	}
	return r, nil
}

func (r *Registry) Human() *Player { return r.players[0] }

// CPUs returns the computer players in registry order.
func (r *Registry) CPUs() []*Player {
	cpus := make([]*Player, len(r.players)-1)
	copy(cpus, r.players[1:])
	return cpus
}

// All returns every player, human first. Index i is dealing slot i.
func (r *Registry) All() []*Player {
	all := make([]*Player, len(r.players))
	copy(all, r.players)
	return all
}

func (r *Registry) Len() int { return len(r.players) }

// Get finds the player seated as suspect, if any.
func (r *Registry) Get(suspect config.SuspectID) (*Player, bool) {
	for _, p := range r.players {
		if p.suspect == suspect {
			return p, true
		}
	}
	return nil, false
}
