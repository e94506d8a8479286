package board

import (
	"clue-mansion/internal/config"
)

// Graph is the static room layout. It has no mutation API.
type Graph struct {
	cfg   *config.GameConfig
	rooms []config.RoomID
}

// NewGraph builds the board from a validated configuration.
func NewGraph(cfg *config.GameConfig) *Graph {
	g := &Graph{cfg: cfg}
	for i := range cfg.Rooms {
		g.rooms = append(g.rooms, config.RoomID(i))
	}
	return g
}

// Rooms returns every room in configured order.
func (g *Graph) Rooms() []config.RoomID {
	out := make([]config.RoomID, len(g.rooms))
	copy(out, g.rooms)
	return out
}

// Adjacent returns the rooms reachable from room, in configured order.
func (g *Graph) Adjacent(room config.RoomID) []config.RoomID {
	adj := g.cfg.Adjacency(room)
	out := make([]config.RoomID, len(adj))
	copy(out, adj)
	return out
}

func (g *Graph) IsAdjacent(from, to config.RoomID) bool {
	for _, r := range g.cfg.Adjacency(from) {
		if r == to {
			return true
		}
	}
	return false
}

func (g *Graph) Contains(room config.RoomID) bool {
	return room >= 0 && int(room) < len(g.rooms)
}

func (g *Graph) Name(room config.RoomID) string { return g.cfg.RoomName(room) }
