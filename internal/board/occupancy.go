package board

import (
	"clue-mansion/internal/config"
	"errors"
	"fmt"
)

var (
	ErrOccupancyConflict = errors.New("room is already occupied")
	ErrOccupancyMismatch = errors.New("room is not occupied by that player")
	ErrUnknownRoom       = errors.New("room is not on the board")
)

// Occupancy tracks which suspect stands in which room. A room holds at most one.
type Occupancy struct {
	graph    *Graph
	occupant map[config.RoomID]config.SuspectID
}

func NewOccupancy(graph *Graph) *Occupancy {
	return &Occupancy{
		graph:    graph,
		occupant: make(map[config.RoomID]config.SuspectID),
	}
}

func (o *Occupancy) IsOccupied(room config.RoomID) bool {
	_, ok := o.occupant[room]
	return ok
}

// Occupant returns who is in room, if anyone.
func (o *Occupancy) Occupant(room config.RoomID) (config.SuspectID, bool) {
	who, ok := o.occupant[room]
	return who, ok
}

// Enter places who in room. Callers are expected to have checked IsOccupied.
func (o *Occupancy) Enter(room config.RoomID, who config.SuspectID) error {
	if !o.graph.Contains(room) {
		return fmt.Errorf("%w: %d", ErrUnknownRoom, room)
	}
	if current, ok := o.occupant[room]; ok {
		return fmt.Errorf("%w: %s holds suspect %d", ErrOccupancyConflict, o.graph.Name(room), current)
	}
	o.occupant[room] = who
	return nil
}

// Leave empties room, which must currently hold who.
func (o *Occupancy) Leave(room config.RoomID, who config.SuspectID) error {
	current, ok := o.occupant[room]
	if !ok || current != who {
		return fmt.Errorf("%w: %s, suspect %d", ErrOccupancyMismatch, o.graph.Name(room), who)
	}
	delete(o.occupant, room)
	return nil
}

// Snapshot maps every room to its occupant, or config.NoSuspect when empty.
func (o *Occupancy) Snapshot() map[config.RoomID]config.SuspectID {
	snap := make(map[config.RoomID]config.SuspectID, len(o.graph.rooms))
	for _, r := range o.graph.rooms {
		snap[r] = config.NoSuspect
		if who, ok := o.occupant[r]; ok {
			snap[r] = who
		}
	}
	return snap
}
