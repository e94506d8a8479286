package game

import (
	"clue-mansion/internal/config"
	"clue-mansion/internal/events"
	"clue-mansion/internal/player"
	"fmt"
)

// legalDestinations is the adjacency of the player's room filtered to rooms that
// are empty right now.
func (g *Game) legalDestinations(p *player.Player) []config.RoomID {
	var free []config.RoomID
	for _, r := range g.graph.Adjacent(p.Room()) {
		if !g.occupancy.IsOccupied(r) {
			free = append(free, r)
		}
	}
	return free
}

// move walks p into dest. The occupancy map and the player's room change together.
func (g *Game) move(p *player.Player, dest config.RoomID) error {
	from := p.Room()
	if !g.graph.IsAdjacent(from, dest) {
		return fmt.Errorf("%w: %s does not connect to %s", ErrIllegalMove, g.graph.Name(from), g.describeRoom(dest))
	}
	if who, occupied := g.occupancy.Occupant(dest); occupied {
		return fmt.Errorf("%w: %s is already in the %s", ErrIllegalMove, g.Config.SuspectName(who), g.graph.Name(dest))
	}

	if err := g.occupancy.Leave(from, p.Suspect()); err != nil {
		return g.fault(err)
	}
	if err := g.occupancy.Enter(dest, p.Suspect()); err != nil {
		// Put the player back so the board stays as it was.
		_ = g.occupancy.Enter(from, p.Suspect())
		return g.fault(err)
	}
	p.SetRoom(dest)

	g.log.WithField("player", p.Name()).Debugf("moved %s -> %s", g.graph.Name(from), g.graph.Name(dest))
	g.EventManager.Publish(events.PlayerMovedEvent{
		PlayerName: p.Name(),
		From:       g.graph.Name(from),
		To:         g.graph.Name(dest),
		IsHuman:    p.IsHuman(),
	})
	return nil
}

// cpuSweep gives every CPU player, in registry order, one chance to move.
func (g *Game) cpuSweep() error {
	g.EventManager.Publish(events.CPUSweepStartedEvent{})
	for _, cpu := range g.players.CPUs() {
		dest, ok := g.policy.ChooseRoom(g.legalDestinations(cpu))
		if !ok {
			g.log.WithField("player", cpu.Name()).Debugf("boxed in, staying in %s", g.graph.Name(cpu.Room()))
			g.EventManager.Publish(events.PlayerStayedEvent{PlayerName: cpu.Name(), Room: g.graph.Name(cpu.Room())})
			continue
		}
		if err := g.move(cpu, dest); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) describeRoom(room config.RoomID) string {
	if !g.graph.Contains(room) {
		return fmt.Sprintf("room %d", room)
	}
	return g.graph.Name(room)
}

func (g *Game) fault(err error) error {
	g.log.Errorf("board invariant violated: %v", err)
	return fmt.Errorf("%w: %v", ErrInternalFault, err)
}

// verifyBoard cross-checks player locations against the occupancy map.
func (g *Game) verifyBoard() error {
	seen := make(map[config.RoomID]string)
	for _, p := range g.players.All() {
		if other, dup := seen[p.Room()]; dup {
			return fmt.Errorf("%s and %s share the %s", other, p.Name(), g.graph.Name(p.Room()))
		}
		seen[p.Room()] = p.Name()
		who, ok := g.occupancy.Occupant(p.Room())
		if !ok || who != p.Suspect() {
			return fmt.Errorf("%s stands in the %s but the board disagrees", p.Name(), g.graph.Name(p.Room()))
		}
	}
	for room, who := range g.occupancy.Snapshot() {
		if who == config.NoSuspect {
			continue
		}
		if _, ok := seen[room]; !ok {
			return fmt.Errorf("the %s is marked occupied by nobody at the table", g.graph.Name(room))
		}
	}
	return nil
}
