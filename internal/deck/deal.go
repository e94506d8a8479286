package deck

import (
	"clue-mansion/internal/config"
	"errors"
	"fmt"
	"math/rand"
)

var ErrInvalidPlayerCount = errors.New("invalid number of players")

// Setup draws the solution and deals every remaining card.
//
// Hands are indexed by player slot; slot 0 is the human. The destination slot
// cycles 0,1,2,... while the source of each card is random: a random non-empty
// category, then a random card within it.
func Setup(cfg *config.GameConfig, numPlayers int, rand *rand.Rand) (Solution, [][]Card, error) {
	if numPlayers < 1 || numPlayers > len(cfg.Suspects) {
		return Solution{}, nil, fmt.Errorf("%w: %d", ErrInvalidPlayerCount, numPlayers)
	}

	solution := Solution{
		Suspect: config.SuspectID(rand.Intn(len(cfg.Suspects))),
		Weapon:  config.WeaponID(rand.Intn(len(cfg.Weapons))),
		Room:    config.RoomID(rand.Intn(len(cfg.Rooms))),
	}

	remaining := make([][]Card, len(config.Categories))
	for _, card := range Universe(cfg) {
		if card == SuspectCard(solution.Suspect) || card == WeaponCard(solution.Weapon) || card == RoomCard(solution.Room) {
			continue
		}
		remaining[card.Category] = append(remaining[card.Category], card)
	}

	hands := make([][]Card, numPlayers)
	for count := 0; ; count++ {
		var open []int
		for cat, cards := range remaining {
			if len(cards) > 0 {
				open = append(open, cat)
			}
		}
		if len(open) == 0 {
			break
		}
		cat := open[rand.Intn(len(open))]
		pile := remaining[cat]
		i := rand.Intn(len(pile))
		card := pile[i]
		remaining[cat] = append(pile[:i], pile[i+1:]...)

		slot := count % numPlayers
		hands[slot] = append(hands[slot], card)
	}
	return solution, hands, nil
}
