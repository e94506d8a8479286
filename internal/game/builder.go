package game

import (
	"clue-mansion/internal/ai"
	"clue-mansion/internal/config"
	"clue-mansion/internal/deck"
	"clue-mansion/internal/events"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// GameBuilder provides a step-by-step API for constructing a Game object.
type GameBuilder struct {
	cfg          *config.GameConfig
	eventManager *events.Manager
	log          logrus.FieldLogger
	rand         *rand.Rand
	humanName    string
	totalPlayers int
	policy       ai.MovePolicy
}

// NewBuilder creates a new GameBuilder with its required dependencies.
func NewBuilder(cfg *config.GameConfig, logger logrus.FieldLogger, rand *rand.Rand) *GameBuilder {
	return &GameBuilder{
		cfg:          cfg,
		log:          logger,
		rand:         rand,
		eventManager: events.NewManager(),
		policy:       ai.FirstFree{},
	}
}

// EventManager is a public getter for the unexported field.
func (b *GameBuilder) EventManager() *events.Manager {
	return b.eventManager
}

// WithHuman picks the suspect the human plays.
func (b *GameBuilder) WithHuman(suspectName string) *GameBuilder {
	b.humanName = suspectName
	return b
}

// WithTotalPlayers sets the table size, human included.
func (b *GameBuilder) WithTotalPlayers(n int) *GameBuilder {
	b.totalPlayers = n
	return b
}

func (b *GameBuilder) WithMovePolicy(p ai.MovePolicy) *GameBuilder {
	b.policy = p
	return b
}

// Build constructs the Game object after all options have been configured.
func (b *GameBuilder) Build() (*Game, error) {
	if b.totalPlayers < 2 || b.totalPlayers > len(b.cfg.Suspects) {
		return nil, fmt.Errorf("%w: %d, want 2-%d", ErrInvalidPlayerCount, b.totalPlayers, len(b.cfg.Suspects))
	}
	human, ok := b.cfg.SuspectID(b.humanName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSuspect, b.humanName)
	}

	// 1. Seat the players and put them on the board
	game, err := newGame(b.cfg, b.log, b.eventManager, human, b.totalPlayers, b.policy)
	if err != nil {
		return nil, err
	}

	// 2. Seal the envelope and deal the rest
	solution, hands, err := deck.Setup(b.cfg, b.totalPlayers, b.rand)
	if err != nil {
		return nil, err
	}
	game.start(solution, hands)

	return game, nil
}
