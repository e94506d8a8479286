// Package session exposes games to a front-end through opaque handles and
// plain names, keeping engine types and identifiers behind the API.
package session

import (
	"clue-mansion/internal/ai"
	"clue-mansion/internal/config"
	"clue-mansion/internal/deck"
	"clue-mansion/internal/events"
	"clue-mansion/internal/game"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrUnknownGame = errors.New("unknown game handle")

// Handle identifies one running game.
type Handle string

// Manager owns every running game, keyed by handle.
type Manager struct {
	cfg *config.GameConfig
	log *logrus.Logger

	// mu guards everything below, including rand which is not safe for concurrent use.
	mu        sync.RWMutex
	rand      *rand.Rand
	policy    func(r *rand.Rand) ai.MovePolicy
	listeners []events.Listener
	games     map[Handle]*game.Game
}

// NewManager creates a manager. r seeds every game it starts.
func NewManager(cfg *config.GameConfig, log *logrus.Logger, r *rand.Rand) *Manager {
	return &Manager{
		cfg:    cfg,
		log:    log,
		rand:   r,
		policy: func(*rand.Rand) ai.MovePolicy { return ai.FirstFree{} },
		games:  make(map[Handle]*game.Game),
	}
}

// UsePolicy selects the CPU movement policy for games started afterwards.
func (m *Manager) UsePolicy(name string) error {
	if _, ok := ai.PolicyByName(name, nil); !ok {
		return fmt.Errorf("unknown move policy %q", name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.policy = func(r *rand.Rand) ai.MovePolicy {
		p, _ := ai.PolicyByName(name, r)
		return p
	}
	return nil
}

// Subscribe registers a listener on every game started afterwards.
func (m *Manager) Subscribe(l events.Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
}

// StartNewGame deals a fresh game for the human playing humanSuspect.
func (m *Manager) StartNewGame(humanSuspect string, totalPlayers int) (Handle, error) {
	h := Handle(uuid.NewString())

	m.mu.Lock()
	seed := m.rand.Int63()
	policy := m.policy
	listeners := append([]events.Listener(nil), m.listeners...)
	m.mu.Unlock()

	gameRand := rand.New(rand.NewSource(seed))
	builder := game.NewBuilder(m.cfg, m.log.WithField("game", string(h)), gameRand).
		WithHuman(humanSuspect).
		WithTotalPlayers(totalPlayers).
		WithMovePolicy(policy(rand.New(rand.NewSource(gameRand.Int63()))))
	for _, l := range listeners {
		builder.EventManager().Subscribe(l)
	}
	g, err := builder.Build()
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	m.games[h] = g
	m.mu.Unlock()
	m.log.WithField("game", string(h)).Infof("started a %d player game as %s", totalPlayers, humanSuspect)
	return h, nil
}

func (m *Manager) get(h Handle) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[h]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGame, h)
	}
	return g, nil
}

// Game returns the engine behind a handle for front-ends that render it directly.
func (m *Manager) Game(h Handle) (*game.Game, error) { return m.get(h) }

// BoardSnapshot maps every room name to its occupant's name, or "" when empty.
func (m *Manager) BoardSnapshot(h Handle) (map[string]string, error) {
	g, err := m.get(h)
	if err != nil {
		return nil, err
	}
	snap := make(map[string]string)
	for room, who := range g.Board() {
		snap[m.cfg.RoomName(room)] = m.cfg.SuspectName(who)
	}
	return snap, nil
}

// LegalMoveOptions lists the rooms the human may enter, in adjacency order.
func (m *Manager) LegalMoveOptions(h Handle) ([]string, error) {
	g, err := m.get(h)
	if err != nil {
		return nil, err
	}
	var rooms []string
	for _, r := range g.LegalMoves() {
		rooms = append(rooms, m.cfg.RoomName(r))
	}
	return rooms, nil
}

func (m *Manager) SubmitMove(h Handle, room string) error {
	g, err := m.get(h)
	if err != nil {
		return err
	}
	id, ok := m.cfg.RoomID(room)
	if !ok {
		return fmt.Errorf("%w: room %q", game.ErrUnknownCardReference, room)
	}
	return g.Move(id)
}

// SubmitGuess names a suspect and weapon; the room is wherever the human stands.
func (m *Manager) SubmitGuess(h Handle, suspect, weapon string) (game.Outcome, error) {
	g, err := m.get(h)
	if err != nil {
		return game.Outcome{}, err
	}
	s, ok := m.cfg.SuspectID(suspect)
	if !ok {
		return game.Outcome{}, fmt.Errorf("%w: suspect %q", game.ErrUnknownCardReference, suspect)
	}
	w, ok := m.cfg.WeaponID(weapon)
	if !ok {
		return game.Outcome{}, fmt.Errorf("%w: weapon %q", game.ErrUnknownCardReference, weapon)
	}
	return g.Guess(s, w)
}

func (m *Manager) HumanHand(h Handle) ([]deck.Card, error) {
	g, err := m.get(h)
	if err != nil {
		return nil, err
	}
	return g.HumanHand(), nil
}

// Inspect is the human choosing to look at their hand on their turn.
func (m *Manager) Inspect(h Handle) ([]deck.Card, error) {
	g, err := m.get(h)
	if err != nil {
		return nil, err
	}
	return g.Inspect()
}

// ShowRules is the human choosing to read the rules on their turn.
func (m *Manager) ShowRules(h Handle) error {
	g, err := m.get(h)
	if err != nil {
		return err
	}
	return g.Rules()
}

func (m *Manager) AppendNote(h Handle, text string) error {
	g, err := m.get(h)
	if err != nil {
		return err
	}
	return g.AppendNote(text)
}

func (m *Manager) ReadNotes(h Handle) (string, error) {
	g, err := m.get(h)
	if err != nil {
		return "", err
	}
	return g.Notes(), nil
}

func (m *Manager) IsGameOver(h Handle) (bool, error) {
	g, err := m.get(h)
	if err != nil {
		return false, err
	}
	return g.IsOver(), nil
}

func (m *Manager) DidHumanWin(h Handle) (bool, error) {
	g, err := m.get(h)
	if err != nil {
		return false, err
	}
	return g.HumanWon(), nil
}

// Exit ends the game without a win.
func (m *Manager) Exit(h Handle) error {
	g, err := m.get(h)
	if err != nil {
		return err
	}
	return g.Exit()
}

// Discard forgets a game. Unknown handles are ignored.
func (m *Manager) Discard(h Handle) {
	m.mu.Lock()
	delete(m.games, h)
	m.mu.Unlock()
}

// Len is the number of games held.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
