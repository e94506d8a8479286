package events

import (
	"clue-mansion/internal/deck"
)

// Event is a marker interface for all event types.
type Event interface{}

// Listener defines an interface for any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// Manager (or Event Bus) manages listeners and dispatches events synchronously.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}
func (em *Manager) Subscribe(l Listener) {
	em.listeners = append(em.listeners, l)
}
func (em *Manager) Publish(e Event) {
	for _, l := range em.listeners {
		l.HandleEvent(e)
	}
}

// --- Event Types for Rendering ---

// GameReadyEvent is published once the game is built and cards are dealt.
type GameReadyEvent struct {
	HumanName string
	CPUNames  []string
	HumanRoom string
}

type HumanHandRevealedEvent struct {
	PlayerName string
	Hand       []string
}

// PlayerMovedEvent reports one step through the mansion.
type PlayerMovedEvent struct {
	PlayerName string
	From       string
	To         string
	IsHuman    bool
}

// PlayerStayedEvent reports a CPU player boxed in by occupied rooms.
type PlayerStayedEvent struct {
	PlayerName string
	Room       string
}

type CPUSweepStartedEvent struct{}

type GuessMadeEvent struct {
	PlayerName string
	Suspect    string
	Weapon     string
	Room       string
}

type RefutedEvent struct {
	RefuterName string
	Card        deck.Card
	CardLabel   string
}

// UnrefutedEvent carries the human's own matching cards, if any.
type UnrefutedEvent struct {
	OwnCards []string
}

type GameOverEvent struct {
	HumanWon bool
	Suspect  string
	Weapon   string
	Room     string
}
