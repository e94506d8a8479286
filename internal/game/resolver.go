package game

import (
	"clue-mansion/internal/config"
	"clue-mansion/internal/deck"
	"clue-mansion/internal/player"
)

// Guess is a (suspect, weapon, room) triple. Room is always where the guesser stands.
type Guess struct {
	Suspect config.SuspectID
	Weapon  config.WeaponID
	Room    config.RoomID
}

// Is reports whether the guess names the solution exactly.
func (g Guess) Is(s deck.Solution) bool {
	return deck.Solution(g) == s
}

// Matches reports whether card is one of the three things the guess names.
func (g Guess) Matches(card deck.Card) bool {
	return card == deck.SuspectCard(g.Suspect) || card == deck.WeaponCard(g.Weapon) || card == deck.RoomCard(g.Room)
}

type OutcomeKind int

const (
	OutcomeCorrect OutcomeKind = iota
	OutcomeRefuted
	OutcomeUnrefuted
)

func (k OutcomeKind) String() string {
	return []string{"correct", "refuted", "unrefuted"}[k]
}

// Outcome is the result of resolving a guess.
type Outcome struct {
	Kind  OutcomeKind
	Guess Guess
	// Refuter and Card are set for OutcomeRefuted.
	Refuter     config.SuspectID
	RefuterName string
	Card        deck.Card
	// OwnCards lists the guesser's own matching cards when nobody else could refute.
	OwnCards []deck.Card
}

// Resolve checks a guess against the solution. When it is wrong, the first CPU
// player in order holding a matching card refutes it with the first such card
// in its hand.
func Resolve(guess Guess, solution deck.Solution, cpus []*player.Player, humanHand []deck.Card) Outcome {
	if guess.Is(solution) {
		return Outcome{Kind: OutcomeCorrect, Guess: guess}
	}
	for _, p := range cpus {
		for _, card := range p.Hand() {
			if guess.Matches(card) {
				return Outcome{
					Kind:        OutcomeRefuted,
					Guess:       guess,
					Refuter:     p.Suspect(),
					RefuterName: p.Name(),
					Card:        card,
				}
			}
		}
	}
	out := Outcome{Kind: OutcomeUnrefuted, Guess: guess}
	for _, card := range humanHand {
		if guess.Matches(card) {
			out.OwnCards = append(out.OwnCards, card)
		}
	}
	return out
}
