package player

import (
	"clue-mansion/internal/config"
	"clue-mansion/internal/deck"
)

// Player is one seat at the table: a suspect identity, the room it stands in
// and the cards it was dealt.
type Player struct {
	suspect config.SuspectID
	name    string
	human   bool
	room    config.RoomID
	hand    []deck.Card
}

func (p *Player) Suspect() config.SuspectID { return p.suspect }
func (p *Player) Name() string              { return p.name }
func (p *Player) IsHuman() bool             { return p.human }
func (p *Player) Room() config.RoomID       { return p.room }

// Hand returns the player's cards in the order they were dealt.
func (p *Player) Hand() []deck.Card {
	cards := make([]deck.Card, len(p.hand))
	copy(cards, p.hand)
	return cards
}

// Holds reports whether card is in the player's hand.
func (p *Player) Holds(card deck.Card) bool {
	for _, c := range p.hand {
		if c == card {
			return true
		}
	}
	return false
}

// DealCard adds a card to the hand. Hands are sets, so a repeated card is ignored.
func (p *Player) DealCard(card deck.Card) bool {
	if p.Holds(card) {
		return false
	}
	p.hand = append(p.hand, card)
	return true
}

// SetRoom records the player's new location. The movement controller keeps
// this in step with the board's occupancy.
func (p *Player) SetRoom(room config.RoomID) { p.room = room }

func (p *Player) String() string { return p.name }
