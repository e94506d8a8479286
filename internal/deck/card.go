package deck

import (
	"clue-mansion/internal/config"
	"fmt"
)

// Card is one suspect, weapon or room card. Index points into the category's vocabulary.
type Card struct {
	Category config.CardCategory
	Index    int
}

func SuspectCard(id config.SuspectID) Card {
	return Card{Category: config.CategorySuspect, Index: int(id)}
}

func WeaponCard(id config.WeaponID) Card {
	return Card{Category: config.CategoryWeapon, Index: int(id)}
}

func RoomCard(id config.RoomID) Card {
	return Card{Category: config.CategoryRoom, Index: int(id)}
}

// Name looks the card up in the vocabulary.
func (c Card) Name(cfg *config.GameConfig) string {
	switch c.Category {
	case config.CategorySuspect:
		return cfg.SuspectName(config.SuspectID(c.Index))
	case config.CategoryWeapon:
		return cfg.WeaponName(config.WeaponID(c.Index))
	case config.CategoryRoom:
		return cfg.RoomName(config.RoomID(c.Index))
	}
	return ""
}

// Label renders the card the way the scratch pad shows it, e.g. "Weapon:Rope".
func (c Card) Label(cfg *config.GameConfig) string {
	kind := []string{"Suspect", "Weapon", "Room"}[c.Category]
	return fmt.Sprintf("%s:%s", kind, c.Name(cfg))
}

// Universe returns every card of the game, grouped by category in vocabulary order.
func Universe(cfg *config.GameConfig) []Card {
	var cards []Card
	for _, cat := range config.Categories {
		for i := 0; i < cfg.CategorySize(cat); i++ {
			cards = append(cards, Card{Category: cat, Index: i})
		}
	}
	return cards
}

// Solution is the hidden envelope: one card from each category.
type Solution struct {
	Suspect config.SuspectID
	Weapon  config.WeaponID
	Room    config.RoomID
}

// Cards returns the three solution cards.
func (s Solution) Cards() []Card {
	return []Card{SuspectCard(s.Suspect), WeaponCard(s.Weapon), RoomCard(s.Room)}
}
