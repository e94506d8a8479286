package cli

import (
	"clue-mansion/internal/events"
	"strings"
)

// GameRenderer implements the events.Listener interface to print game state to the console.
type GameRenderer struct{}

// HandleEvent is the central dispatcher for rendering events.
func (r *GameRenderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.GameReadyEvent:
		C.Header.Println("\n--- The envelope is sealed ---")
		C.Info.Printf("You are %s, starting in the %s.\n", ColorizeCard(event.HumanName), event.HumanRoom)
		for i, name := range event.CPUNames {
			C.Info.Printf("CPU Player %d is %s\n", i+1, ColorizeCard(name))
		}
	case events.HumanHandRevealedEvent:
		var cardParts []string
		for _, card := range event.Hand {
			cardParts = append(cardParts, ColorizeCard(card))
		}
		C.Info.Printf("\n%s's hand: %s\n", ColorizeCard(event.PlayerName), strings.Join(cardParts, ", "))
	case events.GuessMadeEvent:
		C.Info.Printf("Your guess: %s in the %s with the %s\n", ColorizeCard(event.Suspect), event.Room, event.Weapon)
	case events.RefutedEvent:
		C.No.Println("Sorry, that is not correct.")
		C.Info.Printf("CPU Player %s has the card: %s\n", ColorizeCard(event.RefuterName), event.CardLabel)
	case events.UnrefutedEvent:
		C.No.Println("Sorry, that is not correct.")
		C.Maybe.Println("No CPU players have the card.")
		if len(event.OwnCards) > 0 {
			C.Info.Printf("You have the card: %s\n", strings.Join(event.OwnCards, ", "))
		}
	case events.CPUSweepStartedEvent:
		C.Header.Println("\nCPU Players are taking turns. They will move to a new room if they can.")
	case events.PlayerMovedEvent:
		if event.IsHuman {
			C.Info.Printf("You are now in the %s\n", event.To)
			return
		}
		C.Info.Printf("%s is leaving the %s and entering the %s\n", ColorizeCard(event.PlayerName), event.From, event.To)
	case events.PlayerStayedEvent:
		C.Maybe.Printf("All adjoining rooms occupied, %s is staying in the %s\n", ColorizeCard(event.PlayerName), event.Room)
	case events.GameOverEvent:
		r.renderGameResult(event)
	}
}

func (r *GameRenderer) renderGameResult(event events.GameOverEvent) {
	C.Header.Println("\n--- GAME OVER ---")
	if event.HumanWon {
		C.Yes.Println("You solved the murder!")
	} else {
		C.Warn.Println("You left the mansion without solving the murder.")
	}
	C.Info.Printf("It was %s in the %s with the %s.\n", ColorizeCard(event.Suspect), event.Room, event.Weapon)
}
