package cli

import (
	"clue-mansion/internal/config"
	"clue-mansion/internal/game"
	"clue-mansion/internal/session"
	"errors"
	"fmt"
	"math/rand"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// Menu entries offered at the start of every turn.
const (
	choiceGuess = "Make a guess"
	choiceHand  = "See my cards"
	choiceMove  = "Move to a different room"
	choiceNotes = "Scratch Pad"
	choiceRules = "Display Rules"
	choiceExit  = "Exit Game"
)

var turnChoices = []string{choiceGuess, choiceHand, choiceMove, choiceNotes, choiceRules, choiceExit}

// CLI manages all command-line interactions.
type CLI struct {
	log  *logrus.Logger
	line *liner.State
}

// NewCLI creates a new command-line interface manager.
func NewCLI(log *logrus.Logger) *CLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &CLI{
		log:  log,
		line: line,
	}
}

// Run is the main entry point for the CLI application.
func (c *CLI) Run(args []string, cfg *config.GameConfig, rand *rand.Rand, cpuPolicy string) error {
	defer c.line.Close()
	if len(args) < 1 {
		c.printUsage()
		return errors.New("no command provided")
	}

	switch args[0] {
	case "play":
		manager := session.NewManager(cfg, c.log, rand)
		if err := manager.UsePolicy(cpuPolicy); err != nil {
			return err
		}
		return c.runPlayMode(cfg, manager)
	case "rules":
		printRules(cfg)
		return nil
	default:
		c.printUsage()
		return fmt.Errorf("unknown command '%s'", args[0])
	}
}

func (c *CLI) runPlayMode(cfg *config.GameConfig, manager *session.Manager) error {
	printIntro()
	printRules(cfg)

	human := c.promptForSelection("Which guest will you play?", cfg.Suspects)
	total := c.promptForInt(fmt.Sprintf("How many players in total, including you? (2-%d): ", len(cfg.Suspects)), 2, len(cfg.Suspects))

	manager.Subscribe(&GameRenderer{})
	h, err := manager.StartNewGame(human, total)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	defer manager.Discard(h)

	g, err := manager.Game(h)
	if err != nil {
		return err
	}

	for !g.IsOver() {
		c.promptForString("Press ENTER to continue ", true)
		snap, err := manager.BoardSnapshot(h)
		if err != nil {
			return err
		}
		RenderBoard(cfg, snap, cfg.RoomName(g.HumanRoom()))

		switch c.promptForSelection(fmt.Sprintf("Turn %d:", g.Turn()+1), turnChoices) {
		case choiceGuess:
			c.handleGuess(cfg, manager, h, g)
		case choiceHand:
			hand, err := manager.Inspect(h)
			if err != nil {
				return err
			}
			RenderHand(cfg, hand)
		case choiceMove:
			c.handleMove(manager, h, cfg.RoomName(g.HumanRoom()))
		case choiceNotes:
			c.handleNotes(cfg, manager, h, g)
		case choiceRules:
			if err := manager.ShowRules(h); err != nil {
				return err
			}
			printRules(cfg)
		case choiceExit:
			if err := manager.Exit(h); err != nil {
				return err
			}
		}
	}
	C.Info.Println("\nThanks for playing!")
	return nil
}

func (c *CLI) handleGuess(cfg *config.GameConfig, manager *session.Manager, h session.Handle, g *game.Game) {
	C.Header.Println("\n--- Take a guess ---")
	C.Info.Printf("Guess location (your current location): %s\n", cfg.RoomName(g.HumanRoom()))
	suspect := c.promptForSelection("Guess the murderer", cfg.Suspects)
	weapon := c.promptForSelection("Guess the weapon", cfg.Weapons)

	out, err := manager.SubmitGuess(h, suspect, weapon)
	if err != nil {
		C.Warn.Printf("Could not make that guess: %v\n", err)
		return
	}
	if out.Kind == game.OutcomeCorrect {
		C.Yes.Println("\n***YOU GUESSED IT!***")
	}
}

func (c *CLI) handleMove(manager *session.Manager, h session.Handle, current string) {
	options, err := manager.LegalMoveOptions(h)
	if err != nil {
		C.Warn.Println(err)
		return
	}
	C.Info.Printf("You are currently in the %s\n", current)
	if len(options) == 0 {
		C.Warn.Println("Sorry, all adjoining rooms are occupied. Please make a")
		C.Warn.Println("guess, which will make the CPU players move.")
		return
	}
	dest := c.promptForSelection("From here you can go to:", options)
	if err := manager.SubmitMove(h, dest); err != nil {
		C.Warn.Printf("Sorry, %v\n", err)
	}
}

func (c *CLI) handleNotes(cfg *config.GameConfig, manager *session.Manager, h session.Handle, g *game.Game) {
	text, err := manager.ReadNotes(h)
	if err != nil {
		C.Warn.Println(err)
		return
	}
	C.Header.Println("\n--- Scratch Pad ---")
	fmt.Println(text)
	RenderSheet(cfg, g.Sheet())

	// An empty note still submits the notes action, which only reads.
	note := c.promptForString("Add more notes (ENTER to skip): ", true)
	if err := manager.AppendNote(h, note); err != nil {
		C.Warn.Println(err)
	}
}
