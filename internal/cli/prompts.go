package cli

import (
	"clue-mansion/internal/config"
	"clue-mansion/internal/deck"
	"clue-mansion/internal/notes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Yes, No, Maybe, Info, Warn, Header, Prompt, Debug *color.Color
}{
	Yes:    color.New(color.FgGreen),
	No:     color.New(color.FgRed),
	Maybe:  color.New(color.FgYellow),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
	Debug:  color.New(color.FgMagenta),
}

// SuspectColors maps suspect names to specific colors for display.
var SuspectColors = map[string]*color.Color{
	"Miss Scarlet":    color.New(color.FgRed),
	"Colonel Mustard": color.New(color.FgYellow),
	"Mrs White":       color.New(color.FgWhite),
	"Reverend Green":  color.New(color.FgGreen),
	"Madame Peacock":  color.New(color.FgBlue),
	"Professor Plum":  color.New(color.FgMagenta),
}

// ColorizeCard returns a card name as a colored string if it's a suspect.
func ColorizeCard(name string) string {
	if c, ok := SuspectColors[name]; ok {
		return c.Sprint(name)
	}
	return name
}

// RenderBoard draws the mansion three rooms to a row, with each room's occupant.
func RenderBoard(cfg *config.GameConfig, snapshot map[string]string, current string) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("The Mansion")

	var row table.Row
	for i, room := range cfg.Rooms {
		name := room.Name
		if name == current {
			name = C.Header.Sprint(name + " *")
		}
		cell := name + "\n" + ColorizeCard(snapshot[room.Name])
		row = append(row, cell)
		if (i+1)%3 == 0 {
			t.AppendRow(row)
			t.AppendSeparator()
			row = nil
		}
	}
	if len(row) > 0 {
		t.AppendRow(row)
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignCenter, WidthMin: 16},
		{Number: 2, Align: text.AlignCenter, WidthMin: 16},
		{Number: 3, Align: text.AlignCenter, WidthMin: 16},
	})
	t.Render()
	C.Info.Println("* your room")
}

func RenderHand(cfg *config.GameConfig, hand []deck.Card) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Your Cards")
	t.AppendHeader(table.Row{"Card", "Type"})
	for _, card := range hand {
		t.AppendRow(table.Row{ColorizeCard(card.Name(cfg)), card.Category.String()})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

// RenderSheet displays the scratch pad's card sheet in a formatted table.
func RenderSheet(cfg *config.GameConfig, sheet notes.Sheet) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Detective Notes")
	players := sheet.Players()
	header := table.Row{"ID", "Card", "Type"}
	for _, pName := range players {
		header = append(header, ColorizeCard(pName))
	}
	header = append(header, "Solution")
	t.AppendHeader(header)

	cards := deck.Universe(cfg)
	for cardID, card := range cards {
		if cardID > 0 && card.Category != cards[cardID-1].Category {
			t.AppendSeparator()
		}
		row := table.Row{cardID + 1, ColorizeCard(card.Name(cfg)), card.Category.String()}
		for _, pName := range players {
			row = append(row, statusToSymbol(sheet.Status(card, pName)))
		}
		row = append(row, statusToSymbol(sheet.Status(card, notes.SolutionColumn)))
		t.AppendRow(row)
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = false
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	t.Render()
}

func statusToSymbol(status notes.CardStatus) string {
	switch status {
	case notes.StatusYes:
		return C.Yes.Sprint("✔")
	case notes.StatusNo:
		return C.No.Sprint("✖")
	default:
		return C.Maybe.Sprint("?")
	}
}

// --- Prompting and Usage ---

func (c *CLI) printUsage() {
	C.Header.Println("\n--- Clue Mansion ---")
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/clue play")
	fmt.Println("    Play a game against the CPU guests.")
	fmt.Println("  go run ./cmd/clue rules")
	fmt.Println("    Print the rules and exit.")
	fmt.Println("\nFlags:")
	fmt.Println("  -loglevel debug    Trace the engine, including the hidden solution.")
	fmt.Println("  -config file.json  Load a custom mansion definition.")
	fmt.Println("  -seed n            Fix the random seed.")
	fmt.Println("  -cpu first|random  How CPU guests pick their next room.")
}

func printIntro() {
	C.Header.Println(`
       CCCCCCC   LL        UU   UU   EEEEEEE   !!!!
       CC        LL        UU   UU   EE        !!!!
       CC        LL        UU   UU   EEEEE      !!
       CC        LL        UU   UU   EE
       CCCCCCC   LLLLLLL   UUUUUUU   EEEEEEE    OO`)
	C.Info.Println("\nWELCOME TO CLUE!")
	fmt.Println("You are a guest at a dinner party. A murder has been committed!")
	fmt.Println("Your job is to correctly guess where the murder was committed,")
	fmt.Println("using what weapon and by which guest.")
}

func printRules(cfg *config.GameConfig) {
	C.Header.Println("\nGAME RULES")
	fmt.Println(strings.Repeat("-", 66))
	fmt.Printf("The murderer could be one of the %d guests:\n  %s\n", len(cfg.Suspects), strings.Join(cfg.Suspects, ", "))
	fmt.Println("You will pick one of these guests to represent you, but bear in mind that you could be the murderer.")
	fmt.Printf("\nThe weapon could be one of these %d weapons:\n  %s\n", len(cfg.Weapons), strings.Join(cfg.Weapons, ", "))
	rooms := cfg.CardListForCategory(config.CategoryRoom)
	fmt.Printf("\nThe murder happened in one of these %d rooms:\n  %s\n", len(rooms), strings.Join(rooms, ", "))
	fmt.Println("To name a room in a guess you must be standing in it.")

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Room", "Leads to"})
	for i, room := range cfg.Rooms {
		var next []string
		for _, r := range cfg.Adjacency(config.RoomID(i)) {
			next = append(next, cfg.RoomName(r))
		}
		t.AppendRow(table.Row{room.Name, strings.Join(next, ", ")})
	}
	t.SetStyle(table.StyleLight)
	t.Render()

	fmt.Println("Whenever you make a guess, the CPU players take a turn and move if they can.")
	fmt.Println("So you should not get stuck, but if you do, make some guesses!")
	fmt.Println("\nOne guest, one weapon and one room card were sealed in the envelope.")
	fmt.Println("The remaining cards were dealt out to the players.")
	fmt.Println("Your cards and your guesses are added to your scratch pad automatically.")
}

func (c *CLI) promptForString(prompt string, allowEmpty bool) string {
	for {
		C.Prompt.Print(prompt)
		input, err := c.line.Prompt("")
		if err != nil {
			C.Info.Println("\nGoodbye!")
			c.line.Close()
			os.Exit(0)
		}
		trimmed := strings.TrimSpace(input)
		if trimmed != "" {
			c.line.AppendHistory(trimmed)
			return trimmed
		}
		if allowEmpty {
			return ""
		}
	}
}

func (c *CLI) promptForInt(prompt string, min, max int) int {
	for {
		input := c.promptForString(prompt, false)
		num, err := strconv.Atoi(input)
		if err != nil || num < min || num > max {
			C.Warn.Printf("Invalid input. Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return num
	}
}

func (c *CLI) promptForSelection(prompt string, options []string) string {
	for {
		C.Header.Println("\n" + prompt)
		for i, opt := range options {
			fmt.Printf(" %2d: %s\n", i+1, ColorizeCard(opt))
		}
		input := c.promptForString("Enter number or name: ", false)
		if num, err := strconv.Atoi(input); err == nil && num >= 1 && num <= len(options) {
			return options[num-1]
		}
		for _, opt := range options {
			if strings.EqualFold(opt, input) {
				return opt
			}
		}
		C.Warn.Println("Invalid selection.")
	}
}
