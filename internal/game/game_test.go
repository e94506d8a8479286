package game

import (
	"io"
	"testing"

	"clue-mansion/internal/ai"
	"clue-mansion/internal/config"
	"clue-mansion/internal/deck"
	"clue-mansion/internal/events"
	"clue-mansion/internal/notes"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed vocabulary indices of the default mansion.
const (
	plum, scarlet, green, white, mustard, peacock = config.SuspectID(0), config.SuspectID(1), config.SuspectID(2), config.SuspectID(3), config.SuspectID(4), config.SuspectID(5)

	candlestick, knife, leadPipe, revolver, rope = config.WeaponID(0), config.WeaponID(1), config.WeaponID(2), config.WeaponID(3), config.WeaponID(4)

	library, hall, study, diningRoom, basement, theater, kitchen, conservatory, garage = config.RoomID(0), config.RoomID(1), config.RoomID(2), config.RoomID(3), config.RoomID(4), config.RoomID(5), config.RoomID(6), config.RoomID(7), config.RoomID(8)
)

// recorder collects every published event.
type recorder struct {
	events []events.Event
}

func (r *recorder) HandleEvent(e events.Event) { r.events = append(r.events, e) }

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// setupDeterministicGame builds a game with a known solution and known hands.
// hands is indexed by seat: the human first, then the CPUs.
func setupDeterministicGame(t *testing.T, human config.SuspectID, total int, solution deck.Solution, hands [][]deck.Card) (*Game, *recorder) {
	t.Helper()

	cfg, err := config.Default()
	require.NoError(t, err)

	em := events.NewManager()
	rec := &recorder{}
	em.Subscribe(rec)

	g, err := newGame(cfg, quietLogger(), em, human, total, ai.FirstFree{})
	require.NoError(t, err)
	g.start(solution, hands)
	return g, rec
}

// place teleports a seated suspect into an empty room for test setup.
func place(t *testing.T, g *Game, who config.SuspectID, room config.RoomID) {
	t.Helper()
	p, ok := g.players.Get(who)
	require.True(t, ok)
	require.NoError(t, g.occupancy.Leave(p.Room(), who))
	require.NoError(t, g.occupancy.Enter(room, who))
	p.SetRoom(room)
}

func roomOf(t *testing.T, g *Game, who config.SuspectID) config.RoomID {
	t.Helper()
	p, ok := g.players.Get(who)
	require.True(t, ok)
	return p.Room()
}

func TestScenarioCorrectGuessEndsGame(t *testing.T) {
	// GIVEN a two player game whose solution is Mustard with the Rope in the Garage
	solution := deck.Solution{Suspect: mustard, Weapon: rope, Room: garage}
	g, rec := setupDeterministicGame(t, plum, 2, solution, nil)
	require.Equal(t, garage, g.HumanRoom())

	// WHEN the human names it from the Garage
	out, err := g.Guess(mustard, rope)

	// THEN the human wins
	require.NoError(t, err)
	assert.Equal(t, OutcomeCorrect, out.Kind)
	assert.True(t, g.IsOver())
	assert.True(t, g.HumanWon())
	assert.Equal(t, GameOver, g.State())

	revealed, ok := g.Solution()
	assert.True(t, ok)
	assert.Equal(t, solution, revealed)

	last := rec.events[len(rec.events)-1]
	assert.Equal(t, events.GameOverEvent{HumanWon: true, Suspect: "Colonel Mustard", Weapon: "Rope", Room: "Garage"}, last)

	t.Run("no CPU moves after a winning guess", func(t *testing.T) {
		assert.Equal(t, hall, roomOf(t, g, scarlet))
	})

	t.Run("further actions are rejected", func(t *testing.T) {
		assert.ErrorIs(t, g.Move(conservatory), ErrGameOver)
		_, err := g.Guess(plum, knife)
		assert.ErrorIs(t, err, ErrGameOver)
		assert.ErrorIs(t, g.AppendNote("too late"), ErrGameOver)
	})
}

func TestScenarioSingleCPURefutes(t *testing.T) {
	// GIVEN only the CPU holds the Candlestick, and nobody holds Green or the Garage
	solution := deck.Solution{Suspect: white, Weapon: knife, Room: library}
	hands := [][]deck.Card{
		{deck.WeaponCard(rope)},
		{deck.WeaponCard(revolver), deck.WeaponCard(candlestick), deck.RoomCard(hall)},
	}
	g, _ := setupDeterministicGame(t, plum, 2, solution, hands)

	// WHEN the human guesses Green with the Candlestick in the Garage
	out, err := g.Guess(green, candlestick)

	// THEN Miss Scarlet shows the Candlestick
	require.NoError(t, err)
	assert.Equal(t, OutcomeRefuted, out.Kind)
	assert.Equal(t, scarlet, out.Refuter)
	assert.Equal(t, "Miss Scarlet", out.RefuterName)
	assert.Equal(t, deck.WeaponCard(candlestick), out.Card)
	assert.False(t, g.IsOver())
	assert.Equal(t, AwaitingHumanAction, g.State())

	t.Run("the pad records the guess and the refutation", func(t *testing.T) {
		text := g.Notes()
		assert.Contains(t, text, "You guessed: Reverend Green in the Garage with the Candlestick")
		assert.Contains(t, text, "CPU Player Miss Scarlet has the card: Weapon:Candlestick")
		assert.Equal(t, notes.StatusYes, g.Sheet().Status(deck.WeaponCard(candlestick), "Miss Scarlet"))
	})

	t.Run("the CPU moved once afterwards", func(t *testing.T) {
		// Hall connects to Library first, which is empty.
		assert.Equal(t, library, roomOf(t, g, scarlet))
	})
}

func TestScenarioMoveWithoutEdge(t *testing.T) {
	g, _ := setupDeterministicGame(t, plum, 3, deck.Solution{}, nil)
	before := g.Board()

	// WHEN the human tries to walk from the Garage straight to the Study
	err := g.Move(study)

	// THEN the move is refused and nothing changed
	assert.ErrorIs(t, err, ErrIllegalMove)
	assert.Equal(t, before, g.Board())
	assert.Equal(t, garage, g.HumanRoom())
	assert.Equal(t, AwaitingHumanAction, g.State())
	assert.Equal(t, 0, g.Turn())
}

func TestMoveLegality(t *testing.T) {
	// GIVEN a full table: CPUs stand in Hall, Study, Dining Room, Basement and Theater
	g, rec := setupDeterministicGame(t, plum, 6, deck.Solution{}, nil)

	t.Run("legal moves skip occupied rooms", func(t *testing.T) {
		assert.Equal(t, []config.RoomID{conservatory, library}, g.LegalMoves())
	})

	t.Run("an occupied neighbour is illegal", func(t *testing.T) {
		before := g.Board()
		assert.ErrorIs(t, g.Move(theater), ErrIllegalMove)
		assert.Equal(t, before, g.Board())
	})

	t.Run("an unknown room is illegal", func(t *testing.T) {
		assert.ErrorIs(t, g.Move(config.RoomID(42)), ErrIllegalMove)
	})

	t.Run("a free neighbour is legal and does not move the CPUs", func(t *testing.T) {
		rec.events = nil

		require.NoError(t, g.Move(conservatory))

		board := g.Board()
		assert.Equal(t, conservatory, g.HumanRoom())
		assert.Equal(t, plum, board[conservatory])
		assert.Equal(t, config.NoSuspect, board[garage])
		assert.Equal(t, peacock, board[theater])
		assert.Equal(t, []events.Event{events.PlayerMovedEvent{PlayerName: "Professor Plum", From: "Garage", To: "Conservatory", IsHuman: true}}, rec.events)
		assert.NoError(t, g.verifyBoard())
		assert.Equal(t, 1, g.Turn())
	})
}

func TestCPUSweep(t *testing.T) {
	t.Run("each CPU takes its first free neighbour in turn", func(t *testing.T) {
		g, _ := setupDeterministicGame(t, plum, 6, deck.Solution{Suspect: plum, Weapon: rope, Room: library}, nil)

		_, err := g.Guess(scarlet, knife)
		require.NoError(t, err)

		assert.Equal(t, library, roomOf(t, g, scarlet))
		assert.Equal(t, hall, roomOf(t, g, green))
		assert.Equal(t, kitchen, roomOf(t, g, white))
		assert.Equal(t, diningRoom, roomOf(t, g, mustard))
		assert.Equal(t, study, roomOf(t, g, peacock))
		assert.Equal(t, garage, g.HumanRoom())
		assert.NoError(t, g.verifyBoard())
	})

	t.Run("a boxed in CPU stays put", func(t *testing.T) {
		// GIVEN Scarlet in the Theater with Green in the Study, White in the Basement and the human in the Garage
		g, rec := setupDeterministicGame(t, plum, 4, deck.Solution{Suspect: plum, Weapon: rope, Room: library}, nil)
		place(t, g, scarlet, theater)
		place(t, g, white, basement)
		rec.events = nil

		// WHEN a wrong guess triggers the sweep
		_, err := g.Guess(scarlet, knife)
		require.NoError(t, err)

		// THEN Scarlet stays and the others move on
		assert.Contains(t, rec.events, events.PlayerStayedEvent{PlayerName: "Miss Scarlet", Room: "Theater"})
		assert.Equal(t, theater, roomOf(t, g, scarlet))
		assert.Equal(t, hall, roomOf(t, g, green))
		assert.Equal(t, diningRoom, roomOf(t, g, white))
	})
}

func TestResolveDeterminism(t *testing.T) {
	// GIVEN Green and White both hold a matching card, Scarlet holds none
	solution := deck.Solution{Suspect: peacock, Weapon: leadPipe, Room: kitchen}
	hands := [][]deck.Card{
		{deck.SuspectCard(mustard)},
		{deck.WeaponCard(candlestick), deck.RoomCard(study)},
		{deck.WeaponCard(revolver), deck.WeaponCard(rope), deck.RoomCard(garage)},
		{deck.SuspectCard(white), deck.WeaponCard(knife)},
	}
	g, _ := setupDeterministicGame(t, plum, 4, solution, hands)
	guess := Guess{Suspect: white, Weapon: rope, Room: garage}

	// WHEN the same guess is resolved repeatedly
	first := Resolve(guess, solution, g.players.CPUs(), g.HumanHand())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Resolve(guess, solution, g.players.CPUs(), g.HumanHand()))
	}

	// THEN Green, seated before White, shows his first matching card
	assert.Equal(t, OutcomeRefuted, first.Kind)
	assert.Equal(t, green, first.Refuter)
	assert.Equal(t, deck.WeaponCard(rope), first.Card)
}

func TestBoardCrossCheckAfterSweep(t *testing.T) {
	// GIVEN the occupancy map claims Madame Peacock, who is not seated, stands in the Kitchen
	g, _ := setupDeterministicGame(t, plum, 2, deck.Solution{Suspect: plum, Weapon: rope, Room: library}, nil)
	require.NoError(t, g.occupancy.Enter(kitchen, peacock))

	// WHEN a wrong guess runs the CPU sweep
	_, err := g.Guess(scarlet, knife)

	// THEN the disagreement surfaces as an internal fault
	assert.ErrorIs(t, err, ErrInternalFault)
}

func TestSheetIsReadOnly(t *testing.T) {
	g, _ := setupDeterministicGame(t, plum, 2, deck.Solution{}, [][]deck.Card{{deck.RoomCard(kitchen)}, {}})

	sheet := g.Sheet()

	assert.Equal(t, []string{"Professor Plum", "Miss Scarlet"}, sheet.Players())
	assert.Equal(t, notes.StatusYes, sheet.Status(deck.RoomCard(kitchen), "Professor Plum"))
	assert.Equal(t, notes.StatusMaybe, sheet.Status(deck.WeaponCard(rope), "Miss Scarlet"))
}
