package game

import (
	"clue-mansion/internal/ai"
	"clue-mansion/internal/board"
	"clue-mansion/internal/config"
	"clue-mansion/internal/deck"
	"clue-mansion/internal/events"
	"clue-mansion/internal/notes"
	"clue-mansion/internal/player"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// State is a node of the turn state machine.
type State int

const (
	AwaitingHumanAction State = iota
	MovePending
	GuessPending
	NotesPending
	InspectPending
	RulesPending
	GameOver
)

func (s State) String() string {
	return []string{"awaiting-action", "move", "guess", "notes", "inspect", "rules", "game-over"}[s]
}

// ActionKind is what the human chose to do this turn.
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionGuess
	ActionNotes
	ActionInspect
	ActionRules
	ActionExit
)

// Action is one human decision. Only the fields for its Kind are read.
type Action struct {
	Kind    ActionKind
	Room    config.RoomID    // ActionMove
	Suspect config.SuspectID // ActionGuess
	Weapon  config.WeaponID  // ActionGuess
	Note    string           // ActionNotes; empty means read only
}

// Result carries what an action produced.
type Result struct {
	Outcome *Outcome
	Hand    []deck.Card
	Notes   string
}

// Game represents the state and logic of a single game. All mutable state
// lives here and only changes through Submit.
type Game struct {
	Config       *config.GameConfig
	EventManager *events.Manager
	graph        *board.Graph
	occupancy    *board.Occupancy
	players      *player.Registry
	solution     deck.Solution
	pad          *notes.Pad
	policy       ai.MovePolicy
	state        State
	humanWon     bool
	turn         int
	log          logrus.FieldLogger
}

// newGame seats the players and places them on the board. Cards are dealt by start.
func newGame(cfg *config.GameConfig, log logrus.FieldLogger, em *events.Manager, human config.SuspectID, total int, policy ai.MovePolicy) (*Game, error) {
	players, err := player.NewRegistry(cfg, human, total)
	if err != nil {
		return nil, err
	}
	graph := board.NewGraph(cfg)
	g := &Game{
		Config:       cfg,
		EventManager: em,
		graph:        graph,
		occupancy:    board.NewOccupancy(graph),
		players:      players,
		policy:       policy,
		log:          log,
	}
	for _, p := range players.All() {
		if err := g.occupancy.Enter(p.Room(), p.Suspect()); err != nil {
			return nil, g.fault(err)
		}
	}
	g.pad = notes.New(cfg, g.PlayerNames(), log)
	return g, nil
}

// start seals the envelope and hands out the cards. hands is indexed by seat.
func (g *Game) start(solution deck.Solution, hands [][]deck.Card) {
	g.solution = solution
	seats := g.players.All()
	for i, hand := range hands {
		for _, card := range hand {
			seats[i].DealCard(card)
		}
		g.log.WithField("player", seats[i].Name()).Debugf("hand: %s", g.labels(seats[i].Hand()))
	}
	g.log.Debugf("Ground truth initialized. Solution: %s", g.describeGuess(Guess(solution)))

	human := g.players.Human()
	for _, card := range human.Hand() {
		g.pad.MarkHolder(card, human.Name())
	}
	g.pad.Append("YOUR CARDS - " + g.labels(human.Hand()))

	var cpuNames []string
	for _, cpu := range g.players.CPUs() {
		cpuNames = append(cpuNames, cpu.Name())
	}
	g.EventManager.Publish(events.GameReadyEvent{
		HumanName: human.Name(),
		CPUNames:  cpuNames,
		HumanRoom: g.graph.Name(human.Room()),
	})
	var hand []string
	for _, card := range human.Hand() {
		hand = append(hand, card.Name(g.Config))
	}
	g.EventManager.Publish(events.HumanHandRevealedEvent{PlayerName: human.Name(), Hand: hand})
	g.state = AwaitingHumanAction
}

// Submit runs one human action through the state machine.
func (g *Game) Submit(a Action) (Result, error) {
	if g.state == GameOver {
		return Result{}, ErrGameOver
	}

	var (
		res Result
		err error
	)
	switch a.Kind {
	case ActionMove:
		g.state = MovePending
		err = g.move(g.players.Human(), a.Room)
	case ActionGuess:
		g.state = GuessPending
		var out Outcome
		out, err = g.guess(a.Suspect, a.Weapon)
		if err == nil {
			res.Outcome = &out
		}
	case ActionNotes:
		g.state = NotesPending
		if strings.TrimSpace(a.Note) != "" {
			g.pad.Append(a.Note)
		}
		res.Notes = g.pad.Text()
	case ActionInspect:
		g.state = InspectPending
		res.Hand = g.players.Human().Hand()
	case ActionRules:
		g.state = RulesPending
	case ActionExit:
		g.log.Info("human left the game")
		g.finish(false)
		return res, nil
	default:
		return res, fmt.Errorf("unknown action %d", a.Kind)
	}

	if g.state != GameOver {
		g.state = AwaitingHumanAction
	}
	if err != nil {
		return Result{}, err
	}
	g.turn++
	return res, nil
}

func (g *Game) guess(s config.SuspectID, w config.WeaponID) (Outcome, error) {
	if g.Config.SuspectName(s) == "" {
		return Outcome{}, fmt.Errorf("%w: suspect %d", ErrUnknownCardReference, s)
	}
	if g.Config.WeaponName(w) == "" {
		return Outcome{}, fmt.Errorf("%w: weapon %d", ErrUnknownCardReference, w)
	}

	human := g.players.Human()
	guess := Guess{Suspect: s, Weapon: w, Room: human.Room()}
	g.pad.Append("You guessed: " + g.describeGuess(guess))
	g.EventManager.Publish(events.GuessMadeEvent{
		PlayerName: human.Name(),
		Suspect:    g.Config.SuspectName(s),
		Weapon:     g.Config.WeaponName(w),
		Room:       g.graph.Name(guess.Room),
	})

	out := Resolve(guess, g.solution, g.players.CPUs(), human.Hand())
	g.log.WithField("outcome", out.Kind).Debugf("resolved %s", g.describeGuess(guess))

	switch out.Kind {
	case OutcomeCorrect:
		g.finish(true)
		return out, nil
	case OutcomeRefuted:
		label := out.Card.Label(g.Config)
		g.pad.Append(fmt.Sprintf("CPU Player %s has the card: %s", out.RefuterName, label))
		g.pad.MarkHolder(out.Card, out.RefuterName)
		g.EventManager.Publish(events.RefutedEvent{RefuterName: out.RefuterName, Card: out.Card, CardLabel: label})
	case OutcomeUnrefuted:
		g.pad.Append("No CPU players have the card")
		var own []string
		for _, c := range out.OwnCards {
			own = append(own, c.Label(g.Config))
		}
		g.EventManager.Publish(events.UnrefutedEvent{OwnCards: own})
	}

	if err := g.cpuSweep(); err != nil {
		return Outcome{}, err
	}
	if err := g.verifyBoard(); err != nil {
		return Outcome{}, g.fault(err)
	}
	return out, nil
}

func (g *Game) finish(won bool) {
	g.state = GameOver
	g.humanWon = won
	g.EventManager.Publish(events.GameOverEvent{
		HumanWon: won,
		Suspect:  g.Config.SuspectName(g.solution.Suspect),
		Weapon:   g.Config.WeaponName(g.solution.Weapon),
		Room:     g.Config.RoomName(g.solution.Room),
	})
}

// --- Convenience wrappers over Submit ---

func (g *Game) Move(room config.RoomID) error {
	_, err := g.Submit(Action{Kind: ActionMove, Room: room})
	return err
}

func (g *Game) Guess(s config.SuspectID, w config.WeaponID) (Outcome, error) {
	res, err := g.Submit(Action{Kind: ActionGuess, Suspect: s, Weapon: w})
	if err != nil {
		return Outcome{}, err
	}
	return *res.Outcome, nil
}

func (g *Game) AppendNote(text string) error {
	_, err := g.Submit(Action{Kind: ActionNotes, Note: text})
	return err
}

// Inspect shows the human their hand. It counts as a turn.
func (g *Game) Inspect() ([]deck.Card, error) {
	res, err := g.Submit(Action{Kind: ActionInspect})
	return res.Hand, err
}

func (g *Game) Rules() error {
	_, err := g.Submit(Action{Kind: ActionRules})
	return err
}

func (g *Game) Exit() error {
	_, err := g.Submit(Action{Kind: ActionExit})
	return err
}

// --- Read-only views ---

func (g *Game) State() State       { return g.state }
func (g *Game) IsOver() bool       { return g.state == GameOver }
func (g *Game) HumanWon() bool     { return g.humanWon }
func (g *Game) Turn() int          { return g.turn }
func (g *Game) Notes() string      { return g.pad.Text() }
func (g *Game) Sheet() notes.Sheet { return g.pad.Sheet() }

// LegalMoves lists the rooms the human may enter right now, in adjacency order.
func (g *Game) LegalMoves() []config.RoomID {
	return g.legalDestinations(g.players.Human())
}

func (g *Game) HumanRoom() config.RoomID { return g.players.Human().Room() }

func (g *Game) HumanHand() []deck.Card { return g.players.Human().Hand() }

// Board maps every room to its occupant, or config.NoSuspect when empty.
func (g *Game) Board() map[config.RoomID]config.SuspectID {
	return g.occupancy.Snapshot()
}

// PlayerNames returns every seated player, human first.
func (g *Game) PlayerNames() []string {
	var names []string
	for _, p := range g.players.All() {
		names = append(names, p.Name())
	}
	return names
}

// Solution is only revealed once the game has ended.
func (g *Game) Solution() (deck.Solution, bool) {
	if g.state != GameOver {
		return deck.Solution{}, false
	}
	return g.solution, true
}

func (g *Game) describeGuess(guess Guess) string {
	return fmt.Sprintf("%s in the %s with the %s",
		g.Config.SuspectName(guess.Suspect), g.Config.RoomName(guess.Room), g.Config.WeaponName(guess.Weapon))
}

func (g *Game) labels(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Label(g.Config)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
