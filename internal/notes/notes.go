package notes

import (
	"clue-mansion/internal/config"
	"clue-mansion/internal/deck"
	"strings"

	"github.com/sirupsen/logrus"
)

// SolutionColumn is the sheet column for the hidden envelope.
const SolutionColumn = "solution"

// CardStatus defines the knowledge state of a card.
type CardStatus int

const (
	StatusMaybe CardStatus = iota
	StatusYes
	StatusNo
)

// Pad is the human's scratch pad: an append-only log of free text plus a card
// sheet recording who is known to hold what.
type Pad struct {
	cfg       *config.GameConfig
	players   []string
	entries   []string
	knowledge map[deck.Card]map[string]CardStatus
	log       logrus.FieldLogger
}

// New creates an empty pad with one sheet column per player and one for the solution.
func New(cfg *config.GameConfig, players []string, logger logrus.FieldLogger) *Pad {
	p := &Pad{
		cfg:       cfg,
		players:   append([]string(nil), players...),
		knowledge: make(map[deck.Card]map[string]CardStatus),
		log:       logger,
	}
	for _, card := range deck.Universe(cfg) {
		p.knowledge[card] = make(map[string]CardStatus)
		for _, name := range p.columns() {
			p.knowledge[card][name] = StatusMaybe
		}
	}
	return p
}

// Append adds a line to the log. Entries are never edited or removed.
func (p *Pad) Append(text string) {
	p.entries = append(p.entries, text)
}

func (p *Pad) Entries() []string {
	return append([]string(nil), p.entries...)
}

// Text is the whole log, one entry per line.
func (p *Pad) Text() string {
	return strings.Join(p.entries, "\n")
}

// Players returns the sheet's player columns in seating order.
func (p *Pad) Players() []string {
	return append([]string(nil), p.players...)
}

func (p *Pad) Status(card deck.Card, column string) CardStatus {
	return p.knowledge[card][column]
}

// Sheet is a read-only copy of the card sheet, taken at one point in time.
type Sheet struct {
	players []string
	status  map[deck.Card]map[string]CardStatus
}

// Sheet copies the card sheet out of the pad.
func (p *Pad) Sheet() Sheet {
	status := make(map[deck.Card]map[string]CardStatus, len(p.knowledge))
	for card, row := range p.knowledge {
		status[card] = make(map[string]CardStatus, len(row))
		for col, st := range row {
			status[card][col] = st
		}
	}
	return Sheet{players: p.Players(), status: status}
}

func (s Sheet) Players() []string {
	return append([]string(nil), s.players...)
}

func (s Sheet) Status(card deck.Card, column string) CardStatus {
	return s.status[card][column]
}

// MarkHolder records that column holds card and that nobody else does. It then
// reruns the elimination rules. It reports whether anything changed.
func (p *Pad) MarkHolder(card deck.Card, column string) bool {
	changed := p.markCardLocation(card, column)
	if changed {
		p.runDeductionLoop()
	}
	return changed
}

// SolutionFor returns the solution card for cat once the sheet has pinned it down.
func (p *Pad) SolutionFor(cat config.CardCategory) (deck.Card, bool) {
	for i := 0; i < p.cfg.CategorySize(cat); i++ {
		card := deck.Card{Category: cat, Index: i}
		if p.knowledge[card][SolutionColumn] == StatusYes {
			return card, true
		}
	}
	return deck.Card{}, false
}

func (p *Pad) columns() []string {
	cols := make([]string, len(p.players)+1)
	copy(cols, p.players)
	cols[len(p.players)] = SolutionColumn
	return cols
}

func (p *Pad) markCardLocation(card deck.Card, column string) bool {
	row, ok := p.knowledge[card]
	if !ok {
		p.log.Errorf("notes: unknown card %+v", card)
		return false
	}
	if _, ok := row[column]; !ok {
		p.log.Errorf("notes: unknown column %q", column)
		return false
	}
	if row[column] == StatusYes {
		return false
	}
	p.log.Debugf("Noted that '%s' is with %s.", card.Name(p.cfg), column)
	for _, col := range p.columns() {
		row[col] = StatusNo
	}
	row[column] = StatusYes
	return true
}

func (p *Pad) runDeductionLoop() {
	for i := 0; i < 10; i++ {
		var changed bool
		changed = p.deduceSolutionByElimination() || changed
		changed = p.deduceCardLocationsByElimination() || changed
		if !changed {
			break
		}
	}
}

// deduceSolutionByElimination fills in the envelope for a category once every
// other card of that category is known to be held by a player.
func (p *Pad) deduceSolutionByElimination() bool {
	var changed bool
	for _, cat := range config.Categories {
		if _, solved := p.SolutionFor(cat); solved {
			continue
		}
		var maybes []deck.Card
		for i := 0; i < p.cfg.CategorySize(cat); i++ {
			card := deck.Card{Category: cat, Index: i}
			if p.knowledge[card][SolutionColumn] == StatusMaybe {
				maybes = append(maybes, card)
			}
		}
		if len(maybes) == 1 && p.markCardLocation(maybes[0], SolutionColumn) {
			p.log.Infof("Deduced the %s solution: %s", cat, maybes[0].Name(p.cfg))
			changed = true
		}
	}
	return changed
}

func (p *Pad) deduceCardLocationsByElimination() bool {
	var changed bool
	for card, row := range p.knowledge {
		var maybes []string
		known := false
		for _, col := range p.columns() {
			if row[col] == StatusYes {
				known = true
				break
			}
			if row[col] == StatusMaybe {
				maybes = append(maybes, col)
			}
		}
		if !known && len(maybes) == 1 && p.markCardLocation(card, maybes[0]) {
			changed = true
		}
	}
	return changed
}
