package game

import (
	"math/rand"
	"testing"

	"clue-mansion/internal/ai"
	"clue-mansion/internal/config"
	"clue-mansion/internal/deck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	t.Run("it rejects bad tables", func(t *testing.T) {
		tt := []struct {
			name  string
			human string
			total int
			err   error
		}{
			{"too many players", "Miss Scarlet", 7, ErrInvalidPlayerCount},
			{"playing alone", "Miss Scarlet", 1, ErrInvalidPlayerCount},
			{"unknown suspect", "Mr Boddy", 3, ErrUnknownSuspect},
		}
		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewBuilder(cfg, quietLogger(), rand.New(rand.NewSource(1))).
					WithHuman(tc.human).WithTotalPlayers(tc.total).Build()
				assert.ErrorIs(t, err, tc.err)
			})
		}
	})

	t.Run("it conserves every card", func(t *testing.T) {
		for total := 2; total <= 6; total++ {
			g, err := NewBuilder(cfg, quietLogger(), rand.New(rand.NewSource(int64(total)))).
				WithHuman("Madame Peacock").WithTotalPlayers(total).Build()
			require.NoError(t, err)

			counts := make(map[deck.Card]int)
			for _, c := range g.solution.Cards() {
				counts[c]++
			}
			for _, p := range g.players.All() {
				for _, c := range p.Hand() {
					counts[c]++
				}
			}
			assert.Len(t, counts, 24)
			for c, n := range counts {
				assert.Equal(t, 1, n, "%s", c.Label(cfg))
			}
		}
	})

	t.Run("the game starts awaiting the human", func(t *testing.T) {
		g, err := NewBuilder(cfg, quietLogger(), rand.New(rand.NewSource(3))).
			WithHuman("Mrs White").WithTotalPlayers(3).Build()
		require.NoError(t, err)

		assert.Equal(t, AwaitingHumanAction, g.State())
		assert.Equal(t, []string{"Mrs White", "Professor Plum", "Miss Scarlet"}, g.PlayerNames())
		_, revealed := g.Solution()
		assert.False(t, revealed)
		assert.Contains(t, g.Notes(), "YOUR CARDS - [")
		for _, c := range g.HumanHand() {
			assert.Contains(t, g.Notes(), c.Label(cfg))
		}
	})
}

func TestSimulatedGameKeepsBoardConsistent(t *testing.T) {
	cfg, _ := config.Default()

	for seed := int64(1); seed <= 20; seed++ {
		// GIVEN a seeded six player game with wandering CPUs
		r := rand.New(rand.NewSource(seed))
		g, err := NewBuilder(cfg, quietLogger(), r).
			WithHuman("Colonel Mustard").WithTotalPlayers(6).
			WithMovePolicy(ai.NewRandomFree(rand.New(rand.NewSource(seed)))).
			Build()
		require.NoError(t, err)

		// WHEN the human plays random moves and guesses
		for step := 0; step < 60 && !g.IsOver(); step++ {
			if options := g.LegalMoves(); len(options) > 0 && r.Intn(2) == 0 {
				require.NoError(t, g.Move(options[r.Intn(len(options))]))
			} else {
				_, err := g.Guess(config.SuspectID(r.Intn(6)), config.WeaponID(r.Intn(9)))
				require.NoError(t, err)
			}

			// THEN the board never holds two players in one room
			require.NoError(t, g.verifyBoard(), "seed %d step %d", seed, step)
			occupied := 0
			for _, who := range g.Board() {
				if who != config.NoSuspect {
					occupied++
				}
			}
			require.Equal(t, 6, occupied)
		}
	}
}

func TestNotesAndInspect(t *testing.T) {
	g, _ := setupDeterministicGame(t, plum, 2, deck.Solution{}, [][]deck.Card{{deck.RoomCard(kitchen)}, {}})

	res, err := g.Submit(Action{Kind: ActionInspect})
	require.NoError(t, err)
	assert.Equal(t, []deck.Card{deck.RoomCard(kitchen)}, res.Hand)

	require.NoError(t, g.AppendNote("Scarlet keeps heading for the Library"))
	res, err = g.Submit(Action{Kind: ActionNotes})
	require.NoError(t, err)
	assert.Equal(t, "YOUR CARDS - [Room:Kitchen]\nScarlet keeps heading for the Library", res.Notes)

	_, err = g.Submit(Action{Kind: ActionRules})
	require.NoError(t, err)

	hand, err := g.Inspect()
	require.NoError(t, err)
	assert.Equal(t, []deck.Card{deck.RoomCard(kitchen)}, hand)
	require.NoError(t, g.Rules())

	assert.Equal(t, AwaitingHumanAction, g.State())
	assert.Equal(t, hall, roomOf(t, g, scarlet), "reading actions never move the CPUs")
	assert.Equal(t, 6, g.Turn())

	t.Run("exit ends the game without a win", func(t *testing.T) {
		require.NoError(t, g.Exit())
		assert.True(t, g.IsOver())
		assert.False(t, g.HumanWon())
		_, err := g.Submit(Action{Kind: ActionRules})
		assert.ErrorIs(t, err, ErrGameOver)
	})
}
