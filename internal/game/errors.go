package game

import (
	"clue-mansion/internal/player"
	"errors"
)

var (
	ErrInvalidPlayerCount   = player.ErrInvalidPlayerCount
	ErrUnknownSuspect       = player.ErrUnknownSuspect
	ErrIllegalMove          = errors.New("illegal move")
	ErrUnknownCardReference = errors.New("unknown card reference")
	ErrGameOver             = errors.New("game is over")
	// ErrInternalFault wraps a board invariant violation. It means a bug, not bad input.
	ErrInternalFault = errors.New("internal consistency fault")
)
