package state

import "errors"

var (
	// ErrOutOfRange is returned when a positional MarketRef falls outside the list.
	ErrOutOfRange = errors.New("market index out of range")
	// ErrUnknownMarket is returned when no market has the referenced ID.
	ErrUnknownMarket = errors.New("unknown market")
	// ErrCardUnderflow is returned when removing a card from a market that has none.
	ErrCardUnderflow = errors.New("market has no cards to remove")
)
