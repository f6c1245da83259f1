package engine

import "errors"

var (
	// ErrInvalidTransition is returned when the requested screen change is not in the transition table
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrInsufficientGold is returned by the shop when the player cannot afford an upgrade
	ErrInsufficientGold = errors.New("not enough gold")

	// ErrTierOwned is returned by the shop when the requested tier is not an upgrade
	ErrTierOwned = errors.New("special tier already owned")

	// ErrUnknownTier is returned by the shop for a tier outside the price table
	ErrUnknownTier = errors.New("unknown special tier")
)
