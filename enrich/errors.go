package enrich

import "errors"

var (
	// ErrProviderRequired is returned by New when no model-service
	// provider is supplied.
	ErrProviderRequired = errors.New("enrich: provider is required")

	// ErrNilDeck is returned by sweeps handed a nil deck.
	ErrNilDeck = errors.New("enrich: deck is nil")
)
