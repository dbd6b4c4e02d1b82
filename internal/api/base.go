package api

import "time"

// DefaultBaseURL is the single source of truth for the catalog API target.
const DefaultBaseURL = "https://pokeapi.co"

// NewDefaultClient builds a client pointed at the public PokeAPI URL.
func NewDefaultClient(timeout ...time.Duration) *Client {
	return NewClient(DefaultBaseURL, timeout...)
}
