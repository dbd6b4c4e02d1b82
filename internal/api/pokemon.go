package api

import "fmt"

// --- Pokemon Methods ---

// ListPokemon fetches up to limit references from the list endpoint.
func (c *Client) ListPokemon(limit int) ([]PokemonRef, error) {
	data, err := c.get(fmt.Sprintf("/api/v2/pokemon?limit=%d", limit))
	if err != nil {
		return nil, err
	}
	page, err := decode[pokemonPage](data)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

// GetPokemon fetches one full record by its reference URL.
func (c *Client) GetPokemon(url string) (*Pokemon, error) {
	data, err := c.get(url)
	if err != nil {
		return nil, err
	}
	return decode[Pokemon](data)
}

// GetPokemonByName fetches one full record by name or numeric id.
func (c *Client) GetPokemonByName(name string) (*Pokemon, error) {
	return c.GetPokemon(fmt.Sprintf("/api/v2/pokemon/%s", name))
}
