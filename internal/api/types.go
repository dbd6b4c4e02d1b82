package api

// PokemonRef is one entry of the paginated list endpoint: a name plus the
// URL of the full record.
type PokemonRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// pokemonPage is the wire shape of the list endpoint.
type pokemonPage struct {
	Count   int          `json:"count"`
	Results []PokemonRef `json:"results"`
}

// TypeSlot wraps a type label in the nested structure the detail endpoint
// uses ({ "type": { "name": "grass" } }).
type TypeSlot struct {
	Type struct {
		Name string `json:"name"`
	} `json:"type"`
}

// Sprites holds the image references of a record. FrontDefault is the
// low-resolution fallback; the official artwork lives one level down.
type Sprites struct {
	FrontDefault string `json:"front_default"`
	Other        struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default"`
		} `json:"official-artwork"`
	} `json:"other"`
}

// Pokemon is the full record returned by the detail endpoint. Height and
// weight are source-native integers in tenths of a display unit.
type Pokemon struct {
	ID      int        `json:"id"`
	Name    string     `json:"name"`
	Types   []TypeSlot `json:"types"`
	Sprites Sprites    `json:"sprites"`
	Height  int        `json:"height"`
	Weight  int        `json:"weight"`
}
