package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lunarok/pokedex-cli/internal/api"
)

func typedPokemon(id int, name string, types ...string) api.Pokemon {
	p := api.Pokemon{ID: id, Name: name}
	for _, t := range types {
		var slot api.TypeSlot
		slot.Type.Name = t
		p.Types = append(p.Types, slot)
	}
	return p
}

func TestNewEntryFlattensTypes(t *testing.T) {
	p := typedPokemon(1, "bulbasaur", "Grass", "Poison")
	p.Height = 7
	p.Weight = 69

	e := NewEntry(p)
	assert.Equal(t, 1, e.ID)
	assert.Equal(t, "bulbasaur", e.Name)
	assert.Equal(t, []string{"grass", "poison"}, e.Types)
	assert.Equal(t, 7, e.Height)
	assert.Equal(t, 69, e.Weight)
}

func TestNewEntrySkipsBlankTypeLabels(t *testing.T) {
	p := typedPokemon(25, "pikachu", "electric", " ")
	e := NewEntry(p)
	assert.Equal(t, []string{"electric"}, e.Types)
}

func TestNewEntryPrefersOfficialArtwork(t *testing.T) {
	p := typedPokemon(4, "charmander", "fire")
	p.Sprites.FrontDefault = "https://img.test/small/4.png"
	p.Sprites.Other.OfficialArtwork.FrontDefault = "https://img.test/art/4.png"

	e := NewEntry(p)
	assert.Equal(t, "https://img.test/art/4.png", e.ImageURL)
}

func TestNewEntryFallsBackToFrontSprite(t *testing.T) {
	p := typedPokemon(132, "ditto", "normal")
	p.Sprites.FrontDefault = "https://img.test/small/132.png"

	e := NewEntry(p)
	assert.Equal(t, "https://img.test/small/132.png", e.ImageURL)
}

func TestFormatID(t *testing.T) {
	assert.Equal(t, "#001", FormatID(1))
	assert.Equal(t, "#025", FormatID(25))
	assert.Equal(t, "#150", FormatID(150))
	assert.Equal(t, "#1000", FormatID(1000))
}

func TestFormatMetric(t *testing.T) {
	assert.Equal(t, "0.7", FormatMetric(7))
	assert.Equal(t, "69", FormatMetric(690))
	assert.Equal(t, "0.4", FormatMetric(4))
	assert.Equal(t, "6", FormatMetric(60))
	assert.Equal(t, "1.5", FormatMetric(15))
	assert.Equal(t, "0", FormatMetric(0))
}
