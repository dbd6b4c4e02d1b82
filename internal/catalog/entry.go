package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lunarok/pokedex-cli/internal/api"
)

// Entry is one normalized catalog item. The canonical list holds entries in
// reference order; nothing mutates an entry after load.
type Entry struct {
	ID       int
	Name     string
	Types    []string
	ImageURL string
	Height   int // tenths of a meter, converted only at render time
	Weight   int // tenths of a kilogram, converted only at render time
}

// NewEntry normalizes a wire record into a catalog entry: the nested type
// wrappers flatten to plain labels, and the official artwork is preferred
// over the low-resolution sprite when present.
func NewEntry(p api.Pokemon) Entry {
	types := make([]string, 0, len(p.Types))
	for _, slot := range p.Types {
		name := strings.TrimSpace(slot.Type.Name)
		if name != "" {
			types = append(types, strings.ToLower(name))
		}
	}

	image := p.Sprites.Other.OfficialArtwork.FrontDefault
	if image == "" {
		image = p.Sprites.FrontDefault
	}

	return Entry{
		ID:       p.ID,
		Name:     p.Name,
		Types:    types,
		ImageURL: image,
		Height:   p.Height,
		Weight:   p.Weight,
	}
}

// FormatID renders an id as a zero-padded display label like "#025".
func FormatID(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// FormatMetric converts a source-native tenths value to display units:
// 7 -> "0.7", 690 -> "69".
func FormatMetric(raw int) string {
	whole := raw / 10
	frac := raw % 10
	if frac == 0 {
		return strconv.Itoa(whole)
	}
	return fmt.Sprintf("%d.%d", whole, frac)
}
