package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitledBoxEmbedsTitle(t *testing.T) {
	out := TitledBox("Pokédex", "hello", 80)
	clean := SanitizeText(out)
	assert.Contains(t, clean, "[ Pokédex ]")
	assert.Contains(t, clean, "hello")
}

func TestBoxContentWidthAccountsForFrame(t *testing.T) {
	assert.Equal(t, 0, BoxContentWidth(0))
	w := BoxContentWidth(100)
	assert.Greater(t, w, 0)
	assert.Less(t, w, 100)
}

func TestClampTextWidthTruncates(t *testing.T) {
	long := strings.Repeat("x", 50)
	clamped := ClampTextWidth(long, 10)
	assert.Len(t, []rune(clamped), 10)
	assert.Equal(t, "short", ClampTextWidth("short", 10))
}

func TestTableAlignsRows(t *testing.T) {
	out := Table("Info", []TableRow{
		{Label: "Name", Value: "pikachu"},
		{Label: "Height", Value: "0.4 m"},
	}, 80)
	clean := SanitizeText(out)
	assert.Contains(t, clean, "Name")
	assert.Contains(t, clean, "pikachu")
	assert.Contains(t, clean, "0.4 m")
}

func TestErrorBoxCarriesTitleAndBody(t *testing.T) {
	out := ErrorBox("Error", "it broke", 80)
	clean := SanitizeText(out)
	assert.Contains(t, clean, "Error")
	assert.Contains(t, clean, "it broke")
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n  b", Indent("a\nb", 2))
}
