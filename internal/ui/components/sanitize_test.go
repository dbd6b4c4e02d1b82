package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTextStripsANSI(t *testing.T) {
	assert.Equal(t, "plain", SanitizeText("\x1b[31mplain\x1b[0m"))
}

func TestSanitizeTextStripsBidiControls(t *testing.T) {
	assert.Equal(t, "safeevil", SanitizeText("safe‮evil"))
}

func TestSanitizeTextKeepsNewlinesAndTabs(t *testing.T) {
	assert.Equal(t, "a\nb\tc", SanitizeText("a\nb\tc"))
}

func TestSanitizeOneLineCollapses(t *testing.T) {
	assert.Equal(t, "a b c", SanitizeOneLine("a\nb\tc"))
}
