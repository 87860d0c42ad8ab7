package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	c := Parse("Mozilla/5.0", " Speech-Synthesis ,share,,teleport")

	assert.True(t, c.Has(SpeechSynthesis))
	assert.True(t, c.Has(Share))
	assert.False(t, c.Has(SpeechRecognition))
	assert.Equal(t, []string{"share", "speech-synthesis"}, c.List())
}

func TestParse_ClipboardIsNotDeclared(t *testing.T) {
	// Clipboard writes are best effort on every client, so there is nothing to declare.
	assert.Empty(t, Parse("Mozilla/5.0", "clipboard").List())
}

func TestParse_Empty(t *testing.T) {
	c := Parse("", "")
	assert.Empty(t, c.List())
	assert.False(t, c.IsTouch())
}

func TestIsTouch(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want bool
	}{
		{"android phone", "Mozilla/5.0 (Linux; Android 14; Pixel 8) Mobile Safari/537.36", true},
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", true},
		{"generic mobile", "SomeBrowser Mobile/1.0", true},
		{"desktop chrome", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0", false},
		{"lowercase marker does not count", "mobile android", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.ua, "").IsTouch())
		})
	}
}
