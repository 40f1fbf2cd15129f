package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(26, 18))

	for _, name := range []FontName{Title, Story, HUD, Small} {
		assert.NotNil(t, name.Get(), name)
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 10)
	assert.Error(t, err)
}

func TestLoadFontWithSize(t *testing.T) {
	require.NoError(t, LoadFontWithSize("big", goregular.TTF, 40))
	big := FontName("big").Get()
	require.NoError(t, LoadFontWithSize("tiny", goregular.TTF, 8))
	tiny := FontName("tiny").Get()

	assert.Greater(t, big.Metrics().Height, tiny.Metrics().Height)
}

func TestMissingFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
