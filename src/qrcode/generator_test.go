package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNG(t *testing.T) {
	b, err := PNG("https://example.com/congratulations/abc", 0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, img.Bounds().Dx())
}

func TestPNGClampsSize(t *testing.T) {
	b, err := PNG("hello", 5000)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, MaxSize, img.Bounds().Dx())
}

func TestPNGEmpty(t *testing.T) {
	_, err := PNG("  ", 128)
	assert.Error(t, err)
}

func TestShareURL(t *testing.T) {
	assert.Equal(t, "https://me.dev/congratulations/x1", ShareURL("https://me.dev/", "x1"))
}
