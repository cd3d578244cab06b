package utils

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestIsAllowedImageExt(t *testing.T) {
	assert.True(t, IsAllowedImageExt("cover.jpg"))
	assert.True(t, IsAllowedImageExt("cover.JPEG"))
	assert.True(t, IsAllowedImageExt("logo.png"))
	assert.False(t, IsAllowedImageExt("animation.gif"))
	assert.False(t, IsAllowedImageExt("document.pdf"))
	assert.False(t, IsAllowedImageExt("noextension"))
}

func TestMakeThumbnailDownscales(t *testing.T) {
	source := pngBytes(t, 1600, 800)

	thumb, err := MakeThumbnail(bytes.NewReader(source), "wide.png", 480, 480)
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(thumb))
	require.NoError(t, err)

	bounds := decoded.Bounds()
	assert.LessOrEqual(t, bounds.Dx(), 480)
	assert.LessOrEqual(t, bounds.Dy(), 480)
}

func TestMakeThumbnailKeepsSmallImages(t *testing.T) {
	source := pngBytes(t, 100, 50)

	thumb, err := MakeThumbnail(bytes.NewReader(source), "small.png", 480, 480)
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(thumb))
	require.NoError(t, err)

	assert.Equal(t, 100, decoded.Bounds().Dx())
	assert.Equal(t, 50, decoded.Bounds().Dy())
}

func TestMakeThumbnailRejectsUnknownFormat(t *testing.T) {
	_, err := MakeThumbnail(bytes.NewReader([]byte("not an image")), "clip.gif", 480, 480)
	assert.ErrorIs(t, err, ErrUnsupportedImageFormat)
}
