package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 10 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func decodeDataURI(t *testing.T, dataURI string) image.Image {
	t.Helper()

	payload, ok := strings.CutPrefix(dataURI, "data:image/jpeg;base64,")
	require.True(t, ok, "data URI must be self-describing JPEG")

	raw, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestNormalizeScalesWideImage(t *testing.T) {
	photo, err := Normalize(encodePNG(t, 1600, 1200))
	require.NoError(t, err)

	require.Equal(t, 800, photo.Width)
	require.Equal(t, 600, photo.Height)

	img := decodeDataURI(t, photo.DataURI)
	require.Equal(t, 800, img.Bounds().Dx())
	require.Equal(t, 600, img.Bounds().Dy())
}

func TestNormalizePreservesAspectRatio(t *testing.T) {
	photo, err := Normalize(encodePNG(t, 1000, 777))
	require.NoError(t, err)

	require.Equal(t, 800, photo.Width)
	// 777 * 800/1000 = 621.6, rounded
	require.InDelta(t, 622, photo.Height, 1)
}

func TestNormalizeLeavesNarrowImageUntouched(t *testing.T) {
	photo, err := Normalize(encodePNG(t, 400, 300))
	require.NoError(t, err)

	require.Equal(t, 400, photo.Width)
	require.Equal(t, 300, photo.Height)
}

func TestNormalizeReencodesAsJPEG(t *testing.T) {
	photo, err := Normalize(encodePNG(t, 120, 80))
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(photo.DataURI, "data:image/jpeg;base64,"))

	payload := strings.TrimPrefix(photo.DataURI, "data:image/jpeg;base64,")
	raw, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	require.Equal(t, photo.Size, len(raw))
}

func TestNormalizeRejectsCorruptInput(t *testing.T) {
	_, err := Normalize(strings.NewReader("definitely not an image"))
	require.ErrorIs(t, err, ErrUnsupportedImage)
}
