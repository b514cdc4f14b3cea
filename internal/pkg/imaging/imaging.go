package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"math"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	// MaxWidth bounds the stored photo so the serialized collection stays
	// under the local storage quota as it grows.
	MaxWidth = 800

	// JPEGQuality is the re-encode quality on the encoder's 1-100 scale
	// (70 = the 0.7 canvas quality of the capture UI).
	JPEGQuality = 70
)

// ErrUnsupportedImage is returned when the input cannot be decoded.
// Callers must treat it as a recoverable no-op: the previous photo state
// stays unchanged and nothing partial is ever stored.
var ErrUnsupportedImage = errors.New("unsupported or corrupt image")

// Photo is the normalized, self-contained encoded representation of a
// captured image, ready for inline storage.
type Photo struct {
	DataURI string `json:"dataUri"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Size    int    `json:"size"`
}

// Normalize decodes a raw captured image (JPEG, PNG or GIF), scales it down
// to MaxWidth preserving aspect ratio when wider, and re-encodes it as JPEG
// at JPEGQuality. The result is a data URI combining format tag and base64
// payload.
func Normalize(r io.Reader) (*Photo, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > MaxWidth {
		ratio := float64(MaxWidth) / float64(width)
		height = int(math.Round(float64(height) * ratio))
		if height < 1 {
			height = 1
		}
		width = MaxWidth

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encode photo: %w", err)
	}

	return &Photo{
		DataURI: "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Width:   width,
		Height:  height,
		Size:    buf.Len(),
	}, nil
}
