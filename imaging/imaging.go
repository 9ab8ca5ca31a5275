// Package imaging normalizes uploaded images: decode whatever the customer
// sent (JPEG or PNG), cap the width, re-encode as JPEG. Keeps payment proofs
// and product photos at a predictable size and format.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoding
	"io"

	"github.com/nfnt/resize"
)

const (
	// MaxWidth caps stored image width in pixels; taller-than-wide images
	// are scaled by the same factor.
	MaxWidth = 1200

	jpegQuality = 80
)

// Normalize decodes, downscales and re-encodes the image as JPEG.
func Normalize(r io.Reader) ([]byte, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	if img.Bounds().Dx() > MaxWidth {
		img = resize.Resize(MaxWidth, 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
