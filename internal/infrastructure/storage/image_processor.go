package storage

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// ErrUnreadableImage means the input could not be decoded as an image.
var ErrUnreadableImage = errors.New("unreadable image")

// ImageProcessor normalizes user-selected photos into bounded,
// storage-safe JPEG data URLs.
type ImageProcessor struct {
	MaxDimension int // longest edge, px
	JPEGQuality  int // 1-100
}

func NewImageProcessor(maxDimension, jpegQuality int) *ImageProcessor {
	return &ImageProcessor{
		MaxDimension: maxDimension,
		JPEGQuality:  jpegQuality,
	}
}

// Normalize decodes the raw image, downscales it so that neither
// dimension exceeds MaxDimension (never upscales), and re-encodes it
// as a lossy JPEG data URL.
func (p *ImageProcessor) Normalize(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > p.MaxDimension || h > p.MaxDimension {
		// Fit keeps the aspect ratio and only ever shrinks.
		img = imaging.Fit(img, p.MaxDimension, p.MaxDimension, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: p.JPEGQuality}); err != nil {
		return "", fmt.Errorf("cannot encode image: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
