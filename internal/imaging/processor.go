package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/draw"
)

// ThumbnailSide is the fixed side length of avatar thumbnails.
const ThumbnailSide = 150

// ErrInvalidImage is returned when the payload is not a decodable
// raster image.
var ErrInvalidImage = errors.New("invalid image payload")

// Processor derives fixed-size square thumbnails via a cover crop:
// crop to the largest centered square, then scale to the target side.
type Processor struct {
	side int
}

func NewProcessor(side int) *Processor {
	if side <= 0 {
		side = ThumbnailSide
	}
	return &Processor{side: side}
}

// Sniff decodes the image config to confirm the payload is a real
// image, regardless of what the filename extension claims.
func Sniff(reader io.Reader) (format string, err error) {
	_, format, err = image.DecodeConfig(reader)
	if err != nil {
		return "", ErrInvalidImage
	}
	return format, nil
}

// Thumbnail decodes the image and returns a side×side cover-cropped
// PNG.
func (p *Processor) Thumbnail(reader io.Reader) (io.Reader, error) {
	img, _, err := image.Decode(reader)
	if err != nil {
		return nil, ErrInvalidImage
	}

	square := centerSquare(img)

	dst := image.NewRGBA(image.Rect(0, 0, p.side, p.side))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, square, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return &buf, nil
}

// centerSquare returns the largest centered square within the image
// bounds.
func centerSquare(img image.Image) image.Rectangle {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	side := width
	if height < side {
		side = height
	}

	x0 := bounds.Min.X + (width-side)/2
	y0 := bounds.Min.Y + (height-side)/2
	return image.Rect(x0, y0, x0+side, y0+side)
}
