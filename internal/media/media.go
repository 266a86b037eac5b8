// Package media turns uploaded images into downscaled WebP files.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const ContentType = "image/webp"

var (
	ErrTooLarge    = errors.New("image exceeds upload limit")
	ErrUnsupported = errors.New("unsupported image format")
)

type Processor struct {
	maxWidth int
	quality  float32
	maxBytes int64
}

func NewProcessor(maxWidth, quality, maxUploadMB int) *Processor {
	if maxWidth <= 0 {
		maxWidth = 800
	}
	if quality <= 0 || quality > 100 {
		quality = 80
	}
	if maxUploadMB <= 0 {
		maxUploadMB = 5
	}
	return &Processor{
		maxWidth: maxWidth,
		quality:  float32(quality),
		maxBytes: int64(maxUploadMB) << 20,
	}
}

func (p *Processor) MaxBytes() int64 {
	return p.maxBytes
}

// ToWebP decodes a JPEG, PNG, GIF or WebP image, shrinks it to the maximum
// width keeping its aspect ratio, and encodes it as lossy WebP.
func (p *Processor) ToWebP(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, p.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if int64(len(raw)) > p.maxBytes {
		return nil, ErrTooLarge
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrUnsupported
	}

	var out bytes.Buffer
	if err := webp.Encode(&out, p.resize(src), &webp.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return out.Bytes(), nil
}

func (p *Processor) resize(src image.Image) image.Image {
	b := src.Bounds()
	if b.Dx() <= p.maxWidth {
		return src
	}

	height := b.Dy() * p.maxWidth / b.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, p.maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
