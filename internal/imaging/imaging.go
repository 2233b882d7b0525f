// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging generates JPEG thumbnails for uploaded media. Decoding
// is pure Go: JPEG, PNG, GIF, and WebP sources are supported.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"io"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

const (
	// DefaultMaxWidth is the thumbnail width used for media library previews.
	DefaultMaxWidth = 400

	// quality is the JPEG quality for generated thumbnails.
	quality = 80

	// maxPixels caps the decoded image size to prevent memory bombs.
	// 10000x10000 = 100 million pixels, ~400 MB decoded in RGBA.
	maxPixels = 100_000_000
)

// Thumbnailable reports whether thumbnails can be generated for the given
// MIME type. GIF is excluded to preserve animation; SVG is vector.
func Thumbnailable(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/webp":
		return true
	}
	return false
}

// Thumbnail creates a JPEG thumbnail from an image, constrained to
// maxWidth while preserving aspect ratio. Returns nil if the image is
// already smaller than maxWidth.
func Thumbnail(src io.ReadSeeker, maxWidth int) ([]byte, error) {
	// Decode config first to check dimensions without full decode.
	cfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return nil, fmt.Errorf("image too large: %dx%d exceeds %d pixels", cfg.Width, cfg.Height, maxPixels)
	}

	// Skip thumbnail if image is already small enough.
	if cfg.Width <= maxWidth {
		return nil, nil
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek: %w", err)
	}

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	ratio := float64(maxWidth) / float64(bounds.Dx())
	newWidth := maxWidth
	newHeight := int(float64(bounds.Dy()) * ratio)

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
