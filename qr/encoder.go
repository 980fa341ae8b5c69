package qr

import (
	"fmt"
	"image"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"
)

// Level is the error correction tolerance of generated symbols.
type Level int

const (
	// LevelLow recovers up to 7% of damaged data.
	LevelLow Level = iota
	// LevelMedium recovers up to 15%.
	LevelMedium
	// LevelHigh recovers up to 25%.
	LevelHigh
	// LevelHighest recovers up to 30%.
	LevelHighest
)

// Config holds encoder configuration.
type Config struct {
	// Level is the error correction level.
	// Default: LevelLow
	Level Level

	// ModuleScale is the number of output pixels per QR module.
	// Default: 10
	ModuleScale int
}

// DefaultConfig returns the standard encoder configuration.
func DefaultConfig() Config {
	return Config{
		Level:       LevelLow,
		ModuleScale: 10,
	}
}

// Encoder converts label strings into square RGBA rasters.
type Encoder struct {
	config Config
}

// NewEncoder creates an encoder with the default configuration.
func NewEncoder() *Encoder {
	return NewEncoderWithConfig(DefaultConfig())
}

// NewEncoderWithConfig creates an encoder with custom configuration.
func NewEncoderWithConfig(config Config) *Encoder {
	if config.ModuleScale < 1 {
		config.ModuleScale = 1
	}
	return &Encoder{config: config}
}

// Encode renders data as a black-on-white QR symbol. The symbol version is
// chosen automatically to fit the data at the configured error correction
// level; the returned image is square RGBA including the quiet zone.
func (e *Encoder) Encode(data string) (image.Image, error) {
	if data == "" {
		return nil, fmt.Errorf("cannot encode empty data")
	}

	code, err := qrcode.New(data, e.recoveryLevel())
	if err != nil {
		return nil, fmt.Errorf("building QR symbol: %w", err)
	}

	bitmap := code.Bitmap()
	modules := len(bitmap)
	if modules == 0 {
		return nil, fmt.Errorf("QR symbol has no modules")
	}

	// One pixel per module first, then a crisp nearest-neighbor upscale.
	small := image.NewRGBA(image.Rect(0, 0, modules, modules))
	for y, row := range bitmap {
		for x, set := range row {
			if set {
				small.Set(x, y, color.Black)
			} else {
				small.Set(x, y, color.White)
			}
		}
	}

	if e.config.ModuleScale == 1 {
		return small, nil
	}

	size := modules * e.config.ModuleScale
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(img, img.Bounds(), small, small.Bounds(), draw.Src, nil)
	return img, nil
}

func (e *Encoder) recoveryLevel() qrcode.RecoveryLevel {
	switch e.config.Level {
	case LevelMedium:
		return qrcode.Medium
	case LevelHigh:
		return qrcode.High
	case LevelHighest:
		return qrcode.Highest
	default:
		return qrcode.Low
	}
}
