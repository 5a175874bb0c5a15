// Package render draws a solved mosaic as an image or as styled terminal text.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/forny/tilemosaic/config"
	"github.com/forny/tilemosaic/mosaic"
	"github.com/forny/tilemosaic/pkg/orient"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Palette holds the colors used for each kind of pixel.
type Palette struct {
	Filled  color.Color
	Empty   color.Color
	Monster color.Color
}

// PaletteFrom parses the hex colors of a render config.
func PaletteFrom(rc config.RenderConfig) (Palette, error) {
	var pal Palette
	for _, c := range []struct {
		name string
		hex  string
		dst  *color.Color
	}{
		{"filled", rc.Filled, &pal.Filled},
		{"empty", rc.Empty, &pal.Empty},
		{"monster", rc.Monster, &pal.Monster},
	} {
		parsed, err := colorful.Hex(c.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("%s color %q: %w", c.name, c.hex, err)
		}
		*c.dst = parsed.Clamped()
	}
	return pal, nil
}

// Image draws the composed image viewed under flop, one image pixel per mosaic pixel.
// Pixels covered by motif hits found at flop use the monster color; scan may be nil.
func Image(tm *mosaic.TileMap, scan *mosaic.ScanResult, flop orient.Flop, pal Palette) *image.RGBA {
	width := tm.ImageWidth()
	covered := map[orient.Point]bool{}
	if scan != nil {
		covered = scan.Covered(flop)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, width))
	for y := 0; y < width; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			switch {
			case covered[orient.Point{X: x, Y: y}]:
				c = pal.Monster
			case tm.Pixel(x, y, flop) == mosaic.PIXEL_FILLED:
				c = pal.Filled
			default:
				c = pal.Empty
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// Scale enlarges img by factor with nearest-neighbour sampling so pixels stay crisp.
func Scale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

var ErrUnsupportedFormat = errors.New("unsupported image format")

// ValidFormat reports an error unless Encode can write format.
func ValidFormat(format string) error {
	switch strings.ToLower(format) {
	case "", "png", "bmp":
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
}

// Encode writes img as "png" or "bmp".
func Encode(w io.Writer, img image.Image, format string) error {
	if err := ValidFormat(format); err != nil {
		return err
	}
	if strings.ToLower(format) == "bmp" {
		return bmp.Encode(w, img)
	}
	return png.Encode(w, img)
}

// FormatFromPath picks the encoding from a file extension, defaulting to png.
func FormatFromPath(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".bmp") {
		return "bmp"
	}
	return "png"
}
