package render

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/forny/tilemosaic/mosaic"
	"github.com/forny/tilemosaic/pkg/orient"
	"github.com/lucasb-eyer/go-colorful"
)

func foreground(c color.Color) lipgloss.Style {
	cf, _ := colorful.MakeColor(c)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(cf.Hex()))
}

// Terminal renders the composed image viewed under flop as text, one line per row,
// coloured with pal. Monster pixels are drawn as 'O'.
func Terminal(tm *mosaic.TileMap, scan *mosaic.ScanResult, flop orient.Flop, pal Palette) string {
	filledStyle := foreground(pal.Filled)
	emptyStyle := foreground(pal.Empty)
	monsterStyle := foreground(pal.Monster).Bold(true)

	width := tm.ImageWidth()
	covered := map[orient.Point]bool{}
	if scan != nil {
		covered = scan.Covered(flop)
	}

	var b strings.Builder
	for y := 0; y < width; y++ {
		for x := 0; x < width; x++ {
			switch {
			case covered[orient.Point{X: x, Y: y}]:
				b.WriteString(monsterStyle.Render("O"))
			case tm.Pixel(x, y, flop) == mosaic.PIXEL_FILLED:
				b.WriteString(filledStyle.Render("#"))
			default:
				b.WriteString(emptyStyle.Render("."))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
