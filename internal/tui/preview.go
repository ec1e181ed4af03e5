package tui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wallery/pkg/wallery"
)

// renderPreview draws an image as terminal cells, packing two pixel rows
// into each text row with the upper half block. maxH is in text rows.
func renderPreview(img image.Image, maxW int, maxH int) string {
	if img == nil || maxW < 2 || maxH < 2 {
		return ""
	}

	small := wallery.Fit(img, wallery.ThumbOpts{X: maxW, Y: maxH * 2})
	b := small.Bounds()

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			st := lipgloss.NewStyle().Foreground(lipgloss.Color(hexAt(small, x, y)))
			if y+1 < b.Max.Y {
				st = st.Background(lipgloss.Color(hexAt(small, x, y+1)))
			}
			sb.WriteString(st.Render("▀"))
		}
		sb.WriteByte('\n')
	}

	return strings.TrimRight(sb.String(), "\n")
}

func hexAt(img image.Image, x int, y int) string {
	r, g, b, _ := img.At(x, y).RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
