package toolbar

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the toolbar colours as hex strings. Canvas is the colour of
// whatever the toolbar floats over; faded colours blend toward it.
type Palette struct {
	Canvas     string
	Background string
	Foreground string
	Accent     string
	Muted      string
}

// DefaultPalette matches the app's dark theme.
func DefaultPalette() Palette {
	return Palette{
		Canvas:     "#1c1c1c",
		Background: "#3a3a3a",
		Foreground: "#e4e4e4",
		Accent:     "#ff5f87",
		Muted:      "#808080",
	}
}

// At returns the palette faded to opacity, where 0 is fully blended into
// the canvas and 1 is the palette itself.
func (p Palette) At(opacity float64) Palette {
	opacity = clamp01(opacity)
	canvas := parseHex(p.Canvas, colorful.Color{})
	return Palette{
		Canvas:     p.Canvas,
		Background: blend(canvas, p.Background, opacity),
		Foreground: blend(canvas, p.Foreground, opacity),
		Accent:     blend(canvas, p.Accent, opacity),
		Muted:      blend(canvas, p.Muted, opacity),
	}
}

func blend(canvas colorful.Color, hex string, opacity float64) string {
	target := parseHex(hex, canvas)
	return canvas.BlendRgb(target, opacity).Clamped().Hex()
}

func parseHex(hex string, fallback colorful.Color) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		toolbarLog.Warn("invalid palette colour", "value", hex, "error", err)
		return fallback
	}
	return c
}
