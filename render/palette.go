package render

import "github.com/lucasb-eyer/go-colorful"

// Palette hands out one display color per track name, stable for the
// lifetime of the palette.
type Palette struct {
	colors map[string]colorful.Color
}

func NewPalette() *Palette {
	return &Palette{
		colors: make(map[string]colorful.Color),
	}
}

func (p *Palette) HexColor(name string) string {
	c, ok := p.colors[name]
	if !ok {
		c = colorful.HappyColor()
		p.colors[name] = c
	}

	return c.Hex()
}

func (p *Palette) HexColors(names ...string) []string {
	colors := make([]string, len(names))

	for i, name := range names {
		colors[i] = p.HexColor(name)
	}

	return colors
}
