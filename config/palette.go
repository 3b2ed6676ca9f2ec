package config

import (
	"hash/fnv"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette hands out stable display colors for track keys. The same key
// always maps to the same color, across runs as well.
type Palette struct {
	colors map[string]colorful.Color
}

func NewPalette() *Palette {
	return &Palette{
		colors: make(map[string]colorful.Color),
	}
}

func (p *Palette) HexColor(key string) string {
	c, ok := p.colors[key]
	if !ok {
		c = colorForKey(key)
		p.colors[key] = c
	}

	return c.Hex()
}

func colorForKey(key string) colorful.Color {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))

	hue := float64(h.Sum32() % 360)

	return colorful.Hcl(hue, 0.6, 0.6).Clamped()
}
