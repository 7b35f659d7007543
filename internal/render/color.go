package render

import "fmt"

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("color %q: want rrggbb", s)
	}
	var c Color
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return c, nil
}

// Hex returns the "#rrggbb" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Theme holds the colors the pipeline draws with.
type Theme struct {
	Background Color
	Text       Color
	Caret      Color
	Selection  Color
}

// DefaultTheme returns the stock solarized-dark-ish palette.
func DefaultTheme() Theme {
	return Theme{
		Background: RGB(0, 43, 53),
		Text:       RGB(242, 232, 255),
		Caret:      RGB(242, 232, 255),
		Selection:  RGB(142, 132, 155),
	}
}
