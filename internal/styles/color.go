package styles

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a concrete 24-bit color triple.
type RGB struct {
	R, G, B uint8
}

// Hex renders the triple as an uppercase RRGGBB string, the form
// WordprocessingML expects in w:color.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ResolveColor parses a color expression into an RGB triple. Two forms are
// recognized: "#RRGGBB" and "RGB(r,g,b)" with decimal components. Everything
// else, including symbolic theme names like "Text 1" and malformed
// components, resolves to black. Theme-color resolution is intentionally not
// attempted; the black fallback is part of the compatibility contract.
// ResolveColor always returns a triple and never fails.
func ResolveColor(expr string) RGB {
	if len(expr) == 7 && expr[0] == '#' {
		if c, ok := parseHexTriple(expr[1:]); ok {
			return c
		}
	}
	if len(expr) > 4 && strings.HasPrefix(strings.ToUpper(expr), "RGB(") {
		if c, ok := parseComponentTriple(expr[4 : len(expr)-1]); ok {
			return c
		}
	}
	return RGB{}
}

func parseHexTriple(s string) (RGB, bool) {
	var v [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, false
		}
		v[i] = uint8(n)
	}
	return RGB{v[0], v[1], v[2]}, true
}

func parseComponentTriple(s string) (RGB, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, false
	}
	var v [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return RGB{}, false
		}
		v[i] = uint8(n)
	}
	return RGB{v[0], v[1], v[2]}, true
}
