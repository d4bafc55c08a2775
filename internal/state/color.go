package state

import "image/color"

// ParseColor parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa". The leading '#'
// is optional. ok is false for the empty string, "none", "transparent" and
// malformed input, which renderers treat as "do not paint".
func ParseColor(s string) (c color.NRGBA, ok bool) {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	var v [4]uint8
	v[3] = 0xff
	switch len(s) {
	case 3, 4:
		for i := range len(s) {
			n, ok := hexDigit(s[i])
			if !ok {
				return color.NRGBA{}, false
			}
			v[i] = n * 17
		}
	case 6, 8:
		for i := 0; i < len(s); i += 2 {
			hi, ok1 := hexDigit(s[i])
			lo, ok2 := hexDigit(s[i+1])
			if !ok1 || !ok2 {
				return color.NRGBA{}, false
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// FormatColor is the inverse of ParseColor for opaque and translucent colors.
func FormatColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	const hex = "0123456789abcdef"
	b := []byte{'#', hex[n.R>>4], hex[n.R&15], hex[n.G>>4], hex[n.G&15], hex[n.B>>4], hex[n.B&15]}
	if n.A != 0xff {
		b = append(b, hex[n.A>>4], hex[n.A&15])
	}
	return string(b)
}
