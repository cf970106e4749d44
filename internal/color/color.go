// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package color converts colors between hex, RGB, and HSL notation.
package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned when a string is not a six-digit hex color.
var ErrInvalidHex = errors.New("invalid hex color: expected #RRGGBB")

var hexPattern = regexp.MustCompile(`^#?([a-fA-F\d]{2})([a-fA-F\d]{2})([a-fA-F\d]{2})$`)

// RGB is a color with 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSL is a color as hue in degrees [0,360) and saturation and lightness in
// whole percent.
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// Info bundles every notation of one color.
type Info struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
	HSL HSL    `json:"hsl"`
}

// String renders the color as "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex renders the color as upper-case "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String renders the color as "hsl(h, s%, l%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// ParseHex parses "#RRGGBB" or "RRGGBB", case-insensitively.
func ParseHex(s string) (RGB, error) {
	m := hexPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// Describe parses a hex color and returns all of its notations.
func Describe(hex string) (Info, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return Info{}, err
	}
	return Info{Hex: rgb.Hex(), RGB: rgb, HSL: ToHSL(rgb)}, nil
}

// ToHSL converts RGB to HSL, rounding each component. A hue that rounds up
// to 360 wraps to 0.
func ToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	var h, s float64
	if maxC != minC {
		d := maxC - minC
		if l > 0.5 {
			s = d / (2 - maxC - minC)
		} else {
			s = d / (maxC + minC)
		}
		switch maxC {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return HSL{
		H: int(math.Round(h*360)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// ToRGB converts HSL back to RGB.
func ToRGB(c HSL) RGB {
	h := float64(((c.H % 360) + 360) % 360)
	s := float64(c.S) / 100
	l := float64(c.L) / 100

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{R: channel(r + m), G: channel(g + m), B: channel(b + m)}
}

func channel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v*255))))
}

// Complementary returns the color opposite on the hue wheel, keeping
// saturation and lightness.
func Complementary(hex string) (Info, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return Info{}, err
	}
	hsl := ToHSL(rgb)
	hsl.H = (hsl.H + 180) % 360
	out := ToRGB(hsl)
	return Info{Hex: out.Hex(), RGB: out, HSL: hsl}, nil
}
