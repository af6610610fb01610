package palette

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// minDigestLen covers both derivations: bytes 0..2 feed the foreground,
// byte 3 picks the split-complementary side.
const minDigestLen = 4

// Foreground maps the first three digest bytes to an sRGB color.
// Returns ErrHashLength if the digest holds fewer than 4 bytes.
// Complexity: O(1).
func Foreground(digest []byte) (colorful.Color, error) {
	if len(digest) < minDigestLen {
		return colorful.Color{}, fmt.Errorf("%w: got %d bytes, need %d", ErrHashLength, len(digest), minDigestLen)
	}

	return colorful.Color{
		R: float64(digest[0]) / 255.0,
		G: float64(digest[1]) / 255.0,
		B: float64(digest[2]) / 255.0,
	}, nil
}

// Background derives the background color for the given mode from the
// foreground color and the digest.
//
// ok is false for BackgroundTransparent (nothing to paint) and true
// otherwise. Split-complementary picks +150° when digest[3] is even,
// +210° when odd. Returns ErrBackgroundMode for values outside the
// enumeration, ErrHashLength for a short digest.
// Complexity: O(1).
func Background(fg colorful.Color, mode BackgroundMode, digest []byte) (bg colorful.Color, ok bool, err error) {
	if !mode.valid() {
		return colorful.Color{}, false, fmt.Errorf("%w: %d", ErrBackgroundMode, int(mode))
	}
	if len(digest) < minDigestLen {
		return colorful.Color{}, false, fmt.Errorf("%w: got %d bytes, need %d", ErrHashLength, len(digest), minDigestLen)
	}

	switch mode {
	case BackgroundTransparent:
		return colorful.Color{}, false, nil
	case BackgroundComplementary:
		return rotateHue(fg, 180), true, nil
	default: // BackgroundSplitComplementary
		delta := 150.0
		if digest[3]%2 != 0 {
			delta = 210.0
		}

		return rotateHue(fg, delta), true, nil
	}
}

// rotateHue shifts a color's HSL hue by delta degrees, wrapping at 360,
// and keeps saturation and lightness.
func rotateHue(c colorful.Color, delta float64) colorful.Color {
	h, s, l := c.Hsl()
	h = math.Mod(h+delta, 360)
	if h < 0 {
		h += 360
	}

	return colorful.Hsl(h, s, l).Clamped()
}
