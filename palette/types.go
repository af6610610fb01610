// Package palette defines the background mode enumeration and sentinel
// errors for color derivation.
package palette

import "errors"

// Sentinel errors for palette derivation.
var (
	// ErrHashLength indicates the digest is too short for color derivation.
	ErrHashLength = errors.New("palette: digest too short")
	// ErrBackgroundMode indicates a mode outside the closed enumeration.
	ErrBackgroundMode = errors.New("palette: unknown background mode")
)

// BackgroundMode selects how the identicon background color is derived.
// The set is closed: exactly these three cases exist.
//
//   - BackgroundTransparent — no background is painted at all.
//   - BackgroundComplementary — hue rotated 180° from the foreground.
//   - BackgroundSplitComplementary — hue rotated 150° or 210° from the
//     foreground; the side is chosen by digest byte parity so it is a pure
//     function of the input text.
type BackgroundMode int

const (
	// BackgroundTransparent paints no background.
	BackgroundTransparent BackgroundMode = iota
	// BackgroundComplementary uses the hue opposite the foreground.
	BackgroundComplementary
	// BackgroundSplitComplementary uses a hue adjacent to the complement.
	BackgroundSplitComplementary
)

// String returns the mode name; unknown values print as "invalid".
func (m BackgroundMode) String() string {
	switch m {
	case BackgroundTransparent:
		return "transparent"
	case BackgroundComplementary:
		return "complementary"
	case BackgroundSplitComplementary:
		return "split-complementary"
	default:
		return "invalid"
	}
}

// valid reports whether m is one of the three enumeration cases.
func (m BackgroundMode) valid() bool {
	return m == BackgroundTransparent || m == BackgroundComplementary || m == BackgroundSplitComplementary
}
