// Package palette derives identicon colors from a cryptographic digest.
//
// What:
//
//   - Foreground maps the first three digest bytes directly to an RGB color.
//   - Background derives a companion color by hue rotation: complementary
//     (+180°) or split-complementary (+150°/+210°, side picked by a digest
//     byte), or no background at all (transparent).
//   - BackgroundMode is a closed three-case enumeration; anything else is
//     rejected with ErrBackgroundMode.
//
// Why:
//
//   - Determinism: the same text always dresses in the same colors.
//   - Contrast: hue-rotation schemes keep foreground blobs legible on any
//     derived background.
//
// Color math runs on github.com/lucasb-eyer/go-colorful HSL conversions.
//
// Errors:
//
//   - ErrHashLength: digest too short for the requested derivation.
//   - ErrBackgroundMode: mode value outside the closed enumeration.
package palette
