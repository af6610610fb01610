// Package identicon orchestrates the full pipeline:
// hash → grid → components → outlines → colors → SVG.
package identicon

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/waseigo/identicon-svg/grid"
	"github.com/waseigo/identicon-svg/outline"
	"github.com/waseigo/identicon-svg/palette"
	"github.com/waseigo/identicon-svg/svg"
)

// Identicon is the fully derived result for one input text.
// All fields are computed once by Generate and never mutated after.
type Identicon struct {
	// Text is the original input.
	Text string
	// Digest is the SHA-256 digest of Text that seeded everything below.
	Digest [sha256.Size]byte
	// Grid is the derived occupancy lattice.
	Grid *grid.Grid
	// Foreground and Background hold one closed path per component, in
	// deterministic component order. Background is nil when the background
	// mode is transparent.
	Foreground, Background []outline.Path
	// FGColor is the foreground fill; BGColor is meaningful only when
	// HasBackground is true.
	FGColor, BGColor colorful.Color
	// HasBackground reports whether the background layer is painted.
	HasBackground bool

	opts GenOptions
}

// Generate builds the identicon for text.
//
// Pipeline, leaves first: SHA-256 digest; mirrored occupancy grid; per
// layer, maximal 4-connected components; per component (fanned out, see
// package doc), boundary extraction, loop tracing, hole bridging; colors
// from the digest. Invariant violations in any component abort generation
// with a descriptive wrapped error naming the layer and component.
//
// Complexity: O(N²) grid work plus O(V²) bridging per component; N ≤ 10
// keeps every run microscopic.
func Generate(text string, opts ...Option) (*Identicon, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	digest := sha256.Sum256([]byte(text))
	g, err := grid.FromHash(digest[:], o.Size)
	if err != nil {
		return nil, fmt.Errorf("identicon: deriving grid: %w", err)
	}

	fg, err := palette.Foreground(digest[:])
	if err != nil {
		return nil, fmt.Errorf("identicon: deriving foreground color: %w", err)
	}
	bg, hasBG, err := palette.Background(fg, o.Background, digest[:])
	if err != nil {
		return nil, fmt.Errorf("identicon: deriving background color: %w", err)
	}

	ic := &Identicon{
		Text:          text,
		Digest:        digest,
		Grid:          g,
		FGColor:       fg,
		BGColor:       bg,
		HasBackground: hasBG,
		opts:          o,
	}

	if ic.Foreground, err = layerPaths(g, grid.Foreground, o.Parallelism); err != nil {
		return nil, err
	}
	// The background layer is outlined only when it will be painted.
	if hasBG {
		if ic.Background, err = layerPaths(g, grid.Background, o.Parallelism); err != nil {
			return nil, err
		}
	}

	return ic, nil
}

// SVG serializes the identicon as a complete SVG document to w.
func (ic *Identicon) SVG(w io.Writer) error {
	doc := svg.Document{
		GridSize:   ic.Grid.Size(),
		Foreground: ic.Foreground,
		Background: ic.Background,
		FGColor:    ic.FGColor.Hex(),
	}
	if ic.HasBackground {
		doc.BGColor = ic.BGColor.Hex()
	}

	return svg.Render(w, doc, svg.Options{
		CellSize: ic.opts.CellSize,
		Padding:  ic.opts.Padding,
		Opacity:  ic.opts.Opacity,
	})
}

// String returns the SVG document as a string.
func (ic *Identicon) String() string {
	var buf bytes.Buffer
	// Buffered writes cannot fail; rendering options were validated by
	// Generate, so the error is structurally nil here.
	_ = ic.SVG(&buf)

	return buf.String()
}
