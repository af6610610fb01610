package svg

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/waseigo/identicon-svg/outline"
)

// Document is everything needed to serialize one identicon.
// BGColor empty means the background layer is not painted at all.
type Document struct {
	// GridSize is the lattice side N; the viewport is square.
	GridSize int
	// Foreground and Background hold one closed ring per component,
	// already bridged upstream, in deterministic component order.
	Foreground, Background []outline.Path
	// FGColor and BGColor are CSS color strings (e.g. "#1f77b4").
	FGColor, BGColor string
}

// PathData builds a single SVG path "d" string from closed rings: each
// ring becomes M, a run of L, then Z. Lattice coordinates are scaled by
// cell and shifted by padding. Empty rings are skipped; an empty ring set
// yields the empty string.
// Complexity: O(total vertices).
func PathData(rings []outline.Path, cell, padding int) string {
	var b strings.Builder
	for _, ring := range rings {
		if len(ring) == 0 {
			continue
		}
		for i, p := range ring {
			if i == 0 {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteByte('M')
			} else {
				b.WriteByte('L')
			}
			b.WriteString(strconv.Itoa(padding + p.X*cell))
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(padding + p.Y*cell))
		}
		b.WriteByte('Z')
	}

	return b.String()
}

// Render writes the document as a complete SVG to w.
// The viewport side is GridSize·CellSize + 2·Padding. The background layer
// is painted first (when BGColor is set), the foreground on top; both use
// the nonzero fill rule, which the bridged paths are oriented for.
// Returns an option validation error before writing anything.
func Render(w io.Writer, doc Document, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	side := doc.GridSize*opts.CellSize + 2*opts.Padding

	// svgo reports no write errors itself; buffer the document and flush
	// once so I/O failures surface from a single Write.
	var buf bytes.Buffer
	canvas := svgo.New(&buf)
	canvas.Start(side, side)
	if doc.BGColor != "" {
		if d := PathData(doc.Background, opts.CellSize, opts.Padding); d != "" {
			canvas.Path(d, pathStyle(doc.BGColor, opts.Opacity))
		}
	}
	if d := PathData(doc.Foreground, opts.CellSize, opts.Padding); d != "" {
		canvas.Path(d, pathStyle(doc.FGColor, opts.Opacity))
	}
	canvas.End()

	_, err := w.Write(buf.Bytes())

	return err
}

// pathStyle renders the style attribute for one layer path.
func pathStyle(fill string, opacity float64) string {
	var b strings.Builder
	b.WriteString("fill:")
	b.WriteString(fill)
	b.WriteString(";fill-rule:nonzero")
	if opacity != 1.0 {
		b.WriteString(";fill-opacity:")
		b.WriteString(strconv.FormatFloat(opacity, 'g', -1, 64))
	}

	return b.String()
}
