// File: identicon/bench_test.go
package identicon_test

import (
	"io"
	"testing"

	"github.com/waseigo/identicon-svg/identicon"
	"github.com/waseigo/identicon-svg/palette"
)

// BenchmarkGenerate measures the full pipeline at the default 5×5 size.
func BenchmarkGenerate(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := identicon.Generate("bench"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerate_MaxSize measures the largest supported lattice with
// both layers outlined.
func BenchmarkGenerate_MaxSize(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := identicon.Generate("bench",
			identicon.WithSize(10),
			identicon.WithBackground(palette.BackgroundComplementary))
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSVG measures serialization alone, with generation hoisted out.
func BenchmarkSVG(b *testing.B) {
	ic, err := identicon.Generate("bench",
		identicon.WithBackground(palette.BackgroundComplementary))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := ic.SVG(io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}
