// Command identicon renders a deterministic SVG identicon for a text.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/waseigo/identicon-svg/identicon"
	"github.com/waseigo/identicon-svg/palette"
)

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

var (
	// Flags
	text        = flag.String("t", "", "Input text (required)")
	destination = flag.String("o", pipeName, "Destination file, '-' for stdout")
	size        = flag.Int("s", 5, "Lattice side, 4..10")
	background  = flag.String("b", "transparent", "Background: transparent, complementary, split")
	cellSize    = flag.Int("c", 20, "Cell size in pixels")
	padding     = flag.Int("p", 0, "Padding in pixels")
	opacity     = flag.Float64("a", 1.0, "Fill opacity, 0..1")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	if *text == "" {
		flag.Usage()
		os.Exit(2)
	}

	mode, err := backgroundMode(*background)
	if err != nil {
		log.Fatal(err)
	}

	ic, err := identicon.Generate(*text,
		identicon.WithSize(*size),
		identicon.WithBackground(mode),
		identicon.WithCellSize(*cellSize),
		identicon.WithPadding(*padding),
		identicon.WithOpacity(*opacity),
	)
	if err != nil {
		log.Fatal(err)
	}

	out := os.Stdout
	if *destination != pipeName {
		f, err := os.Create(*destination)
		if err != nil {
			log.Fatalf("creating %s: %v", *destination, err)
		}
		defer f.Close()
		out = f
	}
	if err := ic.SVG(out); err != nil {
		log.Fatal(err)
	}
}

// backgroundMode maps the flag value onto the closed palette enumeration.
func backgroundMode(name string) (palette.BackgroundMode, error) {
	switch name {
	case "transparent":
		return palette.BackgroundTransparent, nil
	case "complementary":
		return palette.BackgroundComplementary, nil
	case "split":
		return palette.BackgroundSplitComplementary, nil
	default:
		return 0, fmt.Errorf("unknown background %q (want transparent, complementary, or split)", name)
	}
}
