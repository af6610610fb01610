// File: identicon/example_test.go
package identicon_test

import (
	"fmt"

	"github.com/waseigo/identicon-svg/identicon"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Generate
////////////////////////////////////////////////////////////////////////////////

// ExampleGenerate derives an identicon for a fixed text. The digest of
// "demo" yields a single foreground blob enclosing one hole, so the whole
// foreground collapses into one bridged path; the fill color comes from
// the first three digest bytes.
func ExampleGenerate() {
	ic, err := identicon.Generate("demo")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("grid side:", ic.Grid.Size())
	fmt.Println("foreground paths:", len(ic.Foreground))
	fmt.Println("fill:", ic.FGColor.Hex())

	// Output:
	// grid side: 5
	// foreground paths: 1
	// fill: #2a9751
}
