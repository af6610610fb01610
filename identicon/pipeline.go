package identicon

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/waseigo/identicon-svg/grid"
	"github.com/waseigo/identicon-svg/outline"
)

// layerPaths outlines every component of one layer as a single closed path.
//
// Components carry no cross-dependencies, so each is outlined in its own
// errgroup task. Every task writes only its own index of the result slice;
// assembly order is therefore the deterministic component order from
// grid.Components regardless of scheduling. An empty layer yields nil.
func layerPaths(g *grid.Grid, layer grid.Layer, parallelism int) ([]outline.Path, error) {
	comps := g.Components(layer)
	if len(comps) == 0 {
		return nil, nil
	}

	if parallelism == 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	paths := make([]outline.Path, len(comps))
	var eg errgroup.Group
	eg.SetLimit(parallelism)
	for i, comp := range comps {
		i, comp := i, comp
		eg.Go(func() error {
			p, err := componentPath(comp)
			if err != nil {
				return fmt.Errorf("identicon: %s component %d: %w", layer, i, err)
			}
			paths[i] = p

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return paths, nil
}

// componentPath runs the geometry pipeline for one component:
// boundary edges → directed loops → single bridged path.
func componentPath(cells []grid.Cell) (outline.Path, error) {
	edges, err := outline.Boundary(cells)
	if err != nil {
		return nil, err
	}
	loops, err := outline.Trace(edges)
	if err != nil {
		return nil, err
	}

	return outline.Bridge(loops)
}
