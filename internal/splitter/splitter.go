// Package splitter runs the whole UDIM split over a batch of meshes: island
// detection and tile classification per mesh, one shared pastel color per
// tile across the batch, and per-mesh polygon groups keyed by tile.
package splitter

import (
	"math/rand/v2"
	"slices"
	"sort"
	"sync"

	"udim-splitter/internal/island"
	"udim-splitter/internal/mesh"
	"udim-splitter/internal/palette"
	"udim-splitter/internal/udim"
)

// Config holds shared settings for one batch run.
type Config struct {
	// MinColorDist is the minimum pairwise RGB distance between tile
	// colors; <= 0 uses palette.DefaultMinDist.
	MinColorDist float64

	// Rand drives palette generation. Nil picks an unseeded source; pass
	// a seeded one for reproducible colors.
	Rand *rand.Rand

	// Workers sizes the classification worker pool; < 1 means 1.
	Workers int
}

// Result holds the outcome for one mesh, in input order.
type Result struct {
	Name    string
	Skipped bool
	Reason  string
	Islands int
	// Groups maps each tile present on the mesh to the sorted polygon
	// indices assigned to it.
	Groups map[udim.Tile][]int
}

// Output is the outcome of one batch run.
type Output struct {
	Results []Result

	// Tiles is the global tile set in the sorted (U, V) order used for
	// color assignment.
	Tiles  []udim.Tile
	Colors map[udim.Tile]palette.Color

	// FallbackTiles lists tiles whose color generation exhausted its
	// retry budget and returned a near-duplicate; a soft warning only.
	FallbackTiles []udim.Tile
}

// islandTile pairs one island with its assigned tile.
type islandTile struct {
	polys island.Island
	tile  udim.Tile
}

// classification is the per-mesh result of the island/tile pass.
type classification struct {
	skipped bool
	reason  string
	islands int
	assigns []islandTile
}

// Run executes the batch in three strictly ordered phases: classify every
// mesh and collect the global tile set, then assign colors in sorted tile
// order, then group each mesh's polygons by tile. Classification is
// per-mesh independent and runs on a worker pool; color assignment is
// sequential so the palette stays reproducible under a seeded source.
func Run(cfg Config, meshes []*mesh.Mesh) *Output {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	// Phase A: classify all meshes.
	classes := make([]classification, len(meshes))

	meshChan := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range meshChan {
				classes[idx] = classify(meshes[idx])
			}
		}()
	}
	for i := range meshes {
		meshChan <- i
	}
	close(meshChan)
	wg.Wait()

	// Collect the global tile set.
	tileSet := make(map[udim.Tile]struct{})
	for _, cl := range classes {
		for _, a := range cl.assigns {
			tileSet[a.tile] = struct{}{}
		}
	}

	// Phase B: one color per tile, in sorted order. The sort pins the
	// tile -> color mapping independent of map iteration order.
	tiles := make([]udim.Tile, 0, len(tileSet))
	for t := range tileSet {
		tiles = append(tiles, t)
	}
	slices.SortFunc(tiles, udim.Tile.Compare)

	gen := palette.New(rng, cfg.MinColorDist)
	colors := make(map[udim.Tile]palette.Color, len(tiles))
	var fallbacks []udim.Tile
	for _, t := range tiles {
		c, fallback := gen.Next()
		colors[t] = c
		if fallback {
			fallbacks = append(fallbacks, t)
		}
	}

	// Phase C: group each mesh's polygons by tile.
	out := &Output{
		Results:       make([]Result, len(meshes)),
		Tiles:         tiles,
		Colors:        colors,
		FallbackTiles: fallbacks,
	}
	for i, m := range meshes {
		cl := classes[i]
		res := Result{
			Name:    m.Name,
			Skipped: cl.skipped,
			Reason:  cl.reason,
			Islands: cl.islands,
		}
		if !cl.skipped {
			res.Groups = make(map[udim.Tile][]int, len(cl.assigns))
			for _, a := range cl.assigns {
				res.Groups[a.tile] = append(res.Groups[a.tile], a.polys...)
			}
			for _, polys := range res.Groups {
				sort.Ints(polys)
			}
		}
		out.Results[i] = res
	}

	return out
}

// classify runs island detection, bounds measurement and tile assignment
// for one mesh. Islands without any valid UV corner are dropped here; they
// can never land in a tile.
func classify(m *mesh.Mesh) classification {
	islands := island.Detect(m)
	if islands == nil {
		return classification{skipped: true, reason: "no UV layer"}
	}
	if len(islands) == 0 {
		return classification{skipped: true, reason: "no UV islands"}
	}

	cl := classification{islands: len(islands)}
	for _, isl := range islands {
		b, ok := udim.IslandBounds(m, isl)
		if !ok {
			continue
		}
		cl.assigns = append(cl.assigns, islandTile{
			polys: isl,
			tile:  udim.AssignTile(b),
		})
	}

	return cl
}
