// uvinspect prints the UV islands, bounds and tile assignment of one mesh
// file, for debugging layouts before a full split.
package main

import (
	"flag"
	"fmt"
	"os"

	"udim-splitter/internal/island"
	"udim-splitter/internal/scene"
	"udim-splitter/internal/udim"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: uvinspect <file.gltf|glb|obj>")
		os.Exit(1)
	}

	meshes, err := scene.LoadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, m := range meshes {
		fmt.Printf("Mesh %q: %d polygons\n", m.Name, m.PolygonCount())

		islands := island.Detect(m)
		if islands == nil {
			fmt.Println("  no UV layer")
			continue
		}

		for i, isl := range islands {
			b, ok := udim.IslandBounds(m, isl)
			if !ok {
				fmt.Printf("  island %d: %d polys, no valid UV corners\n", i, len(isl))
				continue
			}
			tile := udim.AssignTile(b)
			fmt.Printf("  island %d: %d polys, u[%.4f..%.4f] v[%.4f..%.4f] center(%.4f, %.4f) -> tile %s\n",
				i, len(isl), b.MinU, b.MaxU, b.MinV, b.MaxV, b.CenterU, b.CenterV, tile)
		}
	}
}
