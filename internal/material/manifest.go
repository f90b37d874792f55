// Package material turns a batch result into the host-facing output: one
// material per UDIM tile and one polygon selection per mesh and tile,
// serialized as a JSON manifest.
package material

import (
	"encoding/json"
	"fmt"
	"os"

	"udim-splitter/internal/splitter"
	"udim-splitter/internal/udim"
)

// Material describes one shared per-tile material.
type Material struct {
	Name          string     `json:"name"`
	Tile          [2]int     `json:"tile"`
	Color         [3]float64 `json:"color"`
	FallbackColor bool       `json:"fallback_color,omitempty"`
}

// Selection describes one polygon selection on a mesh, bound to a material.
type Selection struct {
	Name     string `json:"name"`
	Material string `json:"material"`
	Polygons []int  `json:"polygons"`
}

// MeshEntry is the per-mesh part of the manifest.
type MeshEntry struct {
	Mesh       string      `json:"mesh"`
	Skipped    bool        `json:"skipped,omitempty"`
	Reason     string      `json:"reason,omitempty"`
	Islands    int         `json:"islands,omitempty"`
	Selections []Selection `json:"selections,omitempty"`
}

// Manifest is the full output document for one batch run.
type Manifest struct {
	Materials []Material  `json:"materials"`
	Meshes    []MeshEntry `json:"meshes"`
}

// MaterialName returns the shared material name for a tile.
func MaterialName(t udim.Tile) string {
	return fmt.Sprintf("Mat_UDIM_%d_%d", t.U, t.V)
}

// SelectionName returns the per-mesh selection name for a tile.
func SelectionName(meshName string, t udim.Tile) string {
	return fmt.Sprintf("%s_UDIM_%d_%d", meshName, t.U, t.V)
}

// Build assembles the manifest from a batch output. Materials follow the
// sorted tile order; selections follow the same order within each mesh, so
// the document is stable across runs with a fixed random source.
func Build(out *splitter.Output) Manifest {
	fallback := make(map[udim.Tile]bool, len(out.FallbackTiles))
	for _, t := range out.FallbackTiles {
		fallback[t] = true
	}

	man := Manifest{
		Materials: make([]Material, 0, len(out.Tiles)),
		Meshes:    make([]MeshEntry, 0, len(out.Results)),
	}

	for _, t := range out.Tiles {
		c := out.Colors[t]
		man.Materials = append(man.Materials, Material{
			Name:          MaterialName(t),
			Tile:          [2]int{t.U, t.V},
			Color:         [3]float64{c.R, c.G, c.B},
			FallbackColor: fallback[t],
		})
	}

	for _, res := range out.Results {
		entry := MeshEntry{
			Mesh:    res.Name,
			Skipped: res.Skipped,
			Reason:  res.Reason,
			Islands: res.Islands,
		}
		for _, t := range out.Tiles {
			polys, ok := res.Groups[t]
			if !ok {
				continue
			}
			entry.Selections = append(entry.Selections, Selection{
				Name:     SelectionName(res.Name, t),
				Material: MaterialName(t),
				Polygons: polys,
			})
		}
		man.Meshes = append(man.Meshes, entry)
	}

	return man
}

// Write serializes the manifest for out to path.
func Write(path string, out *splitter.Output) error {
	data, err := json.MarshalIndent(Build(out), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
