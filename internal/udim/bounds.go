// Package udim measures UV islands and assigns each one to a UDIM tile.
package udim

import (
	"math"

	"udim-splitter/internal/island"
	"udim-splitter/internal/mesh"
)

// dedupScale merges surviving corners at 6 decimal digits, one digit finer
// than the connectivity quantization. This only trims redundant min/max
// scans; it does not change the resulting bounds.
const dedupScale = 1e6

// Bounds is the axis-aligned bounding box and center of one island in
// flipped UV space (v' = 1 - v).
type Bounds struct {
	CenterU, CenterV       float64
	MinU, MaxU, MinV, MaxV float64
}

// IslandBounds computes the bounding box and center of isl over all its UV
// corners. Each corner is V-flipped first; corners with u < 0 or flipped
// v < 0 are unmapped placeholders and are dropped. ok is false when no valid
// corner survives, in which case the island is excluded from tile
// classification.
func IslandBounds(m *mesh.Mesh, isl island.Island) (Bounds, bool) {
	type ptKey struct {
		u, v int64
	}
	pts := make(map[ptKey]mesh.UV)

	for _, f := range isl {
		for _, c := range m.CornerUVs(f) {
			u := c.U
			v := 1.0 - c.V
			if u < 0 || v < 0 {
				continue
			}
			k := ptKey{
				u: int64(math.Round(u * dedupScale)),
				v: int64(math.Round(v * dedupScale)),
			}
			pts[k] = mesh.UV{U: u, V: v}
		}
	}

	if len(pts) == 0 {
		return Bounds{}, false
	}

	b := Bounds{
		MinU: math.Inf(1),
		MaxU: math.Inf(-1),
		MinV: math.Inf(1),
		MaxV: math.Inf(-1),
	}
	for _, p := range pts {
		b.MinU = math.Min(b.MinU, p.U)
		b.MaxU = math.Max(b.MaxU, p.U)
		b.MinV = math.Min(b.MinV, p.V)
		b.MaxV = math.Max(b.MaxV, p.V)
	}
	b.CenterU = (b.MinU + b.MaxU) * 0.5
	b.CenterV = (b.MinV + b.MaxV) * 0.5

	return b, true
}
