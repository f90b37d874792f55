package mesh

// UV is one texture coordinate in UDIM tile units. Tile (0,0) spans
// u in [0,1], v in [0,1] before the V flip applied downstream.
type UV struct {
	U, V float64
}

// Mesh is the read-only view of one polygon object handed to the splitter.
// Polygons are stored as parallel per-polygon slices: Quads flags each
// polygon as quad (4 corners) or triangle (3 corners), and UVs carries four
// UV slots per polygon. The fourth slot of a triangle is storage padding and
// must never be read; CornerUVs handles that.
//
// A nil UVs slice means the mesh has no UV layer at all, which downstream
// treats as "skip this mesh", not as an error.
type Mesh struct {
	Name  string
	Quads []bool
	UVs   [][4]UV
}

// PolygonCount returns the number of polygons in the mesh.
func (m *Mesh) PolygonCount() int {
	return len(m.Quads)
}

// HasUVLayer reports whether the mesh carries per-corner UV data.
func (m *Mesh) HasUVLayer() bool {
	return m.UVs != nil
}

// CornerUVs returns the live UV corners of polygon i: four for a quad,
// three for a triangle. The padding slot of a triangle is excluded here so
// a stale duplicate coordinate can never leak into connectivity or bounds.
func (m *Mesh) CornerUVs(i int) []UV {
	if m.Quads[i] {
		return m.UVs[i][:4]
	}
	return m.UVs[i][:3]
}
