// Package gltfmesh loads polygon meshes with their TEXCOORD_0 layer from
// glTF and GLB files.
package gltfmesh

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"udim-splitter/internal/mesh"
)

// Load reads path (.gltf or .glb) and returns one mesh per triangle
// primitive. Primitives without a TEXCOORD_0 attribute come back without a
// UV layer so the splitter reports them as skipped. Non-triangle primitives
// (lines, points) are ignored.
func Load(path string) ([]*mesh.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltfmesh: open %s: %w", path, err)
	}

	var meshes []*mesh.Mesh
	for mi, gm := range doc.Meshes {
		name := gm.Name
		if name == "" {
			name = fmt.Sprintf("mesh_%d", mi)
		}

		for pi, prim := range gm.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}

			m, err := primitiveMesh(doc, prim)
			if err != nil {
				return nil, fmt.Errorf("gltfmesh: %s primitive %d: %w", name, pi, err)
			}
			if m == nil {
				continue
			}

			m.Name = name
			if len(gm.Primitives) > 1 {
				m.Name = fmt.Sprintf("%s_%d", name, pi)
			}
			meshes = append(meshes, m)
		}
	}

	return meshes, nil
}

// primitiveMesh converts one triangle primitive into the splitter's mesh
// model: one polygon per index triple, with the per-corner UVs looked up
// through the same indices. Returns nil for an empty primitive.
func primitiveMesh(doc *gltf.Document, prim *gltf.Primitive) (*mesh.Mesh, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, nil
	}
	vertCount := int(doc.Accessors[posIdx].Count)

	var indices []uint32
	if prim.Indices != nil {
		read, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("read indices: %w", err)
		}
		indices = read
	} else {
		// Non-indexed geometry: consecutive vertex triples.
		indices = make([]uint32, vertCount)
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	var uvs [][2]float32
	if uvIdx, hasUV := prim.Attributes[gltf.TEXCOORD_0]; hasUV {
		read, err := modeler.ReadTextureCoord(doc, doc.Accessors[uvIdx], nil)
		if err != nil {
			return nil, fmt.Errorf("read texcoords: %w", err)
		}
		uvs = read
	}

	triCount := len(indices) / 3
	if triCount == 0 {
		return nil, nil
	}

	m := &mesh.Mesh{Quads: make([]bool, triCount)}
	if uvs == nil {
		return m, nil
	}

	m.UVs = make([][4]mesh.UV, triCount)
	for t := 0; t < triCount; t++ {
		for c := 0; c < 3; c++ {
			vi := indices[t*3+c]
			if int(vi) >= len(uvs) {
				return nil, fmt.Errorf("uv index %d out of range (%d)", vi, len(uvs))
			}
			m.UVs[t][c] = mesh.UV{
				U: float64(uvs[vi][0]),
				V: float64(uvs[vi][1]),
			}
		}
		// Triangle storage keeps a fourth padding slot; mirror the third
		// corner there like host UV tags do.
		m.UVs[t][3] = m.UVs[t][2]
	}

	return m, nil
}
