// Package island partitions a mesh's polygons into UV islands: maximal
// groups of polygons connected through shared UV-space coordinates.
package island

import (
	"math"

	"udim-splitter/internal/mesh"
)

// keyScale quantizes UV coordinates to 5 decimal digits before they are used
// as connectivity keys. Corners within ~1e-5 of each other weld into the same
// key so floating-point noise cannot fragment an island.
const keyScale = 1e5

// Island is a non-empty set of polygon indices, pairwise reachable through
// shared quantized UV corners.
type Island []int

type uvKey struct {
	u, v int64
}

func quantize(c mesh.UV) uvKey {
	return uvKey{
		u: int64(math.Round(c.U * keyScale)),
		v: int64(math.Round(c.V * keyScale)),
	}
}

// Connectivity holds the two adjacency mappings derived from a mesh's UV
// layer: which quantized keys each polygon touches, and which polygons touch
// each key. Two polygons are adjacent iff they share at least one key.
type Connectivity struct {
	faceKeys [][]uvKey
	keyFaces map[uvKey][]int
}

// BuildConnectivity derives the UV adjacency mappings for m. It returns nil
// when the mesh has no UV layer.
func BuildConnectivity(m *mesh.Mesh) *Connectivity {
	if !m.HasUVLayer() {
		return nil
	}

	n := m.PolygonCount()
	conn := &Connectivity{
		faceKeys: make([][]uvKey, n),
		keyFaces: make(map[uvKey][]int, n*2),
	}

	var keys [4]uvKey
	for i := 0; i < n; i++ {
		kn := 0
		// Triangles expose only three corners here; the padding slot is
		// already stripped by CornerUVs.
	corners:
		for _, c := range m.CornerUVs(i) {
			k := quantize(c)
			for j := 0; j < kn; j++ {
				if keys[j] == k {
					continue corners
				}
			}
			keys[kn] = k
			kn++
		}

		fk := make([]uvKey, kn)
		copy(fk, keys[:kn])
		conn.faceKeys[i] = fk
		for _, k := range fk {
			conn.keyFaces[k] = append(conn.keyFaces[k], i)
		}
	}

	return conn
}

// Detect partitions all polygons of m into UV islands.
//
// It returns nil when the mesh has no UV layer (the normal "skip this mesh"
// signal) and an empty, non-nil slice when the mesh has zero polygons. The
// resulting islands are pairwise disjoint and cover every polygon index;
// a polygon sharing no key with any other ends up as a singleton island.
//
// The partition (as sets) is deterministic for a given mesh. The order of
// islands and of indices within an island follows the traversal and must not
// be relied upon.
func Detect(m *mesh.Mesh) []Island {
	conn := BuildConnectivity(m)
	if conn == nil {
		return nil
	}
	return conn.Islands()
}

// Islands runs an iterative stack-based flood fill over the adjacency
// relation and returns the resulting partition. An explicit work stack is
// used instead of recursion so meshes with huge islands cannot overflow the
// call stack.
func (c *Connectivity) Islands() []Island {
	n := len(c.faceKeys)
	islands := make([]Island, 0)
	visited := make([]bool, n)
	stack := make([]int, 0, 64)

	for seed := 0; seed < n; seed++ {
		if visited[seed] {
			continue
		}

		var isl Island
		visited[seed] = true
		stack = append(stack[:0], seed)

		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			isl = append(isl, f)

			for _, k := range c.faceKeys[f] {
				for _, nbr := range c.keyFaces[k] {
					if !visited[nbr] {
						visited[nbr] = true
						stack = append(stack, nbr)
					}
				}
			}
		}

		islands = append(islands, isl)
	}

	return islands
}
