package math

import "github.com/spaghettifunk/anima-math/engine/core"

/**
 * @brief Generates one normal per vertex from the faces described by
 * indices (three per triangle). Shared vertices keep the normal of the
 * last face that references them.
 */
func GenerateNormals(vertices []Vector3f, indices []uint32) []Vector3f {
	normals := make([]Vector3f, len(vertices))
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]

		// NOTE: This just generates a face normal. Smoothing out should be done in a separate pass if desired.
		normal := NewTriangle(vertices[i0], vertices[i1], vertices[i2]).Normal()
		normals[i0] = normal
		normals[i1] = normal
		normals[i2] = normal
	}
	return normals
}

func reassignIndex(indices []uint32, from uint32, to uint32) {
	for i := range indices {
		if indices[i] == from {
			indices[i] = to
		} else if indices[i] > from {
			// Pull in all indicies higher than 'from' by 1.
			indices[i]--
		}
	}
}

/**
 * @brief Removes exact duplicate vertices, rewriting indices in place so
 * they point at the remaining unique vertices.
 *
 * @return The unique vertices, in first-seen order.
 */
func DeduplicateVertices(vertices []Vector3f, indices []uint32) []Vector3f {
	unique := make([]Vector3f, 0, len(vertices))
	foundCount := uint32(0)

	for v := range vertices {
		found := false
		for u := range unique {
			if vertices[v].Equal(unique[u]) {
				// Reassign indices, do not copy
				reassignIndex(indices, uint32(v)-foundCount, uint32(u))
				found = true
				foundCount++
				break
			}
		}

		if !found {
			unique = append(unique, vertices[v])
		}
	}

	core.LogDebug("deduplicate vertices: removed %d vertices, orig/now %d/%d", len(vertices)-len(unique), len(vertices), len(unique))
	return unique
}
