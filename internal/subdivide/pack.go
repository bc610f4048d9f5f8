package subdivide

import "github.com/Faultbox/globemesh/internal/mesh"

// packIndexSets chunks a flattened index list into primitive sets of at most
// maxElements index elements each, choosing the narrowest index width that
// can address vertexCount vertices. stride is the number of indices per
// primitive (3 for triangles, 2 for lines); a set is closed before a
// primitive would have to straddle the limit, so primitives never split
// across buffers.
func packIndexSets(mode uint32, indices []uint32, stride, vertexCount, maxElements int) []*mesh.PrimitiveSet {
	width := mesh.WidthFor(vertexCount)
	total := len(indices) / stride

	var sets []*mesh.PrimitiveSet
	var cur *mesh.PrimitiveSet
	written := 0
	count := 0

	for p := 0; p < total; p++ {
		if cur == nil || count+stride-1 >= maxElements {
			if cur != nil {
				sets = append(sets, cur)
			}
			reserve := (total - written) * stride
			if reserve > maxElements {
				reserve = maxElements
			}
			cur = mesh.NewPrimitiveSet(mode, width, reserve)
			count = 0
		}
		for k := 0; k < stride; k++ {
			cur.Append(indices[p*stride+k])
		}
		count += stride
		written++
	}

	if cur != nil && cur.Len() > 0 {
		sets = append(sets, cur)
	}
	return sets
}
