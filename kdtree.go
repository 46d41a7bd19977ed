package curvetrace

import (
	"container/heap"
	"math"
	"sort"
)

// nodeData describes a single node of the KD-tree, stored as a complete
// binary tree in array form: node i has children at 2*i+1 and 2*i+2.
type nodeData struct {
	idxStart, idxEnd int
	isLeaf           bool
}

// kdTree is a static spatial index over 3D points, used for k-nearest and
// radius queries by the smoother, triplet generator and characteristic
// length. Points are stored in a flat row-major array and reordered
// internally via a permutation array so that queries return stable,
// original point indices rather than geometric copies.
//
// Adapted from the teacher package's KDTree (kdtree.go): same array-backed
// complete-binary-tree layout and median-of-max-spread splitting, narrowed
// to a single fixed Euclidean metric and 3 dimensions, with a radius query
// added.
type kdTree struct {
	data     []float64 // flat row-major point data (n * 3)
	n        int
	leafSize int
	idxArray []int // permutation: tree-order position -> original index
	nodes    []nodeData
	// nodeBoundsMin[node*3+j], nodeBoundsMax[node*3+j]: axis-aligned bounds.
	nodeBoundsMin []float64
	nodeBoundsMax []float64
	numNodes      int
}

const kdDims = 3

// newKDTree builds a KD-tree from flat row-major data with n points of
// dimensionality kdDims. leafSize bounds the number of points per leaf.
func newKDTree(data []float64, n, leafSize int) *kdTree {
	if leafSize < 1 {
		leafSize = 1
	}

	dataCopy := make([]float64, len(data))
	copy(dataCopy, data)
	idxArray := make([]int, n)
	for i := range idxArray {
		idxArray[i] = i
	}

	maxNodes := kdMaxNodes(n, leafSize)

	t := &kdTree{
		data:          dataCopy,
		n:             n,
		leafSize:      leafSize,
		idxArray:      idxArray,
		nodes:         make([]nodeData, maxNodes),
		nodeBoundsMin: make([]float64, maxNodes*kdDims),
		nodeBoundsMax: make([]float64, maxNodes*kdDims),
	}

	if n > 0 {
		t.buildNode(0, 0, n)
		t.numNodes = kdCountNodes(t.nodes, 0, maxNodes)
	}

	return t
}

func kdMaxNodes(n, leafSize int) int {
	if n == 0 {
		return 1
	}
	leaves := (n + leafSize - 1) / leafSize
	depth := 0
	v := 1
	for v < leaves {
		v *= 2
		depth++
	}
	return (1 << (depth + 1)) - 1 + 2
}

func kdCountNodes(nodes []nodeData, nodeID, maxNodes int) int {
	if nodeID >= maxNodes {
		return 0
	}
	if nodes[nodeID].idxStart == 0 && nodes[nodeID].idxEnd == 0 && nodeID != 0 {
		return 0
	}
	count := 1
	left := 2*nodeID + 1
	right := 2*nodeID + 2
	if !nodes[nodeID].isLeaf {
		count += kdCountNodes(nodes, left, maxNodes)
		count += kdCountNodes(nodes, right, maxNodes)
	}
	return count
}

func (t *kdTree) buildNode(nodeID, start, end int) {
	for nodeID >= len(t.nodes) {
		t.nodes = append(t.nodes, nodeData{})
		t.nodeBoundsMin = append(t.nodeBoundsMin, make([]float64, kdDims)...)
		t.nodeBoundsMax = append(t.nodeBoundsMax, make([]float64, kdDims)...)
	}

	t.computeNodeBounds(nodeID, start, end)

	count := end - start
	if count <= t.leafSize {
		t.nodes[nodeID] = nodeData{idxStart: start, idxEnd: end, isLeaf: true}
		return
	}

	splitDim := 0
	maxSpread := -1.0
	for d := 0; d < kdDims; d++ {
		spread := t.nodeBoundsMax[nodeID*kdDims+d] - t.nodeBoundsMin[nodeID*kdDims+d]
		if spread > maxSpread {
			maxSpread = spread
			splitDim = d
		}
	}

	t.sortByDimension(start, end, splitDim)
	mid := start + count/2

	t.nodes[nodeID] = nodeData{idxStart: start, idxEnd: end, isLeaf: false}

	t.buildNode(2*nodeID+1, start, mid)
	t.buildNode(2*nodeID+2, mid, end)
}

func (t *kdTree) computeNodeBounds(nodeID, start, end int) {
	base := nodeID * kdDims
	for d := 0; d < kdDims; d++ {
		t.nodeBoundsMin[base+d] = math.Inf(1)
		t.nodeBoundsMax[base+d] = math.Inf(-1)
	}
	for i := start; i < end; i++ {
		ptIdx := t.idxArray[i]
		for d := 0; d < kdDims; d++ {
			v := t.data[ptIdx*kdDims+d]
			if v < t.nodeBoundsMin[base+d] {
				t.nodeBoundsMin[base+d] = v
			}
			if v > t.nodeBoundsMax[base+d] {
				t.nodeBoundsMax[base+d] = v
			}
		}
	}
}

func (t *kdTree) sortByDimension(start, end, dim int) {
	sub := t.idxArray[start:end]
	data := t.data
	sort.Slice(sub, func(i, j int) bool {
		return data[sub[i]*kdDims+dim] < data[sub[j]*kdDims+dim]
	})
}

func sqDist(a, b []float64) float64 {
	var sum float64
	for i := 0; i < kdDims; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// kNeighbor is one result of a k-nearest query: the original point index
// and its squared distance to the query point.
type kNeighbor struct {
	index   int
	sqDist  float64
}

// queryKNN returns the k nearest neighbors of query, ascending by squared
// distance, with ties broken deterministically by original point index.
func (t *kdTree) queryKNN(query []float64, k int) []kNeighbor {
	if k <= 0 || t.n == 0 {
		return nil
	}
	if k > t.n {
		k = t.n
	}

	h := &knnHeap{}
	heap.Init(h)
	t.knnSearch(0, query, k, h)

	result := make([]kNeighbor, h.Len())
	for i := range result {
		item := heap.Pop(h).(knnItem)
		result[len(result)-1-i] = kNeighbor{index: item.index, sqDist: item.dist}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].sqDist != result[j].sqDist {
			return result[i].sqDist < result[j].sqDist
		}
		return result[i].index < result[j].index
	})

	return result
}

func (t *kdTree) knnSearch(nodeID int, query []float64, k int, h *knnHeap) {
	if nodeID >= len(t.nodes) {
		return
	}
	node := t.nodes[nodeID]
	if node.idxStart == node.idxEnd && nodeID != 0 {
		return
	}

	if node.isLeaf {
		for i := node.idxStart; i < node.idxEnd; i++ {
			ptIdx := t.idxArray[i]
			pt := t.data[ptIdx*kdDims : ptIdx*kdDims+kdDims]
			d := sqDist(query, pt)
			if h.Len() < k {
				heap.Push(h, knnItem{index: ptIdx, dist: d})
			} else if d < (*h)[0].dist {
				(*h)[0] = knnItem{index: ptIdx, dist: d}
				heap.Fix(h, 0)
			}
		}
		return
	}

	left := 2*nodeID + 1
	right := 2*nodeID + 2

	leftMin := t.minSqDistToNode(left, query)
	rightMin := t.minSqDistToNode(right, query)

	nearChild, farChild := left, right
	farMin := rightMin
	if rightMin < leftMin {
		nearChild, farChild = right, left
		farMin = leftMin
	}

	t.knnSearch(nearChild, query, k, h)

	if h.Len() < k || (*h)[0].dist > farMin {
		t.knnSearch(farChild, query, k, h)
	}
}

// minSqDistToNode returns a lower bound on the squared distance between
// point and any point contained in node's bounding box.
func (t *kdTree) minSqDistToNode(node int, point []float64) float64 {
	if node >= len(t.nodes) {
		return math.Inf(1)
	}
	base := node * kdDims
	var sum float64
	for d := 0; d < kdDims; d++ {
		lo := t.nodeBoundsMin[base+d]
		hi := t.nodeBoundsMax[base+d]
		var gap float64
		if point[d] < lo {
			gap = lo - point[d]
		} else if point[d] > hi {
			gap = point[d] - hi
		}
		sum += gap * gap
	}
	return sum
}

// queryRadius returns the indices of every point within Euclidean distance
// r of query, sorted ascending by original index. The query point itself,
// if it is a member of the tree, is included.
func (t *kdTree) queryRadius(query []float64, r float64) []int {
	if t.n == 0 || r < 0 {
		return nil
	}
	var out []int
	r2 := r * r
	t.radiusSearch(0, query, r2, &out)
	sort.Ints(out)
	return out
}

func (t *kdTree) radiusSearch(nodeID int, query []float64, r2 float64, out *[]int) {
	if nodeID >= len(t.nodes) {
		return
	}
	node := t.nodes[nodeID]
	if node.idxStart == node.idxEnd && nodeID != 0 {
		return
	}
	if t.minSqDistToNode(nodeID, query) > r2 {
		return
	}

	if node.isLeaf {
		for i := node.idxStart; i < node.idxEnd; i++ {
			ptIdx := t.idxArray[i]
			pt := t.data[ptIdx*kdDims : ptIdx*kdDims+kdDims]
			if sqDist(query, pt) <= r2 {
				*out = append(*out, ptIdx)
			}
		}
		return
	}

	t.radiusSearch(2*nodeID+1, query, r2, out)
	t.radiusSearch(2*nodeID+2, query, r2, out)
}

// --- max-heap of size k for KNN queries ---

type knnItem struct {
	index int
	dist  float64
}

type knnHeap []knnItem

func (h knnHeap) Len() int            { return len(h) }
func (h knnHeap) Less(i, j int) bool  { return h[i].dist > h[j].dist } // max-heap
func (h knnHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *knnHeap) Push(x interface{}) { *h = append(*h, x.(knnItem)) }
func (h *knnHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
