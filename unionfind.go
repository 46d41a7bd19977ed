package curvetrace

// unionFind is a disjoint-set structure with path compression and union
// by size. flattenMerges uses it to turn a cut dendrogram into flat
// clusters; only the n leaf ids are passed to union and find, and the
// caller maps each merged-cluster id to the root it resolved to.
//
// Adapted from the teacher package's UnionFind (unionfind.go): same
// algorithm, sized for the dendrogram case and exposed internally rather
// than as a public type.
type unionFind struct {
	parent []int
	size   []int
	// nextLabel starts at n. union does not read it: a merged set is
	// identified by the root of the larger tree.
	nextLabel int
}

// newUnionFind creates a unionFind for n initial elements, sized to hold
// up to 2*n - 1 elements so that dendrogram construction can assign
// merged-cluster ids n..2n-2 in the same structure.
func newUnionFind(n int) *unionFind {
	total := 2*n - 1
	if total < 1 {
		total = 1
	}
	parent := make([]int, total)
	size := make([]int, total)
	for i := range parent {
		parent[i] = -1
	}
	for i := 0; i < n; i++ {
		size[i] = 1
	}
	return &unionFind{
		parent:    parent,
		size:      size,
		nextLabel: n,
	}
}

// find returns the root of the set containing x, with path compression.
func (uf *unionFind) find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// union merges the sets containing x and y, attaching the smaller tree
// under the larger, and returns the new root.
func (uf *unionFind) union(x, y int) int {
	rootX := uf.find(x)
	rootY := uf.find(y)
	if rootX == rootY {
		return rootX
	}

	if uf.size[rootX] < uf.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	uf.parent[rootY] = rootX
	uf.size[rootX] += uf.size[rootY]
	return rootX
}

// connected reports whether x and y are currently in the same set,
// without mutating the structure beyond find's path compression.
func (uf *unionFind) connected(x, y int) bool {
	return uf.find(x) == uf.find(y)
}
