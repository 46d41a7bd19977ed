package curvetrace

import (
	"sort"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// gapSplit takes one point-index cluster and, if dmax enables it, breaks
// it apart wherever its Euclidean minimum spanning tree has an edge
// longer than dmax. pointIndices must already be sorted ascending, as
// produced by projectCluster.
//
// The graph construction and Kruskal step are delegated to
// gonum.org/v1/gonum/graph/{simple,path}; everything downstream of the MST
// (edge pruning, connected-component extraction) follows
// original_source/src/graph.cpp's max_step: remove every surviving MST
// edge heavier than dmax², walk the remaining adjacency with DFS, and
// keep a component only if it reaches size m+2 — unless nothing was
// pruned, in which case the original cluster was never actually split
// and every component (including ones smaller than m+2) is kept.
func gapSplit(cloud *PointCloud, pointIndices []int, dmax float64, m int) [][]int {
	vcount := len(pointIndices)
	if vcount == 0 {
		return nil
	}
	if vcount == 1 {
		return [][]int{{pointIndices[0]}}
	}

	g := simple.NewWeightedUndirectedGraph(0, 0)
	for i := 0; i < vcount; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < vcount; i++ {
		pi := cloud.points[pointIndices[i]].pos
		for j := i + 1; j < vcount; j++ {
			pj := cloud.points[pointIndices[j]].pos
			w := pj.sub(pi).squaredNorm()
			g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(i), T: simple.Node(j), W: w})
		}
	}

	forest := simple.NewWeightedUndirectedGraph(0, 0)
	path.Kruskal(forest, g)

	type edge struct {
		u, v int
		w    float64
	}
	var edges []edge
	it := forest.Edges()
	for it.Next() {
		e := it.Edge()
		u, v := int(e.From().ID()), int(e.To().ID())
		we := forest.WeightedEdge(int64(u), int64(v))
		edges = append(edges, edge{u: u, v: v, w: we.Weight()})
	}

	totalEdges := len(edges)
	dmax2 := dmax * dmax
	adj := make([][]int, vcount)
	kept := 0
	for _, e := range edges {
		if e.w > dmax2 {
			continue
		}
		adj[e.u] = append(adj[e.u], e.v)
		adj[e.v] = append(adj[e.v], e.u)
		kept++
	}
	removed := totalEdges - kept

	minSize := m + 2
	visited := make([]bool, vcount)
	var components [][]int

	for start := 0; start < vcount; start++ {
		if visited[start] {
			continue
		}
		var comp []int
		stack := []int{start}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[v] {
				continue
			}
			visited[v] = true
			comp = append(comp, pointIndices[v])
			for _, w := range adj[v] {
				if !visited[w] {
					stack = append(stack, w)
				}
			}
		}

		if len(comp) >= minSize || removed == 0 {
			sort.Ints(comp)
			components = append(components, comp)
		}
	}

	return components
}
