// Package analyzer derives leak views over parsed reference chains.
package analyzer

import (
	"sort"

	"github.com/refchain-analysis/pkg/model"
)

// LeakNodes returns the nodes that were never released, in chain order.
func LeakNodes(c *model.Chain) []*model.ReferenceNode {
	leaks := make([]*model.ReferenceNode, 0)
	for _, node := range c.Nodes {
		if node.IsLeak() {
			leaks = append(leaks, node)
		}
	}
	return leaks
}

// FirstLeak returns the first node in the chain that was never released,
// or nil if every node was released.
func FirstLeak(c *model.Chain) *model.ReferenceNode {
	for _, node := range c.Nodes {
		if node.IsLeak() {
			return node
		}
	}
	return nil
}

// Parent returns the node immediately preceding index i, or nil for the
// root. Lookup is strictly positional: two nodes may share class name and
// address at different chain positions, so content equality would resolve
// the wrong parent.
func Parent(c *model.Chain, i int) *model.ReferenceNode {
	if i <= 0 || i >= len(c.Nodes) {
		return nil
	}
	return c.Nodes[i-1]
}

// Children returns every node strictly after index i. The chain is a single
// linear path, so "children" means all downstream nodes on that path.
func Children(c *model.Chain, i int) []*model.ReferenceNode {
	if i < 0 || i >= len(c.Nodes)-1 {
		return nil
	}
	return c.Nodes[i+1:]
}

// PriorityAt classifies the leak at index i. A leaked node whose parent was
// properly released is an isolated ownership bug at that exact edge and ranks
// high; when the parent is also unreleased (or the node is the root) the root
// cause is likely upstream and the leak ranks medium.
func PriorityAt(c *model.Chain, i int) model.Priority {
	parent := Parent(c, i)
	if parent != nil && parent.Released {
		return model.PriorityHigh
	}
	return model.PriorityMedium
}

// AnnotationAppliesAt reports whether the chain's trailing annotation
// pertains to the node at index i. The annotation describes the final node
// only.
func AnnotationAppliesAt(c *model.Chain, i int) bool {
	return c.CPPInstance != "" && i == len(c.Nodes)-1
}

// UniqueLeakedClasses collects the distinct class names that appear leaked
// across the given chains. The result is sorted so JSON output is
// deterministic.
func UniqueLeakedClasses(chains []*model.Chain) []string {
	seen := make(map[string]bool)
	for _, c := range chains {
		for _, node := range LeakNodes(c) {
			seen[node.ClassName] = true
		}
	}
	return sortedKeys(seen)
}

// UniqueCPPInstances collects the distinct trailing annotations across the
// given chains, sorted.
func UniqueCPPInstances(chains []*model.Chain) []string {
	seen := make(map[string]bool)
	for _, c := range chains {
		if c.CPPInstance != "" {
			seen[c.CPPInstance] = true
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
