package domain

import (
	"slices"
	"sync"
)

// DependencyGraph records which compiled modules reference which.
// An edge A -> B means B references A, so B is a dependent of A and must be
// evicted whenever A is. The graph guards itself with its own lock so that
// module-load notifications stay cheap.
type DependencyGraph struct {
	mu         sync.Mutex
	dependents map[string]map[string]struct{}
}

// NewDependencyGraph creates an empty graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		dependents: make(map[string]map[string]struct{}),
	}
}

// AddDependent records dependent as referencing module.
func (g *DependencyGraph) AddDependent(module, dependent string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	set, ok := g.dependents[module]
	if !ok {
		set = make(map[string]struct{})
		g.dependents[module] = set
	}
	set[dependent] = struct{}{}
}

// Dependents returns the direct dependents of module in sorted order.
func (g *DependencyGraph) Dependents(module string) []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sortedDependents(module)
}

// Has reports whether module has recorded dependents.
func (g *DependencyGraph) Has(module string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.dependents[module]
	return ok
}

// Len returns the number of modules with recorded dependents.
func (g *DependencyGraph) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.dependents)
}

// Closure returns every module reachable from module through dependent edges,
// excluding module itself, in breadth-first order with siblings sorted by name.
func (g *DependencyGraph) Closure(module string) []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.closure(module)
}

// Prune removes module and its transitive dependents from the graph and returns
// the dependents in the order they were removed. Removed names are also dropped
// from the dependent sets of the remaining modules.
func (g *DependencyGraph) Prune(module string) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	removed := g.closure(module)
	gone := make(map[string]struct{}, len(removed)+1)
	gone[module] = struct{}{}
	for _, name := range removed {
		gone[name] = struct{}{}
	}

	for name := range gone {
		delete(g.dependents, name)
	}
	for name, set := range g.dependents {
		for dep := range set {
			if _, ok := gone[dep]; ok {
				delete(set, dep)
			}
		}
		if len(set) == 0 {
			delete(g.dependents, name)
		}
	}

	return removed
}

func (g *DependencyGraph) closure(module string) []string {
	visited := map[string]struct{}{module: {}}
	var order []string
	queue := []string{module}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, dep := range g.sortedDependents(current) {
			if _, seen := visited[dep]; seen {
				continue
			}
			visited[dep] = struct{}{}
			order = append(order, dep)
			queue = append(queue, dep)
		}
	}

	return order
}

func (g *DependencyGraph) sortedDependents(module string) []string {
	set := g.dependents[module]
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for dep := range set {
		out = append(out, dep)
	}
	slices.Sort(out)
	return out
}
