package graph

import (
	"context"
	"time"

	"github.com/vt0299/Blog-Generation-Agent/graph/emit"
)

// CompiledGraph is the validated, immutable, executable form of a
// Builder. It owns its derived execution order and shares no mutable
// structure with the Builder that produced it; further AddNode/AddEdge
// calls on the Builder do not affect an already compiled graph.
//
// A CompiledGraph is safe for concurrent use: Run holds no graph-level
// mutable state, so the same compiled graph can serve many runs as long
// as each run gets its own state value.
type CompiledGraph[S any] struct {
	reducer Reducer[S]
	nodes   map[string]Node[S]
	edges   []Edge
	order   []string
	emitter emit.Emitter
	metrics *Metrics
}

// Compile validates the definition and freezes it into a CompiledGraph.
//
// Validation covers the full edge set: no duplicate edges, every node
// reachable from Start, End reachable from every node, no cycles. Any
// violation returns a ValidationError and no CompiledGraph.
//
// Compile is idempotent: compiling the same unmodified Builder twice
// yields graphs with identical execution order.
func (b *Builder[S]) Compile() (*CompiledGraph[S], error) {
	if err := b.checkDuplicateEdges(); err != nil {
		return nil, err
	}
	if err := b.checkReachability(); err != nil {
		return nil, err
	}

	order, err := b.topoOrder()
	if err != nil {
		return nil, err
	}

	nodes := make(map[string]Node[S], len(b.nodes))
	for name, node := range b.nodes {
		nodes[name] = node
	}
	edges := make([]Edge, len(b.edges))
	copy(edges, b.edges)

	return &CompiledGraph[S]{
		reducer: b.reducer,
		nodes:   nodes,
		edges:   edges,
		order:   order,
		emitter: b.emitter,
		metrics: b.metrics,
	}, nil
}

func (b *Builder[S]) checkDuplicateEdges() error {
	seen := make(map[Edge]struct{}, len(b.edges))
	for _, e := range b.edges {
		if _, dup := seen[e]; dup {
			return &ValidationError{Code: CodeDuplicateEdge, Message: "duplicate edge " + e.From + " -> " + e.To}
		}
		seen[e] = struct{}{}
	}
	return nil
}

// checkReachability verifies every node sits on a Start-to-End path:
// forward walk from Start must cover all nodes and touch End, backward
// walk from End must cover all nodes.
func (b *Builder[S]) checkReachability() error {
	forward := make(map[string][]string)
	backward := make(map[string][]string)
	for _, e := range b.edges {
		forward[e.From] = append(forward[e.From], e.To)
		backward[e.To] = append(backward[e.To], e.From)
	}

	fromStart := walk(Start, forward)
	if !fromStart[End] {
		return &ValidationError{Code: CodeNoPath, Message: End + " is not reachable from " + Start}
	}
	toEnd := walk(End, backward)

	for _, name := range b.names {
		if !fromStart[name] {
			return &ValidationError{Code: CodeUnreachableNode, Message: "node " + name + " is not reachable from " + Start}
		}
		if !toEnd[name] {
			return &ValidationError{Code: CodeUnreachableNode, Message: End + " is not reachable from node " + name}
		}
	}
	return nil
}

func walk(from string, adjacency map[string][]string) map[string]bool {
	visited := map[string]bool{from: true}
	frontier := []string{from}
	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		for _, next := range adjacency[current] {
			if !visited[next] {
				visited[next] = true
				frontier = append(frontier, next)
			}
		}
	}
	return visited
}

// topoOrder computes a deterministic topological order of the
// registered nodes using Kahn's algorithm. Ties are broken by
// registration order, so the result is stable across calls.
func (b *Builder[S]) topoOrder() ([]string, error) {
	indegree := make(map[string]int, len(b.nodes))
	successors := make(map[string][]string)
	for _, name := range b.names {
		indegree[name] = 0
	}
	for _, e := range b.edges {
		if e.From == Start || e.To == End {
			continue
		}
		successors[e.From] = append(successors[e.From], e.To)
		indegree[e.To]++
	}

	order := make([]string, 0, len(b.names))
	ready := make(map[string]bool)
	for _, name := range b.names {
		if indegree[name] == 0 {
			ready[name] = true
		}
	}

	for len(order) < len(b.names) {
		// pick the earliest-registered ready node
		picked := ""
		for _, name := range b.names {
			if ready[name] {
				picked = name
				break
			}
		}
		if picked == "" {
			return nil, &ValidationError{Code: CodeCycle, Message: "graph contains a cycle"}
		}
		delete(ready, picked)
		order = append(order, picked)
		for _, next := range successors[picked] {
			indegree[next]--
			if indegree[next] == 0 {
				ready[next] = true
			}
		}
	}

	return order, nil
}

// Run executes the workflow, threading initial through every node in
// topological order and returning the final state.
//
// For each node in order, Run invokes the node with the current state;
// a Delta is merged via the reducer, a Skip leaves the state unchanged,
// and an error aborts the run and propagates unmodified. There are no
// retries and no deadline at this layer; ctx cancellation is checked
// between nodes and honored inside nodes that respect it.
//
// runID labels emitted events and metrics and has no effect on
// execution.
func (g *CompiledGraph[S]) Run(ctx context.Context, runID string, initial S) (S, error) {
	var zero S

	g.emit(emit.Event{RunID: runID, Msg: "run_start"})

	state := initial
	for step, nodeID := range g.order {
		if err := ctx.Err(); err != nil {
			g.metrics.IncRuns("cancelled")
			return zero, err
		}

		began := time.Now()
		result := g.nodes[nodeID].Run(ctx, state)

		if result.Err != nil {
			g.metrics.RecordNodeLatency(nodeID, time.Since(began), "error")
			g.metrics.IncRuns("error")
			g.emit(emit.Event{
				RunID:  runID,
				Step:   step + 1,
				NodeID: nodeID,
				Msg:    "node_error",
				Meta:   map[string]interface{}{"error": result.Err.Error()},
			})
			return zero, result.Err
		}

		if result.Skip {
			g.metrics.IncSkips(nodeID)
			g.emit(emit.Event{RunID: runID, Step: step + 1, NodeID: nodeID, Msg: "node_skipped"})
			continue
		}

		state = g.reducer(state, result.Delta)
		g.metrics.RecordNodeLatency(nodeID, time.Since(began), "success")
		g.emit(emit.Event{RunID: runID, Step: step + 1, NodeID: nodeID, Msg: "node_completed"})
	}

	g.metrics.IncRuns("success")
	g.emit(emit.Event{RunID: runID, Step: len(g.order), Msg: "run_completed"})
	return state, nil
}

func (g *CompiledGraph[S]) emit(event emit.Event) {
	if g.emitter != nil {
		g.emitter.Emit(event)
	}
}

// Order returns the execution order of the node names. The slice is a
// copy; callers cannot mutate the compiled order.
func (g *CompiledGraph[S]) Order() []string {
	order := make([]string, len(g.order))
	copy(order, g.order)
	return order
}

// Nodes returns the registered node names in execution order.
// Read-only introspection hook for external visualization tooling.
func (g *CompiledGraph[S]) Nodes() []string {
	return g.Order()
}

// Edges returns a copy of the edge set, sentinels included.
// Read-only introspection hook for external visualization tooling.
func (g *CompiledGraph[S]) Edges() []Edge {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}
