// Package graph provides a small directed-acyclic-graph workflow engine.
//
// A Builder accumulates named nodes and directed edges between them
// (including the Start and End sentinels), Compile validates the
// definition and freezes it into an immutable CompiledGraph, and
// CompiledGraph.Run threads a single shared state value through the
// nodes in topological order, merging each node's partial update via
// the graph's reducer.
package graph

import (
	"github.com/vt0299/Blog-Generation-Agent/graph/emit"
)

// Sentinel endpoints for edges. Start has no node behind it; an edge
// from Start marks an entry node. End likewise marks an exit.
const (
	Start = "__start__"
	End   = "__end__"
)

// Reducer merges a node's partial update into the running state.
//
// Reducers implement the state owner's merge semantics. A shallow
// key-wise merge replaces each field the delta carries and preserves
// the rest; nested structures are replaced wholesale, not deep-merged.
//
// Reducers must be pure: no side effects, same output for same inputs.
type Reducer[S any] func(prev, delta S) S

// Edge is a directed connection between two endpoints, each a node
// name or one of the Start/End sentinels. Edges are unconditional;
// control flow is fixed at compile time.
type Edge struct {
	From string
	To   string
}

// Builder is a mutable graph definition. Nodes and edges are added
// incrementally; Compile produces the runnable form. The zero value is
// not usable, construct with NewBuilder.
//
// Builder is not safe for concurrent use. Build the graph on one
// goroutine, then share the CompiledGraph freely.
type Builder[S any] struct {
	reducer Reducer[S]
	nodes   map[string]Node[S]
	names   []string // registration order, keeps Compile deterministic
	edges   []Edge
	emitter emit.Emitter
	metrics *Metrics
}

// NewBuilder creates an empty graph definition.
//
// Parameters:
//   - reducer: merge function for node deltas (required)
//   - emitter: observability event receiver (nil disables events)
//   - metrics: Prometheus collector (nil disables metrics)
func NewBuilder[S any](reducer Reducer[S], emitter emit.Emitter, metrics *Metrics) *Builder[S] {
	return &Builder[S]{
		reducer: reducer,
		nodes:   make(map[string]Node[S]),
		emitter: emitter,
		metrics: metrics,
	}
}

// AddNode registers a node under a unique name.
//
// Returns a ValidationError if the name is empty, collides with a
// sentinel, is already registered, or the node is nil.
func (b *Builder[S]) AddNode(name string, node Node[S]) error {
	if name == "" {
		return &ValidationError{Code: CodeInvalidNode, Message: "node name cannot be empty"}
	}
	if name == Start || name == End {
		return &ValidationError{Code: CodeInvalidNode, Message: "node name " + name + " is reserved"}
	}
	if node == nil {
		return &ValidationError{Code: CodeInvalidNode, Message: "node " + name + " cannot be nil"}
	}
	if _, exists := b.nodes[name]; exists {
		return &ValidationError{Code: CodeDuplicateNode, Message: "duplicate node name: " + name}
	}

	b.nodes[name] = node
	b.names = append(b.names, name)
	return nil
}

// AddEdge registers a directed edge. Each endpoint must be a registered
// node name or one of the Start/End sentinels.
//
// Returns a ValidationError for empty endpoints, self-edges, edges out
// of End or into Start, and unknown endpoints. Duplicate edges are
// accepted here and rejected by Compile.
func (b *Builder[S]) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return &ValidationError{Code: CodeInvalidEdge, Message: "edge endpoints cannot be empty"}
	}
	if from == to {
		return &ValidationError{Code: CodeInvalidEdge, Message: "self-edge on " + from}
	}
	if from == End {
		return &ValidationError{Code: CodeInvalidEdge, Message: "edge cannot leave " + End}
	}
	if to == Start {
		return &ValidationError{Code: CodeInvalidEdge, Message: "edge cannot enter " + Start}
	}
	if err := b.checkEndpoint(from); err != nil {
		return err
	}
	if err := b.checkEndpoint(to); err != nil {
		return err
	}

	b.edges = append(b.edges, Edge{From: from, To: to})
	return nil
}

func (b *Builder[S]) checkEndpoint(name string) error {
	if name == Start || name == End {
		return nil
	}
	if _, exists := b.nodes[name]; !exists {
		return &ValidationError{Code: CodeUnknownEndpoint, Message: "unknown edge endpoint: " + name}
	}
	return nil
}
