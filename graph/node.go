package graph

import "context"

// Node represents a processing unit in the workflow graph.
// It receives state of type S, performs computation, and returns a NodeResult.
//
// Each node can:
//   - Access the current state
//   - Perform computation (call LLMs or custom logic)
//   - Return a partial state update via Delta
//   - Decline to contribute anything via Skip
//   - Report errors, which abort the run
//
// Type parameter S is the state type shared across the workflow.
type Node[S any] interface {
	// Run executes the node's logic with the given context and state.
	// It returns a NodeResult containing the state change, or Skip, or an error.
	Run(ctx context.Context, state S) NodeResult[S]
}

// NodeResult represents the output of a node execution.
//
// Exactly one of three outcomes applies:
//   - Delta carries a partial state update to be merged via the reducer
//   - Skip is true and the state passes through unchanged
//   - Err is non-nil and the run aborts with that error
type NodeResult[S any] struct {
	// Delta is the partial state update produced by this node.
	// It is merged into the current state using the graph's reducer.
	// Ignored when Skip is true or Err is non-nil.
	Delta S

	// Skip indicates the node's precondition did not hold and it
	// contributed no update. The run continues with unchanged state.
	// This lets the engine tell "no update" apart from a zero-value Delta.
	Skip bool

	// Err contains any error that occurred during node execution.
	// A non-nil error halts the workflow and propagates unmodified
	// to the caller of Run.
	Err error
}

// NodeFunc is a function adapter that implements the Node interface.
// It allows using plain functions or methods as nodes without creating
// custom types.
//
// Example:
//
//	double := NodeFunc[int](func(ctx context.Context, s int) NodeResult[int] {
//	    return NodeResult[int]{Delta: s * 2}
//	})
type NodeFunc[S any] func(ctx context.Context, state S) NodeResult[S]

// Run implements the Node interface for NodeFunc.
func (f NodeFunc[S]) Run(ctx context.Context, state S) NodeResult[S] {
	return f(ctx, state)
}
