package emit

// Event describes one observable moment in a workflow run.
//
// The engine emits:
//   - run_start / run_completed for the run as a whole
//   - node_completed / node_skipped / node_error per node
type Event struct {
	// RunID identifies the workflow execution that emitted this event.
	RunID string

	// Step is the position of the node in the execution order
	// (1-indexed). Zero for run-level events.
	Step int

	// NodeID identifies which node this event is about.
	// Empty for run-level events.
	NodeID string

	// Msg names the event kind.
	Msg string

	// Meta carries additional structured data. Common keys:
	//   - "error": error text for node_error events
	//   - "tokens": token count for LLM-backed nodes
	Meta map[string]interface{}
}
