// Package emit provides pluggable observability for workflow runs.
package emit

// Emitter receives observability events from workflow execution.
//
// Implementations should be:
//   - Non-blocking: never slow down the run
//   - Thread-safe: a shared compiled graph may serve concurrent runs
//   - Resilient: an emitter failure must not crash the workflow
//
// Emit must not panic; backend errors are handled internally.
type Emitter interface {
	Emit(event Event)
}
