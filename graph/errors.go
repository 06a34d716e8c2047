package graph

// Validation error codes returned by Builder and Compile.
const (
	// CodeInvalidNode indicates an empty node name, a reserved sentinel
	// name, or a nil node implementation passed to AddNode.
	CodeInvalidNode = "INVALID_NODE"

	// CodeDuplicateNode indicates a node name registered twice.
	CodeDuplicateNode = "DUPLICATE_NODE"

	// CodeInvalidEdge indicates an edge with an empty endpoint, a
	// self-edge, an edge out of End, or an edge into Start.
	CodeInvalidEdge = "INVALID_EDGE"

	// CodeUnknownEndpoint indicates an edge endpoint that is neither a
	// registered node name nor one of the Start/End sentinels.
	CodeUnknownEndpoint = "UNKNOWN_ENDPOINT"

	// CodeDuplicateEdge indicates the same from/to pair added twice.
	CodeDuplicateEdge = "DUPLICATE_EDGE"

	// CodeCycle indicates the edge set contains a cycle.
	CodeCycle = "CYCLE"

	// CodeUnreachableNode indicates a registered node that cannot be
	// reached from Start, or from which End cannot be reached.
	CodeUnreachableNode = "UNREACHABLE_NODE"

	// CodeNoPath indicates End is not reachable from Start at all.
	CodeNoPath = "NO_PATH"
)

// ValidationError reports a structural defect in a graph definition.
// It is returned by AddNode, AddEdge, and Compile; once Compile succeeds
// no ValidationError can surface mid-run.
type ValidationError struct {
	// Code is a machine-readable error code (one of the Code* constants).
	Code string

	// Message is the human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}
	return e.Message
}
