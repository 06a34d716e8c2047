package blog

// MissingFieldError reports that a node ran without a required upstream
// field in its incoming state. It indicates a wiring defect (a node ran
// out of order or an upstream node silently skipped), so it propagates
// and aborts the run rather than being recovered.
type MissingFieldError struct {
	// Node is the node that found the field missing.
	Node string

	// Field is the dotted path of the missing field, e.g. "blog.title".
	Field string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return "node " + e.Node + ": required field " + e.Field + " is not set"
}
