package emit

import "testing"

func TestNullEmitter_DiscardsEvents(t *testing.T) {
	emitter := NewNullEmitter()

	// Must not panic on anything, including a populated Meta.
	emitter.Emit(Event{})
	emitter.Emit(Event{
		RunID:  "run-001",
		Step:   1,
		NodeID: "title_creation",
		Msg:    "node_completed",
		Meta:   map[string]interface{}{"tokens": 42},
	})
}
