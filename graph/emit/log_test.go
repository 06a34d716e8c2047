package emit

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogEmitter_Text(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewLogEmitter(&buf, false)

	emitter.Emit(Event{RunID: "run-001", Step: 1, NodeID: "title_creation", Msg: "node_completed"})

	got := buf.String()
	want := "[node_completed] runID=run-001 step=1 nodeID=title_creation\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestLogEmitter_TextWithMeta(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewLogEmitter(&buf, false)

	emitter.Emit(Event{
		RunID:  "run-001",
		Step:   2,
		NodeID: "content_generation",
		Msg:    "node_error",
		Meta:   map[string]interface{}{"error": "rate limited"},
	})

	got := buf.String()
	if !strings.Contains(got, "meta=") {
		t.Errorf("expected meta in output, got %q", got)
	}
	if !strings.Contains(got, "rate limited") {
		t.Errorf("expected error text in output, got %q", got)
	}
}

func TestLogEmitter_JSON(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewLogEmitter(&buf, true)

	emitter.Emit(Event{RunID: "run-001", Step: 1, NodeID: "title_creation", Msg: "node_completed"})

	var decoded struct {
		RunID  string `json:"runID"`
		Step   int    `json:"step"`
		NodeID string `json:"nodeID"`
		Msg    string `json:"msg"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.RunID != "run-001" || decoded.Step != 1 ||
		decoded.NodeID != "title_creation" || decoded.Msg != "node_completed" {
		t.Errorf("unexpected decoded event: %+v", decoded)
	}
}

func TestLogEmitter_JSONL(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewLogEmitter(&buf, true)

	emitter.Emit(Event{RunID: "run-001", Msg: "run_start"})
	emitter.Emit(Event{RunID: "run-001", Msg: "run_completed"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 JSONL lines, got %d", len(lines))
	}
	for _, line := range lines {
		if !json.Valid([]byte(line)) {
			t.Errorf("line is not valid JSON: %q", line)
		}
	}
}

func TestLogEmitter_NilWriterDefaultsToStdout(t *testing.T) {
	emitter := NewLogEmitter(nil, false)
	if emitter.writer == nil {
		t.Fatal("nil writer was not defaulted")
	}
}
