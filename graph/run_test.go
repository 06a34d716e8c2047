package graph

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestRun_LinearChain(t *testing.T) {
	compiled, err := linearChain(t).Compile()
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	final, err := compiled.Run(context.Background(), "run-001", TestState{Value: "seed"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if final.Value != "seed" {
		t.Errorf("initial value lost: %q", final.Value)
	}
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(final.Steps, want) {
		t.Errorf("expected node order %v, got %v", want, final.Steps)
	}
}

func TestRun_SkipLeavesStateUnchanged(t *testing.T) {
	b := NewBuilder(testReducer, nil, nil)
	skipper := NodeFunc[TestState](func(ctx context.Context, s TestState) NodeResult[TestState] {
		return NodeResult[TestState]{Skip: true, Delta: TestState{Value: "must-not-merge"}}
	})
	if err := b.AddNode("skipper", skipper); err != nil {
		t.Fatalf("AddNode failed: %v", err)
	}
	if err := b.AddNode("after", stepNode("after")); err != nil {
		t.Fatalf("AddNode failed: %v", err)
	}
	for _, edge := range []Edge{{Start, "skipper"}, {"skipper", "after"}, {"after", End}} {
		if err := b.AddEdge(edge.From, edge.To); err != nil {
			t.Fatalf("AddEdge failed: %v", err)
		}
	}
	compiled, err := b.Compile()
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	final, err := compiled.Run(context.Background(), "run-002", TestState{Value: "seed"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if final.Value != "seed" {
		t.Errorf("skip merged its delta: %q", final.Value)
	}
	if !reflect.DeepEqual(final.Steps, []string{"after"}) {
		t.Errorf("run did not continue past skip: %v", final.Steps)
	}
}

func TestRun_NodeErrorAborts(t *testing.T) {
	nodeErr := errors.New("upstream failure")
	downstreamRan := false

	b := NewBuilder(testReducer, nil, nil)
	failing := NodeFunc[TestState](func(ctx context.Context, s TestState) NodeResult[TestState] {
		return NodeResult[TestState]{Err: nodeErr}
	})
	downstream := NodeFunc[TestState](func(ctx context.Context, s TestState) NodeResult[TestState] {
		downstreamRan = true
		return NodeResult[TestState]{Skip: true}
	})
	if err := b.AddNode("failing", failing); err != nil {
		t.Fatalf("AddNode failed: %v", err)
	}
	if err := b.AddNode("downstream", downstream); err != nil {
		t.Fatalf("AddNode failed: %v", err)
	}
	for _, edge := range []Edge{{Start, "failing"}, {"failing", "downstream"}, {"downstream", End}} {
		if err := b.AddEdge(edge.From, edge.To); err != nil {
			t.Fatalf("AddEdge failed: %v", err)
		}
	}
	compiled, err := b.Compile()
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	_, err = compiled.Run(context.Background(), "run-003", TestState{})
	if !errors.Is(err, nodeErr) {
		t.Fatalf("expected node error to propagate unmodified, got %v", err)
	}
	if downstreamRan {
		t.Error("downstream node ran after upstream error")
	}
}

func TestRun_ContextCancellation(t *testing.T) {
	compiled, err := linearChain(t).Compile()
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = compiled.Run(ctx, "run-004", TestState{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRun_EmitsEvents(t *testing.T) {
	emitter := &mockEmitter{}
	b := NewBuilder(testReducer, emitter, nil)
	if err := b.AddNode("a", stepNode("a")); err != nil {
		t.Fatalf("AddNode failed: %v", err)
	}
	skipper := NodeFunc[TestState](func(ctx context.Context, s TestState) NodeResult[TestState] {
		return NodeResult[TestState]{Skip: true}
	})
	if err := b.AddNode("skipper", skipper); err != nil {
		t.Fatalf("AddNode failed: %v", err)
	}
	for _, edge := range []Edge{{Start, "a"}, {"a", "skipper"}, {"skipper", End}} {
		if err := b.AddEdge(edge.From, edge.To); err != nil {
			t.Fatalf("AddEdge failed: %v", err)
		}
	}
	compiled, err := b.Compile()
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if _, err := compiled.Run(context.Background(), "run-005", TestState{}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var msgs []string
	for _, event := range emitter.Events() {
		if event.RunID != "run-005" {
			t.Errorf("event carries wrong run ID: %q", event.RunID)
		}
		msgs = append(msgs, event.Msg)
	}
	want := []string{"run_start", "node_completed", "node_skipped", "run_completed"}
	if !reflect.DeepEqual(msgs, want) {
		t.Errorf("expected events %v, got %v", want, msgs)
	}
}

func TestRun_IndependentRunsShareCompiledGraph(t *testing.T) {
	compiled, err := linearChain(t).Compile()
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	first, err := compiled.Run(context.Background(), "run-006", TestState{Value: "one"})
	if err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	second, err := compiled.Run(context.Background(), "run-007", TestState{Value: "two"})
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}

	if first.Value != "one" || second.Value != "two" {
		t.Errorf("runs leaked state: %q, %q", first.Value, second.Value)
	}
	if len(first.Steps) != 3 || len(second.Steps) != 3 {
		t.Errorf("runs interfered: %v, %v", first.Steps, second.Steps)
	}
}
