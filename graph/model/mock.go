package model

import (
	"context"
	"sync"
)

// MockChatModel is a test implementation of ChatModel.
//
// Use it in tests to verify workflow behavior without real LLM calls:
//   - Responses are returned in order; the last one repeats
//   - Err, when set, is returned instead of a response
//   - Calls records every invocation for assertions
//
// Safe for concurrent use.
type MockChatModel struct {
	// Responses is the sequence of responses to return.
	Responses []ChatOut

	// Err, if set, is returned by Chat instead of a response.
	Err error

	// Calls tracks the history of all Chat invocations.
	Calls [][]Message

	mu        sync.Mutex
	callIndex int
}

// Chat implements the ChatModel interface. The call is recorded in
// Calls whether or not it succeeds.
func (m *MockChatModel) Chat(ctx context.Context, messages []Message) (ChatOut, error) {
	if ctx.Err() != nil {
		return ChatOut{}, ctx.Err()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	recorded := make([]Message, len(messages))
	copy(recorded, messages)
	m.Calls = append(m.Calls, recorded)

	if m.Err != nil {
		return ChatOut{}, m.Err
	}
	if len(m.Responses) == 0 {
		return ChatOut{}, nil
	}

	idx := m.callIndex
	if idx >= len(m.Responses) {
		idx = len(m.Responses) - 1
	}
	m.callIndex++
	return m.Responses[idx], nil
}

// CallCount returns how many times Chat was invoked.
func (m *MockChatModel) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
