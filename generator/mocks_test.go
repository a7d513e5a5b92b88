package generator

import (
	"io"
	"strings"
	"sync"

	"github.com/stretchr/testify/mock"
)

// mockProbe is a Probe driven by testify expectations.
type mockProbe struct {
	mock.Mock
}

func (m *mockProbe) Stat(path string) (Status, error) {
	args := m.Called(path)
	st, _ := args.Get(0).(Status)
	return st, args.Error(1)
}

func (m *mockProbe) ReadText(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

// mockPrompter answers Ask from its expectations, in order.
type mockPrompter struct {
	mock.Mock
}

func (m *mockPrompter) Ask(path string, menu []Choice) (Action, error) {
	args := m.Called(path, menu)
	a, _ := args.Get(0).(Action)
	return a, args.Error(1)
}

// mockDiffer records LineDiff calls.
type mockDiffer struct {
	mock.Mock
}

func (m *mockDiffer) LineDiff(old, newer string) []DiffPart {
	args := m.Called(old, newer)
	parts, _ := args.Get(0).([]DiffPart)
	return parts
}

// recordLogger keeps every message.
type recordLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (l *recordLogger) Log(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, msg)
}

// count returns how many messages contain s.
func (l *recordLogger) count(s string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, m := range l.msgs {
		if strings.Contains(m, s) {
			n++
		}
	}
	return n
}

// diffLogger also receives rendered diffs through LogDiff.
type diffLogger struct {
	recordLogger
	diffs []string
}

func (l *diffLogger) LogDiff(body string) {
	l.diffs = append(l.diffs, body)
}

// trackedStream counts Close calls.
type trackedStream struct {
	io.Reader
	closed int
}

func (s *trackedStream) Close() error {
	s.closed++
	return nil
}
