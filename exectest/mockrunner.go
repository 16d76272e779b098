// Package exectest provides mock command running utilities for tests.
package exectest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/dynmotd/dynmotd/exec"
)

type matcher struct {
	fn       CommandMatcher
	waiterFn CommandHandler
}

// A is the struct passed to command handling functions.
type A struct {
	// Ctx is the context passed to the command.
	Ctx context.Context //nolint:containedctx
	// Stdin is the standard input of the command.
	Stdin io.Reader
	// Stdout is the standard output of the command.
	Stdout io.Writer
	// Stderr is the standard error of the command.
	Stderr io.Writer
	// Command is the command line.
	Command string
}

// CommandHandler is a function that handles a mocked command.
type CommandHandler func(a *A) error

// CommandMatcher is a function that checks if a command matches a criteria.
type CommandMatcher func(string) bool

// HasPrefix returns a CommandMatcher that checks if a command starts with a given prefix.
func HasPrefix(prefix string) CommandMatcher {
	return func(cmd string) bool {
		return strings.HasPrefix(cmd, prefix)
	}
}

// HasSuffix returns a CommandMatcher that checks if a command ends with a given suffix.
func HasSuffix(suffix string) CommandMatcher {
	return func(cmd string) bool {
		return strings.HasSuffix(cmd, suffix)
	}
}

// Contains returns a CommandMatcher that checks if a command contains a given substring.
func Contains(substring string) CommandMatcher {
	return func(cmd string) bool {
		return strings.Contains(cmd, substring)
	}
}

// Equal returns a CommandMatcher that checks if a command equals a given string.
func Equal(str string) CommandMatcher {
	return func(cmd string) bool {
		return cmd == str
	}
}

// Matches returns a CommandMatcher that checks if a command matches a given regular expression.
func Matches(pattern string) CommandMatcher {
	regex := regexp.MustCompile(pattern)
	return func(cmd string) bool {
		return regex.MatchString(cmd)
	}
}

// MockRunner runs commands on a mock connection.
type MockRunner struct {
	exec.Runner
	*MockConnection
}

// NewMockRunner creates a new mock runner.
func NewMockRunner() *MockRunner {
	connection := NewMockConnection()
	return &MockRunner{
		Runner:         exec.NewHostRunner(connection),
		MockConnection: connection,
	}
}

// String returns the string representation of the runner.
func (m *MockRunner) String() string {
	return "[MockRunner] " + m.MockConnection.String()
}

// MockConnection records commands and simulates their execution through
// registered matchers.
type MockConnection struct {
	*MockStarter
	commands []string
	mu       sync.Mutex
}

// NewMockConnection creates a new mock connection.
func NewMockConnection() *MockConnection {
	return &MockConnection{MockStarter: NewMockStarter()}
}

// String returns the string representation of the connection.
func (m *MockConnection) String() string { return "mockconnection" }

// StartProcess simulates a start of a process on the connection.
func (m *MockConnection) StartProcess(ctx context.Context, cmd string, stdin io.Reader, stdout, stderr io.Writer) (exec.Waiter, error) {
	m.mu.Lock()
	m.commands = append(m.commands, cmd)
	m.mu.Unlock()
	return m.MockStarter.StartProcess(ctx, cmd, stdin, stdout, stderr)
}

// Reset clears the command history.
func (m *MockConnection) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands = nil
}

// Received returns nil if a command matching the matcher was received.
func (m *MockConnection) Received(matchFn CommandMatcher) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, cmd := range m.commands {
		if matchFn(cmd) {
			return nil
		}
	}
	return errors.New("a matching command was not received")
}

// NotReceived returns nil if no command matching the matcher was received.
func (m *MockConnection) NotReceived(matchFn CommandMatcher) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, cmd := range m.commands {
		if matchFn(cmd) {
			return fmt.Errorf("a matching command was received: %s", cmd)
		}
	}
	return nil
}

// Commands returns a copy of the commands received.
func (m *MockConnection) Commands() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	dup := make([]string, len(m.commands))
	copy(dup, m.commands)
	return dup
}

// LastCommand returns the last command received.
func (m *MockConnection) LastCommand() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.commands) == 0 {
		return ""
	}
	return m.commands[len(m.commands)-1]
}

// MockWaiter is a mock process waiter.
type MockWaiter struct {
	cmd    string
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	ctx    context.Context //nolint:containedctx
	fn     CommandHandler
}

// Wait simulates a process wait.
func (m *MockWaiter) Wait() error {
	return m.fn(&A{Ctx: m.ctx, Stdin: m.in, Stdout: m.out, Stderr: m.errOut, Command: m.cmd})
}

// MockStarter is a mock process starter.
type MockStarter struct {
	// ErrDefault is returned for commands no matcher handles.
	ErrDefault error
	matchers   []matcher
}

// NewMockStarter creates a new mock starter.
func NewMockStarter() *MockStarter {
	return &MockStarter{}
}

// StartProcess simulates a start of a process. Matchers added to the starter
// decide the behavior of individual command lines.
func (m *MockStarter) StartProcess(ctx context.Context, cmd string, stdin io.Reader, stdout, stderr io.Writer) (exec.Waiter, error) {
	for _, matcher := range m.matchers {
		if matcher.waiterFn != nil && matcher.fn(cmd) {
			return &MockWaiter{cmd: cmd, in: stdin, out: stdout, errOut: stderr, ctx: ctx, fn: matcher.waiterFn}, nil
		}
	}
	return &MockWaiter{fn: func(_ *A) error { return m.ErrDefault }}, nil
}

// AddCommand adds a mocked command handler which is called when the matcher
// matches the command line. Matchers are tried in the order they were added.
func (m *MockStarter) AddCommand(matchFn CommandMatcher, waitFn CommandHandler) {
	m.matchers = append(m.matchers, matcher{fn: matchFn, waiterFn: waitFn})
}

// AddCommandOutput adds a matcher and a handler that writes the given output
// to the stdout of the process.
func (m *MockStarter) AddCommandOutput(matchFn CommandMatcher, output string) {
	m.matchers = append(m.matchers, matcher{fn: matchFn, waiterFn: func(a *A) error {
		if _, err := a.Stdout.Write([]byte(output)); err != nil {
			return fmt.Errorf("command stdout write: %w", err)
		}
		return nil
	}})
}

// AddCommandSuccess adds a matcher for commands that succeed with no output.
func (m *MockStarter) AddCommandSuccess(matchFn CommandMatcher) {
	m.AddCommand(matchFn, func(_ *A) error { return nil })
}

// AddCommandFailure adds a matcher for commands that fail with the given error.
func (m *MockStarter) AddCommandFailure(matchFn CommandMatcher, err error) {
	m.AddCommand(matchFn, func(_ *A) error { return err })
}
