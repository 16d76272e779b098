package exectest

// TestingT is an interface that is compatible with testing.T.
type TestingT interface {
	Errorf(format string, args ...interface{})
}

type tHelper interface {
	Helper()
}

// Receiver is any object in exectest that records received commands.
type Receiver interface {
	Received(matchFn CommandMatcher) error
	NotReceived(matchFn CommandMatcher) error
}

// ReceivedEqual asserts that the exact command was received.
func ReceivedEqual(t TestingT, m Receiver, command string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if err := m.Received(Equal(command)); err != nil {
		t.Errorf("Expected to have received command `%s`: %v", command, err)
	}
}

// ReceivedWithPrefix asserts that a command with the given prefix was received.
func ReceivedWithPrefix(t TestingT, m Receiver, prefix string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if err := m.Received(HasPrefix(prefix)); err != nil {
		t.Errorf("Expected to have received a command starting with `%s`: %v", prefix, err)
	}
}

// ReceivedContains asserts that a command containing the substring was received.
func ReceivedContains(t TestingT, m Receiver, substring string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if err := m.Received(Contains(substring)); err != nil {
		t.Errorf("Expected to have received a command with substring `%s`: %v", substring, err)
	}
}

// ReceivedMatch asserts that a command matching the pattern was received.
func ReceivedMatch(t TestingT, m Receiver, pattern string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if err := m.Received(Matches(pattern)); err != nil {
		t.Errorf("Expected to have received a command matching pattern `%s`: %v", pattern, err)
	}
}

// NotReceivedEqual asserts that the exact command was not received.
func NotReceivedEqual(t TestingT, m Receiver, command string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if err := m.NotReceived(Equal(command)); err != nil {
		t.Errorf("Expected to not have received command `%s` but did.", command)
	}
}

// NotReceivedContains asserts that no command containing the substring was received.
func NotReceivedContains(t TestingT, m Receiver, substring string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if err := m.NotReceived(Contains(substring)); err != nil {
		t.Errorf("Expected to not have received a command with substring `%s` but did.", substring)
	}
}

// NotReceivedWithPrefix asserts that no command with the given prefix was received.
func NotReceivedWithPrefix(t TestingT, m Receiver, prefix string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if err := m.NotReceived(HasPrefix(prefix)); err != nil {
		t.Errorf("Expected to not have received a command starting with `%s` but did.", prefix)
	}
}
