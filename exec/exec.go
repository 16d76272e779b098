// Package exec provides a shell command runner abstraction.
//
// All host mutations performed by dynmotd go through a Runner so that the
// full command stream can be captured and asserted on in tests.
package exec

// Waiter is a started process that can be waited on to finish.
type Waiter interface {
	Wait() error
}
