// Package localhost provides a connection to the local host using os/exec.
package localhost

import (
	"context"
	"fmt"
	"io"
	osexec "os/exec"

	"github.com/dynmotd/dynmotd/exec"
)

// Connection is a direct localhost connection.
type Connection struct{}

// NewConnection creates a new localhost connection.
func NewConnection() *Connection {
	return &Connection{}
}

// String returns the connection's printable name.
func (c *Connection) String() string {
	return "localhost"
}

// StartProcess executes a command on the local host with the given streams
// attached. It returns a Waiter whose Wait() blocks until the command
// finishes and returns an error when the exit code is not zero.
func (c *Connection) StartProcess(ctx context.Context, cmd string, stdin io.Reader, stdout, stderr io.Writer) (exec.Waiter, error) {
	command := osexec.CommandContext(ctx, "sh", "-c", "--", cmd)
	command.Stdin = stdin
	command.Stdout = stdout
	command.Stderr = stderr

	if err := command.Start(); err != nil {
		return nil, fmt.Errorf("start command: %w", err)
	}
	return command, nil
}
