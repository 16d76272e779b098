package exec

import (
	"bytes"
	"context"
	"fmt"
	"io"
)

// connection is the minimal surface a Runner needs from the host connection.
type connection interface {
	fmt.Stringer
	StartProcess(ctx context.Context, cmd string, stdin io.Reader, stdout io.Writer, stderr io.Writer) (Waiter, error)
}

// CommandFormatter formats command strings before execution.
type CommandFormatter interface {
	Command(cmd string) string
	Commandf(format string, args ...any) string
}

// SimpleRunner runs commands without a context.
type SimpleRunner interface {
	fmt.Stringer
	Exec(format string, argsOrOpts ...any) error
	ExecOutput(format string, argsOrOpts ...any) (string, error)
}

// ContextRunner runs commands with a context.
type ContextRunner interface {
	fmt.Stringer
	ExecContext(ctx context.Context, format string, argsOrOpts ...any) error
	ExecOutputContext(ctx context.Context, format string, argsOrOpts ...any) (string, error)
}

// Runner is a full featured command runner.
type Runner interface {
	SimpleRunner
	ContextRunner
	CommandFormatter
	Start(ctx context.Context, format string, argsOrOpts ...any) (Waiter, error)
}

// DecorateFunc is a function that modifies a command string before execution.
type DecorateFunc func(string) string

// validate interfaces.
var (
	_ Runner        = (*HostRunner)(nil)
	_ SimpleRunner  = (*HostRunner)(nil)
	_ ContextRunner = (*HostRunner)(nil)
)

// HostRunner runs commands over a connection.
type HostRunner struct {
	connection connection
	decorators []DecorateFunc
}

// NewHostRunner returns a new HostRunner.
func NewHostRunner(conn connection, decorators ...DecorateFunc) *HostRunner {
	return &HostRunner{connection: conn, decorators: decorators}
}

// Command returns the command string decorated with the runner's decorators.
func (r *HostRunner) Command(cmd string) string {
	for _, decorator := range r.decorators {
		cmd = decorator(cmd)
	}
	return cmd
}

// Commandf formats the command string and decorates it.
func (r *HostRunner) Commandf(format string, args ...any) string {
	return r.Command(fmt.Sprintf(format, args...))
}

// String returns the connection's string representation.
func (r *HostRunner) String() string {
	return r.connection.String()
}

// Start starts the command and returns a Waiter.
func (r *HostRunner) Start(ctx context.Context, format string, argsOrOpts ...any) (Waiter, error) {
	opts, args := GroupParams(argsOrOpts...)
	execOpts := Build(opts...)
	cmd := r.Command(execOpts.Commandf(format, args...))
	execOpts.LogCmd(r.String(), cmd)
	waiter, err := r.connection.StartProcess(ctx, cmd, execOpts.Stdin(), execOpts.Stdout(), execOpts.Stderr())
	if err != nil {
		return nil, fmt.Errorf("start command: %w", err)
	}
	return waiter, nil
}

// ExecContext executes the command and returns an error if unsuccessful.
func (r *HostRunner) ExecContext(ctx context.Context, format string, argsOrOpts ...any) error {
	proc, err := r.Start(ctx, format, argsOrOpts...)
	if err != nil {
		return fmt.Errorf("start command: %w", err)
	}
	if err := proc.Wait(); err != nil {
		return fmt.Errorf("command result: %w", err)
	}
	return nil
}

// Exec executes the command and returns an error if unsuccessful.
func (r *HostRunner) Exec(format string, argsOrOpts ...any) error {
	return r.ExecContext(context.Background(), format, argsOrOpts...)
}

// ExecOutputContext executes the command and returns the stdout output or an error.
func (r *HostRunner) ExecOutputContext(ctx context.Context, format string, argsOrOpts ...any) (string, error) {
	opts, _ := GroupParams(argsOrOpts...)
	execOpts := Build(opts...)
	out := &bytes.Buffer{}
	argsOrOpts = append(argsOrOpts, Stdout(out))

	proc, err := r.Start(ctx, format, argsOrOpts...)
	if err != nil {
		return "", fmt.Errorf("start command: %w", err)
	}
	if err := proc.Wait(); err != nil {
		return "", fmt.Errorf("command result: %w", err)
	}
	return execOpts.FormatOutput(out.String()), nil
}

// ExecOutput executes the command and returns the stdout output or an error.
func (r *HostRunner) ExecOutput(format string, argsOrOpts ...any) (string, error) {
	return r.ExecOutputContext(context.Background(), format, argsOrOpts...)
}

// GroupParams separates exec Options from formatting args in a mixed
// parameter list.
func GroupParams(params ...any) ([]Option, []any) {
	var opts []Option
	var args []any
	for _, v := range params {
		switch vv := v.(type) {
		case []any:
			o, a := GroupParams(vv...)
			opts = append(opts, o...)
			args = append(args, a...)
		case Option:
			opts = append(opts, vv)
		default:
			args = append(args, vv)
		}
	}
	return opts, args
}

// NewErrorRunner returns a runner that always fails with the given error.
func NewErrorRunner(err error) *ErrorRunner {
	return &ErrorRunner{err: err}
}

// ErrorRunner is a Runner that always returns an error.
type ErrorRunner struct {
	err error
}

func (n ErrorRunner) String() string                                { return "always failing runner" }
func (n ErrorRunner) Command(cmd string) string                     { return cmd }
func (n ErrorRunner) Commandf(format string, args ...any) string    { return fmt.Sprintf(format, args...) }
func (n ErrorRunner) Exec(_ string, _ ...any) error                 { return n.err }
func (n ErrorRunner) ExecOutput(_ string, _ ...any) (string, error) { return "", n.err }

func (n ErrorRunner) ExecContext(_ context.Context, _ string, _ ...any) error {
	return n.err
}

func (n ErrorRunner) ExecOutputContext(_ context.Context, _ string, _ ...any) (string, error) {
	return "", n.err
}

func (n ErrorRunner) Start(_ context.Context, _ string, _ ...any) (Waiter, error) {
	return nil, n.err
}
