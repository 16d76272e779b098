package exec

import (
	"fmt"
	"io"
	"strings"

	"github.com/dynmotd/dynmotd/log"
)

// RedactMask replaces redacted strings in logged output.
const RedactMask = "[REDACTED]"

// Option is a functional option for command execution.
type Option func(*Options)

// RedactFunc filters sensitive content out of a string before logging.
type RedactFunc func(string) string

// Options is a collection of exec options.
type Options struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	logCommand bool
	logOutput  bool
	trimOutput bool

	redactFuncs   []RedactFunc
	decorateFuncs []DecorateFunc
}

// Command returns the command string decorated with the option decorators.
func (o *Options) Command(cmd string) string {
	for _, decorator := range o.decorateFuncs {
		cmd = decorator(cmd)
	}
	return cmd
}

// Commandf formats and decorates a command string.
func (o *Options) Commandf(format string, args ...any) string {
	return o.Command(fmt.Sprintf(format, args...))
}

// LogCmd logs the command about to be executed.
func (o *Options) LogCmd(host, cmd string) {
	if o.logCommand {
		log.Default().Debug("executing command", log.String("host", host), log.String(log.KeyCommand, o.Redact(cmd)))
	} else {
		log.Default().Debug("executing command", log.String("host", host))
	}
}

// Stdin returns the reader to use for the process standard input.
func (o *Options) Stdin() io.Reader {
	return o.in
}

// Stdout returns the writer to use for the process standard output.
func (o *Options) Stdout() io.Writer {
	var writers []io.Writer
	if o.logOutput {
		writers = append(writers, redactingWriter{w: logWriter{fn: log.Default().Debug}, fn: o.Redact})
	}
	if o.out != nil {
		writers = append(writers, o.out)
	}
	return io.MultiWriter(writers...)
}

// Stderr returns the writer to use for the process standard error.
func (o *Options) Stderr() io.Writer {
	var writers []io.Writer
	if o.logOutput {
		writers = append(writers, redactingWriter{w: logWriter{fn: log.Default().Debug}, fn: o.Redact})
	}
	if o.errOut != nil {
		writers = append(writers, o.errOut)
	}
	return io.MultiWriter(writers...)
}

// Redact filters sensitive content out of a string.
func (o *Options) Redact(s string) string {
	for _, fn := range o.redactFuncs {
		s = fn(s)
	}
	return s
}

// FormatOutput applies output formatting, such as trimming whitespace.
func (o *Options) FormatOutput(s string) string {
	if o.trimOutput {
		return strings.TrimSpace(s)
	}
	return s
}

// Stdin exec option for sending data to the command through stdin.
func Stdin(s string) Option {
	return func(o *Options) {
		o.in = strings.NewReader(s)
	}
}

// StdinReader exec option for sending data to the command from a reader.
func StdinReader(r io.Reader) Option {
	return func(o *Options) {
		o.in = r
	}
}

// Stdout exec option for setting a writer to receive the command's stdout.
func Stdout(w io.Writer) Option {
	return func(o *Options) {
		o.out = w
	}
}

// Stderr exec option for setting a writer to receive the command's stderr.
func Stderr(w io.Writer) Option {
	return func(o *Options) {
		o.errOut = w
	}
}

// HideCommand exec option for keeping the command line out of the log.
func HideCommand() Option {
	return func(o *Options) {
		o.logCommand = false
	}
}

// HideOutput exec option for keeping the command output out of the log.
func HideOutput() Option {
	return func(o *Options) {
		o.logOutput = false
	}
}

// RedactString exec option for masking the given strings in logged commands
// and output.
func RedactString(s ...string) Option {
	return func(o *Options) {
		o.redactFuncs = append(o.redactFuncs, func(in string) string {
			for _, r := range s {
				if r == "" {
					continue
				}
				in = strings.ReplaceAll(in, r, RedactMask)
			}
			return in
		})
	}
}

// RawOutput exec option for disabling whitespace trimming of command output.
func RawOutput() Option {
	return func(o *Options) {
		o.trimOutput = false
	}
}

// Decorate exec option for modifying the command string before execution.
func Decorate(fn DecorateFunc) Option {
	return func(o *Options) {
		o.decorateFuncs = append(o.decorateFuncs, fn)
	}
}

// Build returns an Options struct with the supplied options applied over the
// defaults.
func Build(opts ...Option) *Options {
	options := &Options{
		logCommand: true,
		logOutput:  true,
		trimOutput: true,
	}
	for _, o := range opts {
		o(options)
	}
	return options
}
