package exec

import (
	"io"
	"strings"

	"github.com/acarl005/stripansi"
)

// a writer that hides sensitive data from the output
type redactingWriter struct {
	w  io.Writer
	fn func(string) string
}

func (r redactingWriter) Write(p []byte) (int, error) {
	s := r.fn(string(p))
	_, err := r.w.Write([]byte(s))
	if err != nil {
		return 0, err //nolint:wrapcheck
	}
	return len(p), nil
}

// a writer that calls a logging function for each chunk written. Banner
// output is full of ANSI escapes, so the text is stripped before logging.
type logWriter struct {
	fn func(string, ...any)
}

func (l logWriter) Write(p []byte) (int, error) {
	s := stripansi.Strip(strings.TrimRight(string(p), "\n"))
	if s != "" {
		l.fn(s)
	}
	return len(p), nil
}
