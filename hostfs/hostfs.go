// Package hostfs performs file operations on the host through a command
// runner, so that every mutation is visible in the command stream.
package hostfs

import (
	"errors"
	"fmt"

	"github.com/alessio/shellescape"

	"github.com/dynmotd/dynmotd/exec"
)

// ErrNotPrivileged is returned when the current user is not root.
var ErrNotPrivileged = errors.New("not running as root")

// CheckPrivilege returns ErrNotPrivileged unless the runner executes
// commands as root.
func CheckPrivilege(h exec.SimpleRunner) error {
	if h.Exec(`[ "$(id -u)" -eq 0 ]`) != nil {
		return ErrNotPrivileged
	}
	return nil
}

// WriteFile writes a file to the host with the given contents and permission
// bits. Do not use for large files. The content goes through stdin to keep it
// off the command line.
func WriteFile(h exec.SimpleRunner, path, data, permissions string) error {
	if data == "" {
		return fmt.Errorf("empty content in WriteFile to %s", path)
	}
	if path == "" {
		return fmt.Errorf("empty path in WriteFile")
	}

	tempFile, err := h.ExecOutput("mktemp")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}
	tempFile = shellescape.Quote(tempFile)

	if err := h.Exec(
		fmt.Sprintf("cat > %s && (install -D -m %s %s %s || (rm -f %s; exit 1))", tempFile, permissions, tempFile, shellescape.Quote(path), tempFile),
		exec.Stdin(data), exec.HideCommand(),
	); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadFile reads a file's contents from the host.
func ReadFile(h exec.SimpleRunner, path string) (string, error) {
	out, err := h.ExecOutput(fmt.Sprintf("cat %s", shellescape.Quote(path)), exec.HideOutput(), exec.RawOutput())
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

// DeleteFile deletes a file from the host. A missing file is not an error.
func DeleteFile(h exec.SimpleRunner, path string) error {
	if err := h.Exec(fmt.Sprintf("rm -f %s", shellescape.Quote(path))); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

// MoveFile renames a file on the host.
func MoveFile(h exec.SimpleRunner, src, dst string) error {
	if err := h.Exec(fmt.Sprintf("mv %s %s", shellescape.Quote(src), shellescape.Quote(dst))); err != nil {
		return fmt.Errorf("move %s to %s: %w", src, dst, err)
	}
	return nil
}

// FileExist returns true if a file exists on the host.
func FileExist(h exec.SimpleRunner, path string) bool {
	return h.Exec(fmt.Sprintf("test -f %s", shellescape.Quote(path))) == nil
}

// DirExist returns true if a directory exists on the host.
func DirExist(h exec.SimpleRunner, path string) bool {
	return h.Exec(fmt.Sprintf("test -d %s", shellescape.Quote(path))) == nil
}

// CommandExist returns true if a command is available on the host.
func CommandExist(h exec.SimpleRunner, name string) bool {
	return h.Exec(fmt.Sprintf("command -v %s", shellescape.Quote(name))) == nil
}
