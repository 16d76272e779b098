package motd_test

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/dynmotd/dynmotd/exectest"
)

// fakeHost emulates just enough of a linux host behind a mock runner for the
// installer to run against: a flat file map, a directory set and a command
// availability set, driven by the shell command lines the installer issues.
type fakeHost struct {
	*exectest.MockRunner

	root       bool
	files      map[string]string
	dirs       map[string]bool
	binaries   map[string]bool
	installErr error
	// verifyFail lists artifact paths whose execution exits non-zero.
	verifyFail map[string]bool
}

var installRe = regexp.MustCompile(`install -D -m (\S+) (\S+) (\S+)`)

func newFakeHost() *fakeHost {
	h := &fakeHost{
		MockRunner: exectest.NewMockRunner(),
		root:       true,
		files:      map[string]string{},
		dirs:       map[string]bool{},
		binaries:   map[string]bool{},
		verifyFail: map[string]bool{},
	}
	h.AddCommand(exectest.Matches(".*"), h.handle)
	return h
}

// newDebianHost is a root debian host with a hook directory, an SSH PAM
// stack, a static banner and toilet available after install.
func newDebianHost() *fakeHost {
	h := newFakeHost()
	h.files["/etc/os-release"] = "PRETTY_NAME=\"Debian GNU/Linux 12 (bookworm)\"\nNAME=\"Debian GNU/Linux\"\nID=debian\nVERSION_ID=\"12\"\n"
	h.files["/etc/pam.d/sshd"] = "@include common-auth\nsession    optional     pam_motd.so  motd=/run/motd.dynamic\nsession    required     pam_limits.so\n"
	h.files["/etc/motd"] = "The programs included with the Debian GNU/Linux system are free software.\n"
	h.dirs["/etc/update-motd.d"] = true
	h.dirs["/run/systemd/system"] = true
	h.binaries["apt-get"] = true
	h.binaries["toilet"] = true
	return h
}

// newFedoraHost is a root fedora host with dnf, no hook directory and no
// toilet.
func newFedoraHost() *fakeHost {
	h := newFakeHost()
	h.files["/etc/os-release"] = "NAME=\"Fedora Linux\"\nVERSION=\"40 (Server Edition)\"\nID=fedora\nVERSION_ID=40\nPRETTY_NAME=\"Fedora Linux 40 (Server Edition)\"\n"
	h.files["/etc/pam.d/sshd"] = "auth       substack     password-auth\nsession    optional     pam_motd.so\n"
	h.dirs["/run/systemd/system"] = true
	h.binaries["dnf"] = true
	return h
}

func (h *fakeHost) handle(a *exectest.A) error {
	cmd := a.Command

	switch {
	case cmd == `[ "$(id -u)" -eq 0 ]`:
		if !h.root {
			return errors.New("exit status 1")
		}
		return nil

	case cmd == "mktemp":
		fmt.Fprintln(a.Stdout, "/tmp/tmp.fake")
		return nil

	case strings.HasPrefix(cmd, "cat > "):
		m := installRe.FindStringSubmatch(cmd)
		if m == nil {
			return fmt.Errorf("unexpected write command: %s", cmd)
		}
		data, err := io.ReadAll(a.Stdin)
		if err != nil {
			return err
		}
		h.files[unquote(m[3])] = string(data)
		return nil

	case strings.HasPrefix(cmd, "cat "):
		// handles the os-release fallback chain too, first existing file wins
		for _, path := range strings.Split(strings.TrimPrefix(cmd, "cat "), " || cat ") {
			if content, ok := h.files[unquote(path)]; ok {
				fmt.Fprint(a.Stdout, content)
				return nil
			}
		}
		return errors.New("no such file")

	case strings.HasPrefix(cmd, "command -v "):
		if h.binaries[unquote(strings.TrimPrefix(cmd, "command -v "))] {
			return nil
		}
		return errors.New("exit status 1")

	case strings.HasPrefix(cmd, "test -f "):
		if _, ok := h.files[unquote(strings.TrimPrefix(cmd, "test -f "))]; ok {
			return nil
		}
		return errors.New("exit status 1")

	case strings.HasPrefix(cmd, "test -d "):
		if h.dirs[unquote(strings.TrimPrefix(cmd, "test -d "))] {
			return nil
		}
		return errors.New("exit status 1")

	case strings.HasPrefix(cmd, "rm -f "):
		delete(h.files, unquote(strings.TrimPrefix(cmd, "rm -f ")))
		return nil

	case strings.HasPrefix(cmd, "mv "):
		src, dst, ok := srcDst(strings.TrimPrefix(cmd, "mv "))
		if !ok {
			return fmt.Errorf("unexpected mv command: %s", cmd)
		}
		content, exists := h.files[src]
		if !exists {
			return errors.New("no such file")
		}
		h.files[dst] = content
		delete(h.files, src)
		return nil

	case strings.HasPrefix(cmd, "cp -p "):
		src, dst, ok := srcDst(strings.TrimPrefix(cmd, "cp -p "))
		if !ok {
			return fmt.Errorf("unexpected cp command: %s", cmd)
		}
		content, exists := h.files[src]
		if !exists {
			return errors.New("no such file")
		}
		h.files[dst] = content
		return nil

	case strings.HasPrefix(cmd, "sh "):
		path := unquote(strings.TrimSuffix(strings.TrimPrefix(cmd, "sh "), " > /dev/null"))
		if _, ok := h.files[path]; !ok {
			return errors.New("no such file")
		}
		if h.verifyFail[path] {
			return errors.New("exit status 2")
		}
		return nil

	case strings.HasPrefix(cmd, "stat "):
		if h.dirs[unquote(strings.TrimPrefix(cmd, "stat "))] {
			return nil
		}
		return errors.New("exit status 1")

	case strings.HasPrefix(cmd, "systemctl "), strings.HasPrefix(cmd, "service "):
		return nil

	case strings.Contains(cmd, "apt-get install"), strings.HasPrefix(cmd, "dnf install"), strings.HasPrefix(cmd, "yum install"):
		return h.installErr

	default:
		return fmt.Errorf("unhandled command: %s", cmd)
	}
}

func unquote(s string) string {
	return strings.Trim(strings.TrimSpace(s), "'")
}

func srcDst(s string) (string, string, bool) {
	// quoted paths are only produced for paths with special characters,
	// which the fixed artifact paths never have
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return "", "", false
	}
	return unquote(parts[0]), unquote(parts[1]), true
}
