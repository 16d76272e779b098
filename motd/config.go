package motd

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/kballard/go-shellquote"
)

// Config holds the tunable parts of the installer. The zero value is not
// usable; obtain one through DefaultConfig.
type Config struct {
	// Packages are installed before the banner script is written. Failure to
	// install them degrades rendering but never fails the install.
	Packages []string `yaml:"packages" default:"[\"toilet\", \"bc\"]"`

	// SSHService is the name of the SSH daemon service to restart after PAM
	// changes.
	SSHService string `yaml:"ssh_service" default:"sshd"`

	// RendererCommand renders the banner hostname header. Only the command
	// word is probed for availability; the full command line ends up in the
	// generated script.
	RendererCommand string `yaml:"renderer_command" default:"toilet -f standard"`

	// HookDir is the update-motd.d style hook directory. Its existence is
	// one of the two conditions for the hook directory method.
	HookDir string `yaml:"hook_dir" default:"/etc/update-motd.d"`
}

// DefaultConfig returns a Config with the defaults applied.
func DefaultConfig() *Config {
	c := &Config{}
	if err := defaults.Set(c); err != nil {
		panic(fmt.Sprintf("motd config defaults: %v", err))
	}
	return c
}

// RendererBinary returns the command word of the renderer command line.
func (c *Config) RendererBinary() (string, error) {
	parts, err := shellquote.Split(c.RendererCommand)
	if err != nil {
		return "", fmt.Errorf("parse renderer command: %w", err)
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("empty renderer command")
	}
	return parts[0], nil
}

// hookScriptPath returns the path of the hook method banner script under the
// configured hook directory.
func (c *Config) hookScriptPath() string {
	if c.HookDir == "/etc/update-motd.d" {
		return HookScript
	}
	return c.HookDir + "/50-dynmotd"
}
