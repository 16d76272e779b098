package motd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynmotd/dynmotd/motd"
)

func TestDefaultConfig(t *testing.T) {
	c := motd.DefaultConfig()
	assert.Equal(t, []string{"toilet", "bc"}, c.Packages)
	assert.Equal(t, "sshd", c.SSHService)
	assert.Equal(t, "toilet -f standard", c.RendererCommand)
	assert.Equal(t, "/etc/update-motd.d", c.HookDir)
}

func TestRendererBinary(t *testing.T) {
	c := motd.DefaultConfig()
	bin, err := c.RendererBinary()
	require.NoError(t, err)
	assert.Equal(t, "toilet", bin)

	c.RendererCommand = "figlet -w 120 -f 'big font'"
	bin, err = c.RendererBinary()
	require.NoError(t, err)
	assert.Equal(t, "figlet", bin)

	c.RendererCommand = "figlet 'unterminated"
	_, err = c.RendererBinary()
	assert.Error(t, err)

	c.RendererCommand = ""
	_, err = c.RendererBinary()
	assert.Error(t, err)
}
