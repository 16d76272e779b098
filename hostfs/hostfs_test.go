package hostfs_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynmotd/dynmotd/exectest"
	"github.com/dynmotd/dynmotd/hostfs"
)

var errMock = errors.New("mock error")

func TestCheckPrivilege(t *testing.T) {
	root := exectest.NewMockRunner()
	root.AddCommandSuccess(exectest.Contains("id -u"))
	require.NoError(t, hostfs.CheckPrivilege(root))

	user := exectest.NewMockRunner()
	user.AddCommandFailure(exectest.Contains("id -u"), errMock)
	require.ErrorIs(t, hostfs.CheckPrivilege(user), hostfs.ErrNotPrivileged)
}

func TestWriteFile(t *testing.T) {
	runner := exectest.NewMockRunner()
	runner.AddCommandOutput(exectest.Equal("mktemp"), "/tmp/tmp.abc123\n")

	var written string
	runner.AddCommand(exectest.HasPrefix("cat > "), func(a *exectest.A) error {
		data, err := io.ReadAll(a.Stdin)
		if err != nil {
			return err
		}
		written = string(data)
		return nil
	})

	require.NoError(t, hostfs.WriteFile(runner, "/etc/profile.d/dynmotd.sh", "#!/bin/sh\n", "0755"))
	assert.Equal(t, "#!/bin/sh\n", written)
	exectest.ReceivedEqual(t, runner, "cat > /tmp/tmp.abc123 && (install -D -m 0755 /tmp/tmp.abc123 /etc/profile.d/dynmotd.sh || (rm -f /tmp/tmp.abc123; exit 1))")
}

func TestWriteFileEmptyContent(t *testing.T) {
	runner := exectest.NewMockRunner()
	require.Error(t, hostfs.WriteFile(runner, "/etc/motd", "", "0644"))
	assert.Empty(t, runner.Commands())
}

func TestDeleteFileQuotes(t *testing.T) {
	runner := exectest.NewMockRunner()
	require.NoError(t, hostfs.DeleteFile(runner, "/tmp/with space"))
	exectest.ReceivedEqual(t, runner, "rm -f '/tmp/with space'")
}

func TestMoveFile(t *testing.T) {
	runner := exectest.NewMockRunner()
	require.NoError(t, hostfs.MoveFile(runner, "/etc/motd", "/etc/motd.dynmotd.bak"))
	exectest.ReceivedEqual(t, runner, "mv /etc/motd /etc/motd.dynmotd.bak")
}

func TestExistenceProbes(t *testing.T) {
	runner := exectest.NewMockRunner()
	runner.AddCommandSuccess(exectest.Equal("test -f /etc/motd"))
	runner.AddCommandFailure(exectest.Matches(".*"), errMock)

	assert.True(t, hostfs.FileExist(runner, "/etc/motd"))
	assert.False(t, hostfs.FileExist(runner, "/etc/other"))
	assert.False(t, hostfs.DirExist(runner, "/etc/update-motd.d"))
	assert.False(t, hostfs.CommandExist(runner, "toilet"))
}

func TestReadFile(t *testing.T) {
	runner := exectest.NewMockRunner()
	runner.AddCommandOutput(exectest.Equal("cat /etc/pam.d/sshd"), "session optional pam_env.so\n")

	out, err := hostfs.ReadFile(runner, "/etc/pam.d/sshd")
	require.NoError(t, err)
	assert.Equal(t, "session optional pam_env.so\n", out)
}
