package osrelease_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynmotd/dynmotd/exectest"
	"github.com/dynmotd/dynmotd/osrelease"
)

var errMock = errors.New("mock error")

func TestProviderResolvesOSRelease(t *testing.T) {
	runner := exectest.NewMockRunner()
	runner.AddCommandOutput(exectest.HasPrefix("cat /etc/os-release"), debianRelease)

	osr, err := osrelease.DefaultProvider.Get(runner)
	require.NoError(t, err)
	assert.Equal(t, "debian", osr.ID)
}

func TestProviderFallsBackToDebianMarker(t *testing.T) {
	runner := exectest.NewMockRunner()
	runner.AddCommandFailure(exectest.Contains("os-release"), errMock)
	runner.AddCommandOutput(exectest.Equal("cat /etc/debian_version"), "12.5\n")

	osr, err := osrelease.DefaultProvider.Get(runner)
	require.NoError(t, err)
	assert.Equal(t, "debian", osr.ID)
	assert.Equal(t, "12.5", osr.VersionID)
	assert.True(t, osr.IsDebianFamily())
}

func TestProviderFallsBackToFedoraMarker(t *testing.T) {
	runner := exectest.NewMockRunner()
	runner.AddCommandFailure(exectest.Contains("os-release"), errMock)
	runner.AddCommandFailure(exectest.Equal("cat /etc/debian_version"), errMock)
	runner.AddCommandOutput(exectest.Equal("cat /etc/fedora-release"), "Fedora release 40 (Forty)\n")

	osr, err := osrelease.DefaultProvider.Get(runner)
	require.NoError(t, err)
	assert.Equal(t, "fedora", osr.ID)
	assert.True(t, osr.IsFedoraFamily())
}

func TestProviderFallsBackToRedhatMarker(t *testing.T) {
	runner := exectest.NewMockRunner()
	runner.AddCommandFailure(exectest.Contains("os-release"), errMock)
	runner.AddCommandFailure(exectest.Equal("cat /etc/debian_version"), errMock)
	runner.AddCommandFailure(exectest.Equal("cat /etc/fedora-release"), errMock)
	runner.AddCommandOutput(exectest.Equal("cat /etc/redhat-release"), "CentOS Stream release 9\n")

	osr, err := osrelease.DefaultProvider.Get(runner)
	require.NoError(t, err)
	assert.Equal(t, "rhel", osr.ID)
	assert.True(t, osr.IsFedoraFamily())
}

func TestProviderUnrecognized(t *testing.T) {
	runner := exectest.NewMockRunner()
	runner.AddCommandFailure(exectest.Matches(".*"), errMock)

	_, err := osrelease.DefaultProvider.Get(runner)
	require.ErrorIs(t, err, osrelease.ErrNotRecognized)
}
