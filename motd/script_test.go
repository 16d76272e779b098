package motd_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynmotd/dynmotd/motd"
)

func TestRenderBannerScriptHookMethod(t *testing.T) {
	script, err := motd.RenderBannerScript(motd.MethodHookDirectory, motd.RenderEnhanced, "toilet -f standard")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(script, "#!/bin/sh\n"))
	assert.NotContains(t, script, `case "$-" in`, "hook scripts run under pam_motd, they need no session guard")
	assert.Contains(t, script, `toilet -f standard "$(uname -n)"`)
	assert.Contains(t, script, "free -m")
	assert.Contains(t, script, "df -h /")
	assert.Contains(t, script, "/proc/loadavg")
	assert.NotContains(t, script, "{{", "unexpanded template actions")
}

func TestRenderBannerScriptProfileMethod(t *testing.T) {
	script, err := motd.RenderBannerScript(motd.MethodLoginProfile, motd.RenderEnhanced, "toilet -f standard")
	require.NoError(t, err)

	assert.Contains(t, script, `case "$-" in`)
	assert.Contains(t, script, "SSH_CONNECTION")
	assert.Contains(t, script, "return 0 2>/dev/null || exit 0", "sourced script must not exit the login shell")
}

func TestRenderBannerScriptFallbackMode(t *testing.T) {
	script, err := motd.RenderBannerScript(motd.MethodHookDirectory, motd.RenderFallback, "toilet -f standard")
	require.NoError(t, err)

	assert.NotContains(t, script, "toilet")
	assert.Contains(t, script, `printf '=== %s ===\n' "$(uname -n)"`)
}

func TestRenderTriggerScript(t *testing.T) {
	script, err := motd.RenderTriggerScript("/etc/update-motd.d")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(script, "#!/bin/sh\n"))
	assert.Contains(t, script, "run-parts --lsbsysinit /etc/update-motd.d > /run/motd.dynamic")
}
