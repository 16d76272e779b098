package motd

import (
	"fmt"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/dynmotd/dynmotd/exec"
	"github.com/dynmotd/dynmotd/hostfs"
)

// pamDirectives are appended to the SSH PAM session stack so that pam_motd
// renders the dynamic banner at login. The first line regenerates and prints
// the cache, the second suppresses the static motd duplication.
var pamDirectives = []string{
	"session    optional     pam_motd.so  motd=" + BannerCache,
	"session    optional     pam_motd.so  noupdate",
}

const pamMOTDModule = "pam_motd.so"

// wirePAM backs up the SSH PAM stack once and rewrites it with all prior
// pam_motd lines removed and the dynmotd directives appended. Repeated calls
// converge to the same file content.
func wirePAM(h exec.SimpleRunner) error {
	if !hostfs.FileExist(h, PAMConfig) {
		// No SSH PAM stack, nothing to wire. pam_motd would have nowhere to
		// run anyway; the hook script still works through the trigger command.
		return nil
	}

	if !hostfs.FileExist(h, PAMConfigBackup) {
		if err := h.Exec(fmt.Sprintf("cp -p %s %s", shellescape.Quote(PAMConfig), shellescape.Quote(PAMConfigBackup))); err != nil {
			return fmt.Errorf("back up PAM configuration: %w", err)
		}
	}

	content, err := hostfs.ReadFile(h, PAMConfig)
	if err != nil {
		return fmt.Errorf("read PAM configuration: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(line, pamMOTDModule) {
			continue
		}
		lines = append(lines, line)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	lines = append(lines, pamDirectives...)

	if err := hostfs.WriteFile(h, PAMConfig, strings.Join(lines, "\n")+"\n", "0644"); err != nil {
		return fmt.Errorf("write PAM configuration: %w", err)
	}
	return nil
}

// restorePAM renames the PAM backup over the live file. A missing backup
// means there is nothing to restore.
func restorePAM(h exec.SimpleRunner) error {
	if !hostfs.FileExist(h, PAMConfigBackup) {
		return nil
	}
	if err := hostfs.MoveFile(h, PAMConfigBackup, PAMConfig); err != nil {
		return fmt.Errorf("restore PAM configuration: %w", err)
	}
	return nil
}
