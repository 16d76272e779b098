package motd

// Canonical paths touched by the installer. The cleanup superset includes
// every path any released version of the tool has ever written so that a
// reinstall or uninstall never leaves stale artifacts behind.
const (
	// HookScript is the banner generator under the update-motd.d hook
	// directory, used on Debian family hosts.
	HookScript = "/etc/update-motd.d/50-dynmotd"

	// LegacyHookScript was used by pre-1.0 releases.
	LegacyHookScript = "/etc/update-motd.d/99-dynmotd"

	// ProfileScript is the banner generator sourced from the login profile,
	// used where the hook directory method is unavailable.
	ProfileScript = "/etc/profile.d/dynmotd.sh"

	// LegacyProfileScript was used by pre-1.0 releases.
	LegacyProfileScript = "/etc/profile.d/motd.sh"

	// TriggerCommand regenerates the banner cache on demand.
	TriggerCommand = "/usr/local/bin/update-motd"

	// BannerCache is the transient rendered banner displayed by pam_motd.
	BannerCache = "/run/motd.dynamic"

	// PAMConfig is the PAM stack of the SSH daemon.
	PAMConfig = "/etc/pam.d/sshd"

	// PAMConfigBackup holds the pre-install PAM stack.
	PAMConfigBackup = "/etc/pam.d/sshd.dynmotd.bak"

	// StaticBanner is the static message of the day file.
	StaticBanner = "/etc/motd"

	// StaticBannerBackup holds the pre-install static banner.
	StaticBannerBackup = "/etc/motd.dynmotd.bak"
)

// artifactPaths is the removal superset used by cleanup and revert.
func artifactPaths() []string {
	return []string{
		HookScript,
		LegacyHookScript,
		ProfileScript,
		LegacyProfileScript,
		TriggerCommand,
		BannerCache,
	}
}
