package osrelease

import (
	"github.com/dynmotd/dynmotd/exec"
)

// ResolveOSRelease resolves identification from the os-release descriptor
// file, falling back to the lib location when /etc has none.
func ResolveOSRelease(runner exec.SimpleRunner) *OSRelease {
	output, err := runner.ExecOutput("cat /etc/os-release || cat /usr/lib/os-release")
	if err != nil {
		return nil
	}

	osr, err := DecodeString(output)
	if err != nil {
		return nil
	}
	return osr
}

// ResolveDebianMarker identifies Debian installations that predate or lack
// an os-release file from the /etc/debian_version marker.
func ResolveDebianMarker(runner exec.SimpleRunner) *OSRelease {
	output, err := runner.ExecOutput("cat /etc/debian_version")
	if err != nil {
		return nil
	}
	return &OSRelease{
		Name:      "Debian GNU/Linux",
		ID:        "debian",
		VersionID: output,
	}
}

// ResolveFedoraMarker identifies Fedora installations from the
// /etc/fedora-release marker.
func ResolveFedoraMarker(runner exec.SimpleRunner) *OSRelease {
	output, err := runner.ExecOutput("cat /etc/fedora-release")
	if err != nil {
		return nil
	}
	return &OSRelease{
		Name:       "Fedora Linux",
		ID:         "fedora",
		PrettyName: output,
	}
}

// ResolveRedhatMarker identifies RHEL-lineage installations from the
// /etc/redhat-release marker. Checked after the Fedora marker since Fedora
// ships a redhat-release symlink too.
func ResolveRedhatMarker(runner exec.SimpleRunner) *OSRelease {
	output, err := runner.ExecOutput("cat /etc/redhat-release")
	if err != nil {
		return nil
	}
	return &OSRelease{
		Name:       "Red Hat Enterprise Linux",
		ID:         "rhel",
		IDLike:     "fedora",
		PrettyName: output,
	}
}
