// Package osrelease resolves and decodes host operating system release
// information.
package osrelease

import (
	"fmt"
	"strings"
)

// OSRelease is the host operating system identification as documented in
// os-release(5).
type OSRelease struct {
	// Name is a string identifying the operating system without a version
	// component, for presentation to the user. Example: "Fedora Linux".
	Name string `osrelease:"NAME"`

	// ID is a lower-case string identifying the operating system, excluding
	// any version information. Example: "fedora" or "debian".
	ID string `osrelease:"ID"`

	// IDLike is a whitespace-separated list of operating system IDs this
	// operating system is compatible with. Example: "rhel fedora".
	IDLike string `osrelease:"ID_LIKE"`

	// Version is a string identifying the operating system version, possibly
	// including a release code name. Example: "12 (bookworm)".
	Version string `osrelease:"VERSION"`

	// VersionID is a lower-case string identifying the operating system
	// version. Example: "12" or "40".
	VersionID string `osrelease:"VERSION_ID"`

	// PrettyName is a name in a format suitable for presentation to the
	// user. Example: "Debian GNU/Linux 12 (bookworm)".
	PrettyName string `osrelease:"PRETTY_NAME"`

	// Extra holds fields not covered by the struct.
	Extra map[string]string
}

// String returns a printable representation of the OSRelease.
func (o OSRelease) String() string {
	switch {
	case o.PrettyName != "":
		return o.PrettyName
	case o.Name != "" && o.VersionID != "":
		return fmt.Sprintf("%s %s", o.Name, o.VersionID)
	default:
		return o.Name
	}
}

// IsLike returns true if the OS ID or ID_LIKE list contains the given id.
func (o OSRelease) IsLike(id string) bool {
	if o.ID == id {
		return true
	}
	for _, v := range strings.Fields(o.IDLike) {
		if v == id {
			return true
		}
	}
	return false
}

// IsDebianFamily returns true for Debian and its derivatives.
func (o OSRelease) IsDebianFamily() bool {
	return o.IsLike("debian") || o.IsLike("ubuntu")
}

// IsFedoraFamily returns true for Fedora, RHEL and their derivatives.
func (o OSRelease) IsFedoraFamily() bool {
	return o.IsLike("fedora") || o.IsLike("rhel") || o.IsLike("centos")
}
