package motd

import "errors"

var (
	// ErrNotPrivileged is returned by Apply when not running as root. No
	// mutation has happened when this is returned.
	ErrNotPrivileged = errors.New("dynamic motd installation requires root privileges")

	// ErrUnsupportedPlatform is returned by Apply when the host OS is not in
	// the Debian or Fedora families. No mutation has happened when this is
	// returned.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrVerifyFailed is returned by Apply when the generated banner script
	// fails to execute under both integration methods. Partial state may
	// remain; Revert cleans it up.
	ErrVerifyFailed = errors.New("banner script verification failed")
)
