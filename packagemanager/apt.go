package packagemanager

import (
	"context"
	"fmt"

	"github.com/dynmotd/dynmotd/exec"
)

// Apt is the package manager of the Debian family.
type Apt struct {
	exec.ContextRunner
}

// Name returns "apt".
func (a *Apt) Name() string { return "apt" }

// Install installs packages non-interactively.
func (a *Apt) Install(ctx context.Context, packageNames ...string) error {
	if err := a.ExecContext(ctx, "DEBIAN_FRONTEND=noninteractive APT_LISTCHANGES_FRONTEND=none %s", buildCommand("apt-get install -y", packageNames...)); err != nil {
		return fmt.Errorf("failed to install apt packages: %w", err)
	}
	return nil
}

// Remove removes packages non-interactively.
func (a *Apt) Remove(ctx context.Context, packageNames ...string) error {
	if err := a.ExecContext(ctx, "DEBIAN_FRONTEND=noninteractive %s", buildCommand("apt-get remove -y", packageNames...)); err != nil {
		return fmt.Errorf("failed to remove apt packages: %w", err)
	}
	return nil
}

// Update refreshes the package index.
func (a *Apt) Update(ctx context.Context) error {
	if err := a.ExecContext(ctx, "apt-get update"); err != nil {
		return fmt.Errorf("failed to update apt: %w", err)
	}
	return nil
}

// RegisterApt registers the apt factory into a repository.
func RegisterApt(repository *Repository) {
	repository.Register(func(c exec.ContextRunner) PackageManager {
		if c.ExecContext(context.Background(), "command -v apt-get") != nil {
			return nil
		}
		return &Apt{c}
	})
}
