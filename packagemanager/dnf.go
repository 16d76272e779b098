package packagemanager

import (
	"context"
	"fmt"

	"github.com/dynmotd/dynmotd/exec"
)

// Dnf is the package manager of current Fedora family releases.
type Dnf struct {
	exec.ContextRunner
}

// Name returns "dnf".
func (d *Dnf) Name() string { return "dnf" }

// Install installs packages.
func (d *Dnf) Install(ctx context.Context, packageNames ...string) error {
	if err := d.ExecContext(ctx, buildCommand("dnf install -y", packageNames...)); err != nil {
		return fmt.Errorf("failed to install dnf packages: %w", err)
	}
	return nil
}

// Remove removes packages.
func (d *Dnf) Remove(ctx context.Context, packageNames ...string) error {
	if err := d.ExecContext(ctx, buildCommand("dnf remove -y", packageNames...)); err != nil {
		return fmt.Errorf("failed to remove dnf packages: %w", err)
	}
	return nil
}

// Update refreshes the package metadata cache.
func (d *Dnf) Update(ctx context.Context) error {
	if err := d.ExecContext(ctx, "dnf makecache"); err != nil {
		return fmt.Errorf("failed to update dnf: %w", err)
	}
	return nil
}

// RegisterDnf registers the dnf factory into a repository.
func RegisterDnf(repository *Repository) {
	repository.Register(func(c exec.ContextRunner) PackageManager {
		if c.ExecContext(context.Background(), "command -v dnf") != nil {
			return nil
		}
		return &Dnf{c}
	})
}
