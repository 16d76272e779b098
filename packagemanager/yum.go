package packagemanager

import (
	"context"
	"fmt"

	"github.com/dynmotd/dynmotd/exec"
)

// Yum is the package manager of older enterprise linux releases.
type Yum struct {
	exec.ContextRunner
}

// Name returns "yum".
func (y *Yum) Name() string { return "yum" }

// Install installs packages.
func (y *Yum) Install(ctx context.Context, packageNames ...string) error {
	if err := y.ExecContext(ctx, buildCommand("yum install -y", packageNames...)); err != nil {
		return fmt.Errorf("failed to install yum packages: %w", err)
	}
	return nil
}

// Remove removes packages.
func (y *Yum) Remove(ctx context.Context, packageNames ...string) error {
	if err := y.ExecContext(ctx, buildCommand("yum remove -y", packageNames...)); err != nil {
		return fmt.Errorf("failed to remove yum packages: %w", err)
	}
	return nil
}

// Update refreshes the package metadata cache.
func (y *Yum) Update(ctx context.Context) error {
	if err := y.ExecContext(ctx, "yum makecache"); err != nil {
		return fmt.Errorf("failed to update yum: %w", err)
	}
	return nil
}

// RegisterYum registers the yum factory into a repository. Registered after
// dnf so that hosts with both prefer dnf.
func RegisterYum(repository *Repository) {
	repository.Register(func(c exec.ContextRunner) PackageManager {
		if c.ExecContext(context.Background(), "command -v yum") != nil {
			return nil
		}
		return &Yum{c}
	})
}
