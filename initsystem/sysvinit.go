package initsystem

import (
	"context"
	"fmt"

	"github.com/dynmotd/dynmotd/exec"
)

// SysVinit manages services through the classic service(8) wrapper.
type SysVinit struct{}

// StartService starts a service.
func (i SysVinit) StartService(ctx context.Context, h exec.ContextRunner, s string) error {
	if err := h.ExecContext(ctx, "service %s start", s); err != nil {
		return fmt.Errorf("failed to start service %s: %w", s, err)
	}
	return nil
}

// StopService stops a service.
func (i SysVinit) StopService(ctx context.Context, h exec.ContextRunner, s string) error {
	if err := h.ExecContext(ctx, "service %s stop", s); err != nil {
		return fmt.Errorf("failed to stop service %s: %w", s, err)
	}
	return nil
}

// RestartService restarts a service.
func (i SysVinit) RestartService(ctx context.Context, h exec.ContextRunner, s string) error {
	if err := h.ExecContext(ctx, "service %s restart", s); err != nil {
		return fmt.Errorf("failed to restart service %s: %w", s, err)
	}
	return nil
}

// ServiceIsRunning returns true if a service is running.
func (i SysVinit) ServiceIsRunning(ctx context.Context, h exec.ContextRunner, s string) bool {
	return h.ExecContext(ctx, "service %s status", s) == nil
}

// RegisterSysVinit registers sysvinit into a repository. Registered after
// systemd so that systemd hosts with a compatibility service(8) shim prefer
// systemctl.
func RegisterSysVinit(repo *Repository) {
	repo.Register(func(c exec.ContextRunner) (ServiceManager, bool) {
		if c.ExecContext(context.Background(), "command -v service") != nil {
			return nil, false
		}
		return SysVinit{}, true
	})
}
