package initsystem

import (
	"context"
	"fmt"

	"github.com/dynmotd/dynmotd/exec"
)

// Systemd is found by default on most linux distributions today.
type Systemd struct{}

// StartService starts a service.
func (i Systemd) StartService(ctx context.Context, h exec.ContextRunner, s string) error {
	if err := h.ExecContext(ctx, "systemctl start %s 2> /dev/null", s); err != nil {
		return fmt.Errorf("failed to start service %s: %w", s, err)
	}
	return nil
}

// StopService stops a service.
func (i Systemd) StopService(ctx context.Context, h exec.ContextRunner, s string) error {
	if err := h.ExecContext(ctx, "systemctl stop %s 2> /dev/null", s); err != nil {
		return fmt.Errorf("failed to stop service %s: %w", s, err)
	}
	return nil
}

// RestartService restarts a service.
func (i Systemd) RestartService(ctx context.Context, h exec.ContextRunner, s string) error {
	if err := h.ExecContext(ctx, "systemctl restart %s 2> /dev/null", s); err != nil {
		return fmt.Errorf("failed to restart service %s: %w", s, err)
	}
	return nil
}

// ServiceIsRunning returns true if a service is running.
func (i Systemd) ServiceIsRunning(ctx context.Context, h exec.ContextRunner, s string) bool {
	return h.ExecContext(ctx, `systemctl is-active --quiet %s 2> /dev/null`, s) == nil
}

// RegisterSystemd registers systemd into a repository.
func RegisterSystemd(repo *Repository) {
	repo.Register(func(c exec.ContextRunner) (ServiceManager, bool) {
		if c.ExecContext(context.Background(), "stat /run/systemd/system") != nil {
			return nil, false
		}
		return Systemd{}, true
	})
}
