// Package initsystem provides service management through the host's init
// system.
package initsystem

import (
	"context"
	"errors"

	"github.com/dynmotd/dynmotd/exec"
)

// ServiceManager can manage services on the host.
type ServiceManager interface {
	StartService(ctx context.Context, h exec.ContextRunner, s string) error
	StopService(ctx context.Context, h exec.ContextRunner, s string) error
	RestartService(ctx context.Context, h exec.ContextRunner, s string) error
	ServiceIsRunning(ctx context.Context, h exec.ContextRunner, s string) bool
}

// ErrNoInitSystem is returned when no supported init system is found on the
// host.
var ErrNoInitSystem = errors.New("no supported init system found")

// DefaultRepository is the default init system repository.
var DefaultRepository = NewRepository()

func init() {
	RegisterSystemd(DefaultRepository)
	RegisterSysVinit(DefaultRepository)
}

// FactoryFunc probes a host and returns a ServiceManager for it, or false
// when the host does not run this kind of init system.
type FactoryFunc func(c exec.ContextRunner) (ServiceManager, bool)

// Repository holds the registered init system factories.
type Repository struct {
	factories []FactoryFunc
}

// NewRepository creates a new Repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Register adds a factory to the repository.
func (r *Repository) Register(factory FactoryFunc) {
	r.factories = append(r.factories, factory)
}

// Get returns the first init system whose probe succeeds on the host.
func (r *Repository) Get(c exec.ContextRunner) (ServiceManager, error) {
	for _, builder := range r.factories {
		if mgr, ok := builder(c); ok {
			return mgr, nil
		}
	}
	return nil, ErrNoInitSystem
}
