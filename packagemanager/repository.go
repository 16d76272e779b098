// Package packagemanager provides host package manager detection and a
// unified install/remove interface over apt, dnf and yum.
package packagemanager

import (
	"context"
	"errors"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/dynmotd/dynmotd/exec"
)

// PackageManager is a unified interface over the host's package manager.
type PackageManager interface {
	// Name returns the package manager class, such as "apt".
	Name() string
	Install(ctx context.Context, packageNames ...string) error
	Remove(ctx context.Context, packageNames ...string) error
	Update(ctx context.Context) error
}

// ErrNoPackageManager is returned when no supported package manager is found
// on the host.
var ErrNoPackageManager = errors.New("no supported package manager found")

// DefaultRepository is the default package manager repository.
var DefaultRepository = NewRepository()

func init() {
	RegisterApt(DefaultRepository)
	RegisterDnf(DefaultRepository)
	RegisterYum(DefaultRepository)
}

// FactoryFunc probes a host through the runner and returns a PackageManager
// or nil when the host does not have one of this kind.
type FactoryFunc func(c exec.ContextRunner) PackageManager

// Repository holds the registered package manager factories.
type Repository struct {
	managers []FactoryFunc
}

// NewRepository creates a new Repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Register adds a factory to the repository.
func (r *Repository) Register(factory FactoryFunc) {
	r.managers = append(r.managers, factory)
}

// Get returns the first package manager whose probe succeeds on the host.
func (r *Repository) Get(c exec.ContextRunner) (PackageManager, error) {
	for _, builder := range r.managers {
		if mgr := builder(c); mgr != nil {
			return mgr, nil
		}
	}
	return nil, ErrNoPackageManager
}

func buildCommand(basecmd string, packages ...string) string {
	cmd := &strings.Builder{}
	cmd.WriteString(basecmd)
	for _, pkg := range packages {
		cmd.WriteRune(' ')
		cmd.WriteString(shellescape.Quote(pkg))
	}
	return cmd.String()
}
