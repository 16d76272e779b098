// Package motd implements the dynamic message of the day installer.
//
// The installer reconciles a single named integration on the host: it
// detects the OS family, cleans stale artifacts from any prior version,
// installs display dependencies, writes the generated banner script using
// one of two mutually exclusive integration methods, wires PAM when needed,
// and verifies the result by executing the artifact once. Revert undoes all
// of it and is safe to run against any host state.
package motd

import (
	"context"
	"errors"
	"fmt"

	"github.com/alessio/shellescape"

	"github.com/dynmotd/dynmotd/exec"
	"github.com/dynmotd/dynmotd/hostfs"
	"github.com/dynmotd/dynmotd/initsystem"
	"github.com/dynmotd/dynmotd/log"
	"github.com/dynmotd/dynmotd/osrelease"
	"github.com/dynmotd/dynmotd/packagemanager"
)

// Method is the integration strategy used to invoke the banner at login.
type Method string

const (
	// MethodHookDirectory installs the banner script into the update-motd.d
	// hook directory and wires pam_motd to render it. Debian family only.
	MethodHookDirectory Method = "hook-directory"

	// MethodLoginProfile installs the banner script under /etc/profile.d
	// where login shells source it.
	MethodLoginProfile Method = "login-profile"
)

// Report describes the outcome of a completed Apply.
type Report struct {
	// OS is the detected operating system.
	OS string
	// PackageManager is the detected package manager class.
	PackageManager string
	// Method is the integration method that ended up installed.
	Method Method
	// RenderMode tells whether the ASCII art renderer is in use.
	RenderMode RenderMode
	// ArtifactPath is the path of the installed banner script.
	ArtifactPath string
}

// facts is the immutable detection result threaded through the apply steps.
type facts struct {
	os   *osrelease.OSRelease
	pm   packagemanager.PackageManager
	mode RenderMode
}

// Installer reconciles the dynamic motd integration on a host.
type Installer struct {
	runner          exec.Runner
	config          *Config
	osProvider      *osrelease.Provider
	packageManagers *packagemanager.Repository
	initSystems     *initsystem.Repository
	log             *log.Logger
}

// Option is a functional option for NewInstaller.
type Option func(*Installer)

// WithConfig overrides the default configuration.
func WithConfig(c *Config) Option {
	return func(i *Installer) { i.config = c }
}

// WithOSReleaseProvider overrides the OS release provider.
func WithOSReleaseProvider(p *osrelease.Provider) Option {
	return func(i *Installer) { i.osProvider = p }
}

// WithPackageManagerRepository overrides the package manager repository.
func WithPackageManagerRepository(r *packagemanager.Repository) Option {
	return func(i *Installer) { i.packageManagers = r }
}

// WithInitSystemRepository overrides the init system repository.
func WithInitSystemRepository(r *initsystem.Repository) Option {
	return func(i *Installer) { i.initSystems = r }
}

// WithLogger overrides the default logger.
func WithLogger(l *log.Logger) Option {
	return func(i *Installer) { i.log = l }
}

// NewInstaller creates an Installer that operates on the host behind the
// given runner.
func NewInstaller(runner exec.Runner, opts ...Option) *Installer {
	i := &Installer{
		runner:          runner,
		config:          DefaultConfig(),
		osProvider:      osrelease.DefaultProvider,
		packageManagers: packagemanager.DefaultRepository,
		initSystems:     initsystem.DefaultRepository,
		log:             log.Default(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Apply installs the dynamic motd integration. It requires root and a
// Debian or Fedora family host; both are checked before any mutation.
func (i *Installer) Apply(ctx context.Context) (*Report, error) {
	if err := hostfs.CheckPrivilege(i.runner); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotPrivileged, err)
	}

	f, err := i.detect(ctx)
	if err != nil {
		return nil, err
	}
	i.log.Info("host detected", log.String("os", f.os.String()), log.String("packageManager", f.pm.Name()))

	if err := i.cleanup(); err != nil {
		return nil, fmt.Errorf("cleanup stale artifacts: %w", err)
	}

	f.mode = i.installDependencies(ctx, f)

	method := i.selectMethod(f)
	i.log.Info("integration method selected", log.String(log.KeyMethod, string(method)), log.String("renderMode", string(f.mode)))

	artifact, err := i.installMethod(ctx, f, method)
	if err != nil && method == MethodHookDirectory {
		// One fallback attempt only. The hook artifacts written so far are
		// rolled back first so no stray PAM directives survive the switch.
		i.log.Warn("hook directory method failed verification, falling back to login profile", log.Any(log.KeyError, err))
		if rbErr := i.rollbackHookMethod(); rbErr != nil {
			i.log.Warn("hook method rollback incomplete", log.Any(log.KeyError, rbErr))
		}
		method = MethodLoginProfile
		artifact, err = i.installMethod(ctx, f, method)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVerifyFailed, err)
	}

	if method == MethodHookDirectory {
		i.restartSSH(ctx)
	}

	return &Report{
		OS:             f.os.String(),
		PackageManager: f.pm.Name(),
		Method:         method,
		RenderMode:     f.mode,
		ArtifactPath:   artifact,
	}, nil
}

// Revert removes every artifact any version of the tool may have written and
// restores the static banner and PAM backups when they exist. Missing state
// is always treated as success.
func (i *Installer) Revert(_ context.Context) error {
	var errs []error

	for _, path := range i.removalPaths() {
		if err := hostfs.DeleteFile(i.runner, path); err != nil {
			errs = append(errs, err)
			continue
		}
		i.log.Debug("artifact removed", log.String(log.KeyPath, path))
	}

	if hostfs.FileExist(i.runner, StaticBannerBackup) {
		if err := hostfs.MoveFile(i.runner, StaticBannerBackup, StaticBanner); err != nil {
			errs = append(errs, fmt.Errorf("restore static banner: %w", err))
		}
	}

	if err := restorePAM(i.runner); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// detect resolves the OS release and the package manager class. Both are
// pre-mutation checks: a host outside the Debian and Fedora families is
// rejected here.
func (i *Installer) detect(_ context.Context) (*facts, error) {
	osr, err := i.osProvider.Get(i.runner)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedPlatform, err)
	}

	if !osr.IsDebianFamily() && !osr.IsFedoraFamily() {
		return nil, fmt.Errorf("%w: %s is not in the debian or fedora families", ErrUnsupportedPlatform, osr.ID)
	}

	pm, err := i.packageManagers.Get(i.runner)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedPlatform, err)
	}

	return &facts{os: osr, pm: pm}, nil
}

// cleanup removes every known artifact path unconditionally so that a
// reinstall never inherits state from a prior method or tool version.
// Missing files are not errors.
func (i *Installer) cleanup() error {
	for _, path := range i.removalPaths() {
		if err := hostfs.DeleteFile(i.runner, path); err != nil {
			return err
		}
	}
	return nil
}

func (i *Installer) removalPaths() []string {
	paths := artifactPaths()
	if custom := i.config.hookScriptPath(); custom != HookScript {
		paths = append(paths, custom)
	}
	return paths
}

// installDependencies installs the display packages and probes for the
// renderer. Failure is never fatal: the banner degrades to plain text.
func (i *Installer) installDependencies(ctx context.Context, f *facts) RenderMode {
	if err := f.pm.Install(ctx, i.config.Packages...); err != nil {
		i.log.Warn("display dependency installation failed", log.Any(log.KeyError, err))
	}

	renderer, err := i.config.RendererBinary()
	if err != nil {
		i.log.Warn("invalid renderer command, using fallback rendering", log.Any(log.KeyError, err))
		return RenderFallback
	}
	if !hostfs.CommandExist(i.runner, renderer) {
		i.log.Warn("renderer unavailable, using fallback rendering", log.String(log.KeyCommand, renderer))
		return RenderFallback
	}
	return RenderEnhanced
}

// selectMethod picks the integration method. Deterministic: hook directory
// only on Debian family hosts where the hook directory exists.
func (i *Installer) selectMethod(f *facts) Method {
	if f.os.IsDebianFamily() && hostfs.DirExist(i.runner, i.config.HookDir) {
		return MethodHookDirectory
	}
	return MethodLoginProfile
}

// installMethod writes the banner script for the method, wires the side
// effects and verifies the artifact by running it once.
func (i *Installer) installMethod(ctx context.Context, f *facts, method Method) (string, error) {
	script, err := RenderBannerScript(method, f.mode, i.config.RendererCommand)
	if err != nil {
		return "", err
	}

	path := i.artifactPath(method)
	if err := hostfs.WriteFile(i.runner, path, script, "0755"); err != nil {
		return "", err
	}
	i.log.Debug("banner script written", log.String(log.KeyPath, path))

	if method == MethodHookDirectory {
		if err := i.wireHookMethod(); err != nil {
			return "", err
		}
	}

	if err := i.suppressStaticBanner(); err != nil {
		return "", err
	}

	if err := i.verify(ctx, path); err != nil {
		return "", err
	}
	return path, nil
}

func (i *Installer) artifactPath(method Method) string {
	if method == MethodHookDirectory {
		return i.config.hookScriptPath()
	}
	return ProfileScript
}

// wireHookMethod creates the regeneration trigger command when absent and
// wires the PAM session stack.
func (i *Installer) wireHookMethod() error {
	if !hostfs.FileExist(i.runner, TriggerCommand) {
		trigger, err := RenderTriggerScript(i.config.HookDir)
		if err != nil {
			return err
		}
		if err := hostfs.WriteFile(i.runner, TriggerCommand, trigger, "0755"); err != nil {
			return err
		}
	}
	return wirePAM(i.runner)
}

// rollbackHookMethod undoes the hook method side effects before the login
// profile fallback, so a failed hook install leaves no PAM directives or
// trigger command behind.
func (i *Installer) rollbackHookMethod() error {
	var errs []error
	if err := hostfs.DeleteFile(i.runner, i.config.hookScriptPath()); err != nil {
		errs = append(errs, err)
	}
	if err := hostfs.DeleteFile(i.runner, TriggerCommand); err != nil {
		errs = append(errs, err)
	}
	if err := restorePAM(i.runner); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// suppressStaticBanner moves the static banner aside so it does not print on
// top of the dynamic one. The move only happens while no backup exists, so a
// re-run never clobbers the original content.
func (i *Installer) suppressStaticBanner() error {
	if !hostfs.FileExist(i.runner, StaticBanner) {
		return nil
	}
	if hostfs.FileExist(i.runner, StaticBannerBackup) {
		// Original already saved. The file present now was recreated after a
		// prior install, keeping it would shadow the dynamic banner.
		return hostfs.DeleteFile(i.runner, StaticBanner)
	}
	return hostfs.MoveFile(i.runner, StaticBanner, StaticBannerBackup)
}

// verify executes the generated artifact once, discarding output, to confirm
// it exits zero.
func (i *Installer) verify(ctx context.Context, path string) error {
	if err := i.runner.ExecContext(ctx, "sh %s > /dev/null", shellescape.Quote(path)); err != nil {
		return fmt.Errorf("execute %s: %w", path, err)
	}
	return nil
}

// restartSSH restarts the SSH daemon so the PAM changes take effect for new
// sessions. Best effort: a missing init system or failed restart is only
// logged.
func (i *Installer) restartSSH(ctx context.Context) {
	is, err := i.initSystems.Get(i.runner)
	if err != nil {
		i.log.Debug("no init system found, skipping ssh restart", log.Any(log.KeyError, err))
		return
	}
	if err := is.RestartService(ctx, i.runner, i.config.SSHService); err != nil {
		i.log.Debug("ssh restart failed", log.Any(log.KeyError, err))
	}
}
