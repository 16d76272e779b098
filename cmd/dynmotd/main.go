// Command dynmotd installs a dynamic message of the day on Debian and
// Fedora family hosts.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/lmittmann/tint"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/dynmotd/dynmotd/exec"
	"github.com/dynmotd/dynmotd/localhost"
	"github.com/dynmotd/dynmotd/log"
	"github.com/dynmotd/dynmotd/motd"
	"github.com/dynmotd/dynmotd/sysinfo"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		install    bool
		uninstall  bool
		debug      bool
		noColor    bool
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "dynmotd",
		Short: "Install a dynamic message of the day banner",
		Long: `dynmotd installs a login banner showing system status (OS, kernel,
uptime, memory, disk, network and load) on Debian and Fedora family hosts.

Without arguments the banner is installed. The integration method is chosen
automatically: the update-motd.d hook directory with PAM wiring on Debian
family hosts, a login profile script elsewhere.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd, debug, noColor)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if install && uninstall {
				return fmt.Errorf("--install and --uninstall are mutually exclusive")
			}

			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}

			runner := exec.NewHostRunner(localhost.NewConnection())
			installer := motd.NewInstaller(runner, motd.WithConfig(cfg))

			if uninstall {
				// Revert treats all missing state as success and the command
				// exits zero even on partial failure, so a stuck file never
				// blocks uninstalling the rest.
				if err := installer.Revert(cmd.Context()); err != nil {
					log.Default().Warn("uninstall left some state behind", log.Any(log.KeyError, err))
				}
				fmt.Fprintln(cmd.OutOrStdout(), "dynamic motd uninstalled")
				return nil
			}

			stop := startSpinner(debug, "installing dynamic motd")
			report, err := installer.Apply(cmd.Context())
			stop()
			if err != nil {
				log.Default().Error("installation failed", log.Any(log.KeyError, err))
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "dynamic motd installed\n")
			fmt.Fprintf(cmd.OutOrStdout(), "  os:              %s\n", report.OS)
			fmt.Fprintf(cmd.OutOrStdout(), "  package manager: %s\n", report.PackageManager)
			fmt.Fprintf(cmd.OutOrStdout(), "  method:          %s\n", report.Method)
			fmt.Fprintf(cmd.OutOrStdout(), "  render mode:     %s\n", report.RenderMode)
			fmt.Fprintf(cmd.OutOrStdout(), "  artifact:        %s\n", report.ArtifactPath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&install, "install", "i", false, "install the dynamic motd (default)")
	cmd.Flags().BoolVarP(&uninstall, "uninstall", "u", false, "remove the dynamic motd and restore backups")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized output")
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a configuration file")

	cmd.AddCommand(newPreviewCommand())

	return cmd
}

func newPreviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Show the system summary the banner would display",
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := sysinfo.Collect()
			if err != nil {
				return fmt.Errorf("collect system info: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), summary.String())
			return nil
		},
	}
}

func setupLogging(cmd *cobra.Command, debug, noColor bool) {
	level := log.LevelInfo
	if debug {
		level = log.LevelDebug
	}

	out := cmd.ErrOrStderr()
	colorized := false
	if f, ok := out.(*os.File); ok && !noColor {
		colorized = term.IsTerminal(int(f.Fd()))
	}

	handler := tint.NewHandler(out, &tint.Options{
		Level:      level,
		NoColor:    !colorized,
		TimeFormat: time.Kitchen,
	})
	log.SetLogger(slog.New(handler))
}

// loadConfig returns the defaults overlaid with an optional YAML config file
// and DYNMOTD_* environment variables.
func loadConfig(path string) (*motd.Config, error) {
	cfg := motd.DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix("DYNMOTD")
	// Each key is bound explicitly: viper only consults the environment for
	// keys it knows about, and the defaults live on the struct, not in viper.
	for _, key := range []string{"packages", "ssh_service", "renderer_command", "hook_dir"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind environment variable: %w", err)
		}
	}

	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("expand config path: %w", err)
		}
		v.SetConfigFile(expanded)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) { dc.TagName = "yaml" }); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// startSpinner shows an indeterminate progress spinner on stderr while the
// install runs. Disabled in debug mode where the command log is the output.
func startSpinner(debug bool, description string) func() {
	if debug || !term.IsTerminal(int(os.Stderr.Fd())) {
		return func() {}
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-time.After(100 * time.Millisecond):
				_ = bar.Add(1)
			}
		}
	}()

	return func() {
		close(done)
		_ = bar.Finish()
	}
}
