package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/laporan/internal/config"
	"github.com/faizmokh/laporan/internal/files"
	"github.com/faizmokh/laporan/internal/logbook"
	"github.com/faizmokh/laporan/internal/logging"
	"github.com/faizmokh/laporan/internal/version"
)

// state carries the collaborators every subcommand needs. The root command fills
// it in PersistentPreRunE once flags are parsed.
type state struct {
	cfg     *config.Config
	manager *files.Manager
	reader  *logbook.Reader
	logger  *slog.Logger
	now     func() time.Time
}

func newState(cfg *config.Config, manager *files.Manager, logger *slog.Logger) *state {
	return &state{
		cfg:     cfg,
		manager: manager,
		reader:  logbook.NewReader(manager, logbook.WithLogger(logger)),
		logger:  logger,
		now:     time.Now,
	}
}

// NewRootCommand creates the top-level Cobra command. Running it without a
// subcommand prints the default statistics report.
func NewRootCommand(ctx context.Context, stderr io.Writer) *cobra.Command {
	var (
		rootFlag   string
		configFlag string
		verbose    bool
	)
	st := &state{}

	cmd := &cobra.Command{
		Use:   "laporan",
		Short: "Summarize tags from daily activity reports.",
		Long: "laporan reads one plain-text activity report per day from <root>/<YYYY>/<YYYY-MM-DD>.txt " +
			"and reports how often each [Tag] appears across a date range.",
		Version: version.Info(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadState(rootFlag, configFlag, verbose, stderr)
			if err != nil {
				return err
			}
			*st = *loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(ctx, cmd, st, rangeFlags{}, false)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Report root directory (default: $LAPORAN_HOME or ~/.laporan)")
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (default: <root>/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug diagnostics to stderr")

	cmd.AddCommand(
		newStatsCommand(ctx, st),
		newShowCommand(ctx, st),
		newListCommand(ctx, st),
		newTodosCommand(ctx, st),
		newBrowseCommand(ctx, st),
		newWatchCommand(ctx, st),
		newVersionCommand(),
	)

	return cmd
}

// loadState resolves the report root and settings. The root comes from --root,
// then the config file, then LAPORAN_HOME, then ~/.laporan.
func loadState(rootFlag, configFlag string, verbose bool, stderr io.Writer) (*state, error) {
	cfg := config.NewDefaultConfig()

	if configFlag != "" {
		if err := config.Load(configFlag, cfg); err != nil {
			return nil, err
		}
	} else {
		base := rootFlag
		if base == "" {
			var err error
			base, err = files.ResolveBasePath()
			if err != nil {
				return nil, err
			}
		}
		if err := config.LoadOptional(config.DefaultPath(base), cfg); err != nil {
			return nil, err
		}
	}

	if rootFlag != "" {
		cfg.Root = rootFlag
	}
	if verbose {
		cfg.LogLevel = slog.LevelDebug
	}

	manager, err := files.NewManager(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve report root: %w", err)
	}

	logger := logging.New(stderr, cfg.LogLevel)
	logger.Debug("configuration loaded",
		slog.String("root", manager.BasePath()),
		slog.Int("range_days", cfg.RangeDays),
		slog.String("log_level", cfg.LogLevel.String()))

	return newState(cfg, manager, logger), nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "laporan "+version.Info())
			return nil
		},
	}
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	return NewRootCommand(ctx, os.Stderr).Execute()
}

// Main is a helper used by cmd/laporan/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
