package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/track/internal/config"
	"github.com/Tiliavir/track/internal/logging"
	"github.com/Tiliavir/track/internal/tracker"
)

var version = "dev"

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath   string
	dbPath       string
	lockfilePath string
	logLevel     string

	cfg     *config.Config
	logger  zerolog.Logger
	tracker *tracker.FileTracker
}

// exitError carries the process exit status for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// storageFailure marks err as a storage problem (exit status 2).
func storageFailure(err error) error {
	return &exitError{code: 2, err: err}
}

// exitCode maps an error to the process exit status: 1 for usage and
// state errors, 2 for storage failures.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "track",
		Short: "track – a minimal start/stop time tracker",
		Long: `track records working sessions. "track start" opens a session,
"track stop" closes it and "track report" sums what was tracked recently.
Sessions are stored as JSON in the user cache directory.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(stderr)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to configuration file (default: <user config dir>/track/config.yaml)")
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "Path to the record database (overrides config)")
	root.PersistentFlags().StringVar(&a.lockfilePath, "lockfile", "", "Path to the lockfile (overrides config)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	root.AddCommand(newStartCmd(a))
	root.AddCommand(newStopCmd(a))
	root.AddCommand(newStatusCmd(a))
	root.AddCommand(newReportCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newExportCmd(a))
	return root
}

// setup loads configuration, applies flag overrides and opens the tracker.
func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.Paths.DB = a.dbPath
	}
	if a.lockfilePath != "" {
		cfg.Paths.Lockfile = a.lockfilePath
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg
	a.logger = logging.New(cfg.Logging, stderr)

	a.tracker, err = tracker.NewFileTracker(tracker.Options{
		DBPath:       cfg.Paths.DB,
		LockfilePath: cfg.Paths.Lockfile,
		Logger:       a.logger,
	})
	if err != nil {
		return err
	}
	a.logger.Debug().
		Str("db", cfg.Paths.DB).
		Str("lockfile", cfg.Paths.Lockfile).
		Msg("Tracker initialized")
	return nil
}

// Execute is the entry point called from main.
func Execute() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
