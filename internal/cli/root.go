// Package cli implements the backpack command-line interface: a thin shell
// that loads records into both stores and hands them to the sort, search,
// and benchmark engines.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/backpack/internal/paths"
	"github.com/mesh-intelligence/backpack/pkg/types"
)

// exitFailure is the process exit code for any command error.
const exitFailure = 1

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	records   string
	generate  int
	seed      uint64
	capacity  int
	logLevel  string
	jsonMode  bool
}

// app carries state shared by the command tree for one invocation.
type app struct {
	flags     rootFlags
	configDir string
	cfg       types.Config
	logger    zerolog.Logger
}

// NewRootCmd creates the top-level "backpack" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "backpack",
		Short: "Inventory records over array and linked stores, with instrumented sorts and searches",
		Long: "Backpack loads inventory records into a bounded array store and a linked store,\n" +
			"then sorts, searches, and benchmarks them while counting key comparisons.",
		Version: Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&a.flags.records, "records", "", "YAML records file to load")
	pf.IntVar(&a.flags.generate, "generate", 0, "generate N records instead of reading a records file")
	pf.Uint64Var(&a.flags.seed, "seed", 1, "seed for --generate")
	pf.IntVar(&a.flags.capacity, "capacity", 0, "array store capacity (default from config)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newSortCmd(a))
	root.AddCommand(newSearchCmd(a))
	root.AddCommand(newRemoveCmd(a))
	root.AddCommand(newBenchCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitFailure)
	}
}

// setup resolves the config directory, loads config.yaml, applies flag
// overrides, and configures logging. It runs before every subcommand.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	// Skip setup for version command
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	a.configDir = configDir

	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	if a.flags.capacity != 0 {
		cfg.Capacity = a.flags.capacity
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.cfg = cfg

	a.logger = newLogger(cmd, cfg)
	return nil
}

// newLogger builds the process logger writing to the command's stderr.
// An unparseable level falls back to info.
func newLogger(cmd *cobra.Command, cfg types.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if strings.EqualFold(cfg.LogFormat, types.LogFormatJSON) {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
		logger = zerolog.New(cmd.ErrOrStderr())
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: "15:04:05"})
	}
	return logger.Level(level).With().Timestamp().Str("cmd", cmd.Name()).Logger()
}
