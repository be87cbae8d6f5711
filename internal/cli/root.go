package cli

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"degen-prop/internal/catalog"
	"degen-prop/internal/config"
	"degen-prop/internal/identity"
	"degen-prop/internal/logging"
	"degen-prop/internal/simulate"
	"degen-prop/internal/store"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Catalog   *catalog.Catalog
	Store     store.AttemptStore
	Identity  identity.Provider
	Simulator *simulate.Simulator
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config:  cfg,
		Logger:  logger,
		Catalog: catalog.New(),
		Identity: identity.NewStaticProvider(
			cfg.User.Email, cfg.User.Name, cfg.User.WalletAddress),
		Simulator: newSimulator(cfg),
	}

	colorDisabled = !cfg.UI.ColorEnabled
	if cfg.UI.DateFormat != "" {
		dateFormat = cfg.UI.DateFormat
	}

	attemptStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize attempt store, attempt commands will be unavailable")
	} else {
		app.Store = attemptStore
	}

	rootCmd := &cobra.Command{
		Use:   "degenprop",
		Short: "DegenProp - simulated prop-trading challenges",
		Long: `DegenProp is a demo prop-firm platform for Solana degens.

Pick a challenge, get a simulated trading run with our (pretend) capital,
and track your progress toward the profit target on the dashboard.

Use 'degenprop help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Store != nil {
				if err := app.Store.Close(); err != nil {
					app.Logger.Warn().Err(err).Msg("Failed to close attempt store")
				}
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/degen-prop)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newHomeCmd(app))
	rootCmd.AddCommand(newWhoamiCmd(app))
	addChallengeCommands(rootCmd, app)
	addAttemptCommands(rootCmd, app)
	rootCmd.AddCommand(newStartCmd(app))
	rootCmd.AddCommand(newDashboardCmd(app))

	return rootCmd
}

func newSimulator(cfg *config.Config) *simulate.Simulator {
	simCfg := simulate.Config{
		BaselineVolatility: cfg.Simulation.BaselineVolatility,
		HighVolatility:     cfg.Simulation.HighVolatility,
		DriftBias:          cfg.Simulation.DriftBias,
		HistoryCapDays:     cfg.Simulation.HistoryCapDays,
	}
	var rng *rand.Rand
	if cfg.Simulation.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Simulation.Seed))
	}
	return simulate.New(simCfg, rng)
}

func openStore(cfg *config.Config, logger zerolog.Logger) (store.AttemptStore, error) {
	var kv store.KV
	var err error
	switch cfg.Storage.Backend {
	case "sqlite":
		kv, err = store.NewSQLiteKV(cfg.Storage.Path)
	default:
		kv, err = store.NewFileKV(cfg.Storage.Path)
	}
	if err != nil {
		return nil, err
	}
	return store.NewCollectionStore(kv, logger)
}

// requireStore returns the attempt store or a user-facing error when the
// store failed to initialize.
func (app *App) requireStore() (store.AttemptStore, error) {
	if app.Store == nil {
		return nil, fmt.Errorf("attempt store is not available; check storage configuration")
	}
	return app.Store, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("DegenProp v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			showConfig(output, app.Config)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) {
	output.Bold("Storage")
	output.Printf("  Backend:  %s\n", cfg.Storage.Backend)
	output.Printf("  Path:     %s\n", cfg.Storage.Path)
	output.Println()

	output.Bold("Simulation")
	output.Printf("  Baseline Volatility: %.2f\n", cfg.Simulation.BaselineVolatility)
	output.Printf("  High Volatility:     %.2f\n", cfg.Simulation.HighVolatility)
	output.Printf("  Drift Bias:          %.2f\n", cfg.Simulation.DriftBias)
	output.Printf("  History Cap:         %d days\n", cfg.Simulation.HistoryCapDays)
	if cfg.Simulation.Seed != 0 {
		output.Printf("  Seed:                %d (fixed)\n", cfg.Simulation.Seed)
	}
	output.Println()

	output.Bold("User")
	output.Printf("  Email:  %s\n", cfg.User.Email)
	output.Printf("  Name:   %s\n", cfg.User.Name)
	output.Printf("  Wallet: %s\n", cfg.User.WalletAddress)
	output.Println()

	output.Bold("Logging")
	output.Printf("  Level:   %s\n", cfg.Logging.Level)
	output.Printf("  Console: %v\n", cfg.Logging.Console)
	output.Printf("  File:    %v\n", cfg.Logging.File)
}
