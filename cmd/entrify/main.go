package main

import (
	"fmt"
	"io"
	"os"

	"github.com/quantmind-br/entrify/internal/app"
	"github.com/quantmind-br/entrify/internal/config"
	"github.com/quantmind-br/entrify/internal/domain"
	"github.com/quantmind-br/entrify/internal/tui"
	"github.com/quantmind-br/entrify/internal/utils"
	"github.com/quantmind-br/entrify/pkg/version"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var (
	cfgFile string
	verbose bool
	log     *utils.Logger

	// Dependencies for testing
	newFs  = afero.NewOsFs
	runTUI = tui.Run
)

// Exit codes
const (
	exitFailed = 1 // --strict run with failed packages, or any other error
	exitFatal  = 2 // invalid path or format, unreadable tree
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if domain.IsFatal(err) {
		return exitFatal
	}
	return exitFailed
}

var rootCmd = &cobra.Command{
	Use:   "entrify [dir]",
	Short: "Replace package.json files with index.js entry points",
	Long: `Entrify walks a directory tree and, for every package.json that points at a
main file, writes an index.js re-exporting that file and deletes the package.json.

Packages without a main entry, whose main is index.js, or that already have an
index.js are left untouched.`,
	Version:       version.Short(),
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.entrify/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("log-format", config.DefaultLogFormat, "Log format (pretty|json)")

	rootCmd.PersistentFlags().StringP("format", "f", config.DefaultFormat, "Entry point format (cjs|esm)")
	rootCmd.PersistentFlags().Bool("progress", false, "Show a progress bar")
	rootCmd.PersistentFlags().Bool("strict", false, "Exit with an error if any package failed")

	bindFlags()

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)

	configEditCmd.Flags().Bool("accessible", false, "Use accessible prompts instead of the full screen editor")
	configCmd.AddCommand(configEditCmd)
}

// bindFlags binds the persistent flags to their viper keys
func bindFlags() {
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("progress", rootCmd.PersistentFlags().Lookup("progress"))
	_ = viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log = utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: verbose,
	})

	// The argument wins over the configured directory
	var dir any = cfg.Directory
	if len(args) > 0 {
		dir = args[0]
	}
	root, err := domain.ResolvePath(dir)
	if err != nil {
		return err
	}
	root = utils.ExpandPath(root)

	fs := newFs()
	if err := utils.RequireDir(fs, root); err != nil {
		return err
	}

	counts := utils.NewCountingSink(utils.NewLogSink(log))
	opts := app.EntrifierOptions{
		Fs:     fs,
		Sink:   counts,
		Logger: log,
	}
	if cfg.Progress {
		opts.NewProgress = func(total int) domain.Progress {
			return utils.NewProgressBarTo(cmd.ErrOrStderr(), total, utils.DescProcessing)
		}
	}

	if err := app.NewEntrifier(opts).Run(root, cfg.Options()); err != nil {
		return err
	}

	failed := counts.Count(domain.EventFailed)
	printSummary(cmd.OutOrStdout(), counts)
	if cfg.Strict && failed > 0 {
		return fmt.Errorf("%d package(s) failed", failed)
	}
	return nil
}

func printSummary(w io.Writer, counts *utils.CountingSink) {
	fmt.Fprintf(w, "%d found, %d created, %d skipped, %d failed\n",
		counts.Count(domain.EventFound),
		counts.Count(domain.EventCreated),
		counts.Skipped(),
		counts.Count(domain.EventFailed))
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long:  "Prints the configuration after merging defaults, the config file, environment variables and flags.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the configuration file interactively",
	Long:  "Opens an interactive editor and saves the result to ~/.entrify/config.yaml (or the file given with --config).",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			cfg = config.Default()
		}

		path := cfgFile
		if path == "" {
			path = config.ConfigFilePath()
		}
		accessible, _ := cmd.Flags().GetBool("accessible")

		return runTUI(tui.Options{
			Config:     cfg,
			Accessible: accessible,
			SaveFunc: func(c *config.Config) error {
				return config.Save(c, path)
			},
		})
	},
}
