package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/all-dot-files/timer/internal/config"
	"github.com/all-dot-files/timer/internal/storage/text"
	"github.com/all-dot-files/timer/internal/timer"
	"github.com/all-dot-files/timer/pkg/errors"
	"github.com/all-dot-files/timer/pkg/logger"
)

var (
	cfgFile       string
	stateFile     string
	configManager *config.Manager
	debugMode     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "timer",
	Short: "Time named tasks from the command line",
	Long: `Usage: timer COMMAND [NAME]

Commands:
    start NAME: starts a timer with timer name NAME
    stop: stops current timer and appends its duration to ~/.timerconfig
    status: shows the current timer

Only one timer runs at a time. Unknown flags print an error and exit with
status 1.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// No command or an unknown one
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if code := ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
}

// ExecuteArgs runs the command line args and returns the process exit code.
func ExecuteArgs(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		PrintError(stderr, err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Every command shows the global usage
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		defaultHelp(cmd.Root(), args)
	})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default is $HOME/.config/timer/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&stateFile, "file", "", "state file (default is $HOME/.timerconfig)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging and detailed error messages")

	rootCmd.AddCommand(startCmd, stopCmd, statusCmd)
}

// initConfig reads the settings file and configures logging
func initConfig(cmd *cobra.Command) error {
	var err error
	configManager, err = config.NewManager(cfgFile)
	if err != nil {
		return errors.WrapWithSuggestion(err, errors.ErrNotFound, "config.init",
			"could not locate settings file", "set $HOME or pass --config")
	}

	if err := configManager.Load(); err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "config.load",
			fmt.Sprintf("could not load settings from %s", configManager.GetConfigPath()))
	}

	// Override debug mode if set via flag
	cfg := configManager.Get()
	if debugMode {
		cfg.Debug = true
	}

	logger.SetupWriter(cmd.ErrOrStderr(), cfg.LogFormat, cfg.EffectiveLogLevel())
	return nil
}

// newService builds the timer service over the configured state file
func newService(cmd *cobra.Command) (*timer.Service, error) {
	if err := initConfig(cmd); err != nil {
		return nil, err
	}

	path, err := configManager.StatePath(stateFile)
	if err != nil {
		return nil, err
	}

	log := logger.With("cmd", cmd.Name())
	log.Debug("using state file", "path", path)

	store := text.NewStore(path, log)
	return timer.NewService(store, now, log), nil
}

// IsDebug returns true if debug mode is enabled
func IsDebug() bool {
	if debugMode {
		return true
	}
	if configManager != nil {
		return configManager.Get().Debug
	}
	return false
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
