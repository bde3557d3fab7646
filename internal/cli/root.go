package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/gamenative/gamenative-tui/internal/config"
	"github.com/gamenative/gamenative-tui/internal/emoji"
	"github.com/gamenative/gamenative-tui/internal/logger"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	noEmoji   bool
	outputFmt string
	logFile   string

	globalConfig *config.Config
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gamenative",
		Short: "GameNative terminal companion",
		Long: `GameNative brings the launcher's Hall of Fame and boot splash to the terminal.

It shows the Ko-fi supporters stored in Supabase, rotates boot tips while a
container starts, and lists the default component versions.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-disable emojis on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
				noEmoji = true
			}
			return loadGlobalConfig(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "", "output format (text, json, markdown, csv)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file while a TUI is running")

	rootCmd.AddCommand(newSupportersCommand())
	rootCmd.AddCommand(newBootCommand())
	rootCmd.AddCommand(newTipsCommand())
	rootCmd.AddCommand(newVersionsCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// loadGlobalConfig loads the config once per invocation and folds it into
// the flags the user did not set
func loadGlobalConfig(cmd *cobra.Command) error {
	cfg, err := config.NewLoader().WithLogger(newLogger("cli")).LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	globalConfig = cfg

	flags := cmd.Flags()
	if !flags.Changed("verbose") {
		verbose = verbose || cfg.Output.Verbose
	}
	if !flags.Changed("no-emoji") {
		noEmoji = noEmoji || cfg.Output.NoEmoji
	}
	if !flags.Changed("log-file") && logFile == "" {
		logFile = cfg.Output.LogFile
	}

	emoji.SetEmojiDisabled(noEmoji)
	applyColorMode(cfg.Output.ColorMode)
	return nil
}

// applyColorMode switches lipgloss to plain output when colour is off
func applyColorMode(mode string) {
	switch {
	case noColor, mode == "never":
		noColor = true
		_ = os.Setenv("NO_COLOR", "1")
		lipgloss.SetColorProfile(termenv.Ascii)
	case mode == "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "GameNative %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// Global helpers

func isVerbose() bool {
	return verbose
}

func isEmojiDisabled() bool {
	return noEmoji
}

// getGlobalConfig returns the loaded configuration, or defaults before loading
func getGlobalConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

// getOutputFormat returns the --output flag, falling back to the configured default
func getOutputFormat() string {
	if outputFmt != "" {
		return outputFmt
	}
	return getGlobalConfig().Output.DefaultFormat
}

func newLogger(component string) *logger.Logger {
	return logger.NewWithCallback(component, isVerbose)
}

// redirectLogs moves log output off the terminal while a TUI owns it. Logs go
// to --log-file when set and are dropped otherwise.
func redirectLogs(log *logger.Logger) (func(), error) {
	if logFile == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}

	// #nosec G304 - path comes from the user's own flag or config
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)

	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}
