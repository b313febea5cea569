// Package cli provides the command-line interface for messenger.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pakemessenger/messenger/internal/config"
	"github.com/pakemessenger/messenger/internal/logging"
	"github.com/pakemessenger/messenger/internal/version"
)

var (
	// Global flags
	debug bool

	// Global logger
	logger *logging.Logger

	// Global context for signal handling
	rootContext context.Context
	cancelFunc  context.CancelFunc
)

// NewRootCmd creates the root command. Running it without a subcommand
// opens the GUI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "messenger",
		Short: "Messenger desktop app and helper commands",
		Long: `Messenger ` + version.Version + ` - Built: ` + version.BuildTime + `
Desktop shell for messenger.com.

Run without arguments to open the window. The subcommands below work
without a display and share settings with the window.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewDefaultCLILogger()
			if debug || logging.DebugRequested() {
				logging.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output (same as MESSENGER_DEBUG=1)")
	rootCmd.Version = version.Version + " (" + version.BuildTime + ")"

	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	rootContext, cancelFunc = context.WithCancel(context.Background())
	defer cancelFunc()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		for sig := range sigChan {
			if sig != nil {
				fmt.Fprintf(os.Stderr, "\nReceived signal %v, cancelling...\n", sig)
				cancelFunc()
			}
		}
	}()

	rootCmd := NewRootCmd()
	AddCommands(rootCmd)
	err := rootCmd.Execute()

	signal.Stop(sigChan)
	close(sigChan)

	return err
}

// AddCommands adds all subcommands to the root command.
func AddCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newGUICmd())
	rootCmd.AddCommand(newSettingsCmd())
	rootCmd.AddCommand(newDownloadCmd())
	rootCmd.AddCommand(newNotifyCmd())
	rootCmd.AddCommand(newBadgeIconCmd())
}

// GetLogger returns the global CLI logger.
func GetLogger() *logging.Logger {
	if logger == nil {
		logger = logging.NewDefaultCLILogger()
	}
	return logger
}

// GetContext returns the global CLI context with signal handling.
// This context will be cancelled when the user presses Ctrl+C.
func GetContext() context.Context {
	if rootContext == nil {
		return context.Background()
	}
	return rootContext
}

// loadOptions reads runtime options from the environment and applies the
// global --debug flag.
func loadOptions() (config.Options, error) {
	opts, err := config.OptionsFromEnv()
	if err != nil {
		return opts, err
	}
	opts.Debug = debug || logging.DebugRequested()
	return opts, nil
}
