package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pakemessenger/messenger/internal/config"
	"github.com/pakemessenger/messenger/internal/state"
)

// settingsStore is replaced in tests.
var settingsStore = config.NewDefaultStore

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change persisted settings",
	}

	cmd.AddCommand(newSettingsShowCmd())
	cmd.AddCommand(newSettingsSetCmd())
	cmd.AddCommand(newSettingsPathCmd())
	return cmd
}

func newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current settings as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := settingsStore()
			result := store.Load(config.AppSettings{})
			if result.Err != nil {
				GetLogger().Warn().Err(result.Err).Str("path", store.Path()).Msg("Settings file ignored, showing defaults")
			}

			out, err := json.MarshalIndent(result.Settings, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			fmt.Fprintf(cmd.ErrOrStderr(), "source: %s\n", result.Source)
			return nil
		},
	}
}

func newSettingsSetCmd() *cobra.Command {
	var runInBackground bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		Long: `Change settings and write them to settings.json.

Examples:
  messenger settings set --run-in-background
  messenger settings set --run-in-background=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("run-in-background") {
				return fmt.Errorf("nothing to change; pass --run-in-background")
			}

			store := settingsStore()
			appState := state.New(store.Load(config.AppSettings{}).Settings)

			settings, err := appState.Persist(store, func(s *config.AppSettings) {
				s.RunInBackground = runInBackground
			})
			if err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "run_in_background = %t\n", settings.RunInBackground)
			return nil
		},
	}

	cmd.Flags().BoolVar(&runInBackground, "run-in-background", false, "Hide the window instead of quitting when it is closed")
	return cmd
}

func newSettingsPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), settingsStore().Path())
		},
	}
}
