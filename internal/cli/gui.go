package cli

import (
	"github.com/spf13/cobra"

	"github.com/pakemessenger/messenger/internal/wailsapp"
)

func newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the Messenger window (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI()
		},
	}
}

func runGUI() error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	return wailsapp.Run(opts)
}
