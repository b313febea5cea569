package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pakemessenger/messenger/internal/badge"
	"github.com/pakemessenger/messenger/internal/progress"
)

func newBadgeIconCmd() *cobra.Command {
	var (
		out   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "badge-icon",
		Short: "Write the unread badge icon to an .ico file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(out); err == nil && !force {
				if !progress.IsTerminal(os.Stdin) {
					return fmt.Errorf("%s already exists (use --force to overwrite)", out)
				}
				ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("%s already exists. Overwrite?", out))
				if err != nil {
					return err
				}
				if !ok {
					return errors.New("aborted")
				}
			}

			if err := os.WriteFile(out, badge.RedDot().ICO(), 0644); err != nil {
				return fmt.Errorf("failed to write icon: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "badge.ico", "Output file")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}
