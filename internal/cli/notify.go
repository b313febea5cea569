package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pakemessenger/messenger/internal/notify"
	"github.com/pakemessenger/messenger/internal/services"
)

func newNotifyCmd() *cobra.Command {
	var params services.NotificationParams

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Show a desktop notification",
		Long: `Show a desktop notification through the same path the window uses.

The icon may be a local file or an http(s) URL; remote icons are cached.

Examples:
  messenger notify --title "Build finished" --body "All tests passed"
  messenger notify --title Alice --icon https://example.com/avatar.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := GetLogger()
			svc := services.NewNotificationService(
				notify.NewNotifier(log.Component("notify")),
				notify.NewIconCache("", log.Component("icons")),
				log.Component("notify"),
			)

			if err := svc.Send(GetContext(), params); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Notification sent")
			return nil
		},
	}

	cmd.Flags().StringVarP(&params.Title, "title", "t", "", "Notification title (required)")
	cmd.Flags().StringVarP(&params.Body, "body", "b", "", "Notification body")
	cmd.Flags().StringVar(&params.Icon, "icon", "", "Icon file path or URL")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}
