package cli

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"time"

	"github.com/spf13/cobra"

	"github.com/pakemessenger/messenger/internal/events"
	mhttp "github.com/pakemessenger/messenger/internal/http"
	"github.com/pakemessenger/messenger/internal/messages"
	"github.com/pakemessenger/messenger/internal/progress"
	"github.com/pakemessenger/messenger/internal/services"
)

func newDownloadCmd() *cobra.Command {
	var (
		filename string
		language string
		dir      string
		retries  int
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "download <url>",
		Short: "Download a file into the downloads directory",
		Long: `Download a file the same way the window does: the name is sanitized,
an existing file is never overwritten ("name (1).ext" is used instead),
and nothing is left behind on failure.

Examples:
  messenger download https://example.com/photo.jpg
  messenger download https://example.com/a?id=1 --filename report.pdf
  messenger download https://example.com/big.zip --retries 3 --timeout 2m`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("retries") {
				opts.DownloadRetries = retries
			}
			if cmd.Flags().Changed("timeout") {
				opts.HTTPTimeout = timeout
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			rawURL := args[0]
			if filename == "" {
				filename = filenameFromURL(rawURL)
			}

			log := GetLogger().Component("download")
			client := mhttp.NewDownloadClient(opts, log)

			bus := events.NewEventBus(16)
			defer bus.Close()
			toasts := bus.Subscribe(events.EventToast)

			svc := services.NewDownloadService(client, bus, messages.New(), log)
			if dir != "" {
				svc.WithDirectory(dir)
			}

			var sink io.Writer
			var bar *progress.Bar
			if progress.IsTerminal(os.Stderr) {
				total := mhttp.ContentLength(GetContext(), client, rawURL)
				bar = progress.NewBar(total, filename, os.Stderr)
				sink = bar
				log.SetOutput(bar.LogWriter())
			}

			savedPath, err := svc.DownloadFileWithProgress(GetContext(), services.DownloadFileParams{
				URL:      rawURL,
				Filename: filename,
				Language: language,
			}, sink)

			if bar != nil {
				if err != nil {
					bar.Fail(nil)
				} else {
					bar.Finish()
				}
			}
			printToasts(cmd.ErrOrStderr(), toasts)

			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), savedPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filename, "filename", "o", "", "File name to save as (default: last URL path segment)")
	cmd.Flags().StringVar(&language, "language", "", "Language for status messages (en, zh, pl; default: system)")
	cmd.Flags().StringVar(&dir, "dir", "", "Save into this directory instead of the downloads directory")
	cmd.Flags().IntVar(&retries, "retries", 0, "Retry attempts on network errors and 5xx responses")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Overall request timeout (0 = none)")
	return cmd
}

// filenameFromURL returns the last path segment of rawURL, or "download".
func filenameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "download"
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return "download"
	}
	return name
}

// printToasts writes the status messages a download published.
func printToasts(w io.Writer, ch <-chan events.Event) {
	for {
		select {
		case ev := <-ch:
			if t, ok := ev.(*events.ToastEvent); ok {
				fmt.Fprintf(w, "[%s] %s\n", t.Kind, t.Message)
			}
		default:
			return
		}
	}
}
