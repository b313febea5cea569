// Messenger - desktop shell for messenger.com
//
// - No args + display available → GUI mode
// - No args + no display → CLI help
// - --gui → GUI mode
// - Subcommands/flags → CLI mode
//
// Build with: wails build (for all platforms)
package main

import (
	"embed"
	"fmt"
	"os"
	"runtime"
	"slices"

	"github.com/pakemessenger/messenger/internal/cli"
	"github.com/pakemessenger/messenger/internal/config"
	"github.com/pakemessenger/messenger/internal/wailsapp"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	wailsapp.Assets = assets

	if isCLIMode(os.Args[1:], runtime.GOOS, hasDisplay()) {
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}

	// Suppress GTK ibus input method warnings on Linux.
	if runtime.GOOS == "linux" && os.Getenv("GTK_IM_MODULE") == "" {
		os.Setenv("GTK_IM_MODULE", "none")
	}

	opts, err := config.OptionsFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := wailsapp.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isCLIMode determines whether to run in CLI mode.
//
// GUI mode when --gui is the only argument, or when there are no arguments
// and a display is available. Everything else goes to the command tree,
// so unknown arguments print CLI help rather than opening a window.
func isCLIMode(args []string, goos string, display bool) bool {
	if slices.Equal(args, []string{"--gui"}) {
		return false
	}
	if len(args) == 0 {
		return goos == "linux" && !display
	}
	return true
}

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
