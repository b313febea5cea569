// Package wailsapp hosts the messenger web view and exposes the native
// commands the page calls.
package wailsapp

import (
	"context"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	goruntime "runtime"

	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/pakemessenger/messenger/internal/badge"
	"github.com/pakemessenger/messenger/internal/config"
	"github.com/pakemessenger/messenger/internal/constants"
	"github.com/pakemessenger/messenger/internal/events"
	mhttp "github.com/pakemessenger/messenger/internal/http"
	"github.com/pakemessenger/messenger/internal/logging"
	"github.com/pakemessenger/messenger/internal/messages"
	"github.com/pakemessenger/messenger/internal/notify"
	"github.com/pakemessenger/messenger/internal/ratelimit"
	"github.com/pakemessenger/messenger/internal/services"
	"github.com/pakemessenger/messenger/internal/state"
	"github.com/pakemessenger/messenger/internal/version"
)

// Assets holds the embedded frontend files, passed in from main package.
var Assets embed.FS

//go:embed inject.js
var injectScript string

var (
	// wailsLogger is the package-level logger for GUI mode
	wailsLogger = logging.Nop()
)

// Deps are the collaborators an App is built from.
type Deps struct {
	State         *state.AppState
	Store         *config.Store
	EventBus      *events.EventBus
	Downloads     *services.DownloadService
	Notifications *services.NotificationService
	Badges        *services.BadgeService
	Unread        *services.UnreadService
	BadgeRenderer string
}

// App is the main Wails application struct.
// All public methods are exposed to the frontend as callable functions.
type App struct {
	ctx context.Context

	state         *state.AppState
	store         *config.Store
	eventBus      *events.EventBus
	downloads     *services.DownloadService
	notifications *services.NotificationService
	badges        *services.BadgeService
	unread        *services.UnreadService
	badgeRenderer string

	// Event bridge for forwarding EventBus events to the page
	eventBridge *EventBridge

	// window helpers, replaced in tests
	hideWindow       func(ctx context.Context)
	showWindow       func(ctx context.Context)
	minimiseWindow   func(ctx context.Context)
	unminimiseWindow func(ctx context.Context)
	execJS           func(ctx context.Context, js string)
	goos             string
}

// NewApp creates a new Wails application instance.
func NewApp(deps Deps) *App {
	return &App{
		state:            deps.State,
		store:            deps.Store,
		eventBus:         deps.EventBus,
		downloads:        deps.Downloads,
		notifications:    deps.Notifications,
		badges:           deps.Badges,
		unread:           deps.Unread,
		badgeRenderer:    deps.BadgeRenderer,
		hideWindow:       runtime.WindowHide,
		showWindow:       runtime.WindowShow,
		minimiseWindow:   runtime.WindowMinimise,
		unminimiseWindow: runtime.WindowUnminimise,
		execJS:           runtime.WindowExecJS,
		goos:             goruntime.GOOS,
	}
}

// startup is called when the app starts. The context is saved
// so we can call the Wails runtime methods.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	if a.eventBus != nil {
		a.eventBridge = NewEventBridge(ctx, a.eventBus)
		if err := a.eventBridge.Start(); err != nil {
			wailsLogger.Error().Err(err).Msg("Failed to start event bridge")
		}
	}

	wailsLogger.Info().Str("version", version.Version).Msg("Wails application started")
}

// domReady is called after the page DOM is ready.
func (a *App) domReady(ctx context.Context) {
	wailsLogger.Debug().Msg("Frontend DOM ready, installing page bridge")
	a.execJS(ctx, injectScript)
}

// beforeClose is called when the window close is requested.
// Return true to prevent closing.
func (a *App) beforeClose(ctx context.Context) bool {
	if a.state == nil || !a.state.RunInBackground() {
		return false
	}

	// A hidden window cannot be brought back from the Dock, so macOS
	// minimises instead. Elsewhere launching the app again restores it.
	if a.goos == "darwin" {
		wailsLogger.Debug().Msg("Close requested with run_in_background, minimising window")
		a.minimiseWindow(ctx)
	} else {
		wailsLogger.Debug().Msg("Close requested with run_in_background, hiding window")
		a.hideWindow(ctx)
	}
	return true
}

// onSecondInstanceLaunch runs in the first instance when the app is started
// again. It brings back a window hidden or minimised by beforeClose.
func (a *App) onSecondInstanceLaunch(data options.SecondInstanceData) {
	if a.ctx == nil {
		return
	}
	wailsLogger.Info().Strs("args", data.Args).Msg("Second instance launched, restoring window")
	a.showWindow(a.ctx)
	a.unminimiseWindow(a.ctx)
}

// shutdown is called at application termination.
func (a *App) shutdown(ctx context.Context) {
	wailsLogger.Info().Msg("Wails application shutting down")

	if a.eventBridge != nil {
		a.eventBridge.Stop()
	}
	if a.eventBus != nil {
		if dropped := a.eventBus.GetDroppedEventCount(); dropped > 0 {
			wailsLogger.Warn().Int64("dropped", dropped).Msg("Events dropped by full subscribers")
		}
		a.eventBus.Close()
	}
	logging.CloseFileLogger()
}

// context returns the Wails context, or Background before startup.
func (a *App) context() context.Context {
	if a.ctx != nil {
		return a.ctx
	}
	return context.Background()
}

// Run launches the GUI.
func Run(opts config.Options) error {
	var extra []io.Writer
	if w, err := logging.InitFileLogger(config.LogDirectory(), constants.LogFileName); err == nil {
		extra = append(extra, w)
	} else {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
	}
	wailsLogger = logging.NewLogger("gui", extra...)

	if opts.Debug || logging.DebugRequested() {
		logging.SetGlobalLevel(zerolog.DebugLevel)
		wailsLogger.Info().Msg("Debug logging enabled")
	} else {
		logging.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Check for display on Linux
	if goruntime.GOOS == "linux" {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			return fmt.Errorf("GUI mode requires a display. No display detected.\n" +
				"DISPLAY and WAYLAND_DISPLAY are not set.\n" +
				"Use 'messenger --help' for the command line tools")
		}
	}

	app := Build(opts, config.NewDefaultStore(), wailsLogger)

	if err := wails.Run(appOptions(app)); err != nil {
		return fmt.Errorf("wails application error: %w", err)
	}

	return nil
}

// appOptions describes the window and wires its lifecycle to app.
func appOptions(app *App) *options.App {
	return &options.App{
		Title:     constants.AppName,
		Width:     constants.WindowWidth,
		Height:    constants.WindowHeight,
		MinWidth:  constants.WindowMinWidth,
		MinHeight: constants.WindowMinHeight,
		AssetServer: &assetserver.Options{
			Assets: Assets,
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 1},
		OnStartup:        app.startup,
		OnDomReady:       app.domReady,
		OnBeforeClose:    app.beforeClose,
		OnShutdown:       app.shutdown,
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId:               constants.SingleInstanceID,
			OnSecondInstanceLaunch: app.onSecondInstanceLaunch,
		},
		Bind: []interface{}{
			app,
		},
		// Platform-specific options
		Mac: &mac.Options{
			About: &mac.AboutInfo{
				Title:   constants.AppName,
				Message: fmt.Sprintf("Version %s", version.Version),
			},
		},
		Windows: &windows.Options{
			WebviewUserDataPath: filepath.Join(config.DataDirectory(), "webview"),
			WebviewBrowserPath:  getWebView2BrowserPath(),
		},
		Linux: &linux.Options{
			ProgramName: constants.AppName,
		},
	}
}

// Build wires settings, services and the event bus into an App.
func Build(opts config.Options, store *config.Store, logger *logging.Logger) *App {
	result := store.Load(config.AppSettings{})
	if result.Err != nil {
		logger.Warn().Err(result.Err).Str("source", result.Source.String()).Msg("Using default settings")
	} else {
		logger.Debug().Str("source", result.Source.String()).Str("path", store.Path()).Msg("Settings loaded")
	}

	bus := events.NewEventBus(constants.EventBusDefaultBuffer)
	appState := state.New(result.Settings).WithEventBus(bus)
	catalog := messages.New()

	client := mhttp.NewDownloadClient(opts, logger.Component("download"))
	downloads := services.NewDownloadService(client, bus, catalog, logger.Component("download"))

	notifier := notify.NewNotifier(logger.Component("notify"))
	notifications := services.NewNotificationService(notifier, notify.NewIconCache("", logger.Component("icons")), logger.Component("notify")).
		WithLimiter(ratelimit.NewNotificationLimiter(logger.Component("notify")))

	renderer := badge.New(badge.DefaultOptions(logger.Component("badge")))
	badges := services.NewBadgeService(renderer, bus, logger.Component("badge"))
	unread := services.NewUnreadService(badges, notifications, catalog, logger.Component("unread"))

	return NewApp(Deps{
		State:         appState,
		Store:         store,
		EventBus:      bus,
		Downloads:     downloads,
		Notifications: notifications,
		Badges:        badges,
		Unread:        unread,
		BadgeRenderer: renderer.Name(),
	})
}

// getWebView2BrowserPath returns the path to a bundled WebView2 Fixed Version Runtime.
// Returns empty string to use system-installed WebView2.
func getWebView2BrowserPath() string {
	if goruntime.GOOS != "windows" {
		return ""
	}

	exePath, err := os.Executable()
	if err != nil {
		return ""
	}

	webview2Dir := filepath.Join(filepath.Dir(exePath), "webview2")
	if _, err := os.Stat(filepath.Join(webview2Dir, "msedgewebview2.exe")); err == nil {
		return webview2Dir
	}

	return ""
}
