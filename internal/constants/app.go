package constants

import (
	"time"
)

// Application identity
const (
	// AppName is the human-readable application name used in window titles
	// and notifications.
	AppName = "Messenger"

	// DataDirName is the per-user data directory name. Kept identical to the
	// directory used by earlier releases so existing settings.json files load.
	DataDirName = "pake-messenger"

	// SettingsFileName is the settings file inside the data directory.
	SettingsFileName = "settings.json"

	// LogFileName is the rotating log file inside the log directory.
	LogFileName = "messenger.log"

	// StartURL is the page loaded into the web view.
	StartURL = "https://www.messenger.com/"

	// WindowClassName is the Win32 class name Wails registers for its main window.
	WindowClassName = "wailsWindow"

	// SingleInstanceID identifies the app to the single instance lock.
	SingleInstanceID = "com.pakemessenger.messenger"

	// ReadTitle is the page title shown when there are no unread messages.
	ReadTitle = "Messenger"
)

// Window geometry
const (
	WindowWidth     = 1200
	WindowHeight    = 780
	WindowMinWidth  = 480
	WindowMinHeight = 360
)

// Toasts and badges
const (
	// ToastDuration - how long an in-window toast stays visible (3 seconds)
	ToastDuration = 3 * time.Second

	// BadgeTooltip - accessibility text for the Windows taskbar overlay
	BadgeTooltip = "Unread Messages"

	// NewMessageIcon - icon shown on new message notifications
	NewMessageIcon = "https://static.xx.fbcdn.net/rsrc.php/yv/r/B8nx2qW2beo.ico"
)

// Notification limits
const (
	// NotificationTitleMax - longest title passed to the OS notification API
	NotificationTitleMax = 64

	// NotificationBodyMax - longest body passed to the OS notification API
	NotificationBodyMax = 256
)

// Event System
const (
	// EventBusDefaultBuffer - default buffer size for event channels
	EventBusDefaultBuffer = 256

	// EventBusMaxBuffer - maximum buffer size for event channels
	EventBusMaxBuffer = 1024
)

// HTTP Client Timeouts
const (
	// HTTPIdleConnTimeout - how long to keep idle connections open (90 seconds)
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPTLSHandshakeTimeout - timeout for TLS handshake (30 seconds)
	HTTPTLSHandshakeTimeout = 30 * time.Second

	// HTTPExpectContinueTimeout - timeout for 100-continue response (1 second)
	HTTPExpectContinueTimeout = 1 * time.Second

	// HTTPDialTimeout - timeout for establishing connection (30 seconds)
	HTTPDialTimeout = 30 * time.Second

	// HTTPDialKeepAlive - keep-alive period for dialer (30 seconds)
	HTTPDialKeepAlive = 30 * time.Second

	// IconFetchTimeout - timeout for fetching a remote notification icon (10 seconds)
	IconFetchTimeout = 10 * time.Second
)

// Retry configuration for downloads. Downloads are not retried unless the
// user opts in through MESSENGER_DOWNLOAD_RETRIES or --retries.
const (
	DefaultDownloadRetries = 0
	MaxDownloadRetries     = 5
	RetryWaitMin           = 500 * time.Millisecond
	RetryWaitMax           = 5 * time.Second
)
