package wailsapp

import (
	"github.com/pakemessenger/messenger/internal/config"
	"github.com/pakemessenger/messenger/internal/logging"
	"github.com/pakemessenger/messenger/internal/version"
)

// AppInfoDTO contains application version and environment information.
type AppInfoDTO struct {
	Version       string `json:"version"`
	BuildTime     string `json:"buildTime"`
	DataDirectory string `json:"dataDirectory"`
	LogFile       string `json:"logFile,omitempty"`
	BadgeRenderer string `json:"badgeRenderer"`
}

// GetAppInfo returns version and path information.
func (a *App) GetAppInfo() AppInfoDTO {
	return AppInfoDTO{
		Version:       version.Version,
		BuildTime:     version.BuildTime,
		DataDirectory: config.DataDirectory(),
		LogFile:       logging.FileLogPath(),
		BadgeRenderer: a.badgeRenderer,
	}
}

// SettingsDTO is the JSON-safe settings structure.
type SettingsDTO struct {
	RunInBackground bool `json:"runInBackground"`
}

// GetSettings returns the current settings.
func (a *App) GetSettings() SettingsDTO {
	if a.state == nil {
		return SettingsDTO{}
	}
	return SettingsDTO{RunInBackground: a.state.RunInBackground()}
}

// SetRunInBackground changes and persists run_in_background. On a save
// failure the previous value stays in effect and the error is returned.
func (a *App) SetRunInBackground(enabled bool) (SettingsDTO, error) {
	if a.state == nil || a.store == nil {
		return SettingsDTO{}, ErrNotReady
	}

	settings, err := a.state.Persist(a.store, func(s *config.AppSettings) {
		s.RunInBackground = enabled
	})
	if err != nil {
		wailsLogger.Error().Err(err).Msg("Failed to save settings")
		return SettingsDTO{RunInBackground: settings.RunInBackground}, err
	}

	wailsLogger.Info().Bool("run_in_background", settings.RunInBackground).Msg("Settings saved")
	return SettingsDTO{RunInBackground: settings.RunInBackground}, nil
}
