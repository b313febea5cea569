package wailsapp

import (
	"github.com/pakemessenger/messenger/internal/services"
)

// DownloadFile downloads params.URL into the downloads directory. The page
// sees a start toast, then a success or failure toast.
func (a *App) DownloadFile(params services.DownloadFileParams) error {
	if a.downloads == nil {
		return ErrNotReady
	}
	_, err := a.downloads.DownloadFile(a.context(), params)
	return err
}

// DownloadFileByBinary saves bytes handed over by the page.
func (a *App) DownloadFileByBinary(params services.BinaryDownloadParams) error {
	if a.downloads == nil {
		return ErrNotReady
	}
	_, err := a.downloads.DownloadFileByBinary(a.context(), params)
	return err
}

// SendNotification shows an OS notification.
func (a *App) SendNotification(params services.NotificationParams) error {
	if a.notifications == nil {
		return ErrNotReady
	}
	return a.notifications.Send(a.context(), params)
}

// UpdateBadge sets the unread badge. It never fails.
func (a *App) UpdateBadge(count int) error {
	if a.badges == nil {
		return nil
	}
	return a.badges.Update(count)
}

// ReportTitle is called by the page whenever its title changes and returns
// the unread count parsed from it.
func (a *App) ReportTitle(title, language string) int {
	if a.unread == nil {
		return 0
	}
	return a.unread.ReportTitle(a.context(), title, language)
}
