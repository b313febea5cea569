package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/pakemessenger/messenger/internal/diskspace"
	"github.com/pakemessenger/messenger/internal/events"
	mhttp "github.com/pakemessenger/messenger/internal/http"
	"github.com/pakemessenger/messenger/internal/logging"
	"github.com/pakemessenger/messenger/internal/messages"
	"github.com/pakemessenger/messenger/internal/pathutil"
)

// DownloadService saves files into the user's downloads directory and
// reports progress as toast events.
//
// Every call publishes exactly one start toast followed by exactly one
// success or failure toast. A failed call leaves no file behind.
type DownloadService struct {
	client   *retryablehttp.Client
	eventBus *events.EventBus
	catalog  *messages.Catalog
	logger   *logging.Logger

	// directory overrides pathutil.DownloadDirectory when set
	directory string
}

// NewDownloadService creates a DownloadService.
func NewDownloadService(client *retryablehttp.Client, eventBus *events.EventBus, catalog *messages.Catalog, logger *logging.Logger) *DownloadService {
	if logger == nil {
		logger = logging.Nop()
	}
	if catalog == nil {
		catalog = messages.New()
	}
	return &DownloadService{
		client:   client,
		eventBus: eventBus,
		catalog:  catalog,
		logger:   logger,
	}
}

// WithDirectory saves into dir instead of the platform downloads directory.
func (s *DownloadService) WithDirectory(dir string) *DownloadService {
	s.directory = dir
	return s
}

// DownloadFile fetches params.URL and saves it under params.Filename.
// It returns the path the file was written to.
func (s *DownloadService) DownloadFile(ctx context.Context, params DownloadFileParams) (string, error) {
	return s.DownloadFileWithProgress(ctx, params, nil)
}

// DownloadFileWithProgress is DownloadFile with the response body also
// copied to progress.
func (s *DownloadService) DownloadFileWithProgress(ctx context.Context, params DownloadFileParams, progress io.Writer) (string, error) {
	requestID := uuid.NewString()
	s.toast(events.ToastStart, messages.Start, params.Language, requestID)

	path, n, err := s.downloadURL(ctx, params, progress)
	return s.finish(requestID, params.Filename, params.Language, path, n, err)
}

// DownloadFileByBinary saves bytes supplied by the page.
func (s *DownloadService) DownloadFileByBinary(ctx context.Context, params BinaryDownloadParams) (string, error) {
	requestID := uuid.NewString()
	s.toast(events.ToastStart, messages.Start, params.Language, requestID)

	path, n, err := s.saveBinary(ctx, params)
	return s.finish(requestID, params.Filename, params.Language, path, n, err)
}

func (s *DownloadService) downloadURL(ctx context.Context, params DownloadFileParams, progress io.Writer) (string, int64, error) {
	target, err := s.destination(params.Filename)
	if err != nil {
		return "", 0, err
	}

	// fetch first so a network failure never creates a file
	data, err := mhttp.Fetch(ctx, s.client, params.URL, progress)
	if err != nil {
		return "", 0, err
	}

	return s.write(target, data)
}

func (s *DownloadService) saveBinary(ctx context.Context, params BinaryDownloadParams) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	target, err := s.destination(params.Filename)
	if err != nil {
		return "", 0, err
	}
	return s.write(target, params.Binary)
}

// destination joins the sanitized file name onto the downloads directory.
func (s *DownloadService) destination(filename string) (string, error) {
	name, err := pathutil.SanitizeFilename(filename)
	if err != nil {
		return "", fmt.Errorf("invalid file name %q: %w", filename, err)
	}

	dir := s.directory
	if dir == "" {
		if dir, err = pathutil.DownloadDirectory(); err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create downloads directory: %w", err)
	}
	return filepath.Join(dir, name), nil
}

// write stores data at the first free candidate for target.
func (s *DownloadService) write(target string, data []byte) (string, int64, error) {
	if err := diskspace.CheckAvailableSpace(target, int64(len(data))); err != nil {
		return "", 0, err
	}

	f, path, err := pathutil.CreateUnique(target)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}

	n, writeErr := f.Write(data)
	closeErr := f.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, int64(n), nil
}

func (s *DownloadService) finish(requestID, filename, lang, path string, n int64, err error) (string, error) {
	result := &events.DownloadEvent{
		BaseEvent: events.BaseEvent{EventType: events.EventDownload, Time: time.Now()},
		RequestID: requestID,
		Filename:  filename,
		Path:      path,
		Bytes:     n,
	}

	if err != nil {
		s.logger.Warn().Err(err).Str("request_id", requestID).Str("filename", filename).Msg("Download failed")
		result.Error = err.Error()
		s.toast(events.ToastFailure, messages.Failure, lang, requestID)
		s.publish(result)
		return "", err
	}

	s.logger.Info().
		Str("request_id", requestID).
		Str("path", path).
		Str("size", humanize.Bytes(uint64(n))).
		Msg("Download saved")
	s.toast(events.ToastSuccess, messages.Success, lang, requestID)
	s.publish(result)
	return path, nil
}

func (s *DownloadService) toast(kind events.ToastKind, msg messages.Kind, lang, requestID string) {
	if s.eventBus == nil {
		return
	}
	s.eventBus.PublishToast(kind, s.catalog.DownloadMessage(msg, lang), requestID)
}

func (s *DownloadService) publish(ev events.Event) {
	if s.eventBus != nil {
		s.eventBus.Publish(ev)
	}
}
