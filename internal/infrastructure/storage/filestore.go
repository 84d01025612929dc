// Package storage persists uploaded ticket attachments on local disk.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	ticketusecases "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

// LocalFileStore writes uploads under a configured directory and serves
// them back through the public base path. Stored names are server-generated
// so client-controlled filenames never touch the filesystem.
type LocalFileStore struct {
	dir      string
	basePath string
	logger   logger.Interface
}

func NewLocalFileStore(cfg config.StorageConfig, logger logger.Interface) (*LocalFileStore, error) {
	if err := os.MkdirAll(cfg.AttachmentDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create attachment directory: %w", err)
	}

	return &LocalFileStore{
		dir:      cfg.AttachmentDir,
		basePath: strings.TrimRight(cfg.PublicBasePath, "/"),
		logger:   logger,
	}, nil
}

func (s *LocalFileStore) Store(ctx context.Context, upload ticketusecases.FileUpload) (*ticketusecases.StoredFile, error) {
	if upload.Reader == nil {
		return nil, fmt.Errorf("upload reader is nil")
	}

	ext := strings.ToLower(filepath.Ext(upload.FileName))
	storedName := uuid.NewString() + ext
	target := filepath.Join(s.dir, storedName)

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create attachment file: %w", err)
	}

	if _, err := io.Copy(f, upload.Reader); err != nil {
		f.Close()
		os.Remove(target)
		return nil, fmt.Errorf("failed to write attachment file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(target)
		return nil, fmt.Errorf("failed to close attachment file: %w", err)
	}

	s.logger.Debugw("attachment stored", "stored_name", storedName, "original", upload.FileName)

	return &ticketusecases.StoredFile{
		StoredName: storedName,
		Link:       path.Join("/", s.basePath, storedName),
	}, nil
}

func (s *LocalFileStore) Remove(ctx context.Context, storedName string) error {
	// The stored name is always server-generated, but reject anything that
	// could escape the attachment directory anyway.
	if storedName == "" || strings.ContainsAny(storedName, "/\\") {
		return fmt.Errorf("invalid stored name: %q", storedName)
	}

	if err := os.Remove(filepath.Join(s.dir, storedName)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to remove attachment file: %w", err)
	}
	return nil
}

// Dir returns the directory attachments are served from.
func (s *LocalFileStore) Dir() string {
	return s.dir
}
