// Package upload stores media files on disk or in an S3-compatible
// bucket and implements the replace-and-delete-old-file lifecycle.
package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxFileSize caps a single upload at 50 MiB.
const MaxFileSize = 50 << 20

var allowedExt = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
	".mp4": true, ".mov": true, ".webm": true, ".ogg": true,
}

// AllowedExt reports whether a filename carries an accepted media
// extension.
func AllowedExt(name string) bool {
	return allowedExt[strings.ToLower(filepath.Ext(name))]
}

// Store saves uploaded media. Files go to the S3 bucket when one is
// configured, otherwise to dir, served under /uploads.
type Store struct {
	dir string
	s3  *S3Client
	log *zap.Logger
}

func NewStore(dir string, s3 *S3Client, log *zap.Logger) *Store {
	return &Store{dir: dir, s3: s3, log: log}
}

// Save persists an uploaded file under a generated name and returns the
// URL to store on the owning entity.
func (s *Store) Save(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExt[ext] {
		return "", fmt.Errorf("unsupported file type %q", ext)
	}
	if fh.Size > MaxFileSize {
		return "", fmt.Errorf("file exceeds %d bytes", MaxFileSize)
	}

	name := uuid.NewString() + ext

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if s.s3 != nil {
		contentType := fh.Header.Get("Content-Type")
		return s.s3.Upload(ctx, "uploads/"+name, contentType, src, fh.Size)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// Delete removes the file behind a stored URL. Best effort: failures
// are logged and never abort the enclosing write.
func (s *Store) Delete(ctx context.Context, storedURL string) {
	if storedURL == "" {
		return
	}

	if s.s3 != nil {
		if key, ok := s.s3.ExtractKey(storedURL); ok {
			if err := s.s3.Delete(ctx, key); err != nil {
				s.log.Warn("delete old s3 object failed", zap.String("key", key), zap.Error(err))
			}
			return
		}
	}

	name, ok := strings.CutPrefix(storedURL, "/uploads/")
	if !ok || name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		s.log.Warn("delete old upload failed", zap.String("file", name), zap.Error(err))
	}
}

// Dir returns the local upload directory.
func (s *Store) Dir() string {
	return s.dir
}
