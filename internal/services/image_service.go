package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"portfolio/internal/utils"
)

// ImageStore validates and persists an uploaded image, returning the
// stored filename. ok is false when nothing was stored: a missing file,
// a disallowed extension, or an I/O failure. Callers treat that as "no
// image change", never as a hard error.
type ImageStore interface {
	Store(file *multipart.FileHeader) (filename string, ok bool)
}

// DiskImageStore writes accepted uploads into a single shared directory.
// Stored files are never deleted or reused, even when the project that
// referenced them is edited or removed.
type DiskImageStore struct {
	dir     string
	allowed []string
	logger  *zap.Logger
}

func NewDiskImageStore(dir string, allowedExtensions []string, logger *zap.Logger) *DiskImageStore {
	return &DiskImageStore{
		dir:     dir,
		allowed: allowedExtensions,
		logger:  logger,
	}
}

func (s *DiskImageStore) Store(file *multipart.FileHeader) (string, bool) {
	if file == nil || file.Filename == "" {
		return "", false
	}

	if !s.allowedFile(file.Filename) {
		s.logger.Warn("Rejected upload with disallowed extension",
			zap.String("filename", file.Filename))
		return "", false
	}

	// Unix-second prefix keeps concurrent uploads of the same name apart.
	name := fmt.Sprintf("%d_%s", time.Now().Unix(), utils.SanitizeFilename(file.Filename))
	path := filepath.Join(s.dir, name)

	if err := s.write(file, path); err != nil {
		s.logger.Error("Failed to save uploaded image",
			zap.String("filename", file.Filename),
			zap.String("path", path),
			zap.Error(err))
		return "", false
	}

	s.logger.Info("Image stored",
		zap.String("filename", name),
		zap.Int64("size", file.Size))
	return name, true
}

func (s *DiskImageStore) allowedFile(filename string) bool {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 || idx == len(filename)-1 {
		return false
	}
	ext := strings.ToLower(filename[idx+1:])
	return utils.Contains(s.allowed, ext)
}

func (s *DiskImageStore) write(file *multipart.FileHeader, path string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path) // no partial files on failure
		return err
	}

	return dst.Close()
}
