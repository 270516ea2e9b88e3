package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/mkoech/police-profiling/internal/pkg/logger"
)

// LocalStorage saves files under a root directory on local disk. Stored
// paths are relative to the root and use forward slashes so they can be
// served directly under the uploads route.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates the storage root if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// SaveFileWithPath stores the uploaded file under subPath with a random
// filename, keeping the original extension. Returns the relative path.
func (ls *LocalStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	subPath = strings.Trim(filepath.ToSlash(subPath), "/")
	if strings.Contains(subPath, "..") {
		return "", fmt.Errorf("invalid storage sub path: %s", subPath)
	}

	dir := ls.basePath
	if subPath != "" {
		dir = filepath.Join(ls.basePath, filepath.FromSlash(subPath))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create storage subdirectory: %w", err)
		}
	}

	ext := filepath.Ext(fileHeader.Filename)
	filename := uuid.New().String() + ext
	dstPath := filepath.Join(dir, filename)

	if err := copyUploadedFile(fileHeader, dstPath); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	relPath := filename
	if subPath != "" {
		relPath = subPath + "/" + filename
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", relPath).Msg("File saved")
	return relPath, nil
}

// SaveFile stores the uploaded file under the storage root.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	return ls.SaveFileWithPath(fileHeader, "")
}

// DeleteFile removes a stored file by its relative path. Missing files
// are treated as already deleted.
func (ls *LocalStorage) DeleteFile(relPath string) error {
	if relPath == "" {
		return nil
	}

	physicalPath := ls.GetFullPath(relPath)
	if physicalPath == "" {
		return fmt.Errorf("invalid file path: %s", relPath)
	}

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted")
	return nil
}

// GetFullPath resolves a stored relative path to a filesystem path, or
// returns "" when the path would escape the storage root.
func (ls *LocalStorage) GetFullPath(relPath string) string {
	relPath = strings.Trim(filepath.ToSlash(relPath), "/")
	if relPath == "" || strings.Contains(relPath, "..") {
		return ""
	}
	return filepath.Join(ls.basePath, filepath.FromSlash(relPath))
}

func copyUploadedFile(fileHeader *multipart.FileHeader, dstPath string) error {
	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
