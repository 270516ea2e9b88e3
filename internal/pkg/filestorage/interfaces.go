package filestorage

import (
	"mime/multipart"
)

// FileStorage stores uploaded files and hands back the relative path the
// rest of the system keeps in the database.
type FileStorage interface {
	// SaveFile stores a file under the storage root.
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath stores a file under the given subdirectory.
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a stored file. Deleting a missing file is not
	// an error.
	DeleteFile(relPath string) error

	// GetFullPath resolves a stored relative path to a filesystem path.
	GetFullPath(relPath string) string
}
