package ports

import "os"

// FileSystem provides the file operations the adapters need.
// A real implementation and an in-memory test double live in
// internal/adapters/filesystem.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	Exists(path string) bool
}
