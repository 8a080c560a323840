package filesystem

import (
	"io/fs"
	"os"
	"sync"

	"github.com/modhearth/modorder/internal/ports"
)

// MemoryFileSystem is an in-memory ports.FileSystem for tests.
// Reads of missing paths return fs.ErrNotExist; paths registered with
// FailReads return fs.ErrPermission, so error-classification paths are
// exercisable without touching disk.
type MemoryFileSystem struct {
	mu       sync.Mutex
	files    map[string][]byte
	denied   map[string]bool
	failNext error
}

// NewMemoryFileSystem creates an empty MemoryFileSystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		files:  make(map[string][]byte),
		denied: make(map[string]bool),
	}
}

// ReadFile returns the stored contents of path.
func (m *MemoryFileSystem) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.denied[path] {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
	}
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// WriteFile stores data under path.
func (m *MemoryFileSystem) WriteFile(path string, data []byte, _ os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}
	if m.denied[path] {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	m.files[path] = stored
	return nil
}

// Exists reports whether path has been written.
func (m *MemoryFileSystem) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.files[path]
	return ok
}

// FailReads makes every subsequent access to path fail with fs.ErrPermission.
func (m *MemoryFileSystem) FailReads(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.denied[path] = true
}

// FailNextWrite makes the next WriteFile call return err.
func (m *MemoryFileSystem) FailNextWrite(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = err
}

// Ensure MemoryFileSystem implements FileSystem.
var _ ports.FileSystem = (*MemoryFileSystem)(nil)
