// Package mocks provides mock implementations of the ports for testing.
package mocks

import (
	"fmt"
	"sync"

	"github.com/user/fixturegen/pkg/ports"
)

// FileSystem is a mock implementation of ports.FileSystem backed by an
// in-memory file map.
type FileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool

	CreateFunc    func(path string) (ports.WritableFile, error)
	ReadFileFunc  func(path string) ([]byte, error)
	WriteFileFunc func(path string, data []byte) error
	SizeFunc      func(path string) (int64, error)
	MkdirAllFunc  func(path string) error
	ExistsFunc    func(path string) (bool, error)
	RemoveFunc    func(path string) error

	// WriteErr, when set, is returned by every WriteString on files opened
	// through Create. Used to simulate disk-full style failures.
	WriteErr error
}

// NewFileSystem creates a new mock FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func (m *FileSystem) Create(path string) (ports.WritableFile, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = nil
	return &memFile{fs: m, path: path}, nil
}

func (m *FileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if data, ok := m.files[path]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("file not found: %s", path)
}

func (m *FileSystem) WriteFile(path string, data []byte) error {
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(path, data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = data
	return nil
}

func (m *FileSystem) Size(path string) (int64, error) {
	if m.SizeFunc != nil {
		return m.SizeFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if data, ok := m.files[path]; ok {
		return int64(len(data)), nil
	}
	return 0, fmt.Errorf("file not found: %s", path)
}

func (m *FileSystem) MkdirAll(path string) error {
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path] = true
	return nil
}

func (m *FileSystem) Exists(path string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.files[path]; ok {
		return true, nil
	}
	if _, ok := m.dirs[path]; ok {
		return true, nil
	}
	return false, nil
}

func (m *FileSystem) Remove(path string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, path)
	delete(m.dirs, path)
	return nil
}

// GetFile returns the contents of a file (for test verification).
func (m *FileSystem) GetFile(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path]
	return data, ok
}

// GetAllFiles returns all files (for test verification).
func (m *FileSystem) GetAllFiles() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	files := make(map[string][]byte, len(m.files))
	for path, data := range m.files {
		files[path] = data
	}
	return files
}

// memFile is an in-memory ports.WritableFile.
type memFile struct {
	fs     *FileSystem
	path   string
	offset int64
	closed bool
}

func (f *memFile) WriteString(s string) (int, error) {
	if f.fs.WriteErr != nil {
		return 0, f.fs.WriteErr
	}
	if f.closed {
		return 0, fmt.Errorf("write to closed file: %s", f.path)
	}
	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()
	f.fs.files[f.path] = append(f.fs.files[f.path], s...)
	f.offset += int64(len(s))
	return len(s), nil
}

func (f *memFile) Offset() int64 {
	return f.offset
}

func (f *memFile) Close() error {
	f.closed = true
	return nil
}

// Ensure FileSystem implements ports.FileSystem
var _ ports.FileSystem = (*FileSystem)(nil)
