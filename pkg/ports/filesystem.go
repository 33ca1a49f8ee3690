package ports

// WritableFile is an open file handle that keeps track of the running
// write offset. The offset is the termination signal for size-driven
// generation, so the adapter maintains it instead of re-querying the OS
// after every write.
type WritableFile interface {
	// WriteString appends s to the file and returns the number of bytes written.
	WriteString(s string) (int, error)

	// Offset returns the number of bytes written to the file so far.
	Offset() int64

	// Close closes the file.
	Close() error
}

// FileSystem abstracts file system operations.
type FileSystem interface {
	// Create opens a file for writing, creating it if necessary and
	// truncating it if it already exists.
	Create(path string) (WritableFile, error)

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(path string, data []byte) error

	// Size returns the size of the file on disk in bytes.
	Size(path string) (int64, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error
}
