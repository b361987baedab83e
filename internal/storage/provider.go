// Package storage defines the backing file abstraction for the recipe book.
package storage

// Provider is the interface for backing file operations.
type Provider interface {
	// Path returns the absolute location of the backing file.
	Path() string
	// Read returns the raw bytes of the backing file.
	Read() ([]byte, error)
	// Write atomically replaces the backing file with content.
	Write(content []byte) error
	// Move renames the backing file to dst, leaving Path unchanged.
	Move(dst string) error
}
