// Package storage defines the site file-system abstraction.
package storage

// Provider is the read-only interface over the site root. The checkers never
// write files.
type Provider interface {
	// List returns the name of every .html file directly inside dir
	// (relative to the site root, non-recursive), in lexical order. Listing
	// uses directory metadata only; whether an entry is readable is decided
	// when it is read.
	List(dir string) ([]string, error)
	// Read returns the raw bytes of the file at path (relative to the site
	// root).
	Read(path string) ([]byte, error)
}
