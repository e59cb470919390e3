// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// Every store in the application reads and writes through API(), so tests can swap the
// OS filesystem for an in-memory one with a single call.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetReadOnly wraps the active backend so every write fails with a permission error.
func SetReadOnly() {
	backend = afero.Afero{Fs: afero.NewReadOnlyFs(backend.Fs)}
}

// SetMemMapFs installs a volatile in-memory filesystem backend.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}
