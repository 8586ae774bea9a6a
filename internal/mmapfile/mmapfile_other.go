// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

//go:build !unix

package mmapfile

import (
	"fmt"
	"os"
)

// File is a read-only view of a file's contents. On platforms without a
// unix mmap syscall, this backend simply reads the file into the heap; the
// API is identical so the CLI front end never branches on platform.
type File struct {
	data []byte
}

// Open reads path into memory and returns a view over its contents.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mmapfile: read %s: %w", path, err)
	}
	return &File{data: data}, nil
}

// Bytes returns the file's contents.
func (m *File) Bytes() []byte {
	return m.data
}

// Close releases the in-memory copy. It never fails.
func (m *File) Close() error {
	m.data = nil
	return nil
}
