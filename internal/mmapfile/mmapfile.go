// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

// Package mmapfile provides a read-only, memory-mapped view of a file,
// letting the CLI front-end hand large reference and version files to the
// core as plain byte spans without reading them into the Go heap. Grounded
// on the teacher pack's two mmap patterns: calvinalkan-agent-task's
// syscall.Mmap-backed read-only ticket cache (cache_binary.go) for the
// open/validate/Close lifecycle, and grailbio-bio's fusion/kmer_index.go
// for using golang.org/x/sys/unix directly rather than the stdlib syscall
// package, which keeps the mmap flags portable across the platforms x/sys
// targets.
//
// This file is the unix-only backend; mmapfile_other.go covers platforms
// x/sys/unix doesn't target with a plain os.ReadFile fallback.
//go:build unix

package mmapfile

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// File is a read-only memory-mapped view of a file's contents.
type File struct {
	data []byte
}

// Open mmaps path PROT_READ/MAP_SHARED and returns a view over its
// contents. The file is closed immediately after the mapping is
// established; the mapping itself keeps the pages reachable.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mmapfile: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("mmapfile: stat %s: %w", path, err)
	}

	size := info.Size()
	if size == 0 {
		return &File{data: nil}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmapfile: mmap %s: %w", path, err)
	}

	return &File{data: data}, nil
}

// Bytes returns the mapped contents. The returned slice is valid only until
// Close is called.
func (m *File) Bytes() []byte {
	return m.data
}

// Close unmaps the file. Close is a no-op on an empty mapping.
func (m *File) Close() error {
	if len(m.data) == 0 {
		return nil
	}
	if err := unix.Munmap(m.data); err != nil {
		return fmt.Errorf("mmapfile: munmap: %w", err)
	}
	m.data = nil
	return nil
}
