/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs provides the filesystem abstraction the CLI and config loader
// read theme files through. The core parser only sees strings.
package fs

import (
	"io/fs"
	"os"
)

// FileSystem is the set of operations themevars performs on disk.
// Open makes implementations usable with fs.WalkDir for glob expansion.
type FileSystem interface {
	// ReadFile reads a stylesheet or config file.
	ReadFile(name string) ([]byte, error)
	// WriteFile writes converted output.
	WriteFile(name string, data []byte, perm fs.FileMode) error
	// MkdirAll creates the parent directories of an output file.
	MkdirAll(path string, perm fs.FileMode) error

	ReadDir(name string) ([]fs.DirEntry, error)
	Stat(name string) (fs.FileInfo, error)
	// Exists probes config locations and node_modules candidates.
	Exists(path string) bool

	Open(name string) (fs.File, error)
}

// OSFileSystem is the FileSystem backed by the real disk.
type OSFileSystem struct{}

var _ FileSystem = (*OSFileSystem)(nil)

// NewOSFileSystem returns the disk-backed FileSystem used by the CLI.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (f *OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (f *OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (f *OSFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (f *OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (f *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Exists reports whether path exists. Permission errors count as missing.
func (f *OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (f *OSFileSystem) Open(name string) (fs.File, error) {
	return os.Open(name)
}
