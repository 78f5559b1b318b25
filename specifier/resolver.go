/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"errors"
	"fmt"
	"path/filepath"

	themefs "bennypowers.dev/themevars/fs"
)

// ErrPackageNotFound is returned when an npm package is missing from every
// node_modules directory above the root.
var ErrPackageNotFound = errors.New("package not found")

// ResolvedFile preserves both the original specifier and the resolved path.
type ResolvedFile struct {
	// Specifier is the original specifier (e.g., "npm:@acme/theme/globals.css").
	Specifier string

	// Path is the resolved filesystem path or URL.
	Path string

	// Kind indicates the type of specifier.
	Kind Kind
}

// Resolver resolves specifiers to filesystem paths.
type Resolver interface {
	// Resolve resolves a specifier to a ResolvedFile.
	Resolve(spec string) (*ResolvedFile, error)

	// CanResolve returns true if this resolver can handle the given specifier.
	CanResolve(spec string) bool
}

// ChainResolver tries multiple resolvers in order.
type ChainResolver struct {
	resolvers []Resolver
}

// NewChainResolver creates a resolver that tries each resolver in order.
func NewChainResolver(resolvers ...Resolver) *ChainResolver {
	return &ChainResolver{resolvers: resolvers}
}

// Resolve uses the first resolver that can handle spec.
func (c *ChainResolver) Resolve(spec string) (*ResolvedFile, error) {
	for _, r := range c.resolvers {
		if r.CanResolve(spec) {
			return r.Resolve(spec)
		}
	}
	return nil, fmt.Errorf("no resolver found for specifier: %s", spec)
}

// CanResolve returns true if any resolver can handle the specifier.
func (c *ChainResolver) CanResolve(spec string) bool {
	for _, r := range c.resolvers {
		if r.CanResolve(spec) {
			return true
		}
	}
	return false
}

// NPMResolver resolves npm: specifiers to node_modules paths.
type NPMResolver struct {
	fs      themefs.FileSystem
	rootDir string
}

// NewNPMResolver creates a resolver for npm: package specifiers.
// The rootDir is the starting directory for node_modules lookup.
func NewNPMResolver(fs themefs.FileSystem, rootDir string) *NPMResolver {
	return &NPMResolver{fs: fs, rootDir: rootDir}
}

// Resolve walks up from rootDir looking for node_modules/<package>/<file>.
func (r *NPMResolver) Resolve(spec string) (*ResolvedFile, error) {
	parsed := Parse(spec)
	if parsed.Kind != KindNPM {
		return nil, fmt.Errorf("not an npm specifier: %s", spec)
	}
	if parsed.File == "" {
		return nil, fmt.Errorf("npm specifier %s names no file", spec)
	}

	dir := r.rootDir
	if !filepath.IsAbs(dir) {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", dir, err)
		}
		dir = absDir
	}
	startDir := dir

	for {
		candidate := filepath.Join(dir, "node_modules", parsed.Package, parsed.File)
		if r.fs.Exists(candidate) {
			return &ResolvedFile{Specifier: spec, Path: candidate, Kind: KindNPM}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, fmt.Errorf("%w: %s (looked in node_modules starting from %s)", ErrPackageNotFound, parsed.Package, startDir)
}

// CanResolve returns true for npm: specifiers.
func (r *NPMResolver) CanResolve(spec string) bool {
	return IsPackageSpecifier(spec)
}

// PassthroughResolver returns local paths and URLs unchanged.
type PassthroughResolver struct{}

// Resolve returns spec unchanged.
func (PassthroughResolver) Resolve(spec string) (*ResolvedFile, error) {
	return &ResolvedFile{Specifier: spec, Path: spec, Kind: Parse(spec).Kind}, nil
}

// CanResolve returns true for anything that is not a package specifier.
func (PassthroughResolver) CanResolve(spec string) bool {
	return !IsPackageSpecifier(spec)
}

// NewDefaultResolver creates a resolver chain that handles npm: specifiers,
// local paths and URLs.
func NewDefaultResolver(fs themefs.FileSystem, rootDir string) Resolver {
	return NewChainResolver(
		NewNPMResolver(fs, rootDir),
		PassthroughResolver{},
	)
}
