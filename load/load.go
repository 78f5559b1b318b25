/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading theme files into
// token sets.
package load

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"bennypowers.dev/themevars/color"
	"bennypowers.dev/themevars/config"
	"bennypowers.dev/themevars/fs"
	"bennypowers.dev/themevars/internal/logger"
	"bennypowers.dev/themevars/parser"
	"bennypowers.dev/themevars/specifier"
	"bennypowers.dev/themevars/token"
)

var (
	// ErrNoFiles indicates that neither arguments nor config named a file.
	ErrNoFiles = errors.New("no files specified and no files found in config")

	// ErrNetworkDisabled indicates a URL was given without a Fetcher.
	ErrNetworkDisabled = errors.New("network access is disabled")
)

// Options configures how theme files are loaded.
type Options struct {
	// Root is the directory relative paths and config lookup start from.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Config overrides the config file found under Root.
	Config *config.Config

	// Collection is stamped on every token.
	// Takes precedence over config file if set.
	Collection string

	// Converter normalizes colors. Defaults to color.Default() if nil.
	Converter *color.Converter

	// Fetcher enables loading http:// and https:// specs.
	// Nil means URLs fail with ErrNetworkDisabled (default).
	Fetcher Fetcher

	// CDN serves npm: specifiers missing from node_modules when Fetcher is
	// set. Defaults to unpkg.
	CDN specifier.CDN

	// FetchTimeout is the maximum time to wait for a network fetch.
	// Defaults to DefaultTimeout when zero. Has no effect if Fetcher is nil.
	FetchTimeout time.Duration
}

// File is one loaded theme file.
type File struct {
	// Spec is the path or URL as given.
	Spec string
	// Set holds the parsed tokens.
	Set *token.TokenSet
}

// Load loads a theme from a local path, an npm: specifier resolved through
// node_modules or, with a Fetcher, a URL.
//
// The loading process:
//  1. Loads config from .config/theme-vars.yaml unless Options.Config is set
//  2. Picks the collection: Options, then the matching file spec, then config
//  3. Reads the file content, resolving npm: specifiers and fetching URLs
//  4. Parses the content into a token set
func Load(ctx context.Context, spec string, opts Options) (*token.TokenSet, error) {
	filesystem, root, cfg, err := setup(opts)
	if err != nil {
		return nil, err
	}

	collection := opts.Collection
	if collection == "" {
		collection = cfg.Collection
		if fileSpec, ok := cfg.SpecFor(root, absPath(root, spec)); ok && fileSpec.Collection != "" {
			collection = fileSpec.Collection
		}
	}

	content, err := readContent(ctx, spec, root, filesystem, opts)
	if err != nil {
		return nil, err
	}

	p := parser.NewCSSParser(opts.Converter)
	set, err := p.Parse(string(content), parser.Options{
		Source:     spec,
		Collection: collection,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", spec, err)
	}
	return set, nil
}

// Specs returns the specs to load: args with globs expanded, or the config
// file list when args is empty.
func Specs(args []string, opts Options) ([]string, error) {
	filesystem, root, cfg, err := setup(opts)
	if err != nil {
		return nil, err
	}

	var specs []string
	if len(args) == 0 {
		specs, err = cfg.ExpandFiles(filesystem, root)
		if err != nil {
			return nil, fmt.Errorf("error expanding config files: %w", err)
		}
	} else {
		for _, arg := range args {
			if IsURL(arg) || specifier.IsPackageSpecifier(arg) {
				specs = append(specs, arg)
				continue
			}
			expanded, err := config.ExpandPattern(filesystem, root, arg)
			if err != nil {
				return nil, fmt.Errorf("error expanding %s: %w", arg, err)
			}
			specs = append(specs, expanded...)
		}
	}

	if len(specs) == 0 {
		return nil, ErrNoFiles
	}
	return specs, nil
}

// All loads every spec. Files that fail to load are reported through
// onError and skipped.
func All(ctx context.Context, specs []string, opts Options, onError func(spec string, err error)) []File {
	files := make([]File, 0, len(specs))
	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			if onError != nil {
				onError(spec, err)
			}
			return files
		}
		set, err := Load(ctx, spec, opts)
		if err != nil {
			if onError != nil {
				onError(spec, err)
			}
			continue
		}
		files = append(files, File{Spec: spec, Set: set})
	}
	return files
}

// Merge concatenates the sets of files mode by mode.
func Merge(files []File) *token.TokenSet {
	merged := token.NewTokenSet()
	for _, f := range files {
		for _, mode := range token.Modes() {
			merged.Append(mode, f.Set.List(mode)...)
		}
	}
	return merged
}

// IsURL reports whether spec is fetched over the network.
func IsURL(spec string) bool {
	return specifier.Parse(spec).IsURL()
}

func setup(opts Options) (fs.FileSystem, string, *config.Config, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, "", nil, fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = absRoot
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.LoadOrDefault(filesystem, root)
	}
	return filesystem, root, cfg, nil
}

func absPath(root, spec string) string {
	if IsURL(spec) || specifier.IsPackageSpecifier(spec) || filepath.IsAbs(spec) {
		return spec
	}
	return filepath.Join(root, spec)
}

func readContent(ctx context.Context, spec, root string, filesystem fs.FileSystem, opts Options) ([]byte, error) {
	parsed := specifier.Parse(spec)
	switch parsed.Kind {
	case specifier.KindURL:
		return fetch(ctx, spec, opts)
	case specifier.KindNPM:
		resolved, err := specifier.NewNPMResolver(filesystem, root).Resolve(spec)
		if err == nil {
			return readFile(filesystem, resolved.Path)
		}
		if opts.Fetcher == nil || !errors.Is(err, specifier.ErrPackageNotFound) {
			return nil, err
		}
		url, ok := specifier.CDNURL(spec, opts.CDN)
		if !ok {
			return nil, err
		}
		logger.Debug("%s not in node_modules, fetching %s", spec, url)
		return fetch(ctx, url, opts)
	default:
		return readFile(filesystem, absPath(root, spec))
	}
}

func readFile(filesystem fs.FileSystem, path string) ([]byte, error) {
	content, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return content, nil
}

func fetch(ctx context.Context, url string, opts Options) ([]byte, error) {
	if opts.Fetcher == nil {
		return nil, fmt.Errorf("%s: %w", url, ErrNetworkDisabled)
	}

	timeout := opts.FetchTimeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return opts.Fetcher.Fetch(ctx, url)
}
