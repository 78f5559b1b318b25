/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for themevars.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/themevars/parser"
)

// Config represents the themevars configuration.
type Config struct {
	// Files specifies CSS theme files to load (paths or globs).
	Files []FileSpec `yaml:"files" json:"files"`

	// Collection is the default collection name stamped on every token.
	Collection string `yaml:"collection" json:"collection"`

	// CacheSize bounds the color conversion cache. Zero selects the default.
	CacheSize int `yaml:"cacheSize" json:"cacheSize"`

	// Format is the default output format for the convert command.
	Format string `yaml:"format" json:"format"`
}

// FileSpec represents a theme file specification.
// It can be specified as a simple string path or as an object with overrides.
type FileSpec struct {
	// Path is the file path, which may contain globs.
	Path string `yaml:"path" json:"path"`

	// Collection overrides the global collection for this file.
	Collection string `yaml:"collection" json:"collection"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// OptionsForFile returns parser.Options for path.
// A matching file-level collection takes precedence over the global one.
func (c *Config) OptionsForFile(path string) parser.Options {
	opts := parser.Options{
		Source:     path,
		Collection: c.Collection,
	}

	for _, spec := range c.Files {
		if spec.Path == path {
			if spec.Collection != "" {
				opts.Collection = spec.Collection
			}
			break
		}
	}

	return opts
}

// FilePaths returns the list of file paths from all FileSpecs.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, spec := range c.Files {
		paths = append(paths, spec.Path)
	}
	return paths
}
