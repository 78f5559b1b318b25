/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cli resolves the persistent flags, environment and config file
// shared by every themevars command.
package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bennypowers.dev/themevars/color"
	"bennypowers.dev/themevars/config"
	"bennypowers.dev/themevars/fs"
	"bennypowers.dev/themevars/internal/logger"
	"bennypowers.dev/themevars/load"
	"bennypowers.dev/themevars/specifier"
	"bennypowers.dev/themevars/token"
)

// EnvPrefix prefixes environment overrides, e.g. THEMEVARS_CACHE_SIZE.
const EnvPrefix = "THEMEVARS"

// Persistent flag keys.
const (
	KeyVerbose      = "verbose"
	KeyConfig       = "config"
	KeyCollection   = "collection"
	KeyCacheSize    = "cache-size"
	KeyAllowNetwork = "allow-network"
	KeyCDN          = "cdn"
)

// RegisterFlags adds the persistent flags to flags and binds them to viper.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.BoolP(KeyVerbose, "v", false, "Log skipped blocks and declarations to stderr")
	flags.String(KeyConfig, "", "Config file (default .config/theme-vars.{yaml,yml,json})")
	flags.String(KeyCollection, "", "Collection name stamped on every token")
	flags.Int(KeyCacheSize, color.DefaultCacheSize, "Color conversion cache capacity")
	flags.Bool(KeyAllowNetwork, false, "Allow loading http(s) theme URLs and npm: packages missing from node_modules")
	flags.String(KeyCDN, string(specifier.CDNUnpkg), "CDN for npm: packages missing from node_modules (unpkg, jsdelivr)")

	for _, key := range []string{KeyVerbose, KeyConfig, KeyCollection, KeyCacheSize, KeyAllowNetwork, KeyCDN} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Setup applies settings that take effect before any command runs.
func Setup() {
	logger.SetVerbose(viper.GetBool(KeyVerbose))
}

// Config loads the config named by --config, or the one under root.
func Config(filesystem fs.FileSystem, root string) (*config.Config, error) {
	if path := viper.GetString(KeyConfig); path != "" {
		return config.LoadFile(filesystem, path)
	}
	cfg, err := config.Load(filesystem, root)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return cfg, nil
}

// LoadOptions builds load.Options from flags, environment and config.
// Flags and environment take precedence over the config file.
func LoadOptions() (load.Options, *config.Config, error) {
	filesystem := fs.NewOSFileSystem()
	cfg, err := Config(filesystem, ".")
	if err != nil {
		return load.Options{}, nil, fmt.Errorf("error loading config: %w", err)
	}

	cacheSize := viper.GetInt(KeyCacheSize)
	if !viper.IsSet(KeyCacheSize) && cfg.CacheSize > 0 {
		cacheSize = cfg.CacheSize
	}

	var cdn specifier.CDN
	if name := viper.GetString(KeyCDN); name != "" {
		if cdn, err = specifier.ParseCDN(name); err != nil {
			return load.Options{}, nil, err
		}
	}

	opts := load.Options{
		Root:       ".",
		FS:         filesystem,
		Config:     cfg,
		Collection: viper.GetString(KeyCollection),
		Converter:  color.NewConverter(color.WithCache(color.NewCache(cacheSize))),
		CDN:        cdn,
	}
	if viper.GetBool(KeyAllowNetwork) {
		opts.Fetcher = load.NewHTTPFetcher(load.DefaultMaxSize)
	}
	return opts, cfg, nil
}

// LoadFiles resolves args (or the config file list) and loads each file.
// Failures are printed to stderr and skipped.
func LoadFiles(ctx context.Context, args []string, stderr io.Writer) ([]load.File, *config.Config, error) {
	opts, cfg, err := LoadOptions()
	if err != nil {
		return nil, nil, err
	}

	specs, err := load.Specs(args, opts)
	if err != nil {
		return nil, nil, err
	}

	files := load.All(ctx, specs, opts, func(spec string, err error) {
		fmt.Fprintf(stderr, "Error loading %s: %v\n", spec, err)
	})
	logger.Debug("loaded %d of %d files", len(files), len(specs))
	return files, cfg, nil
}

// LoadSet loads args like LoadFiles and merges the results.
func LoadSet(ctx context.Context, args []string, stderr io.Writer) (*token.TokenSet, *config.Config, error) {
	files, cfg, err := LoadFiles(ctx, args, stderr)
	if err != nil {
		return nil, nil, err
	}
	return load.Merge(files), cfg, nil
}

// WriteOutput writes data to path, creating parent directories, or to w
// when path is empty or "-".
func WriteOutput(filesystem fs.FileSystem, w io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := w.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := filesystem.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating %s: %w", dir, err)
		}
	}
	if err := filesystem.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	logger.Debug("wrote %s (%d bytes)", path, len(data))
	return nil
}
