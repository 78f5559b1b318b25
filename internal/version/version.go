/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version reports the themevars build. Release builds stamp the
// variables below with
//
//	-ldflags "-X bennypowers.dev/themevars/internal/version.Version=v1.2.0"
//
// and `go install` builds fall back to the module version.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

const unknown = "unknown"

var (
	Version   = "dev"
	GitCommit = unknown
	GitTag    = unknown
	BuildTime = unknown
	GitDirty  = ""
)

// Get returns the themevars version: the stamped Version, then the module
// version, then a tag-commit string from git metadata, then "dev".
func Get() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	if v, ok := fromGit(GitTag, GitCommit, GitDirty); ok {
		return v
	}
	return "dev"
}

// fromGit builds "tag-abcdef1[-dirty]". The commit suffix is skipped when
// the tag already ends with it.
func fromGit(tag, commit, dirty string) (string, bool) {
	if tag == unknown || commit == unknown {
		return "", false
	}
	v := tag
	if commit != "" {
		short := commit
		if len(short) > 7 {
			short = short[:7]
		}
		if !strings.HasSuffix(tag, short) {
			v = tag + "-" + short
		}
	}
	if dirty == "dirty" {
		v += "-dirty"
	}
	return v, true
}

// UserAgent returns the HTTP User-Agent sent when fetching remote themes.
func UserAgent() string {
	return "themevars/" + Get() + " (" + runtime.GOOS + "/" + runtime.GOARCH + ")"
}

// Full returns the version with the commit it was built from, when known.
func Full() string {
	if GitCommit != unknown {
		return fmt.Sprintf("%s (commit: %s)", Get(), GitCommit)
	}
	return Get()
}

// Info returns build metadata for `themevars version --format json`.
func Info() map[string]string {
	return map[string]string{
		"version":   Get(),
		"gitCommit": GitCommit,
		"gitTag":    GitTag,
		"buildTime": BuildTime,
		"gitDirty":  GitDirty,
		"goVersion": runtime.Version(),
		"userAgent": UserAgent(),
	}
}
