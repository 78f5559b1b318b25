/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides fixture and golden-file helpers for themevars tests.
package testutil

import (
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/themevars/internal/mapfs"
)

// updateGolden rewrites golden files with actual output when -update is set.
var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// testdataCandidates lists where testdata/rel may live relative to a
// package directory. Go runs tests from the package directory, which is
// one or two levels below the module root.
func testdataCandidates(rel string) []string {
	return []string{
		filepath.Join("testdata", rel),
		filepath.Join("..", "testdata", rel),
		filepath.Join("..", "..", "testdata", rel),
	}
}

// NewFixtureFS copies testdata/fixtureDir into a MapFileSystem rooted at
// rootPath.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	var fixturePath string
	for _, p := range testdataCandidates(fixtureDir) {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			fixturePath = p
			break
		}
	}
	if fixturePath == "" {
		t.Fatalf("could not find fixture directory %s", fixtureDir)
	}

	mfs := mapfs.New()
	err := filepath.WalkDir(fixturePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(fixturePath, path)
		if err != nil {
			return err
		}
		mfs.AddFile(filepath.ToSlash(filepath.Join(rootPath, rel)), string(content), 0644)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to load fixtures from %s: %v", fixtureDir, err)
	}

	return mfs
}

// LoadFixtureFile reads testdata/fixturePath.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()

	for _, p := range testdataCandidates(fixturePath) {
		if content, err := os.ReadFile(p); err == nil {
			return content
		}
	}
	t.Fatalf("failed to read fixture %s", fixturePath)
	return nil
}

// UpdateGoldenFile writes actual to testdata/goldenPath when -update is set.
func UpdateGoldenFile(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()
	if !*updateGolden {
		return
	}

	candidates := testdataCandidates(goldenPath)
	target := candidates[0]
	for _, p := range candidates {
		if _, err := os.Stat(filepath.Dir(p)); err == nil {
			target = p
			break
		}
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		t.Fatalf("failed to create directory for golden file %s: %v", goldenPath, err)
	}
	if err := os.WriteFile(target, actual, 0644); err != nil {
		t.Fatalf("failed to write golden file %s: %v", goldenPath, err)
	}
	t.Logf("updated golden file: %s", target)
}

// Golden updates goldenPath when -update is set and returns its content.
func Golden(t *testing.T, goldenPath string, actual []byte) []byte {
	t.Helper()
	UpdateGoldenFile(t, goldenPath, actual)
	return LoadFixtureFile(t, goldenPath)
}
