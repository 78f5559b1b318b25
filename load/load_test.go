/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/themevars/config"
	"bennypowers.dev/themevars/load"
	"bennypowers.dev/themevars/specifier"
	"bennypowers.dev/themevars/testutil"
	"bennypowers.dev/themevars/token"
)

// mockFetcher implements load.Fetcher for testing.
type mockFetcher struct {
	content []byte
	err     error
	called  bool
	url     string
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	m.called = true
	m.url = url
	if m.err != nil {
		return nil, m.err
	}
	return m.content, nil
}

func names(tokens []*token.Token) []string {
	out := []string{}
	for _, tok := range tokens {
		out = append(out, tok.Name)
	}
	return out
}

func TestLoad_LocalFile(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/css/shadcn", "/project")

	set, err := load.Load(t.Context(), "theme.css", load.Options{Root: "/project", FS: mfs})
	require.NoError(t, err)

	assert.Len(t, set.Light, 6)
	assert.Len(t, set.Dark, 5)
	assert.Empty(t, set.Global)
	assert.Equal(t, "theme.css", set.Light[0].Source)
}

func TestLoad_CollectionFromConfig(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")

	tests := []struct {
		spec string
		opts load.Options
		want string
	}{
		{"themes/base.css", load.Options{}, "Theme"},
		{"themes/brand/palette.css", load.Options{}, "Brand"},
		{"/project/themes/brand/palette.css", load.Options{}, "Brand"},
		{"themes/brand/palette.css", load.Options{Collection: "Override"}, "Override"},
	}

	for _, tt := range tests {
		t.Run(tt.spec+"/"+tt.want, func(t *testing.T) {
			opts := tt.opts
			opts.Root = "/project"
			opts.FS = mfs

			set, err := load.Load(t.Context(), tt.spec, opts)
			require.NoError(t, err)
			require.NotEmpty(t, set.All())
			for _, tok := range set.All() {
				assert.Equal(t, tt.want, tok.Collection, tok.Name)
			}
		})
	}
}

func TestLoad_ExplicitConfig(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/css/single-mode", "/project")

	set, err := load.Load(t.Context(), "theme.css", load.Options{
		Root:   "/project",
		FS:     mfs,
		Config: &config.Config{Collection: "Explicit"},
	})
	require.NoError(t, err)
	require.Len(t, set.Global, 4)
	assert.Equal(t, "Explicit", set.Global[0].Collection)
}

func TestLoad_FileNotFound(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/css/shadcn", "/project")

	_, err := load.Load(t.Context(), "missing.css", load.Options{Root: "/project", FS: mfs})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/project/missing.css")
}

func TestLoad_URLWithFetcher(t *testing.T) {
	fetcher := &mockFetcher{content: []byte(":root { --a: #fff; }\n.dark { --a: #000; }")}

	set, err := load.Load(t.Context(), "https://example.com/theme.css", load.Options{
		Root:    "/",
		FS:      testutil.NewFixtureFS(t, "fixtures/config/empty", "/"),
		Fetcher: fetcher,
	})
	require.NoError(t, err)
	assert.True(t, fetcher.called)
	assert.Equal(t, "https://example.com/theme.css", fetcher.url)
	assert.Equal(t, []string{"a"}, names(set.Light))
	assert.Equal(t, "https://example.com/theme.css", set.Light[0].Source)
}

func TestLoad_URLWithoutFetcher(t *testing.T) {
	_, err := load.Load(t.Context(), "https://example.com/theme.css", load.Options{
		Root: "/",
		FS:   testutil.NewFixtureFS(t, "fixtures/config/empty", "/"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, load.ErrNetworkDisabled))
}

func TestLoad_FetchError(t *testing.T) {
	fetcher := &mockFetcher{err: fmt.Errorf("unavailable")}
	_, err := load.Load(t.Context(), "http://example.com/theme.css", load.Options{
		Root:    "/",
		FS:      testutil.NewFixtureFS(t, "fixtures/config/empty", "/"),
		Fetcher: fetcher,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unavailable")
}

func TestLoad_LocalPathNeverTriggersNetwork(t *testing.T) {
	fetcher := &mockFetcher{}
	_, err := load.Load(t.Context(), "missing.css", load.Options{
		Root:    "/project",
		FS:      testutil.NewFixtureFS(t, "fixtures/config/empty", "/project"),
		Fetcher: fetcher,
	})
	require.Error(t, err)
	assert.False(t, fetcher.called)
}

func TestLoad_NPMSpecifier(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/npm", "/project")
	fetcher := &mockFetcher{}

	set, err := load.Load(t.Context(), "npm:@acme/theme/globals.css", load.Options{
		Root:    "/project",
		FS:      mfs,
		Fetcher: fetcher,
	})
	require.NoError(t, err)
	assert.False(t, fetcher.called)
	assert.Equal(t, []string{"primary", "radius"}, names(set.Light))
	assert.Equal(t, []string{"primary"}, names(set.Dark))
	assert.Equal(t, "npm:@acme/theme/globals.css", set.Light[0].Source)
}

func TestLoad_NPMFallsBackToCDN(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/npm", "/project")
	fetcher := &mockFetcher{content: []byte(":root { --ring: #336699; }")}

	set, err := load.Load(t.Context(), "npm:@acme/other@1.0.0/theme.css", load.Options{
		Root:    "/project",
		FS:      mfs,
		Fetcher: fetcher,
		CDN:     specifier.CDNJsdelivr,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.jsdelivr.net/npm/@acme/other@1.0.0/theme.css", fetcher.url)
	assert.Equal(t, []string{"ring"}, names(set.Global))
}

func TestLoad_NPMMissingWithoutFetcher(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/npm", "/project")

	_, err := load.Load(t.Context(), "npm:@acme/other/theme.css", load.Options{Root: "/project", FS: mfs})
	require.Error(t, err)
	assert.ErrorIs(t, err, specifier.ErrPackageNotFound)
}

func TestSpecs(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")
	opts := load.Options{Root: "/project", FS: mfs}

	t.Run("from config", func(t *testing.T) {
		specs, err := load.Specs(nil, opts)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"/project/themes/accent.css",
			"/project/themes/base.css",
			"/project/themes/brand/palette.css",
		}, specs)
	})

	t.Run("from args", func(t *testing.T) {
		specs, err := load.Specs([]string{"themes/**/*.css", "https://example.com/x.css", "npm:@acme/theme/globals.css"}, opts)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"/project/themes/accent.css",
			"/project/themes/base.css",
			"/project/themes/brand/palette.css",
			"https://example.com/x.css",
			"npm:@acme/theme/globals.css",
		}, specs)
	})

	t.Run("nothing to load", func(t *testing.T) {
		empty := testutil.NewFixtureFS(t, "fixtures/config/empty", "/project")
		_, err := load.Specs(nil, load.Options{Root: "/project", FS: empty})
		assert.ErrorIs(t, err, load.ErrNoFiles)
	})
}

func TestAll_ReportsFailuresAndContinues(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")
	opts := load.Options{Root: "/project", FS: mfs}

	var failed []string
	files := load.All(t.Context(), []string{
		"/project/themes/base.css",
		"/project/themes/missing.css",
		"/project/themes/accent.css",
	}, opts, func(spec string, err error) {
		failed = append(failed, spec)
	})

	assert.Equal(t, []string{"/project/themes/missing.css"}, failed)
	require.Len(t, files, 2)
	assert.Equal(t, "/project/themes/base.css", files[0].Spec)

	merged := load.Merge(files)
	assert.Equal(t, []string{"background", "radius"}, names(merged.Light))
	assert.Equal(t, []string{"background"}, names(merged.Dark))
	assert.Equal(t, []string{"accent"}, names(merged.Global))
}

func TestAll_CancelledContext(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	var errs []error
	files := load.All(ctx, []string{"/project/themes/base.css"}, load.Options{Root: "/project", FS: mfs},
		func(_ string, err error) { errs = append(errs, err) })

	assert.Empty(t, files)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], context.Canceled)
}
