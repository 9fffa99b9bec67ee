package resolver

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/oneconcern/sitemod/pkg/errors"
	"github.com/oneconcern/sitemod/pkg/model"
	"github.com/oneconcern/sitemod/pkg/status"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMtime = time.Date(2025, 3, 4, 15, 0, 0, 0, time.UTC)

func setupFs(t *testing.T) afero.Fs {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "site/templates/index.html", []byte("<html/>"), 0644))
	require.NoError(t, fs.Chtimes("site/templates/index.html", testMtime, testMtime))
	return fs
}

// patchGitLog replaces the git subprocess for the duration of a test
func patchGitLog(t *testing.T, fn func(ctx context.Context, dir, file string) (string, error)) {
	orig := gitLog
	gitLog = fn
	t.Cleanup(func() { gitLog = orig })
}

func TestResolveFromGit(t *testing.T) {
	patchGitLog(t, func(_ context.Context, dir, file string) (string, error) {
		assert.Equal(t, "site", dir)
		assert.Equal(t, "templates/index.html", file)
		return "2025-11-12T10:30:45+03:00", nil
	})

	r := New(setupFs(t), "site")
	rd, warn, err := r.Resolve(context.Background(), "templates/index.html")
	require.NoError(t, err)
	assert.Empty(t, warn)
	assert.Equal(t, model.SourceGit, rd.Source)
	assert.True(t, rd.Tracked)
	assert.Equal(t, "2025-11-12", rd.Lastmod())
}

func TestResolveUntrackedFallsBack(t *testing.T) {
	patchGitLog(t, func(context.Context, string, string) (string, error) {
		return "", nil // tracked repo, file unknown to git
	})

	r := New(setupFs(t), "site")
	rd, warn, err := r.Resolve(context.Background(), "templates/index.html")
	require.NoError(t, err)
	assert.Contains(t, warn, "not tracked in git")
	assert.Equal(t, model.SourceFilesystem, rd.Source)
	assert.False(t, rd.Tracked)
	assert.Equal(t, testMtime.Format(model.DateFormat), rd.Lastmod())
}

func TestResolveGitUnavailableFallsBackSilently(t *testing.T) {
	patchGitLog(t, func(context.Context, string, string) (string, error) {
		return "", fmt.Errorf("exec: \"git\": executable file not found in $PATH")
	})

	r := New(setupFs(t), "site")
	rd, warn, err := r.Resolve(context.Background(), "templates/index.html")
	require.NoError(t, err)
	assert.Empty(t, warn)
	assert.Equal(t, model.SourceFilesystem, rd.Source)
}

func TestResolveFilesystemOnlyNeverInvokesGit(t *testing.T) {
	patchGitLog(t, func(context.Context, string, string) (string, error) {
		t.Fatal("git must not be invoked in filesystem-only mode")
		return "", nil
	})

	r := New(setupFs(t), "site", FilesystemOnly(true))
	rd, warn, err := r.Resolve(context.Background(), "templates/index.html")
	require.NoError(t, err)
	assert.Empty(t, warn)
	assert.Equal(t, model.SourceFilesystem, rd.Source)
	assert.False(t, rd.Tracked)
}

func TestResolveMissingFile(t *testing.T) {
	calls := 0
	patchGitLog(t, func(context.Context, string, string) (string, error) {
		calls++
		return "2025-11-12T10:30:45+03:00", nil
	})

	r := New(setupFs(t), "site")
	_, _, err := r.Resolve(context.Background(), "templates/gone.html")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrFileNotFound))
	assert.Zero(t, calls, "a missing file fails before git is consulted")
}

func TestResolveBadGitDateFallsBack(t *testing.T) {
	patchGitLog(t, func(context.Context, string, string) (string, error) {
		return "not-a-date", nil
	})

	r := New(setupFs(t), "site")
	rd, warn, err := r.Resolve(context.Background(), "templates/index.html")
	require.NoError(t, err)
	assert.Empty(t, warn)
	assert.Equal(t, model.SourceFilesystem, rd.Source)
}
