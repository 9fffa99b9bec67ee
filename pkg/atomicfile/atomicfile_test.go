package atomicfile

import (
	"fmt"
	"os"
	"testing"

	"github.com/oneconcern/sitemod/pkg/errors"
	"github.com/oneconcern/sitemod/pkg/status"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const original = "original content"

func setupTarget(t *testing.T) afero.Fs {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "seo/sitemap.xml", []byte(original), 0644))
	return fs
}

func listDir(t *testing.T, fs afero.Fs, dir string) []string {
	infos, err := afero.ReadDir(fs, dir)
	require.NoError(t, err)
	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		names = append(names, fi.Name())
	}
	return names
}

func TestWrite(t *testing.T) {
	fs := setupTarget(t)
	require.NoError(t, Write(fs, "seo/sitemap.xml", []byte("updated content")))

	b, err := afero.ReadFile(fs, "seo/sitemap.xml")
	require.NoError(t, err)
	assert.Equal(t, "updated content", string(b))
	assert.Equal(t, []string{"sitemap.xml"}, listDir(t, fs, "seo"), "no temp files left behind")
}

// brokenWriteFs hands out files whose Write always fails
type brokenWriteFs struct {
	afero.Fs
}

type brokenFile struct {
	afero.File
}

func (f brokenFile) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("disk full")
}

func (fs brokenWriteFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	file, err := fs.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return brokenFile{File: file}, nil
}

func TestWriteFailureLeavesOriginal(t *testing.T) {
	fs := setupTarget(t)
	err := Write(brokenWriteFs{Fs: fs}, "seo/sitemap.xml", []byte("updated content"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrWriteFailure))

	b, rerr := afero.ReadFile(fs, "seo/sitemap.xml")
	require.NoError(t, rerr)
	assert.Equal(t, original, string(b))
	assert.Equal(t, []string{"sitemap.xml"}, listDir(t, fs, "seo"), "failed temp file is cleaned up")
}

// brokenRenameFs fails the final rename
type brokenRenameFs struct {
	afero.Fs
}

func (fs brokenRenameFs) Rename(oldname, newname string) error {
	return fmt.Errorf("cross-device link")
}

func TestRenameFailureLeavesOriginal(t *testing.T) {
	fs := setupTarget(t)
	err := Write(brokenRenameFs{Fs: fs}, "seo/sitemap.xml", []byte("updated content"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrWriteFailure))

	b, rerr := afero.ReadFile(fs, "seo/sitemap.xml")
	require.NoError(t, rerr)
	assert.Equal(t, original, string(b))
	assert.Equal(t, []string{"sitemap.xml"}, listDir(t, fs, "seo"))
}
