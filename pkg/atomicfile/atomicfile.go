// Copyright © 2018 One Concern

// Package atomicfile replaces files through a same-directory temp file and
// rename, so a reader never observes a partially written target.
package atomicfile

import (
	"path/filepath"

	"github.com/oneconcern/sitemod/pkg/status"
	"github.com/spf13/afero"
)

// Write replaces target with data.
//
// The temp file lives in target's directory: the final rename stays on one
// filesystem, where rename is atomic. On any failure the temp file is
// removed and the original target is left as it was.
func Write(fs afero.Fs, target string, data []byte) error {
	dir := filepath.Dir(target)
	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(target)+".tmp")
	if err != nil {
		return status.ErrWriteFailure.Wrap(err)
	}
	name := tmp.Name()

	cleanup := func(cause error) error {
		_ = tmp.Close()
		_ = fs.Remove(name)
		return status.ErrWriteFailure.Wrap(cause)
	}

	if _, err = tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err = tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err = tmp.Close(); err != nil {
		_ = fs.Remove(name)
		return status.ErrWriteFailure.Wrap(err)
	}
	if err = fs.Rename(name, target); err != nil {
		_ = fs.Remove(name)
		return status.ErrWriteFailure.Wrap(err)
	}
	return nil
}
