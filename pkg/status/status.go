// Package status exports errors produced by the sitemap update pipeline.
package status

import (
	"github.com/oneconcern/sitemod/pkg/errors"
)

var (
	// ErrSitemapMissing indicates the sitemap file is absent. This is fatal: there is nothing to update.
	ErrSitemapMissing = errors.New("sitemap file does not exist")

	// ErrSitemapInvalid indicates the sitemap file is present but not a parseable sitemap document
	ErrSitemapInvalid = errors.New("sitemap document is invalid")

	// ErrFileNotFound indicates a route's template file exists neither in git history nor on disk.
	// Fatal for that route only, the run continues with the remaining routes.
	ErrFileNotFound = errors.New("template file does not exist")

	// ErrConfig indicates an invalid route configuration, reported before any file I/O begins
	ErrConfig = errors.New("invalid configuration")

	// ErrWriteFailure indicates the atomic replace of the sitemap failed. The original file is left untouched.
	ErrWriteFailure = errors.New("failed to write sitemap")
)
