// Copyright © 2018 One Concern

// Package resolver determines the last modification date of template files.
//
// Resolution walks an ordered list of strategies: git commit history first,
// then the filesystem modification timestamp. A resolver in filesystem-only
// mode never shells out to git at all.
package resolver

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/oneconcern/sitemod/pkg/model"
	"github.com/oneconcern/sitemod/pkg/status"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// gitLog returns the committer date of the most recent commit touching file,
// run from dir against the currently checked-out history.
// Declared as a variable so tests can patch over the subprocess call.
var gitLog = func(ctx context.Context, dir, file string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "log", "-1", "--format=%cI", "--", file)
	cmd.Dir = dir
	out, err := cmd.Output()
	return strings.TrimSpace(string(out)), err
}

// Option defines a resolver option
type Option func(*Resolver)

// WithLogger sets a logger on the resolver
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.l = l
		}
	}
}

// FilesystemOnly skips git entirely and resolves every file from its modification timestamp
func FilesystemOnly(enabled bool) Option {
	return func(r *Resolver) {
		r.fsOnly = enabled
	}
}

// Resolver resolves template file modification dates
type Resolver struct {
	fs     afero.Fs
	root   string
	fsOnly bool
	l      *zap.Logger

	strategies []strategy
}

// a strategy attempts one way of dating a file. When ok is false the next
// strategy is tried; note carries a user-facing warning to attach to the
// eventual result (e.g. "not tracked in git").
type strategy func(ctx context.Context, file string) (rd model.ResolvedDate, note string, ok bool)

// New creates a resolver for template files relative to root
func New(fs afero.Fs, root string, opts ...Option) *Resolver {
	r := &Resolver{
		fs:   fs,
		root: root,
		l:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.fsOnly {
		r.strategies = []strategy{r.fromFilesystem}
	} else {
		r.strategies = []strategy{r.fromGit, r.fromFilesystem}
	}
	return r
}

// Resolve returns the last modification date for file (a path relative to
// the project root), plus a non-empty warning when resolution had to fall
// back for a reason worth surfacing.
//
// A file absent from disk fails with status.ErrFileNotFound, regardless of
// any date git history may still hold for it.
func (r *Resolver) Resolve(ctx context.Context, file string) (model.ResolvedDate, string, error) {
	if _, err := r.fs.Stat(filepath.Join(r.root, file)); err != nil {
		if os.IsNotExist(err) {
			return model.ResolvedDate{}, "", status.ErrFileNotFound.WrapMessage(file)
		}
		return model.ResolvedDate{}, "", status.ErrFileNotFound.Wrap(err)
	}

	var warning string
	for _, resolve := range r.strategies {
		rd, note, ok := resolve(ctx, file)
		if note != "" {
			warning = note
		}
		if ok {
			return rd, warning, nil
		}
	}
	// not reachable once the file passed the Stat above, short of a race with a concurrent delete
	return model.ResolvedDate{}, warning, status.ErrFileNotFound.WrapMessage(file)
}

func (r *Resolver) fromGit(ctx context.Context, file string) (model.ResolvedDate, string, bool) {
	out, err := gitLog(ctx, r.root, file)
	if err != nil {
		// git binary missing, not a repository, etc.: fall back silently
		r.l.Debug("git history unavailable", zap.String("file", file), zap.Error(err))
		return model.ResolvedDate{}, "", false
	}
	if out == "" {
		r.l.Warn("file not tracked in git, using filesystem date", zap.String("file", file))
		return model.ResolvedDate{}, file + " not tracked in git, using filesystem date", false
	}
	date, err := time.Parse(time.RFC3339, out)
	if err != nil {
		r.l.Debug("unparseable git date", zap.String("file", file), zap.String("date", out), zap.Error(err))
		return model.ResolvedDate{}, "", false
	}
	return model.ResolvedDate{Date: date, Source: model.SourceGit, Tracked: true}, "", true
}

func (r *Resolver) fromFilesystem(_ context.Context, file string) (model.ResolvedDate, string, bool) {
	fi, err := r.fs.Stat(filepath.Join(r.root, file))
	if err != nil {
		return model.ResolvedDate{}, "", false
	}
	return model.ResolvedDate{Date: fi.ModTime(), Source: model.SourceFilesystem, Tracked: false}, "", true
}
