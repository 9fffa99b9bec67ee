package core

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const defaultSitemapPath = "seo/sitemap.xml"

type settings struct {
	fs          afero.Fs
	sitemapPath string
	root        string
	fsOnly      bool
	l           *zap.Logger
}

// Option is a functor to alter the behavior of an update run
type Option func(*settings)

// WithFS sets the filesystem the run operates on (the OS filesystem by default)
func WithFS(fs afero.Fs) Option {
	return func(s *settings) {
		if fs != nil {
			s.fs = fs
		}
	}
}

// SitemapPath overrides the location of the sitemap file
func SitemapPath(path string) Option {
	return func(s *settings) {
		if path != "" {
			s.sitemapPath = path
		}
	}
}

// ProjectRoot sets the directory template paths and git queries resolve against
func ProjectRoot(root string) Option {
	return func(s *settings) {
		if root != "" {
			s.root = root
		}
	}
}

// FilesystemOnly forces date resolution from file modification timestamps,
// never consulting git
func FilesystemOnly(enabled bool) Option {
	return func(s *settings) {
		s.fsOnly = enabled
	}
}

// WithLogger sets a logger on the run
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.l = l
		}
	}
}

func defaultSettings() settings {
	return settings{
		fs:          afero.NewOsFs(),
		sitemapPath: defaultSitemapPath,
		root:        ".",
		l:           zap.NewNop(),
	}
}
