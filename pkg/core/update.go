// Copyright © 2018 One Concern

// Package core implements the sitemap update pipeline: resolve a
// modification date for every configured route, apply changed crawl hints to
// the matching sitemap entries, and atomically rewrite the file.
package core

import (
	"bytes"
	"context"
	"fmt"

	"github.com/oneconcern/sitemod/pkg/atomicfile"
	"github.com/oneconcern/sitemod/pkg/model"
	"github.com/oneconcern/sitemod/pkg/registry"
	"github.com/oneconcern/sitemod/pkg/report"
	"github.com/oneconcern/sitemod/pkg/resolver"
	"github.com/oneconcern/sitemod/pkg/sitemap"
	"go.uber.org/zap"
)

// Update runs the pipeline over every route in the registry, sequentially
// and in declaration order. Each route is attempted exactly once.
//
// Per-route failures (e.g. a missing template file) are recorded in the
// report and never abort sibling routes. A returned error is fatal for the
// whole run: sitemap missing, or the final write failed (in which case the
// original sitemap is untouched).
func Update(ctx context.Context, reg *registry.Registry, opts ...Option) (*report.Report, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	doc, err := sitemap.Load(s.fs, s.sitemapPath)
	if err != nil {
		return nil, err
	}

	res := resolver.New(s.fs, s.root,
		resolver.FilesystemOnly(s.fsOnly),
		resolver.WithLogger(s.l),
	)

	rpt := report.New()
	for _, route := range reg.Routes() {
		rd, warn, err := res.Resolve(ctx, route.File)
		if err != nil {
			rpt.Error(route.Path, fmt.Sprintf("%s: %v", route.File, err))
			s.l.Error("route failed", zap.String("route", route.Path), zap.String("file", route.File), zap.Error(err))
			continue
		}
		if warn != "" {
			rpt.Warning(route.Path, warn)
		}

		loc := reg.Loc(route)
		entry := doc.Find(loc)
		if entry == nil {
			// routes never insert entries, only update existing ones
			rpt.Warning(route.Path, fmt.Sprintf("no sitemap entry for %s, skipping", loc))
			continue
		}

		old := entry.LastMod
		if entry.Apply(rd.Lastmod(), model.FormatPriority(route.Priority), route.ChangeFreq) {
			rpt.Updated(route.Path, old, entry.LastMod, rd.Source)
			s.l.Debug("entry updated",
				zap.String("route", route.Path),
				zap.String("lastmod", entry.LastMod),
				zap.String("source", string(rd.Source)),
			)
		} else {
			rpt.Unchanged(route.Path, entry.LastMod)
		}
	}

	out := doc.Serialize()
	if rpt.Modified() == 0 && bytes.Equal(out, doc.Raw()) {
		s.l.Info("sitemap already up to date", zap.String("path", s.sitemapPath))
		return rpt, nil
	}

	if err := atomicfile.Write(s.fs, s.sitemapPath, out); err != nil {
		return rpt, err
	}
	s.l.Info("sitemap written", zap.String("path", s.sitemapPath), zap.Int("modified", rpt.Modified()))
	return rpt, nil
}
