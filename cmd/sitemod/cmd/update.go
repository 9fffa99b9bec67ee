// Copyright © 2018 One Concern

package cmd

import (
	"context"
	"os"

	"github.com/oneconcern/sitemod/pkg/core"
	"github.com/oneconcern/sitemod/pkg/dlogger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// updateFS is the filesystem the update pipeline runs against. Patched in tests.
var updateFS = afero.NewOsFs()

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the sitemap from git or filesystem modification dates",
	Long: `Update the lastmod, changefreq and priority fields of every sitemap entry
that matches a configured route.

Dates come from the most recent git commit touching the route's template
file; files unknown to git (or when git is unavailable) fall back to the
file modification timestamp. With --use-filesystem, git is never consulted.

The sitemap is replaced atomically, and only when at least one field changed.
Exit status is nonzero only for fatal errors (missing sitemap, invalid
configuration, failed write): per-route problems are reported and the run
continues.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger, err := dlogger.GetLogger(sitemodFlags.root.logLevel)
		if err != nil {
			wrapFatalln("invalid log level "+sitemodFlags.root.logLevel, err)
			return
		}
		reg, err := config.toRegistry()
		if err != nil {
			wrapFatalln("configuration", err)
			return
		}
		sitemapPath := sitemodFlags.update.sitemap
		if sitemapPath == "" {
			sitemapPath = config.Sitemap
		}
		rpt, err := core.Update(context.Background(), reg,
			core.WithFS(updateFS),
			core.SitemapPath(sitemapPath),
			core.ProjectRoot(sitemodFlags.update.root),
			core.FilesystemOnly(sitemodFlags.update.useFilesystem),
			core.WithLogger(logger),
		)
		if rpt != nil {
			rpt.Summary(os.Stdout)
		}
		if err != nil {
			wrapFatalln("update sitemap", err)
			return
		}
	},
}

func init() {
	addSitemapFlag(updateCmd)
	addRootDirFlag(updateCmd)
	addUseFilesystemFlag(updateCmd)
	rootCmd.AddCommand(updateCmd)
}
