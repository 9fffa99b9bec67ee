// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/sitemod/pkg/dlogger"
	"github.com/spf13/cobra"
)

var sitemodFlags flagsT

type flagsT struct {
	root struct {
		cfgFile  string
		logLevel string
	}
	update struct {
		sitemap       string
		root          string
		useFilesystem bool
	}
	doc struct {
		docTarget string
	}
}

const (
	configFlag        = "config"
	logLevelFlag      = "loglevel"
	sitemapFlag       = "sitemap"
	rootDirFlag       = "root"
	useFilesystemFlag = "use-filesystem"
	targetFlag        = "target"
)

func addConfigFlag(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&sitemodFlags.root.cfgFile, configFlag, "",
		"Set the config file (default is ./sitemod.yaml, then $HOME/.sitemod/sitemod.yaml)")
	return configFlag
}

func addLogLevelFlag(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&sitemodFlags.root.logLevel, logLevelFlag, dlogger.LogLevelInfo,
		"The logging level, one of: debug, info, none")
	return logLevelFlag
}

func addSitemapFlag(cmd *cobra.Command) string {
	cmd.Flags().StringVar(&sitemodFlags.update.sitemap, sitemapFlag, "",
		"Path to the sitemap file to update (overrides the config file)")
	return sitemapFlag
}

func addRootDirFlag(cmd *cobra.Command) string {
	cmd.Flags().StringVar(&sitemodFlags.update.root, rootDirFlag, ".",
		"Project root directory template paths and git queries resolve against")
	return rootDirFlag
}

func addUseFilesystemFlag(cmd *cobra.Command) string {
	cmd.Flags().BoolVar(&sitemodFlags.update.useFilesystem, useFilesystemFlag, false,
		"Use file modification timestamps instead of git history for every route")
	return useFilesystemFlag
}

func addTargetFlag(cmd *cobra.Command) string {
	cmd.Flags().StringVar(&sitemodFlags.doc.docTarget, targetFlag, ".",
		"The target directory where to generate the markdown documentation")
	return targetFlag
}
