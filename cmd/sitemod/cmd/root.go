// Copyright © 2018 One Concern

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sitemod",
	Short: "sitemod keeps sitemap SEO metadata current",
	Long: `sitemod updates the lastmod, changefreq and priority fields of a sitemap.xml,
sourcing modification dates from git history with a fallback to filesystem
timestamps.

It is meant to run as part of a build or deployment pipeline: routes are
declared once in sitemod.yaml, and every run rewrites the sitemap atomically,
only when something actually changed.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// version touches no files at all, not even the config
		if cmd == versionCmd {
			return
		}
		initConfig()
	},
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = NewVersionInfo().Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	addConfigFlag(rootCmd)
	addLogLevelFlag(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("sitemap", "seo/sitemap.xml")
	if sitemodFlags.root.cfgFile != "" {
		viper.SetConfigFile(sitemodFlags.root.cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.sitemod")
		viper.SetConfigName("sitemod")
	}

	viper.SetEnvPrefix("SITEMOD")
	viper.AutomaticEnv() // read in environment variables that match

	// a config file is not required when all parameters come from flags/env
	if err := viper.ReadInConfig(); err == nil {
		infoLogger.Println("Using config file:", viper.ConfigFileUsed())
	} else if sitemodFlags.root.cfgFile != "" {
		wrapFatalln("read config file", err)
		return
	}
	var err error
	config, err = newConfig()
	if err != nil {
		wrapFatalln("unmarshal config", err)
		return
	}
}
