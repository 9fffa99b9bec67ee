package cmd

import (
	"io/ioutil"
	"os"
	"os/user"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/spf13/cobra"
)

var configGen = &cobra.Command{
	Use:   "create",
	Short: "Create a config",
	Long:  "Create a starter config for sitemod. Config file will be placed in $HOME/.sitemod/sitemod.yaml",
	Run: func(cmd *cobra.Command, args []string) {
		user, err := user.Current()
		if user == nil || err != nil {
			wrapFatalln("Could not get home directory for user", nil)
			return
		}
		starter := CLIConfig{
			BaseURL: "https://example.com",
			Sitemap: "seo/sitemap.xml",
			Routes: []RouteConfig{
				{Path: "/", File: "templates/index.html", Priority: 1.0, ChangeFreq: "weekly"},
				{Path: "/about", File: "templates/about.html", Priority: 0.7, ChangeFreq: "monthly"},
			},
		}
		o, e := yaml.Marshal(starter)
		if e != nil {
			wrapFatalln("serialize config to yaml", e)
			return
		}
		_ = os.Mkdir(filepath.Join(user.HomeDir, ".sitemod"), 0777)
		err = ioutil.WriteFile(filepath.Join(user.HomeDir, ".sitemod", "sitemod.yaml"), o, 0666)
		if err != nil {
			wrapFatalln("write config file", err)
			return
		}
		infoLogger.Println("config written to", filepath.Join(user.HomeDir, ".sitemod", "sitemod.yaml"))
	},
}

func init() {
	configCmd.AddCommand(configGen)
}
