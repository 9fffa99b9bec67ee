package cmd

import (
	"fmt"

	"github.com/oneconcern/sitemod/pkg/model"
	"github.com/oneconcern/sitemod/pkg/registry"
	"github.com/oneconcern/sitemod/pkg/status"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	// bug in viper? Need to keep names of fields the same as the serialized names..
	BaseURL string        `json:"baseURL" yaml:"baseURL" mapstructure:"baseURL"`
	Sitemap string        `json:"sitemap" yaml:"sitemap" mapstructure:"sitemap"`
	Routes  []RouteConfig `json:"routes" yaml:"routes" mapstructure:"routes"`
}

// RouteConfig is one route entry as it appears in the config file. Priority
// is loosely typed: YAML authors write 1, 1.0 or "0.7" interchangeably.
type RouteConfig struct {
	Path       string      `json:"path" yaml:"path" mapstructure:"path"`
	File       string      `json:"file" yaml:"file" mapstructure:"file"`
	Priority   interface{} `json:"priority" yaml:"priority" mapstructure:"priority"`
	ChangeFreq string      `json:"changefreq" yaml:"changefreq" mapstructure:"changefreq"`
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// toRegistry validates the configured routes and freezes them into a registry
func (c *CLIConfig) toRegistry() (*registry.Registry, error) {
	routes := make([]model.Route, 0, len(c.Routes))
	for _, rc := range c.Routes {
		if rc.Priority == nil {
			return nil, status.ErrConfig.Wrap(fmt.Errorf("route %s: missing priority", rc.Path))
		}
		priority, err := cast.ToFloat64E(rc.Priority)
		if err != nil {
			return nil, status.ErrConfig.Wrap(fmt.Errorf("route %s: priority %v: %v", rc.Path, rc.Priority, err))
		}
		routes = append(routes, model.Route{
			Path:       rc.Path,
			File:       rc.File,
			Priority:   priority,
			ChangeFreq: rc.ChangeFreq,
		})
	}
	return registry.New(c.BaseURL, routes)
}

// configCmd represents the config related commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to manage a config",
	Long: `Commands to manage the sitemod CLI config.

Configuration for sitemod is the static route table (URL path, template file,
priority, changefreq) plus the site base URL, analogous to what other site
tooling keeps in its site config.`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
