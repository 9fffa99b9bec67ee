// Copyright © 2018 One Concern

// Package model describes the objects the sitemap updater works with:
// configured routes and resolved modification dates.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// DateFormat is the calendar date layout written to <lastmod> elements (W3C date, no time part).
const DateFormat = "2006-01-02"

// ChangeFreqs lists the values allowed by the sitemap protocol for <changefreq>
var ChangeFreqs = []string{"always", "hourly", "daily", "weekly", "monthly", "yearly", "never"}

// Route maps a URL path to the template file its content is rendered from,
// together with the crawl hints to maintain for it.
type Route struct {
	Path       string  `json:"path" yaml:"path" mapstructure:"path"`
	File       string  `json:"file" yaml:"file" mapstructure:"file"`
	Priority   float64 `json:"priority" yaml:"priority" mapstructure:"priority"`
	ChangeFreq string  `json:"changefreq" yaml:"changefreq" mapstructure:"changefreq"`
}

// Validate a single route definition
func Validate(route Route) error {
	if route.Path == "" {
		return fmt.Errorf("empty field: route path is empty")
	}
	if !strings.HasPrefix(route.Path, "/") {
		return fmt.Errorf("invalid path: route path %q must start with /", route.Path)
	}
	if route.File == "" {
		return fmt.Errorf("empty field: route %s has no template file", route.Path)
	}
	if route.Priority < 0.0 || route.Priority > 1.0 {
		return fmt.Errorf("invalid priority: route %s has priority %v, want a value in [0.0,1.0]",
			route.Path, route.Priority)
	}
	if !validChangeFreq(route.ChangeFreq) {
		return fmt.Errorf("invalid changefreq: route %s has changefreq %q, want one of %s",
			route.Path, route.ChangeFreq, strings.Join(ChangeFreqs, "|"))
	}
	return nil
}

func validChangeFreq(freq string) bool {
	for _, f := range ChangeFreqs {
		if freq == f {
			return true
		}
	}
	return false
}

// FormatPriority renders a priority the way sitemaps conventionally carry it,
// always with a decimal point (1 -> "1.0", 0.85 -> "0.85").
func FormatPriority(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
