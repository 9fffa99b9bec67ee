// Copyright © 2018 One Concern

// Package registry holds the ordered, read-only mapping from URL paths to
// template files and crawl hints. It is built once from configuration and
// validated before any file I/O begins.
package registry

import (
	"fmt"
	"strings"

	"github.com/oneconcern/sitemod/pkg/model"
	"github.com/oneconcern/sitemod/pkg/status"
)

// Registry is an immutable, ordered collection of routes for one site
type Registry struct {
	baseURL string
	routes  []model.Route
}

// New builds a registry after validating every route. Validation failures
// surface as status.ErrConfig: they abort the run before anything is read or written.
func New(baseURL string, routes []model.Route) (*Registry, error) {
	if baseURL == "" {
		return nil, status.ErrConfig.WrapMessage("baseURL is empty")
	}
	if len(routes) == 0 {
		return nil, status.ErrConfig.WrapMessage("no routes configured")
	}
	seen := make(map[string]bool, len(routes))
	for _, route := range routes {
		if err := model.Validate(route); err != nil {
			return nil, status.ErrConfig.Wrap(err)
		}
		if seen[route.Path] {
			return nil, status.ErrConfig.Wrap(fmt.Errorf("duplicate route path %s", route.Path))
		}
		seen[route.Path] = true
	}
	r := &Registry{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		routes:  make([]model.Route, len(routes)),
	}
	copy(r.routes, routes)
	return r, nil
}

// Routes returns the configured routes in declaration order
func (r *Registry) Routes() []model.Route {
	routes := make([]model.Route, len(r.routes))
	copy(routes, r.routes)
	return routes
}

// Loc is the absolute URL a route's sitemap entry is keyed by
func (r *Registry) Loc(route model.Route) string {
	if route.Path == "/" {
		return r.baseURL + "/"
	}
	return r.baseURL + route.Path
}

// BaseURL of the site
func (r *Registry) BaseURL() string {
	return r.baseURL
}
