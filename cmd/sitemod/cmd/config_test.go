package cmd

import (
	"testing"

	"github.com/oneconcern/sitemod/pkg/errors"
	"github.com/oneconcern/sitemod/pkg/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *CLIConfig {
	return &CLIConfig{
		BaseURL: "https://example.com",
		Sitemap: "seo/sitemap.xml",
		Routes: []RouteConfig{
			{Path: "/", File: "templates/index.html", Priority: 1, ChangeFreq: "weekly"},
			{Path: "/about", File: "templates/about.html", Priority: "0.7", ChangeFreq: "monthly"},
		},
	}
}

func TestToRegistry(t *testing.T) {
	reg, err := testConfig().toRegistry()
	require.NoError(t, err)

	routes := reg.Routes()
	require.Len(t, routes, 2)
	// YAML priorities arrive as ints or quoted strings and are coerced
	assert.Equal(t, 1.0, routes[0].Priority)
	assert.Equal(t, 0.7, routes[1].Priority)
}

func TestToRegistryRejectsBadPriority(t *testing.T) {
	c := testConfig()
	c.Routes[0].Priority = "first"
	_, err := c.toRegistry()
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrConfig))

	c = testConfig()
	c.Routes[0].Priority = nil
	_, err = c.toRegistry()
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrConfig))
}

func TestToRegistryRejectsBadChangeFreq(t *testing.T) {
	c := testConfig()
	c.Routes[1].ChangeFreq = "biweekly"
	_, err := c.toRegistry()
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrConfig))
}
