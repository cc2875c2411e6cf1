package plugin

import (
	"regexp"
	"strings"

	"github.com/wpmvc/helpers/internal/utils"
)

// Headers holds the metadata declared in a plugin's main-file header comment.
// Fields whose header lines are absent stay empty.
type Headers struct {
	// Name is the human-readable plugin name.
	Name string
	// PluginURI is the URL of the plugin's home page.
	PluginURI string
	// Description is the short plugin description.
	Description string
	// Version is the declared plugin version.
	Version string
	// Author is the plugin author name.
	Author string
	// AuthorURI is the URL of the author's home page.
	AuthorURI string
	// License is the declared license identifier.
	License string
}

// valueGroupName is the named capturing group holding a header line's value.
const valueGroupName = "value"

// Pre-compiled matchers for the supported header lines.
// A header line has the form: optional whitespace, an asterisk,
// optional whitespace, the label, a colon, and the value up to end of line.
// Matching is case-insensitive and multi-line.
//
//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
var (
	namePattern        = headerPattern("Plugin Name")
	pluginURIPattern   = headerPattern("Plugin URI")
	descriptionPattern = headerPattern("Description")
	versionPattern     = headerPattern("Version")
	authorPattern      = headerPattern("Author")
	authorURIPattern   = headerPattern("Author URI")
	licensePattern     = headerPattern("License")
)

// headerPattern builds the matcher for a single header label.
func headerPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^\s*\*\s*` + regexp.QuoteMeta(label) + `:\s*(?P<` + valueGroupName + `>.+)$`)
}

// parseHeaders extracts all supported header values from the file content.
func parseHeaders(content string) *Headers {
	return &Headers{
		Name:        headerValue(namePattern, content),
		PluginURI:   headerValue(pluginURIPattern, content),
		Description: headerValue(descriptionPattern, content),
		Version:     headerValue(versionPattern, content),
		Author:      headerValue(authorPattern, content),
		AuthorURI:   headerValue(authorURIPattern, content),
		License:     headerValue(licensePattern, content),
	}
}

// headerValue extracts and trims a single header value, or returns "" when the line is absent.
func headerValue(pattern *regexp.Regexp, content string) string {
	return strings.TrimSpace(utils.ExtractNamedGroup(pattern, valueGroupName, content))
}
