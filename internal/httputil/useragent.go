// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"fmt"
	"os"
)

// Environment variables consulted when building the default User-Agent.
const (
	envUserAgent = "PAPER_HUB_USER_AGENT"
	envHomepage  = "PAPER_HUB_HOMEPAGE"
	envContact   = "PAPER_HUB_CONTACT"
)

// DefaultUserAgent builds the User-Agent header for outgoing requests.
// PAPER_HUB_USER_AGENT overrides it wholesale; otherwise the string is
// assembled from the app name and version plus the homepage and contact
// email from PAPER_HUB_HOMEPAGE / PAPER_HUB_CONTACT, in the polite form
// API operators ask for: "name/version (+homepage; mailto:email)".
func DefaultUserAgent(appName, version string) string {
	if ua := os.Getenv(envUserAgent); ua != "" {
		return ua
	}

	homepage := os.Getenv(envHomepage)
	if homepage == "" {
		homepage = "https://example.invalid"
	}
	contact := ""
	if email := os.Getenv(envContact); email != "" {
		contact = "; mailto:" + email
	}
	return fmt.Sprintf("%s/%s (+%s%s)", appName, version, homepage, contact)
}
