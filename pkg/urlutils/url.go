// Package urlutils provides URL helper functions.
package urlutils

import "net/url"

// IsValidFeedURL checks that a feed URL is absolute and uses an HTTP scheme.
func IsValidFeedURL(urlStr string) bool {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
