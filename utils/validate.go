package utils

import (
	"net/url"
	"regexp"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// ValidDate checks the YYYY-MM-DD shape used by the tracking logs.
func ValidDate(s string) bool {
	return datePattern.MatchString(s)
}

// ValidClockTime checks a 24-hour HH:MM reminder time.
func ValidClockTime(s string) bool {
	return timePattern.MatchString(s)
}

// ValidHTTPURL accepts absolute http(s) URLs only.
func ValidHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
