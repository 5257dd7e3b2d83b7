package errors

import (
	"net/url"
	"strings"
	"unicode"
)

// ValidateURL checks that rawURL parses and uses one of the given schemes.
// The message names the setting so the user knows which variable to fix.
func ValidateURL(setting, rawURL string, schemes ...string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidConfig, "%s cannot be empty", setting)
	}
	for _, r := range rawURL {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "%s contains invalid control characters", setting)
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidConfig, err, "%s is not a valid URL", setting)
	}
	for _, s := range schemes {
		if strings.EqualFold(u.Scheme, s) {
			return nil
		}
	}
	return New(ErrCodeInvalidConfig, "%s must use one of %s, got %q", setting, strings.Join(schemes, ", "), u.Scheme)
}

// ValidateRedisURL accepts the URL forms go-redis can parse.
func ValidateRedisURL(rawURL string) error {
	return ValidateURL("redis URL", rawURL, "redis", "rediss", "unix")
}

// ValidateMongoURI accepts standard and SRV connection strings.
func ValidateMongoURI(rawURI string) error {
	return ValidateURL("mongo URI", rawURI, "mongodb", "mongodb+srv")
}

// ValidateOrigin checks a CORS origin. "*" allows any origin; anything else
// must be scheme://host[:port] with no path.
func ValidateOrigin(origin string) error {
	if origin == "*" {
		return nil
	}
	if err := ValidateURL("CORS origin", origin, "http", "https"); err != nil {
		return err
	}
	u, _ := url.Parse(origin)
	if u.Host == "" {
		return New(ErrCodeInvalidConfig, "CORS origin %q has no host", origin)
	}
	if u.Path != "" && u.Path != "/" {
		return New(ErrCodeInvalidConfig, "CORS origin %q must not contain a path", origin)
	}
	return nil
}
