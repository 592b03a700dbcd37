package log

import (
	"net/url"
	"strings"
)

// sensitiveQueryParams are query parameters whose values are masked by
// RedactURL. Matching is case-insensitive.
var sensitiveQueryParams = map[string]bool{
	"token":        true,
	"key":          true,
	"apikey":       true,
	"api_key":      true,
	"access_token": true,
	"session":      true,
	"sessionid":    true,
	"password":     true,
	"sig":          true,
	"signature":    true,
}

// RedactURL masks the password in the userinfo of an absolute URL and the
// values of sensitive query parameters. It reports false when s is not an
// absolute URL or has nothing to mask, in which case s is returned as is.
func RedactURL(s string) (string, bool) {
	if !strings.Contains(s, "://") {
		return s, false
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return s, false
	}

	changed := false
	if u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			u.User = url.UserPassword(u.User.Username(), MaskValue)
			changed = true
		}
	}

	if u.RawQuery != "" {
		q := u.Query()
		for name, values := range q {
			if !sensitiveQueryParams[strings.ToLower(name)] {
				continue
			}
			for i := range values {
				values[i] = MaskValue
			}
			changed = true
		}
		if changed {
			u.RawQuery = q.Encode()
		}
	}

	if !changed {
		return s, false
	}
	return u.Redacted(), true
}
