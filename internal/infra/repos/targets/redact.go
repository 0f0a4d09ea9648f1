package targets

import (
	"net/url"
	"strings"

	"github.com/salsasteve/rainbow/internal/domain"
)

const mask = "****"

var secretKeys = []string{"password", "pass", "pwd"}

// RedactDSN masks credentials in URL-form and keyword-form DSNs. Anything it
// cannot parse is masked entirely.
func RedactDSN(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return ""
	}
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && u.Host != "" {
		return redactURL(u)
	}
	if out, ok := redactKeywords(dsn); ok {
		return out
	}
	return mask
}

func redactURL(u *url.URL) string {
	if u.User != nil {
		u.User = url.UserPassword(u.User.Username(), mask)
	}
	q := u.Query()
	for _, k := range secretKeys {
		if q.Has(k) {
			q.Set(k, mask)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func redactKeywords(dsn string) (string, bool) {
	parts := strings.Fields(dsn)
	found := false
	for i, p := range parts {
		k, _, ok := strings.Cut(p, "=")
		if !ok {
			continue
		}
		for _, s := range secretKeys {
			if strings.EqualFold(k, s) {
				parts[i] = k + "=" + mask
				found = true
			}
		}
	}
	return strings.Join(parts, " "), found
}

// RedactTarget returns a copy safe for display. File-backed kinds hold a
// path rather than credentials and are left readable.
func RedactTarget(t *domain.TargetConfig) *domain.TargetConfig {
	if t == nil {
		return nil
	}
	cp := *t
	switch cp.Kind {
	case domain.TargetKindCSV, domain.TargetKindSQLite:
	default:
		cp.DSN = RedactDSN(cp.DSN)
	}
	return &cp
}

func RedactTargets(list []*domain.TargetConfig) []*domain.TargetConfig {
	out := make([]*domain.TargetConfig, 0, len(list))
	for _, t := range list {
		out = append(out, RedactTarget(t))
	}
	return out
}
