// Package urlparts normalizes raw URL strings into the structural parts the
// rule evaluator works on. Decomposition is total: malformed input degrades
// to empty fields instead of returning an error, so downstream rules simply
// do not trigger on missing data.
package urlparts

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/urlguard/go-urlguard/pkg/models"
)

// Permissive on purpose: octet ranges are not validated, so
// "999.999.999.999" still counts as an IP-shaped host.
var dottedQuadRE = regexp.MustCompile(`^\d{1,3}(\.\d{1,3}){3}$`)

// Decompose parses a raw URL string into normalized parts.
//
// Inputs without an http:// or https:// prefix get http:// prepended before
// parsing, so bare domains like "example.com/login" are accepted rather
// than rejected.
func Decompose(raw string) models.URLParts {
	full := raw
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		full = "http://" + raw
	}

	parts := models.URLParts{Full: full}

	u, err := url.Parse(full)
	if err != nil {
		return parts
	}

	parts.Host = u.Host
	parts.Path = u.Path
	parts.Query = u.RawQuery
	parts.Domain, parts.Subdomain = splitDomain(stripPort(u.Host))

	return parts
}

// splitDomain separates a host into registrable domain and subdomain using
// the public suffix list. Hosts without an ICANN-managed suffix (IP
// literals, made-up TLDs, bare suffixes) are treated as a whole: the host
// itself is the domain and the subdomain is empty.
func splitDomain(host string) (domain, subdomain string) {
	if host == "" {
		return "", ""
	}

	if _, icann := publicsuffix.PublicSuffix(host); !icann {
		return host, ""
	}

	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host, ""
	}

	sub := strings.TrimSuffix(host, etld1)
	sub = strings.TrimSuffix(sub, ".")
	return etld1, sub
}

// stripPort drops everything from the first colon on. Good enough for the
// host shapes this scorer sees; bracketed IPv6 authorities degrade to a
// non-matching domain rather than an error.
func stripPort(host string) string {
	if i := strings.IndexByte(host, ':'); i >= 0 {
		return host[:i]
	}
	return host
}

// HostIPv4 reports whether the host's pre-port portion is a dotted-quad IP
// and returns that portion. Shared by the IP-host rule and the engine's
// GeoIP enrichment.
func HostIPv4(host string) (string, bool) {
	hostOnly := stripPort(host)
	if dottedQuadRE.MatchString(hostOnly) {
		return hostOnly, true
	}
	return "", false
}
