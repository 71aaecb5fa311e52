package models

// URLParts holds the structural pieces of a URL after normalization.
// All fields are derived once by the decomposer and never mutated.
type URLParts struct {
	// Full is the scheme-normalized absolute URL string
	// (http:// is prepended when the input carried no scheme).
	Full string

	// Host is the authority component, port included when present.
	Host string

	// Domain is the registrable domain: the label immediately left of
	// the public suffix, joined with the suffix (e.g. "example.com").
	// When no recognized suffix exists, the whole host.
	Domain string

	// Subdomain is everything left of the registrable domain, or "".
	Subdomain string

	Path  string
	Query string
}
