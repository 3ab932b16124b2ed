package contenturi

import (
	"strings"
)

// Resolver rewrites content-addressed URIs into fetchable gateway URLs.
// URLs already in http(s) form pass through unchanged; so does anything
// the resolver does not recognize, leaving the failure to the fetcher.
type Resolver struct {
	gateway string
}

func NewResolver(gateway string) *Resolver {
	return &Resolver{gateway: strings.TrimSuffix(gateway, "/")}
}

func (r *Resolver) Resolve(uri string) string {
	if uri == "" {
		return uri
	}
	if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
		return uri
	}
	if strings.HasPrefix(uri, "ipfs://") {
		cid := strings.TrimPrefix(uri, "ipfs://")
		cid = strings.TrimPrefix(cid, "ipfs/")
		return r.gateway + "/ipfs/" + cid
	}
	if isBareCid(uri) {
		return r.gateway + "/ipfs/" + uri
	}
	return uri
}

// isBareCid recognizes the two common cid forms, v0 (Qm..., base58) and
// v1 (bafy..., base32)
func isBareCid(s string) bool {
	if strings.HasPrefix(s, "Qm") && len(s) == 46 {
		return true
	}
	return strings.HasPrefix(s, "bafy")
}
