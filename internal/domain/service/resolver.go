package service

import (
	"strings"

	"github.com/devtunnel/devtunnel-go-client/internal/domain/model"
)

// AddressPair is the host server address selected per scheme
type AddressPair struct {
	HTTP  string
	HTTPS string
}

// SelectAddresses picks exactly one http:// and one https:// address from
// the host server's bound address set. Zero or multiple matches for either
// scheme is a *model.SelectionError: ambiguity is never resolved silently.
func SelectAddresses(addresses []string) (AddressPair, error) {
	httpURL, err := selectScheme(addresses, "http://")
	if err != nil {
		return AddressPair{}, err
	}
	httpsURL, err := selectScheme(addresses, "https://")
	if err != nil {
		return AddressPair{}, err
	}
	return AddressPair{HTTP: httpURL, HTTPS: httpsURL}, nil
}

func selectScheme(addresses []string, scheme string) (string, error) {
	var matches []string
	for _, addr := range addresses {
		if strings.HasPrefix(addr, scheme) {
			matches = append(matches, addr)
		}
	}
	if len(matches) != 1 {
		return "", &model.SelectionError{Scheme: scheme, Matches: len(matches)}
	}
	return matches[0], nil
}

// DeriveHostHeader strips the scheme from targetURL and trims a trailing
// slash, producing the Host header override handed to the tunnel agent.
// Idempotent: already-derived values pass through unchanged.
func DeriveHostHeader(targetURL string) string {
	header := targetURL
	header = strings.TrimPrefix(header, "https://")
	header = strings.TrimPrefix(header, "http://")
	return strings.TrimSuffix(header, "/")
}
