// pkg/dn/dn.go

// Package dn decomposes LDAP distinguished names into their RDN components
// and orders DNs for sorting, including the {<weight>} value-prefix
// convention used to force an explicit sibling order.
package dn

import (
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/go-ldap/ldap/v3"
)

var (
	// ErrMultiValuedRDN is returned when a DN contains an RDN with more
	// than one attribute=value pair (e.g. "cn=a+ou=b").
	ErrMultiValuedRDN = cerr.New("multi-valued RDNs are not supported")

	// ErrMixedWeights is returned when a weighted value is compared
	// against an unweighted one without the mixed-weighting override.
	ErrMixedWeights = cerr.New("cannot compare weighted and unweighted values")
)

// RDN is a single attribute=value component of a distinguished name.
// Attribute is lower-cased; Value is kept verbatim.
type RDN struct {
	Attribute string
	Value     string
}

// Explode splits a DN into its RDN components, leaf (leftmost) first,
// honoring RFC 4514 escaping and quoting. Multi-valued RDNs are rejected.
func Explode(name string) ([]RDN, error) {
	parsed, err := ldap.ParseDN(name)
	if err != nil {
		return nil, cerr.Wrapf(err, "invalid DN %q", name)
	}
	rdns := make([]RDN, 0, len(parsed.RDNs))
	for _, rdn := range parsed.RDNs {
		if len(rdn.Attributes) != 1 {
			return nil, cerr.Wrapf(ErrMultiValuedRDN, "in DN %q", name)
		}
		av := rdn.Attributes[0]
		rdns = append(rdns, RDN{
			Attribute: strings.ToLower(av.Type),
			Value:     av.Value,
		})
	}
	return rdns, nil
}

// First returns the value of the leftmost RDN carrying the given attribute
// name, e.g. First("uid=jdoe,ou=People,dc=example,dc=com", "uid") is
// ("jdoe", true).
func First(name, attribute string) (string, bool) {
	rdns, err := Explode(name)
	if err != nil {
		return "", false
	}
	attribute = strings.ToLower(attribute)
	for _, rdn := range rdns {
		if rdn.Attribute == attribute {
			return rdn.Value, true
		}
	}
	return "", false
}

// AncestorOf reports whether ancestor's RDN sequence is a strict suffix of
// descendant's, i.e. whether descendant lives somewhere under ancestor.
func AncestorOf(ancestor, descendant string) (bool, error) {
	ancRDNs, err := Explode(ancestor)
	if err != nil {
		return false, err
	}
	descRDNs, err := Explode(descendant)
	if err != nil {
		return false, err
	}
	if len(ancRDNs) >= len(descRDNs) {
		return false, nil
	}
	offset := len(descRDNs) - len(ancRDNs)
	for i, rdn := range ancRDNs {
		if descRDNs[offset+i] != rdn {
			return false, nil
		}
	}
	return true, nil
}
