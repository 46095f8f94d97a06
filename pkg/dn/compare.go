// pkg/dn/compare.go

package dn

import (
	"strings"

	cerr "github.com/cockroachdb/errors"
)

// Compare orders two DNs for sorting and returns -1, 0 or 1. Components are
// compared from the root of the tree (rightmost RDN) toward the leaf, so an
// entry always sorts after every entry it is nested under. At each level
// attribute names are compared case-insensitively first; on a tie the
// {<weight>} prefixes decide if both values carry one, then the remaining
// value text decides lexicographically.
//
// Comparing a weighted against an unweighted value at the same level fails
// with ErrMixedWeights unless allowMixedWeights is set, in which case the
// weighted side's remainder is compared against the other side's raw value.
func Compare(a, b string, allowMixedWeights bool) (int, error) {
	if a == b {
		return 0, nil
	}
	aRDNs, err := Explode(a)
	if err != nil {
		return 0, err
	}
	bRDNs, err := Explode(b)
	if err != nil {
		return 0, err
	}

	i, j := len(aRDNs)-1, len(bRDNs)-1
	for i >= 0 && j >= 0 {
		left, right := aRDNs[i], bRDNs[j]
		if c := strings.Compare(left.Attribute, right.Attribute); c != 0 {
			return c, nil
		}
		leftWeight, leftRest, leftOK := ExtractWeight(left.Value)
		rightWeight, rightRest, rightOK := ExtractWeight(right.Value)
		switch {
		case leftOK && rightOK:
			if leftWeight < rightWeight {
				return -1, nil
			}
			if leftWeight > rightWeight {
				return 1, nil
			}
		case leftOK != rightOK:
			if !allowMixedWeights {
				return 0, cerr.Wrapf(ErrMixedWeights, "%q vs %q", left.Value, right.Value)
			}
		}
		if c := strings.Compare(leftRest, rightRest); c != 0 {
			return c, nil
		}
		i--
		j--
	}

	// A DN whose components ran out first is an ancestor of the other
	// and sorts before it.
	switch {
	case i < 0 && j < 0:
		return 0, nil
	case i < 0:
		return -1, nil
	default:
		return 1, nil
	}
}
