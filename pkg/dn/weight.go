// pkg/dn/weight.go

package dn

import (
	"regexp"
	"strconv"
)

// weightedValue matches RDN values carrying an ordering prefix, e.g.
// "{-3}ou=People". The remainder may be empty.
var weightedValue = regexp.MustCompile(`^\{(-?\d+)\}(.*)$`)

// ExtractWeight splits an RDN value into its ordering weight and the
// remaining text. A value without a weight prefix is returned unchanged
// with ok == false.
func ExtractWeight(value string) (weight int, rest string, ok bool) {
	m := weightedValue.FindStringSubmatch(value)
	if m == nil {
		return 0, value, false
	}
	w, err := strconv.Atoi(m[1])
	if err != nil {
		// Digit runs too large for an int are not a usable weight.
		return 0, value, false
	}
	return w, m[2], true
}
