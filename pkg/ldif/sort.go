// pkg/ldif/sort.go

package ldif

import (
	"context"
	"sort"

	"github.com/CodeMonkeyCybersecurity/ldifsort/pkg/dn"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Sort returns the records ordered by DN: ancestors before descendants,
// siblings by attribute name, weight and value as implemented by dn.Compare.
// The sort is stable and never mutates its input. The first comparison
// failure (multi-valued RDN, or mixed weighting without allowMixedWeights)
// aborts the sort; no partial ordering is returned.
func Sort(ctx context.Context, records []*Record, allowMixedWeights bool) ([]*Record, error) {
	logger := otelzap.Ctx(ctx)

	sorted := make([]*Record, len(records))
	copy(sorted, records)

	var cmpErr error
	sort.SliceStable(sorted, func(i, j int) bool {
		if cmpErr != nil {
			return false
		}
		c, err := dn.Compare(sorted[i].DN, sorted[j].DN, allowMixedWeights)
		if err != nil {
			cmpErr = err
			return false
		}
		return c < 0
	})
	if cmpErr != nil {
		return nil, cmpErr
	}

	logger.Debug("Sorted LDIF records", zap.Int("records", len(sorted)))
	return sorted, nil
}
