package aggregate

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"

	"curveScope/internal/model"
)

// ErrInvalidInput marks a caller-contract violation: non-finite thresholds
// or records missing their identity fields. Per-record numeric anomalies
// never produce this; they are normalized to zero instead.
var ErrInvalidInput = errors.New("invalid input")

// Aggregate joins gauge reward data onto pool records by pool id, computes
// total APY per pool, and returns the pools that meet the criteria.
//
// Stability is a hard eligibility gate: non-stable pools are dropped before
// the join, not filtered afterwards. The gauge lookup is last-write-wins on
// duplicate pool ids; source data does not guarantee uniqueness, and if
// duplicates ever turn out to mean several gauges per pool, the join would
// need to sum across them instead.
//
// The result preserves the input pool order. Sorting for presentation is a
// separate step, see SortByTotalApy. Aggregate is a pure function of its
// three inputs.
func Aggregate(pools []model.PoolRecord, gauges []model.GaugeRecord, criteria Criteria) ([]model.QualifiedPoolSummary, error) {
	if err := validateInputs(pools, gauges, criteria); err != nil {
		return nil, err
	}

	gaugeByPool := lo.KeyBy(gauges, func(g model.GaugeRecord) string {
		return g.PoolID
	})

	summaries := make([]model.QualifiedPoolSummary, 0, len(pools))
	for _, pool := range pools {
		if !pool.IsStable {
			continue
		}
		if criteria.excludes(pool.Name) {
			continue
		}

		// Zero-value gauge when no match: reward components default to 0.
		gauge := gaugeByPool[pool.ID]

		baseApy := deref(pool.BaseApy)
		crvApy := deref(gauge.CrvApy)
		extraApy := gauge.ExtraRewards.Sum()
		totalApy := baseApy + crvApy + extraApy

		if totalApy >= criteria.MinApy && pool.USDTotal >= criteria.MinUSDTotal {
			summaries = append(summaries, model.QualifiedPoolSummary{
				ID:          pool.ID,
				Name:        pool.Name,
				TotalApy:    totalApy,
				BaseApy:     baseApy,
				CrvApy:      crvApy,
				CrvApyRange: gauge.CrvApyRange,
				ExtraApy:    extraApy,
				USDTotal:    pool.USDTotal,
				SwapURL:     pool.SwapURL,
			})
		}
	}

	return summaries, nil
}

func validateInputs(pools []model.PoolRecord, gauges []model.GaugeRecord, criteria Criteria) error {
	if !isFinite(criteria.MinApy) {
		return fmt.Errorf("%w: min apy must be finite, got %v", ErrInvalidInput, criteria.MinApy)
	}
	if !isFinite(criteria.MinUSDTotal) {
		return fmt.Errorf("%w: min usd total must be finite, got %v", ErrInvalidInput, criteria.MinUSDTotal)
	}
	for i, pool := range pools {
		if pool.ID == "" {
			return fmt.Errorf("%w: pool record %d has no id", ErrInvalidInput, i)
		}
	}
	for i, gauge := range gauges {
		if gauge.PoolID == "" {
			return fmt.Errorf("%w: gauge record %d has no pool id", ErrInvalidInput, i)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
