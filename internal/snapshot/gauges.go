package snapshot

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"curveScope/internal/model"
)

type rawGauge struct {
	Swap         string             `json:"swap"`
	IsPool       bool               `json:"isPool"`
	HasNoCrv     bool               `json:"hasNoCrv"`
	GaugeCrvApy  []*float64         `json:"gaugeCrvApy"`
	GaugeRewards model.ExtraRewards `json:"gaugeRewards"`
}

// LoadGauges reads a gauges snapshot and returns gauge records ordered by
// gauge name for determinism (the snapshot keys gauges by name). Entries
// that are not pools or distribute no CRV produce no record.
func LoadGauges(path string, logger *zap.Logger) ([]model.GaugeRecord, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := readEnvelope(path)
	if err != nil {
		return nil, err
	}

	var entries map[string]rawGauge
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse gauge data: %w", err)
	}

	names := lo.Keys(entries)
	sort.Strings(names)

	gauges := make([]model.GaugeRecord, 0, len(entries))
	for _, name := range names {
		raw := entries[name]
		if !raw.IsPool || raw.HasNoCrv {
			continue
		}

		addr, ok := normalizeAddress(raw.Swap)
		if !ok {
			logger.Warn("skip gauge with bad swap address",
				zap.String("gauge", name),
				zap.String("address", raw.Swap),
			)
			continue
		}

		record := model.GaugeRecord{
			PoolID:       addr,
			ExtraRewards: raw.GaugeRewards,
		}

		// gaugeCrvApy is a [base, max-boost] pair with nullable elements.
		// The scalar CrvApy carries the max-boost bound.
		if len(raw.GaugeCrvApy) > 0 {
			base := derefOrZero(raw.GaugeCrvApy[0])
			boost := base
			if len(raw.GaugeCrvApy) > 1 {
				boost = derefOrZero(raw.GaugeCrvApy[1])
			}
			if boost < base {
				boost = base
			}
			record.CrvApyRange = [2]float64{base, boost}
			crv := boost
			record.CrvApy = &crv
		}

		gauges = append(gauges, record)
	}

	logger.Info("gauges loaded",
		zap.String("path", path),
		zap.Int("gauges", len(gauges)),
		zap.Int("entries", len(entries)),
	)

	return gauges, nil
}

func derefOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
