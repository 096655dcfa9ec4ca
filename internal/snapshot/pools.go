package snapshot

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"curveScope/internal/model"
)

type rawPool struct {
	Address        string   `json:"address"`
	Name           string   `json:"name"`
	AssetTypeName  string   `json:"assetTypeName"`
	USDTotal       *float64 `json:"usdTotal"`
	LatestDailyApy *float64 `json:"latestDailyApy"`
	PoolURLs       struct {
		Swap []string `json:"swap"`
	} `json:"poolUrls"`
}

type poolData struct {
	PoolData []rawPool `json:"poolData"`
}

// LoadPools reads an all-pools snapshot and returns pool records in file
// order. Pools with unusable addresses are skipped with a warning.
func LoadPools(path string, logger *zap.Logger) ([]model.PoolRecord, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := readEnvelope(path)
	if err != nil {
		return nil, err
	}

	var payload poolData
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse pool data: %w", err)
	}

	pools := make([]model.PoolRecord, 0, len(payload.PoolData))
	for _, raw := range payload.PoolData {
		addr, ok := normalizeAddress(raw.Address)
		if !ok {
			logger.Warn("skip pool with bad address",
				zap.String("name", raw.Name),
				zap.String("address", raw.Address),
			)
			continue
		}

		record := model.PoolRecord{
			ID:       addr,
			Name:     raw.Name,
			IsStable: strings.EqualFold(raw.AssetTypeName, "usd"),
			BaseApy:  raw.LatestDailyApy,
		}
		if raw.USDTotal != nil {
			record.USDTotal = *raw.USDTotal
		}
		if len(raw.PoolURLs.Swap) > 0 {
			record.SwapURL = raw.PoolURLs.Swap[0]
		}

		pools = append(pools, record)
	}

	logger.Info("pools loaded",
		zap.String("path", path),
		zap.Int("pools", len(pools)),
	)

	return pools, nil
}
