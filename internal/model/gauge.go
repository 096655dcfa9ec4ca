package model

// GaugeRecord is the normalized representation of one reward gauge from
// the gauges snapshot. PoolID matches PoolRecord.ID. CrvApy is nil when
// the snapshot carried no CRV figure; CrvApyRange keeps the raw
// [base, max-boost] pair for display.
type GaugeRecord struct {
	PoolID       string       `json:"pool_id"`
	CrvApy       *float64     `json:"crv_apy,omitempty"`
	CrvApyRange  [2]float64   `json:"crv_apy_range"`
	ExtraRewards ExtraRewards `json:"extra_rewards"`
}
