package model

// PoolRecord is the normalized representation of one pool from the
// all-pools snapshot. ID is the lowercased hex pool address and serves
// as the join key against GaugeRecord.PoolID.
type PoolRecord struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	IsStable bool     `json:"is_stable"`
	USDTotal float64  `json:"usd_total"`
	BaseApy  *float64 `json:"base_apy,omitempty"`
	SwapURL  string   `json:"swap_url,omitempty"`
}
