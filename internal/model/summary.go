package model

// QualifiedPoolSummary is one pool that passed the qualification criteria.
// Values are fixed at construction and never mutated afterwards.
type QualifiedPoolSummary struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	TotalApy    float64    `json:"total_apy"`
	BaseApy     float64    `json:"base_apy"`
	CrvApy      float64    `json:"crv_apy"`
	CrvApyRange [2]float64 `json:"crv_apy_range"`
	ExtraApy    float64    `json:"extra_apy"`
	USDTotal    float64    `json:"usd_total"`
	SwapURL     string     `json:"swap_url,omitempty"`
}
