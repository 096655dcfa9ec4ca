package aggregate

import "strings"

// Default qualification thresholds, overridable by the caller.
const (
	DefaultMinApy      = 7.0
	DefaultMinUSDTotal = 1_000_000.0
)

// DefaultExcludeNames skips wrapped BTC/ETH pools that the snapshot
// sometimes mislabels as stable.
var DefaultExcludeNames = []string{"btc", "eth"}

// Criteria holds the qualification thresholds for one aggregation run.
// Pools qualify when total APY and USD total both meet their minimum and
// the pool name matches no exclusion substring.
type Criteria struct {
	MinApy       float64
	MinUSDTotal  float64
	ExcludeNames []string
}

// DefaultCriteria returns the documented defaults.
func DefaultCriteria() Criteria {
	return Criteria{
		MinApy:       DefaultMinApy,
		MinUSDTotal:  DefaultMinUSDTotal,
		ExcludeNames: DefaultExcludeNames,
	}
}

func (c Criteria) excludes(name string) bool {
	lower := strings.ToLower(name)
	for _, pattern := range c.ExcludeNames {
		if pattern != "" && strings.Contains(lower, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}
