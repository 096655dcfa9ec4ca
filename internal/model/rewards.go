package model

import (
	"bytes"
	"encoding/json"

	"github.com/samber/lo"
)

// ExtraRewards holds the non-CRV incentive components attached to a gauge.
// Snapshots encode this field inconsistently: absent, null, a pre-summed
// number, or a list of entries each carrying an apy value. Decoding never
// fails; unusable shapes contribute nothing.
type ExtraRewards struct {
	Components []float64
}

// Sum collapses the components into a single APY scalar.
func (e ExtraRewards) Sum() float64 {
	return lo.Sum(e.Components)
}

// MarshalJSON encodes the components as a plain array.
func (e ExtraRewards) MarshalJSON() ([]byte, error) {
	if e.Components == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(e.Components)
}

// UnmarshalJSON accepts null, a scalar, or a list of scalars or
// {"apy": ...} objects. Entries with no numeric value are ignored.
func (e *ExtraRewards) UnmarshalJSON(data []byte) error {
	e.Components = nil

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil
		}
		for _, item := range items {
			if v, ok := decodeRewardValue(item); ok {
				e.Components = append(e.Components, v)
			}
		}
		return nil
	}

	if v, ok := decodeRewardValue(trimmed); ok {
		e.Components = []float64{v}
	}
	return nil
}

func decodeRewardValue(data []byte) (float64, bool) {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		return num, true
	}

	var entry struct {
		Apy *float64 `json:"apy"`
	}
	if err := json.Unmarshal(data, &entry); err == nil && entry.Apy != nil {
		return *entry.Apy, true
	}
	return 0, false
}
