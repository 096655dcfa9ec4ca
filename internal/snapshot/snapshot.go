// Package snapshot parses static Curve API dumps into normalized records.
// Both snapshot files wrap their payload in a {"success": ..., "data": ...}
// envelope; a bad envelope is a load error, while individual malformed
// records are skipped or coerced to zero values.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func readEnvelope(path string) (json.RawMessage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	if !env.Success || len(env.Data) == 0 {
		return nil, fmt.Errorf("snapshot %s: envelope missing success/data", path)
	}
	return env.Data, nil
}

// normalizeAddress validates a hex pool address and lowercases it so pool
// and gauge snapshots join regardless of checksum casing.
func normalizeAddress(s string) (string, bool) {
	if !common.IsHexAddress(s) {
		return "", false
	}
	return strings.ToLower(common.HexToAddress(s).Hex()), true
}
