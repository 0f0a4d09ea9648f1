package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/salsasteve/rainbow/internal/domain"
)

// HashColumns fingerprints a column list. Order matters: the same columns
// declared in a different order produce a different CSV and a different hash.
func HashColumns(columns []domain.ColumnSpec) (string, error) {
	canonical := make([][2]string, len(columns))
	for i, c := range columns {
		canonical[i] = [2]string{c.Name, string(c.Kind)}
	}
	data, err := json.Marshal(canonical)
	if err != nil {
		return "", err
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}
