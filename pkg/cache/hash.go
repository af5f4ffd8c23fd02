package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 digest of data. Scene and layout documents
// are identified by this digest in cache keys.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey derives "<kind>:<digest>" from the JSON encoding of parts.
// Option structs marshal deterministically, so equal inputs give equal keys.
func hashKey(kind string, parts ...any) string {
	data, err := json.Marshal(parts)
	if err != nil {
		// Unmarshalable parts still need a stable key.
		data = []byte(err.Error())
	}
	return kind + ":" + Hash(data)
}
