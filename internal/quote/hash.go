package quote

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
)

// StableHash returns a deterministic FNV-1a hash of v's JSON form with all
// object keys sorted. Two structurally equal inputs hash identically
// regardless of field declaration or map iteration order, so the hash is
// usable as a cache and audit key.
func StableHash(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("hashing inputs: %w", err)
	}

	// Round-trip through an untyped value: encoding/json sorts map keys on
	// marshal, which canonicalizes object key order at every level.
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return "", fmt.Errorf("hashing inputs: %w", err)
	}
	canonical, err := json.Marshal(generic)
	if err != nil {
		return "", fmt.Errorf("hashing inputs: %w", err)
	}

	h := fnv.New64a()
	h.Write(canonical)
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
