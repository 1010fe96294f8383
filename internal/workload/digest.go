package workload

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Hash is a BLAKE3-256 digest of a list snapshot.
type Hash [32]byte

// Digest hashes a CBOR snapshot. Snapshots are deterministically encoded,
// so equal contents always give equal digests.
func Digest(snapshot []byte) Hash {
	return Hash(blake3.Sum256(snapshot))
}

// String returns the hex encoding of the digest.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// ParseHash parses a 64-character hex string into a Hash.
func ParseHash(s string) (Hash, error) {
	var h Hash
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("parsing digest: %w", err)
	}
	if len(decoded) != len(h) {
		return h, fmt.Errorf("digest is %d bytes, want %d", len(decoded), len(h))
	}
	copy(h[:], decoded)
	return h, nil
}
