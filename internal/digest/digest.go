// Package digest produces the self-describing content hashes embedded in
// Evidence Notes.
package digest

import (
	"fmt"

	"github.com/multiformats/go-multihash"
)

// SHA256 hashes payloads with SHA2-256 and encodes them as hex multihashes.
// The multihash prefix ("1220") records the algorithm and digest length, so
// a note's hash stays verifiable even if the algorithm changes later.
type SHA256 struct{}

// Sum returns the hex multihash of payload.
func (SHA256) Sum(payload []byte) (string, error) {
	mh, err := multihash.Sum(payload, multihash.SHA2_256, -1)
	if err != nil {
		return "", fmt.Errorf("multihash sum: %w", err)
	}
	return mh.HexString(), nil
}
