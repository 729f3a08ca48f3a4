// Package crypto provides the few cryptographic primitives the TXF engine
// needs locally. Signing and inclusion-proof verification are done by the
// external state-transition library, never here.
package crypto

import (
	"github.com/unicitynetwork/cli-sub013/pkg/types"
	"github.com/zeebo/blake3"
)

// Hash computes a BLAKE3-256 hash of the input data.
func Hash(data []byte) types.Hash {
	return blake3.Sum256(data)
}
