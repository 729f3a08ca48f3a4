package origin

import (
	"errors"
	"fmt"

	klog "github.com/unicitynetwork/cli-sub013/internal/log"
)

var (
	// ErrUntrustedProof is returned for a proof that decodes but fails
	// ValidateProofStructure.
	ErrUntrustedProof = errors.New("coin origin proof failed structure validation")
	// ErrBlockNotFound is returned when the ledger has no block at the
	// proof's height.
	ErrBlockNotFound = errors.New("block not found")
)

// BlockHeader is the ledger data a proof resolves to.
type BlockHeader struct {
	Height     int64  `json:"height"`
	Hash       string `json:"hash"`
	MerkleRoot string `json:"merkleroot"`
	Bits       string `json:"bits"`
	Time       int64  `json:"time"`
}

// HeaderSource looks up proof-of-work block headers by height.
type HeaderSource interface {
	BlockHeaderByHeight(height int64) (*BlockHeader, error)
}

// Verifier resolves proofs against a ledger.
type Verifier struct {
	Headers HeaderSource
}

// Verify checks p and returns the header of the block it points to.
func (v *Verifier) Verify(p Proof) (*BlockHeader, error) {
	if !ValidateProofStructure(p) {
		return nil, fmt.Errorf("%w: version %q, height %d", ErrUntrustedProof, p.Version, p.BlockHeight)
	}
	if v.Headers == nil {
		return nil, errors.New("no ledger configured")
	}

	h, err := v.Headers.BlockHeaderByHeight(p.BlockHeight)
	if err != nil {
		return nil, fmt.Errorf("block %d: %w", p.BlockHeight, err)
	}
	if h == nil {
		return nil, fmt.Errorf("block %d: %w", p.BlockHeight, ErrBlockNotFound)
	}
	if h.Height != p.BlockHeight {
		return nil, fmt.Errorf("ledger returned block %d for height %d", h.Height, p.BlockHeight)
	}

	klog.Origin.Debug().
		Int64("height", h.Height).
		Str("hash", h.Hash).
		Str("merkle_root", h.MerkleRoot).
		Msg("Coin origin proof resolved")
	return h, nil
}
