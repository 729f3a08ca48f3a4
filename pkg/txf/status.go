package txf

import (
	"errors"
	"fmt"
)

// Status is the lifecycle state of a token copy.
type Status string

// Token statuses.
const (
	StatusPending     Status = "PENDING"     // offline package received, not yet submitted
	StatusSubmitted   Status = "SUBMITTED"   // commitment sent to the network
	StatusConfirmed   Status = "CONFIRMED"   // inclusion proof obtained
	StatusTransferred Status = "TRANSFERRED" // sender's copy after handing off a new transfer
	StatusBurned      Status = "BURNED"      // spendability destroyed by split or swap
	StatusFailed      Status = "FAILED"      // network rejected the commitment
)

// ErrInvalidTransition is returned for a status change the lifecycle forbids.
var ErrInvalidTransition = errors.New("invalid status transition")

var allStatuses = []Status{
	StatusPending, StatusSubmitted, StatusConfirmed,
	StatusTransferred, StatusBurned, StatusFailed,
}

var transitions = map[Status][]Status{
	StatusPending:   {StatusSubmitted},
	StatusSubmitted: {StatusConfirmed, StatusFailed},
	StatusConfirmed: {StatusTransferred, StatusBurned},
}

// ParseStatus converts a string to a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown token status %q", s)
	}
	return st, nil
}

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	for _, v := range allStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

// CanTransition reports whether from may move to to.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates a status change and returns the new status.
func Transition(from, to Status) (Status, error) {
	if !CanTransition(from, to) {
		return from, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return to, nil
}

// InferStatus derives the status the chain itself supports:
//   - PENDING when the last transfer has no proof, or when a legacy offline
//     package is attached to a token without transfers
//   - SUBMITTED when the last transfer has a partial proof
//   - CONFIRMED when every transfer has complete proofs
func InferStatus(t *Token) Status {
	if t == nil {
		return ""
	}
	last := t.LastTransaction()
	if last == nil {
		if t.OfflineTransfer != nil {
			return StatusPending
		}
		return StatusConfirmed
	}
	if last.InclusionProof == nil {
		return StatusPending
	}
	if t.HasCompleteProofs() && last.IsCommitted() {
		return StatusConfirmed
	}
	return StatusSubmitted
}

// CheckStatusConsistency cross-checks the declared status against chain
// facts. A CONFIRMED status the chain cannot back is fatal, since callers
// treat CONFIRMED as safe to spend. A PENDING status over a fully proven
// chain is only stale bookkeeping and yields a warning, except when an
// offline package is attached: that token is genuinely waiting for
// submission. Statuses that depend on network state are passed through.
func CheckStatusConsistency(t *Token) Result {
	var r Result
	if t == nil {
		r.Errorf("missing token record")
		return r
	}
	if t.Status == "" {
		return r
	}
	if !t.Status.Valid() {
		r.Errorf("unknown status %q", t.Status)
		return r
	}

	complete := t.HasCompleteProofs()
	switch t.Status {
	case StatusPending:
		if complete && t.OfflineTransfer == nil {
			r.Warnf("status is PENDING but every transaction has a complete inclusion proof (stale status)")
		}
	case StatusConfirmed:
		if !complete {
			r.Errorf("status is CONFIRMED but the transaction chain lacks complete inclusion proofs")
		}
	}
	return r
}
