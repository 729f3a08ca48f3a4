// Package tokenstore is the local token vault: sanitized token files kept
// in a key/value store, addressed by the BLAKE3 hash of their exported
// bytes.
package tokenstore

import (
	"errors"
	"fmt"

	klog "github.com/unicitynetwork/cli-sub013/internal/log"
	"github.com/unicitynetwork/cli-sub013/internal/storage"
	"github.com/unicitynetwork/cli-sub013/pkg/crypto"
	"github.com/unicitynetwork/cli-sub013/pkg/txf"
	"github.com/unicitynetwork/cli-sub013/pkg/types"
)

var prefixToken = []byte("t/") // t/<blake3(export bytes)(32)> -> sanitized token JSON

// ErrNotFound is returned for an ID the vault does not hold.
var ErrNotFound = errors.New("token not in vault")

// Store persists sanitized token files.
type Store struct {
	db storage.DB
}

// NewStore creates a token vault on db.
func NewStore(db storage.DB) *Store {
	return &Store{db: db}
}

// Put validates the structure of t, sanitizes it, and stores the exported
// bytes. Storing the same export twice yields the same ID.
func (s *Store) Put(t *txf.Token) (types.Hash, error) {
	if r := txf.ValidateStructure(t); !r.IsValid() {
		return types.Hash{}, fmt.Errorf("token put: %w", r.Err())
	}
	data, err := txf.MarshalForExport(t)
	if err != nil {
		return types.Hash{}, fmt.Errorf("token marshal: %w", err)
	}
	id := crypto.Hash(data)
	if err := s.db.Put(tokenKey(id), data); err != nil {
		return types.Hash{}, fmt.Errorf("token put: %w", err)
	}
	klog.Store.Debug().
		Str("id", id.Short()).
		Int("size", len(data)).
		Int("transactions", len(t.Transactions)).
		Msg("Token stored")
	return id, nil
}

// Get returns the stored bytes for id, exactly as exported.
func (s *Store) Get(id types.Hash) ([]byte, error) {
	data, err := s.db.Get(tokenKey(id))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("token get %s: %w", id.Short(), ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("token get: %w", err)
	}
	return data, nil
}

// GetToken returns the decoded token stored under id.
func (s *Store) GetToken(id types.Hash) (*txf.Token, error) {
	data, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	t, err := txf.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("token unmarshal: %w", err)
	}
	return t, nil
}

// Has checks if the vault holds id.
func (s *Store) Has(id types.Hash) (bool, error) {
	return s.db.Has(tokenKey(id))
}

// Delete removes id from the vault.
func (s *Store) Delete(id types.Hash) error {
	ok, err := s.Has(id)
	if err != nil {
		return fmt.Errorf("token delete: %w", err)
	}
	if !ok {
		return fmt.Errorf("token delete %s: %w", id.Short(), ErrNotFound)
	}
	if err := s.db.Delete(tokenKey(id)); err != nil {
		return fmt.Errorf("token delete: %w", err)
	}
	klog.Store.Debug().Str("id", id.Short()).Msg("Token deleted")
	return nil
}

// Entry summarizes a stored token.
type Entry struct {
	ID           types.Hash `json:"id"`
	TokenID      string     `json:"tokenId,omitempty"`
	Status       txf.Status `json:"status,omitempty"`
	Transactions int        `json:"transactions"`
}

// ForEach iterates over all stored tokens in ID order.
// Return a non-nil error from fn to stop iteration early.
func (s *Store) ForEach(fn func(types.Hash, *txf.Token) error) error {
	return s.db.ForEach(prefixToken, func(key, value []byte) error {
		// Key layout: "t/" + id(32).
		if len(key) != len(prefixToken)+types.HashSize {
			return nil // Malformed key, skip.
		}
		var id types.Hash
		copy(id[:], key[len(prefixToken):])

		t, err := txf.Decode(value)
		if err != nil {
			klog.Store.Warn().Str("id", id.Short()).Err(err).Msg("Skipping corrupt vault entry")
			return nil
		}
		return fn(id, t)
	})
}

// List returns a summary of every stored token.
func (s *Store) List() ([]Entry, error) {
	entries := []Entry{}
	err := s.ForEach(func(id types.Hash, t *txf.Token) error {
		entries = append(entries, Entry{
			ID:           id,
			TokenID:      t.Genesis.Object("data").String("tokenId"),
			Status:       t.Status,
			Transactions: len(t.Transactions),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func tokenKey(id types.Hash) []byte {
	key := make([]byte, len(prefixToken)+types.HashSize)
	copy(key, prefixToken)
	copy(key[len(prefixToken):], id[:])
	return key
}
