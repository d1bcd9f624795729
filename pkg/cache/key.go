// Package cache derives content-addressed keys from plan trees and stores
// their full encodings for reuse.
package cache

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/chazu/planwire/pkg/plan"
	"github.com/chazu/planwire/pkg/wire"
)

// Key is the SHA-256 content hash of a plan's reduced encoding.
type Key [32]byte

// KeyFor computes the content key of a plan tree.
//
// The hash is computed over the reduced serialization: node identity, cost
// estimates, and dispatch details are suppressed, and subquery scans resolve
// to their underlying relation through rtable. Two plans that do the same
// work against the same relations produce the same key.
func KeyFor(root plan.Node, rtable *plan.List) (Key, error) {
	data, err := wire.EncodeReduced(root, rtable)
	if err != nil {
		return Key{}, err
	}
	return sha256.Sum256(data), nil
}

func (k Key) String() string {
	return hex.EncodeToString(k[:])
}
