package wire

import (
	"errors"
	"sync/atomic"

	"github.com/chazu/planwire/pkg/plan"
)

// ErrReducedScope reports misuse of the reduced-encoding scope guard:
// entering it twice without an intervening Exit, or exiting a scope that
// was never entered.
var ErrReducedScope = errors.New("wire: reduced encoding scope misuse")

// reducedActive flags an open reduced-encoding scope. There is at most one
// per process; nesting has no meaning because the inner scope's range table
// would shadow the outer one silently.
var reducedActive atomic.Bool

// ReducedScope pins a range table for a sequence of reduced encodings. It
// exists for callers that encode many subtrees of one query and want the
// enter/exit pairing checked rather than passing the range table to every
// call themselves.
type ReducedScope struct {
	rtable *plan.List
}

// EnterReduced opens a reduced-encoding scope over rtable. The scope must be
// closed with Exit before another can be opened.
func EnterReduced(rtable *plan.List) (*ReducedScope, error) {
	if !reducedActive.CompareAndSwap(false, true) {
		return nil, ErrReducedScope
	}
	return &ReducedScope{rtable: rtable}, nil
}

// Encode serializes root in reduced form against the scope's range table.
func (s *ReducedScope) Encode(root plan.Node) ([]byte, error) {
	return EncodeReduced(root, s.rtable)
}

// Exit closes the scope. Exiting twice, or exiting when no scope is open,
// is an error.
func (s *ReducedScope) Exit() error {
	if !reducedActive.CompareAndSwap(true, false) {
		return ErrReducedScope
	}
	s.rtable = nil
	return nil
}
