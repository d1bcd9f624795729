// Package plan defines the in-memory query plan and parse tree node model
// consumed by the wire serializer. Nodes are plain data: the package never
// validates or rewrites a tree, it only declares the shapes the serializer
// walks.
package plan

// Node is the interface implemented by every tree node, including lists and
// value leaves. It is a closed set: the wire package dispatches on concrete
// types and treats anything else as a fatal error.
type Node interface {
	node() // marker method
}

// ---------------------------------------------------------------------------
// Lists
// ---------------------------------------------------------------------------

// ListKind selects which one of the three element representations a List
// holds. Lists are homogeneous in kind; mixed lists are not representable.
type ListKind int

const (
	NodeList ListKind = iota
	IntList
	OidList
)

// List is an ordered container of node references, plain integers, or object
// identifiers. Exactly one of the element slices is populated, selected by
// Kind. A nil *List is a valid (null) list.
type List struct {
	Kind  ListKind
	Nodes []Node  // Kind == NodeList
	Ints  []int32 // Kind == IntList
	Oids  []Oid   // Kind == OidList
}

func (*List) node() {}

// MakeList builds a NodeList from the given elements.
func MakeList(nodes ...Node) *List {
	return &List{Kind: NodeList, Nodes: nodes}
}

// MakeIntList builds an IntList from the given values.
func MakeIntList(vals ...int32) *List {
	return &List{Kind: IntList, Ints: vals}
}

// MakeOidList builds an OidList from the given identifiers.
func MakeOidList(oids ...Oid) *List {
	return &List{Kind: OidList, Oids: oids}
}

// Len returns the element count of the populated representation. A nil list
// has length 0.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	switch l.Kind {
	case IntList:
		return len(l.Ints)
	case OidList:
		return len(l.Oids)
	default:
		return len(l.Nodes)
	}
}

// ---------------------------------------------------------------------------
// Bitmapset
// ---------------------------------------------------------------------------

// BitsPerWord is the width of one Bitmapset word on the wire.
const BitsPerWord = 32

// Bitmapset is a word-packed set of small non-negative integers. A nil
// *Bitmapset is the empty (absent) set.
type Bitmapset struct {
	Words []uint32
}

// MakeBitmapset builds a set containing the given members.
func MakeBitmapset(members ...int) *Bitmapset {
	bms := &Bitmapset{}
	for _, m := range members {
		word := m / BitsPerWord
		for len(bms.Words) <= word {
			bms.Words = append(bms.Words, 0)
		}
		bms.Words[word] |= 1 << (uint(m) % BitsPerWord)
	}
	return bms
}

// ---------------------------------------------------------------------------
// Datum
// ---------------------------------------------------------------------------

// Datum is an opaque literal payload. How it serializes depends on the
// by-value flag of the field declaring it: by-value datums copy the 8-byte
// Val verbatim, by-reference datums copy Bytes behind a length prefix (a nil
// Bytes slice encodes as length zero).
type Datum struct {
	Val   uint64
	Bytes []byte
}

// ---------------------------------------------------------------------------
// Value leaves
// ---------------------------------------------------------------------------

// Integer is a literal integer leaf.
type Integer struct {
	Val int64
}

// Float is a literal numeric leaf. The value is kept in its source text form
// to avoid precision loss before type resolution.
type Float struct {
	Val string
}

// String is a literal string leaf.
type String struct {
	Val string
}

// BitString is a literal bit-string leaf, in source text form.
type BitString struct {
	Val string
}

// Null is the literal NULL leaf; it carries no payload.
type Null struct{}

func (*Integer) node()   {}
func (*Float) node()     {}
func (*String) node()    {}
func (*BitString) node() {}
func (*Null) node()      {}
