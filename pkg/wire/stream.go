package wire

import "github.com/chazu/planwire/pkg/plan"

// Encode serializes a node tree into its full binary form: the complete
// pre-order encoding of root followed by the 2-byte end-of-stream sentinel.
// A nil root is legal and encodes as the null tag plus the sentinel.
//
// On error no partial buffer is returned; a stream that stops mid-node is
// useless to a decoder.
func Encode(root plan.Node) ([]byte, error) {
	e := newEncoder()
	if err := e.encodeNode(root); err != nil {
		return nil, err
	}
	e.writeTag(Sentinel)
	return e.buf, nil
}

// EncodeReduced serializes a node tree in reduced form: plan identity and
// cost fields are suppressed so that two plans that do the same work produce
// the same bytes. rtable is the range table of the query the tree belongs
// to; subquery scans resolve through it. The output is the input of
// content-addressed plan keys and is NOT decodable back into a tree.
func EncodeReduced(root plan.Node, rtable *plan.List) ([]byte, error) {
	e := newEncoder()
	e.full = false
	e.rtable = rtable
	if err := e.encodeNode(root); err != nil {
		return nil, err
	}
	e.writeTag(Sentinel)
	return e.buf, nil
}
