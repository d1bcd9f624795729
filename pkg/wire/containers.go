package wire

import "github.com/chazu/planwire/pkg/plan"

// encodeList emits one ordered container. A nil list is the 2-byte null tag,
// indistinguishable on the wire from a null scalar node; the decoder knows
// from context which it is reading. A non-nil list is its kind tag, a 4-byte
// element count, then the elements: node lists recurse through the walker,
// integer and identifier lists emit raw 4-byte values with no per-element
// tag.
func (e *Encoder) encodeList(l *plan.List) error {
	if l == nil {
		e.writeTag(TagNull)
		return nil
	}

	switch l.Kind {
	case plan.IntList:
		e.writeTag(TagIntList)
		e.writeUint32(uint32(len(l.Ints)))
		for _, v := range l.Ints {
			e.writeInt32(v)
		}
	case plan.OidList:
		e.writeTag(TagOidList)
		e.writeUint32(uint32(len(l.Oids)))
		for _, v := range l.Oids {
			e.writeOid(v)
		}
	default:
		e.writeTag(TagList)
		e.writeUint32(uint32(len(l.Nodes)))
		for _, n := range l.Nodes {
			if err := e.encodeNode(n); err != nil {
				return err
			}
		}
	}
	return nil
}

// encodeBitmapset emits a sparse integer set as a 4-byte word count followed
// by the raw words. A nil set is word count 0. No support exists on the
// decoder side for sets inside stored rules; they only occur in dispatched
// plans.
func (e *Encoder) encodeBitmapset(bms *plan.Bitmapset) {
	if bms == nil {
		e.writeUint32(0)
		return
	}
	e.writeUint32(uint32(len(bms.Words)))
	for _, w := range bms.Words {
		e.writeUint32(w)
	}
}

// encodeDatum emits an opaque literal payload. By-value datums copy the
// constant 8-byte representation; by-reference datums copy the denoted byte
// run behind an 8-byte length, with a nil reference encoding as length 0.
func (e *Encoder) encodeDatum(d plan.Datum, byval bool) {
	if byval {
		e.writeUint64(d.Val)
		return
	}
	if d.Bytes == nil {
		e.writeUint64(0)
		return
	}
	e.writeUint64(uint64(len(d.Bytes)))
	e.writeBytes(d.Bytes)
}
