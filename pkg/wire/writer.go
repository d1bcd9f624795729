// Package wire serializes plan trees into the compact binary stream consumed
// by the plan decoder and the plan cache. The format is a convention between
// writer and reader: every variant's fields are emitted in one fixed declared
// order, with no embedded schema and no version field. The sole integrity
// check is a 2-byte sentinel after the root encoding.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/chazu/planwire/pkg/plan"
)

// Encoding errors. All of them are fatal for the encode in progress: the
// driver discards the buffer and the caller gets no partial output.
var (
	// ErrUnknownNode reports a node type outside the frozen registry.
	ErrUnknownNode = errors.New("wire: unrecognized node type")

	// ErrMalformedNode reports a node whose raw payload cannot satisfy the
	// declared field layout.
	ErrMalformedNode = errors.New("wire: malformed node")

	// ErrUnknownSubKind reports a discriminated sub-kind with no defined
	// encoding.
	ErrUnknownSubKind = errors.New("wire: unrecognized sub-kind")
)

// Encoder appends the binary encoding of one tree to its buffer. It also
// carries the encoding mode: full (the default) writes every declared field;
// reduced omits cost estimates, node ids, and similar non-semantic
// annotations so that structurally identical plans encode identically.
//
// An Encoder is single-use and not safe for concurrent use. The mode is
// explicit state threaded through every encoder call rather than a process
// global, so independent Encoders never interfere.
type Encoder struct {
	buf    []byte
	full   bool
	rtable *plan.List // reduced mode only: range table for subquery substitution
}

// newEncoder returns a full-mode encoder with the standard initial buffer.
func newEncoder() *Encoder {
	return &Encoder{buf: make([]byte, 0, 4096), full: true}
}

// All multi-byte fields are big-endian with pinned widths. The format is
// byte-for-byte reproducible across platforms; nothing inherits host
// representation.

func (e *Encoder) writeByte(b byte) {
	e.buf = append(e.buf, b)
}

func (e *Encoder) writeBool(v bool) {
	if v {
		e.buf = append(e.buf, 1)
	} else {
		e.buf = append(e.buf, 0)
	}
}

func (e *Encoder) writeUint16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

func (e *Encoder) writeInt16(v int16) {
	e.writeUint16(uint16(v))
}

func (e *Encoder) writeUint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

func (e *Encoder) writeInt32(v int32) {
	e.writeUint32(uint32(v))
}

func (e *Encoder) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

func (e *Encoder) writeInt64(v int64) {
	e.writeUint64(uint64(v))
}

func (e *Encoder) writeFloat64(v float64) {
	e.writeUint64(math.Float64bits(v))
}

func (e *Encoder) writeOid(v plan.Oid) {
	e.writeUint32(uint32(v))
}

func (e *Encoder) writeIndex(v plan.Index) {
	e.writeUint32(uint32(v))
}

func (e *Encoder) writeAttrNumber(v plan.AttrNumber) {
	e.writeInt16(int16(v))
}

func (e *Encoder) writeTag(t Tag) {
	e.writeUint16(uint16(t))
}

// writeEnum narrows an enumerated value to its 2-byte signed code. Every
// enumeration in the node model fits int16 by declaration.
func (e *Encoder) writeEnum(v int16) {
	e.writeInt16(v)
}

// writeString emits a 4-byte length then the raw bytes, no terminator. A
// null string and an empty string both encode as length 0; callers that need
// the distinction must carry it in a separate boolean field.
func (e *Encoder) writeString(v string) {
	e.writeUint32(uint32(len(v)))
	e.buf = append(e.buf, v...)
}

// writeBytes copies a fixed-size binary blob verbatim; the byte count is the
// caller's contract with the decoder.
func (e *Encoder) writeBytes(b []byte) {
	e.buf = append(e.buf, b...)
}

// Integer array fields: 4-byte count declared by the owning variant, then
// raw elements with no per-element framing.

func (e *Encoder) writeAttrNumberArray(vals []plan.AttrNumber) {
	e.writeInt32(int32(len(vals)))
	for _, v := range vals {
		e.writeAttrNumber(v)
	}
}

func (e *Encoder) writeInt16Array(vals []int16) {
	for _, v := range vals {
		e.writeInt16(v)
	}
}

func (e *Encoder) writeInt32Array(vals []int32) {
	e.writeInt32(int32(len(vals)))
	for _, v := range vals {
		e.writeInt32(v)
	}
}

// writeOidArray emits only the elements; the count is a separate field of
// the owning variant (typically shared with a parallel column-index array).
func (e *Encoder) writeOidArray(vals []plan.Oid) {
	for _, v := range vals {
		e.writeOid(v)
	}
}

// encodeValue emits a value leaf: its 2-byte kind tag, then the payload.
// Integer carries a fixed 8-byte signed value; Float, String and BitString
// share the length-prefixed text encoding; Null has no payload.
func (e *Encoder) encodeValue(v plan.Node) error {
	switch n := v.(type) {
	case *plan.Integer:
		e.writeTag(TagInteger)
		e.writeInt64(n.Val)
	case *plan.Float:
		e.writeTag(TagFloat)
		e.writeString(n.Val)
	case *plan.String:
		e.writeTag(TagString)
		e.writeString(n.Val)
	case *plan.BitString:
		e.writeTag(TagBitString)
		e.writeString(n.Val)
	case *plan.Null:
		e.writeTag(TagNullValue)
	default:
		return fmt.Errorf("%w: %T is not a value leaf", ErrUnknownNode, v)
	}
	return nil
}
