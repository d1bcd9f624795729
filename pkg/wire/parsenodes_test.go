package wire

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/chazu/planwire/pkg/plan"
)

// The stream layout of a RangeTblEntry is tag(2) + alias(2, null) +
// eref(2, null) + rtekind(2), then the kind-specific fields, then the
// fixed trailer inh(1) + inFromCl(1) + requiredPerms(4) + checkAsUser(4) +
// forceDistRandom(1). Encode appends the 2-byte terminator.
const rteHeaderLen = 8

func TestEncode_VoidRangeTableEntryHasNoPayload(t *testing.T) {
	// A dropped entry carries no kind-specific fields, even when a stale
	// relation id is still set on the struct.
	node := &plan.RangeTblEntry{Rtekind: plan.RTEVoid, Relid: 42}
	data, err := Encode(node)
	if err != nil {
		t.Fatal(err)
	}
	if want := rteHeaderLen + 11 + 2; len(data) != want {
		t.Fatalf("length: got %d, want %d", len(data), want)
	}

	relation := &plan.RangeTblEntry{Rtekind: plan.RTERelation, Relid: 42}
	relData, err := Encode(relation)
	if err != nil {
		t.Fatal(err)
	}
	if len(relData)-len(data) != 4 {
		t.Errorf("relation entry adds %d bytes, want 4 (relid)", len(relData)-len(data))
	}
}

func TestEncode_TableFunctionEntryFieldOrder(t *testing.T) {
	node := &plan.RangeTblEntry{
		Rtekind:      plan.RTETableFunction,
		Subquery:     &plan.Integer{Val: 7},
		Funcuserdata: []byte{0xAB, 0xCD},
	}
	data, err := Encode(node)
	if err != nil {
		t.Fatal(err)
	}

	// The subquery leads the kind-specific block.
	if Tag(binary.BigEndian.Uint16(data[rteHeaderLen:])) != TagInteger {
		t.Errorf("first kind field: got tag 0x%04X, want TagInteger",
			binary.BigEndian.Uint16(data[rteHeaderLen:]))
	}

	// subquery (tag 2 + int64 8) + funcexpr (null, 2) + two nil lists (2+2),
	// then the user data as a by-reference datum: 8-byte length + bytes.
	off := rteHeaderLen + 10 + 2 + 2 + 2
	if n := binary.BigEndian.Uint64(data[off : off+8]); n != 2 {
		t.Fatalf("user data length: got %d, want 2", n)
	}
	if data[off+8] != 0xAB || data[off+9] != 0xCD {
		t.Errorf("user data bytes: got % X, want AB CD", data[off+8:off+10])
	}
}

func TestEncode_TableFunctionEntryNilUserdata(t *testing.T) {
	node := &plan.RangeTblEntry{Rtekind: plan.RTETableFunction}
	data, err := Encode(node)
	if err != nil {
		t.Fatal(err)
	}

	// All four node fields are null tags; nil user data is a length-0 datum.
	off := rteHeaderLen + 2 + 2 + 2 + 2
	if n := binary.BigEndian.Uint64(data[off : off+8]); n != 0 {
		t.Errorf("user data length: got %d, want 0", n)
	}
	if want := off + 8 + 11 + 2; len(data) != want {
		t.Errorf("length: got %d, want %d", len(data), want)
	}
}

func TestEncode_TupleDescShortAttribute(t *testing.T) {
	node := &plan.TupleDescNode{
		Natts: 1,
		Attrs: [][]byte{{1, 2}},
	}
	data, err := Encode(node)
	if !errors.Is(err, ErrMalformedNode) {
		t.Fatalf("error: got %v, want ErrMalformedNode", err)
	}
	if data != nil {
		t.Errorf("buffer: got %d bytes, want nil", len(data))
	}
}
