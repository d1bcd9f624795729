package wire

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/chazu/planwire/pkg/plan"
)

func TestEncode_IntList(t *testing.T) {
	data, err := Encode(plan.MakeIntList(10, -20, 30))
	if err != nil {
		t.Fatal(err)
	}

	// tag(2) + count(4) + 3*int32(12) + sentinel(2) = 20
	if len(data) != 20 {
		t.Fatalf("length: got %d, want 20", len(data))
	}
	if Tag(binary.BigEndian.Uint16(data[0:2])) != TagIntList {
		t.Errorf("tag: got 0x%04X, want TagIntList", binary.BigEndian.Uint16(data[0:2]))
	}
	if binary.BigEndian.Uint32(data[2:6]) != 3 {
		t.Errorf("count: got %d, want 3", binary.BigEndian.Uint32(data[2:6]))
	}
	if int32(binary.BigEndian.Uint32(data[10:14])) != -20 {
		t.Errorf("second element: got %d, want -20", int32(binary.BigEndian.Uint32(data[10:14])))
	}
}

func TestEncode_OidList(t *testing.T) {
	data, err := Encode(plan.MakeOidList(16384, 16385))
	if err != nil {
		t.Fatal(err)
	}

	// tag(2) + count(4) + 2*oid(8) + sentinel(2) = 16
	if len(data) != 16 {
		t.Fatalf("length: got %d, want 16", len(data))
	}
	if Tag(binary.BigEndian.Uint16(data[0:2])) != TagOidList {
		t.Errorf("tag: got 0x%04X, want TagOidList", binary.BigEndian.Uint16(data[0:2]))
	}
	if binary.BigEndian.Uint32(data[6:10]) != 16384 {
		t.Errorf("first element: got %d, want 16384", binary.BigEndian.Uint32(data[6:10]))
	}
}

func TestEncode_EmptyNodeList(t *testing.T) {
	data, err := Encode(plan.MakeList())
	if err != nil {
		t.Fatal(err)
	}

	// tag(2) + count(4) + sentinel(2) = 8
	if len(data) != 8 {
		t.Fatalf("length: got %d, want 8", len(data))
	}
	if binary.BigEndian.Uint32(data[2:6]) != 0 {
		t.Errorf("count: got %d, want 0", binary.BigEndian.Uint32(data[2:6]))
	}
}

func TestEncode_NilListIsNullTag(t *testing.T) {
	// A nil list field encodes as the null tag, not as an empty list.
	// The two are distinguishable on the wire.
	var l *plan.List
	nilData, err := Encode(l)
	if err != nil {
		t.Fatal(err)
	}
	emptyData, err := Encode(plan.MakeList())
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(nilData, emptyData) {
		t.Error("nil and empty lists must encode differently")
	}
	if len(nilData) != 4 {
		t.Errorf("nil list length: got %d, want 4", len(nilData))
	}
}

func TestEncode_NodeListRecurses(t *testing.T) {
	inner := plan.MakeList(&plan.Grouping{}, &plan.GroupId{})
	data, err := Encode(inner)
	if err != nil {
		t.Fatal(err)
	}

	// tag(2) + count(4) + 2 element tags(4) + sentinel(2) = 12
	if len(data) != 12 {
		t.Fatalf("length: got %d, want 12", len(data))
	}
	if Tag(binary.BigEndian.Uint16(data[6:8])) != TagGrouping {
		t.Errorf("first element tag: got 0x%04X, want TagGrouping", binary.BigEndian.Uint16(data[6:8]))
	}
	if Tag(binary.BigEndian.Uint16(data[8:10])) != TagGroupId {
		t.Errorf("second element tag: got 0x%04X, want TagGroupId", binary.BigEndian.Uint16(data[8:10]))
	}
}

func TestEncode_Bitmapset(t *testing.T) {
	e := newEncoder()
	e.encodeBitmapset(plan.MakeBitmapset(0, 5, 33))

	// count(4) + 2 words(8) = 12
	if len(e.buf) != 12 {
		t.Fatalf("length: got %d, want 12", len(e.buf))
	}
	if binary.BigEndian.Uint32(e.buf[0:4]) != 2 {
		t.Errorf("word count: got %d, want 2", binary.BigEndian.Uint32(e.buf[0:4]))
	}
	if binary.BigEndian.Uint32(e.buf[4:8]) != 1<<0|1<<5 {
		t.Errorf("word 0: got 0x%X, want 0x21", binary.BigEndian.Uint32(e.buf[4:8]))
	}
	if binary.BigEndian.Uint32(e.buf[8:12]) != 1<<1 {
		t.Errorf("word 1: got 0x%X, want 0x2", binary.BigEndian.Uint32(e.buf[8:12]))
	}
}

func TestEncode_NilBitmapset(t *testing.T) {
	e := newEncoder()
	e.encodeBitmapset(nil)

	// Just the zero word count.
	if len(e.buf) != 4 {
		t.Fatalf("length: got %d, want 4", len(e.buf))
	}
	if binary.BigEndian.Uint32(e.buf[0:4]) != 0 {
		t.Errorf("word count: got %d, want 0", binary.BigEndian.Uint32(e.buf[0:4]))
	}
}

func TestEncode_DatumByReference(t *testing.T) {
	e := newEncoder()
	e.encodeDatum(plan.Datum{Bytes: []byte("hello")}, false)

	// len(8) + payload(5) = 13
	if len(e.buf) != 13 {
		t.Fatalf("length: got %d, want 13", len(e.buf))
	}
	if binary.BigEndian.Uint64(e.buf[0:8]) != 5 {
		t.Errorf("payload length: got %d, want 5", binary.BigEndian.Uint64(e.buf[0:8]))
	}
	if string(e.buf[8:13]) != "hello" {
		t.Errorf("payload: got %q, want %q", e.buf[8:13], "hello")
	}
}

func TestEncode_DatumByValue(t *testing.T) {
	e := newEncoder()
	e.encodeDatum(plan.Datum{Val: 0xCAFE}, true)

	if len(e.buf) != 8 {
		t.Fatalf("length: got %d, want 8", len(e.buf))
	}
	if binary.BigEndian.Uint64(e.buf[0:8]) != 0xCAFE {
		t.Errorf("value: got 0x%X, want 0xCAFE", binary.BigEndian.Uint64(e.buf[0:8]))
	}
}

func TestEncode_ValueLeaves(t *testing.T) {
	data, err := Encode(plan.MakeList(
		&plan.Integer{Val: -7},
		&plan.Float{Val: "3.25"},
		&plan.String{Val: "x"},
		&plan.BitString{Val: "b101"},
		&plan.Null{},
	))
	if err != nil {
		t.Fatal(err)
	}

	// list tag(2) + count(4)
	// + integer: tag(2)+val(8)
	// + float: tag(2)+len(4)+4
	// + string: tag(2)+len(4)+1
	// + bitstring: tag(2)+len(4)+4
	// + null: tag(2)
	// + sentinel(2) = 47
	if len(data) != 47 {
		t.Fatalf("length: got %d, want 47", len(data))
	}
	if int64(binary.BigEndian.Uint64(data[8:16])) != -7 {
		t.Errorf("integer: got %d, want -7", int64(binary.BigEndian.Uint64(data[8:16])))
	}
	if Tag(binary.BigEndian.Uint16(data[len(data)-4:len(data)-2])) != TagNullValue {
		t.Error("last element should be the null value leaf")
	}
}
