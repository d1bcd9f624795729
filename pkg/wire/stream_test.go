package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/chazu/planwire/pkg/plan"
)

func TestEncode_NilRoot(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatal(err)
	}

	// null tag(2) + sentinel(2) = 4
	if len(data) != 4 {
		t.Fatalf("length: got %d, want 4", len(data))
	}
	if binary.BigEndian.Uint16(data[0:2]) != uint16(TagNull) {
		t.Errorf("tag: got 0x%04X, want null", binary.BigEndian.Uint16(data[0:2]))
	}
	if binary.BigEndian.Uint16(data[2:4]) != uint16(Sentinel) {
		t.Errorf("sentinel: got 0x%04X, want 0x%04X", binary.BigEndian.Uint16(data[2:4]), uint16(Sentinel))
	}
}

func TestEncode_Deterministic(t *testing.T) {
	node := &plan.OpExpr{
		Opno:         96,
		Opfuncid:     65,
		Opresulttype: 16,
		Args: plan.MakeList(
			&plan.Var{Varno: 1, Varattno: 1, Vartype: 23},
			&plan.Const{Consttype: 23, Constlen: 4, Constbyval: true, Constvalue: plan.Datum{Val: 42}},
		),
	}

	data1, err := Encode(node)
	if err != nil {
		t.Fatal(err)
	}
	data2, err := Encode(node)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data1, data2) {
		t.Error("encoding is not deterministic")
	}
}

func TestEncode_SentinelIsLast(t *testing.T) {
	roots := []plan.Node{
		nil,
		&plan.Grouping{},
		&plan.Var{Varno: 1, Varattno: 2, Vartype: 25},
		plan.MakeIntList(1, 2, 3),
		&plan.SeqScan{Scan: plan.Scan{Scanrelid: 1}},
	}
	for _, root := range roots {
		data, err := Encode(root)
		if err != nil {
			t.Fatal(err)
		}
		if len(data) < 2 {
			t.Fatalf("stream too short: %d bytes", len(data))
		}
		tail := binary.BigEndian.Uint16(data[len(data)-2:])
		if tail != uint16(Sentinel) {
			t.Errorf("%T: trailing bytes 0x%04X, want sentinel", root, tail)
		}
	}
}

func TestEncode_Var(t *testing.T) {
	node := &plan.Var{
		Varno:       2,
		Varattno:    3,
		Vartype:     23,
		Vartypmod:   -1,
		Varlevelsup: 0,
		Varnoold:    2,
		Varoattno:   3,
	}
	data, err := Encode(node)
	if err != nil {
		t.Fatal(err)
	}

	// tag(2) + varno(4) + varattno(2) + vartype(4) + vartypmod(4) +
	// varlevelsup(4) + varnoold(4) + varoattno(2) + sentinel(2) = 28
	if len(data) != 28 {
		t.Fatalf("length: got %d, want 28", len(data))
	}
	if Tag(binary.BigEndian.Uint16(data[0:2])) != TagVar {
		t.Errorf("tag: got 0x%04X, want TagVar", binary.BigEndian.Uint16(data[0:2]))
	}
	if binary.BigEndian.Uint32(data[2:6]) != 2 {
		t.Errorf("varno: got %d, want 2", binary.BigEndian.Uint32(data[2:6]))
	}
	if int16(binary.BigEndian.Uint16(data[6:8])) != 3 {
		t.Errorf("varattno: got %d, want 3", int16(binary.BigEndian.Uint16(data[6:8])))
	}
	if binary.BigEndian.Uint32(data[8:12]) != 23 {
		t.Errorf("vartype: got %d, want 23", binary.BigEndian.Uint32(data[8:12]))
	}
	if int32(binary.BigEndian.Uint32(data[12:16])) != -1 {
		t.Errorf("vartypmod: got %d, want -1", int32(binary.BigEndian.Uint32(data[12:16])))
	}
}

func TestEncode_ConstNullSkipsDatum(t *testing.T) {
	notNull := &plan.Const{Consttype: 23, Constlen: 4, Constbyval: true, Constvalue: plan.Datum{Val: 7}}
	isNull := &plan.Const{Consttype: 23, Constlen: 4, Constbyval: true, Constisnull: true}

	dataNotNull, err := Encode(notNull)
	if err != nil {
		t.Fatal(err)
	}
	dataNull, err := Encode(isNull)
	if err != nil {
		t.Fatal(err)
	}

	// The null constant omits the 8-byte by-value datum.
	if len(dataNotNull)-len(dataNull) != 8 {
		t.Errorf("size difference: got %d, want 8", len(dataNotNull)-len(dataNull))
	}
}

func TestEncode_StringNullAndEmptyCollide(t *testing.T) {
	// Null and empty strings share the zero-length encoding. This is a
	// property of the format, not an accident.
	a, err := Encode(&plan.Alias{Aliasname: ""})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encode(&plan.Alias{})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("zero-length strings should encode identically")
	}
}

func TestEncode_PreOrderTraversal(t *testing.T) {
	// Sort above SeqScan: the Sort tag must come first, the SeqScan tag
	// must appear later in the stream, in declaration order of the
	// parent's fields.
	child := &plan.SeqScan{Scan: plan.Scan{Scanrelid: 1}}
	root := &plan.Sort{
		Plan: plan.Plan{Lefttree: child},
	}

	data, err := Encode(root)
	if err != nil {
		t.Fatal(err)
	}
	if Tag(binary.BigEndian.Uint16(data[0:2])) != TagSort {
		t.Fatalf("root tag: got 0x%04X, want TagSort", binary.BigEndian.Uint16(data[0:2]))
	}

	var childTag [2]byte
	binary.BigEndian.PutUint16(childTag[:], uint16(TagSeqScan))
	if !bytes.Contains(data[2:], childTag[:]) {
		t.Error("child scan tag not found in parent's stream")
	}
}

type bogusNode struct {
	plan.Node
}

func TestEncode_UnknownNodeIsFatal(t *testing.T) {
	data, err := Encode(&bogusNode{})
	if !errors.Is(err, ErrUnknownNode) {
		t.Fatalf("error: got %v, want ErrUnknownNode", err)
	}
	if data != nil {
		t.Error("failed encoding must not return a partial buffer")
	}
}

func TestEncode_UnknownNodeInsideTree(t *testing.T) {
	root := &plan.BoolExpr{
		Boolop: plan.AndExpr,
		Args:   plan.MakeList(&plan.Grouping{}, &bogusNode{}),
	}
	if _, err := Encode(root); !errors.Is(err, ErrUnknownNode) {
		t.Fatalf("error: got %v, want ErrUnknownNode", err)
	}
}

func TestEncode_UnknownConstraintKind(t *testing.T) {
	node := &plan.Constraint{Name: "c", Contype: plan.ConstrType(99)}
	if _, err := Encode(node); !errors.Is(err, ErrUnknownSubKind) {
		t.Fatalf("error: got %v, want ErrUnknownSubKind", err)
	}
}

func TestEncode_UnknownRangeTableKind(t *testing.T) {
	node := &plan.RangeTblEntry{Rtekind: plan.RTEKind(42)}
	if _, err := Encode(node); !errors.Is(err, ErrUnknownSubKind) {
		t.Fatalf("error: got %v, want ErrUnknownSubKind", err)
	}
}
