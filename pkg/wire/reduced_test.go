package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/chazu/planwire/pkg/plan"
)

func scanWithIdentity(id int32, cost float64) *plan.SeqScan {
	return &plan.SeqScan{Scan: plan.Scan{
		Plan: plan.Plan{
			PlanNodeID: id,
			TotalCost:  cost,
			PlanRows:   1000,
			PlanWidth:  8,
		},
		Scanrelid: 1,
	}}
}

func TestEncodeReduced_IgnoresIdentityAndCosts(t *testing.T) {
	a := scanWithIdentity(1, 100.0)
	b := scanWithIdentity(99, 123456.0)

	dataA, err := EncodeReduced(a, nil)
	if err != nil {
		t.Fatal(err)
	}
	dataB, err := EncodeReduced(b, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dataA, dataB) {
		t.Error("plans differing only in identity fields should reduce to the same bytes")
	}
}

func TestEncode_FullKeepsIdentityAndCosts(t *testing.T) {
	a := scanWithIdentity(1, 100.0)
	b := scanWithIdentity(99, 123456.0)

	dataA, err := Encode(a)
	if err != nil {
		t.Fatal(err)
	}
	dataB, err := Encode(b)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(dataA, dataB) {
		t.Error("full encoding must preserve identity fields")
	}
}

func TestEncodeReduced_ShorterThanFull(t *testing.T) {
	node := scanWithIdentity(1, 100.0)

	full, err := Encode(node)
	if err != nil {
		t.Fatal(err)
	}
	reduced, err := EncodeReduced(node, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(reduced) >= len(full) {
		t.Errorf("reduced %d bytes, full %d bytes; reduced should be smaller", len(reduced), len(full))
	}
}

func TestEncodeReduced_SubqueryScanSubstitutesRelid(t *testing.T) {
	rtable := plan.MakeList(
		&plan.RangeTblEntry{Rtekind: plan.RTERelation, Relid: 16384},
		&plan.RangeTblEntry{Rtekind: plan.RTERelation, Relid: 16500},
	)
	node := &plan.SubqueryScan{
		Scan:    plan.Scan{Scanrelid: 2},
		Subplan: scanWithIdentity(1, 50.0),
	}

	data, err := EncodeReduced(node, rtable)
	if err != nil {
		t.Fatal(err)
	}

	var want [4]byte
	binary.BigEndian.PutUint32(want[:], 16500)
	if !bytes.Contains(data, want[:]) {
		t.Error("substituted relation oid not found in reduced stream")
	}
}

func TestEncodeReduced_SubqueryScanOutOfRange(t *testing.T) {
	rtable := plan.MakeList(
		&plan.RangeTblEntry{Rtekind: plan.RTERelation, Relid: 16384},
	)
	node := &plan.SubqueryScan{
		Scan:    plan.Scan{Scanrelid: 7},
		Subplan: scanWithIdentity(1, 50.0),
	}

	// An index past the range table resolves to the invalid oid rather
	// than failing the encoding.
	if _, err := EncodeReduced(node, rtable); err != nil {
		t.Fatal(err)
	}
}

func TestReducedScope_EnterEncodeExit(t *testing.T) {
	rtable := plan.MakeList(
		&plan.RangeTblEntry{Rtekind: plan.RTERelation, Relid: 16384},
	)

	scope, err := EnterReduced(rtable)
	if err != nil {
		t.Fatal(err)
	}

	data, err := scope.Encode(scanWithIdentity(1, 10.0))
	if err != nil {
		t.Fatal(err)
	}
	want, err := EncodeReduced(scanWithIdentity(1, 10.0), rtable)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, want) {
		t.Error("scoped encoding differs from direct reduced encoding")
	}

	if err := scope.Exit(); err != nil {
		t.Fatal(err)
	}
}

func TestReducedScope_DoubleEnter(t *testing.T) {
	scope, err := EnterReduced(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer scope.Exit()

	if _, err := EnterReduced(nil); !errors.Is(err, ErrReducedScope) {
		t.Fatalf("second enter: got %v, want ErrReducedScope", err)
	}
}

func TestReducedScope_DoubleExit(t *testing.T) {
	scope, err := EnterReduced(nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := scope.Exit(); err != nil {
		t.Fatal(err)
	}
	if err := scope.Exit(); !errors.Is(err, ErrReducedScope) {
		t.Fatalf("second exit: got %v, want ErrReducedScope", err)
	}
}
