package cache

import (
	"testing"

	"github.com/chazu/planwire/pkg/plan"
)

func samplePlan(id int32, cost float64) plan.Node {
	return &plan.SeqScan{Scan: plan.Scan{
		Plan: plan.Plan{
			PlanNodeID: id,
			TotalCost:  cost,
			PlanRows:   500,
		},
		Scanrelid: 1,
	}}
}

func TestKeyFor_Deterministic(t *testing.T) {
	k1, err := KeyFor(samplePlan(1, 10.0), nil)
	if err != nil {
		t.Fatal(err)
	}
	k2, err := KeyFor(samplePlan(1, 10.0), nil)
	if err != nil {
		t.Fatal(err)
	}
	if k1 != k2 {
		t.Error("key is not deterministic")
	}
}

func TestKeyFor_IgnoresIdentity(t *testing.T) {
	k1, err := KeyFor(samplePlan(1, 10.0), nil)
	if err != nil {
		t.Fatal(err)
	}
	k2, err := KeyFor(samplePlan(42, 99999.0), nil)
	if err != nil {
		t.Fatal(err)
	}
	if k1 != k2 {
		t.Error("plans differing only in identity fields should share a key")
	}
}

func TestKeyFor_DistinguishesWork(t *testing.T) {
	a := &plan.SeqScan{Scan: plan.Scan{Scanrelid: 1}}
	b := &plan.SeqScan{Scan: plan.Scan{Scanrelid: 2}}

	ka, err := KeyFor(a, nil)
	if err != nil {
		t.Fatal(err)
	}
	kb, err := KeyFor(b, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ka == kb {
		t.Error("scans of different relations should have different keys")
	}
}

func TestKey_String(t *testing.T) {
	k, err := KeyFor(samplePlan(1, 10.0), nil)
	if err != nil {
		t.Fatal(err)
	}
	s := k.String()
	if len(s) != 64 {
		t.Errorf("hex key length: got %d, want 64", len(s))
	}
}
