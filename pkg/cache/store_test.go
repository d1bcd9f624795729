package cache

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/chazu/planwire/pkg/plan"
	"github.com/chazu/planwire/pkg/wire"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "plans.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_PutGet(t *testing.T) {
	s := testStore(t)
	root := samplePlan(1, 10.0)

	key, err := s.Put(root, nil, plan.CmdSelect)
	if err != nil {
		t.Fatal(err)
	}

	body, meta, err := s.Get(key)
	if err != nil {
		t.Fatal(err)
	}

	want, err := wire.Encode(root)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(body, want) {
		t.Error("stored body differs from full encoding")
	}
	if meta.StreamLen != len(body) {
		t.Errorf("meta stream length: got %d, want %d", meta.StreamLen, len(body))
	}
	if meta.Command != plan.CmdSelect {
		t.Errorf("meta command: got %d, want select", meta.Command)
	}
	if meta.ID == "" {
		t.Error("meta id is empty")
	}
}

func TestStore_GetMissing(t *testing.T) {
	s := testStore(t)

	_, _, err := s.Get(Key{0xFF})
	if !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("error: got %v, want ErrPlanNotFound", err)
	}
}

func TestStore_SamePlanOverwrites(t *testing.T) {
	s := testStore(t)

	// Identity fields differ but the work is the same, so both puts land
	// on one entry; the second body wins.
	k1, err := s.Put(samplePlan(1, 10.0), nil, plan.CmdSelect)
	if err != nil {
		t.Fatal(err)
	}
	k2, err := s.Put(samplePlan(9, 77.0), nil, plan.CmdSelect)
	if err != nil {
		t.Fatal(err)
	}
	if k1 != k2 {
		t.Fatal("equivalent plans produced different keys")
	}

	n, err := s.Len()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("entry count: got %d, want 1", n)
	}

	body, _, err := s.Get(k1)
	if err != nil {
		t.Fatal(err)
	}
	want, err := wire.Encode(samplePlan(9, 77.0))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(body, want) {
		t.Error("second put did not overwrite the body")
	}
}

func TestStore_HasAndDelete(t *testing.T) {
	s := testStore(t)

	key, err := s.Put(samplePlan(1, 10.0), nil, plan.CmdSelect)
	if err != nil {
		t.Fatal(err)
	}

	ok, err := s.Has(key)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("cached plan not found by Has")
	}

	if err := s.Delete(key); err != nil {
		t.Fatal(err)
	}
	ok, err = s.Has(key)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("deleted plan still present")
	}

	// Deleting again is a no-op.
	if err := s.Delete(key); err != nil {
		t.Fatal(err)
	}
}

func TestStore_UnknownNodeRejected(t *testing.T) {
	s := testStore(t)

	root := &plan.Constraint{Name: "c", Contype: plan.ConstrType(99)}
	if _, err := s.Put(root, nil, plan.CmdUtility); err == nil {
		t.Fatal("expected encoding failure to abort the put")
	}

	n, err := s.Len()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("entry count after failed put: got %d, want 0", n)
	}
}

func TestStore_List(t *testing.T) {
	s := testStore(t)

	k1, err := s.Put(&plan.SeqScan{Scan: plan.Scan{Scanrelid: 1}}, nil, plan.CmdSelect)
	if err != nil {
		t.Fatal(err)
	}
	k2, err := s.Put(&plan.SeqScan{Scan: plan.Scan{Scanrelid: 2}}, nil, plan.CmdSelect)
	if err != nil {
		t.Fatal(err)
	}

	entries, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("entry count: got %d, want 2", len(entries))
	}
	seen := map[Key]bool{}
	for _, e := range entries {
		if e.Meta == nil || e.Meta.StreamLen == 0 {
			t.Errorf("entry %s has empty metadata", e.Key)
		}
		seen[e.Key] = true
	}
	if !seen[k1] || !seen[k2] {
		t.Error("listed keys do not cover cached plans")
	}
}

func TestStore_Prune(t *testing.T) {
	s := testStore(t)

	var keys []Key
	for i := int32(1); i <= 5; i++ {
		k, err := s.Put(&plan.SeqScan{Scan: plan.Scan{Scanrelid: plan.Index(i)}}, nil, plan.CmdSelect)
		if err != nil {
			t.Fatal(err)
		}
		keys = append(keys, k)
	}

	evicted, err := s.Prune(2)
	if err != nil {
		t.Fatal(err)
	}
	if evicted != 3 {
		t.Errorf("evicted: got %d, want 3", evicted)
	}

	// The two newest entries survive.
	for i, k := range keys {
		ok, err := s.Has(k)
		if err != nil {
			t.Fatal(err)
		}
		if want := i >= 3; ok != want {
			t.Errorf("entry %d present = %v, want %v", i, ok, want)
		}
	}

	// Pruning under the limit is a no-op.
	evicted, err = s.Prune(10)
	if err != nil {
		t.Fatal(err)
	}
	if evicted != 0 {
		t.Errorf("evicted under limit: got %d, want 0", evicted)
	}

	// Disabled limit never evicts.
	if n, err := s.Prune(0); err != nil || n != 0 {
		t.Errorf("disabled prune: got (%d, %v), want (0, nil)", n, err)
	}
}

func TestMeta_RoundTrip(t *testing.T) {
	m := NewMeta(128, plan.CmdInsert)
	data, err := MarshalMeta(&m)
	if err != nil {
		t.Fatal(err)
	}
	got, err := UnmarshalMeta(data)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != m.ID || got.StreamLen != 128 || got.Command != plan.CmdInsert {
		t.Errorf("round trip mismatch: %+v vs %+v", got, m)
	}
}
