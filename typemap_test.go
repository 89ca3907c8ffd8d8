package optparse

import "testing"

func TestTypeMapInsertGet(t *testing.T) {
	tm := NewTypeMap()
	TypeMapInsert(tm, 42)
	v, ok := TypeMapGet[int](tm)
	if !ok || v != 42 {
		t.Fatalf("got (%v, %v), want (42, true)", v, ok)
	}
}

func TestTypeMapGetWrongTypeIsAbsent(t *testing.T) {
	tm := NewTypeMap()
	TypeMapInsert(tm, "hello")
	_, ok := TypeMapGet[int](tm)
	if ok {
		t.Fatal("expected no int stored when only a string was inserted")
	}
}

func TestTypeMapGetMutMutates(t *testing.T) {
	tm := NewTypeMap()
	TypeMapInsert(tm, 1)
	p, ok := TypeMapGetMut[int](tm)
	if !ok {
		t.Fatal("expected value present")
	}
	*p = 99
	v, _ := TypeMapGet[int](tm)
	if v != 99 {
		t.Fatalf("got %d, want 99", v)
	}
}

func TestTypeMapEntryInitializesOnce(t *testing.T) {
	tm := NewTypeMap()
	calls := 0
	init := func() []string {
		calls++
		return []string{"a"}
	}
	p1 := TypeMapEntry(tm, init)
	*p1 = append(*p1, "b")
	p2 := TypeMapEntry(tm, init)
	if calls != 1 {
		t.Fatalf("init called %d times, want 1", calls)
	}
	if len(*p2) != 2 {
		t.Fatalf("got %v, want 2 elements", *p2)
	}
}

func TestTypeMapRemoveAndContains(t *testing.T) {
	tm := NewTypeMap()
	TypeMapInsert(tm, 7)
	if !TypeMapContains[int](tm) {
		t.Fatal("expected int to be present")
	}
	TypeMapRemove[int](tm)
	if TypeMapContains[int](tm) {
		t.Fatal("expected int to be removed")
	}
}

func TestTypeMapDistinctTypesDoNotCollide(t *testing.T) {
	tm := NewTypeMap()
	TypeMapInsert(tm, []int{1, 2})
	TypeMapInsert(tm, []string{"x"})
	ints, _ := TypeMapGet[[]int](tm)
	strs, _ := TypeMapGet[[]string](tm)
	if len(ints) != 2 || len(strs) != 1 {
		t.Fatalf("got ints=%v strs=%v", ints, strs)
	}
}
