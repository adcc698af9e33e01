package models

import "testing"

func TestManyOfCollapses(t *testing.T) {
	cases := []struct {
		in   []int
		kind Cardinality
	}{
		{nil, None},
		{[]int{}, None},
		{[]int{7}, One},
		{[]int{7, 8}, Many},
	}

	for _, c := range cases {
		v := ManyOf(c.in)
		if v.Kind() != c.kind {
			t.Fatalf("ManyOf(%v): want %s got %s", c.in, c.kind, v.Kind())
		}
	}
}

func TestFirst(t *testing.T) {
	if _, ok := NoneOf[string]().First(); ok {
		t.Fatal("none should have no first value")
	}
	if v, ok := ManyOf([]string{"a", "b"}).First(); !ok || v != "a" {
		t.Fatalf("want a, got %q (%v)", v, ok)
	}

	amount := 12.5
	if v, ok := FromPointer(&amount).First(); !ok || v != 12.5 {
		t.Fatalf("want 12.5, got %v (%v)", v, ok)
	}
	if !FromPointer[float64](nil).IsNone() {
		t.Fatal("nil pointer should be none")
	}
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to TransactionStatus
		ok       bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusPending, false},
		{StatusRejected, StatusApproved, false},
	}

	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.ok {
			t.Errorf("%s -> %s: want %v got %v", c.from, c.to, c.ok, got)
		}
	}
}
