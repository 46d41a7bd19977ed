package curvetrace

import "testing"

func TestIDSetInsertKeepsSortedOrder(t *testing.T) {
	var s idSet
	s.insert(5)
	s.insert(1)
	s.insert(3)
	s.insert(1) // duplicate, should be a no-op

	got := s.values()
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("values() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("values() = %v, want %v", got, want)
		}
	}
}

func TestIDSetRemove(t *testing.T) {
	var s idSet
	s.insert(1)
	s.insert(2)
	s.insert(3)
	s.remove(2)

	if s.len() != 2 {
		t.Fatalf("len() = %d, want 2", s.len())
	}
	for _, v := range s.values() {
		if v == 2 {
			t.Fatalf("2 should have been removed, got %v", s.values())
		}
	}

	// removing something absent is a no-op
	s.remove(99)
	if s.len() != 2 {
		t.Fatalf("len() after removing absent id = %d, want 2", s.len())
	}
}

func TestIDSetKeyIsOrderIndependent(t *testing.T) {
	var a, b idSet
	a.insert(3)
	a.insert(1)
	b.insert(1)
	b.insert(3)

	if a.key() != b.key() {
		t.Errorf("key() should not depend on insertion order: %q != %q", a.key(), b.key())
	}
}

func TestIDSetKeyDistinguishesDistinctSets(t *testing.T) {
	var a, b idSet
	a.insert(1)
	a.insert(2)
	b.insert(1)
	b.insert(3)

	if a.key() == b.key() {
		t.Errorf("distinct sets produced the same key %q", a.key())
	}
}
