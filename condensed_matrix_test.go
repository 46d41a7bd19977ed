package curvetrace

import "testing"

func TestCondensedMatrixSetAndGet(t *testing.T) {
	m := newCondensedMatrix(4)
	m.set(0, 2, 1.5)
	m.set(1, 3, 2.5)

	if got := m.at(0, 2); got != 1.5 {
		t.Errorf("at(0,2) = %v, want 1.5", got)
	}
	if got := m.at(2, 0); got != 1.5 {
		t.Errorf("at(2,0) = %v, want 1.5 (matrix should be symmetric)", got)
	}
	if got := m.at(1, 3); got != 2.5 {
		t.Errorf("at(1,3) = %v, want 2.5", got)
	}
	if got := m.at(0, 1); got != 0 {
		t.Errorf("unset entry at(0,1) = %v, want 0", got)
	}
	if got := m.at(3, 3); got != 0 {
		t.Errorf("diagonal at(3,3) = %v, want 0", got)
	}
}

func TestBuildTripletDistanceMatrixSequentialMatchesParallel(t *testing.T) {
	triplets := []Triplet{
		{Center: vec3{0, 0, 0}, Direction: vec3{1, 0, 0}},
		{Center: vec3{1, 1, 0}, Direction: vec3{0, 1, 0}},
		{Center: vec3{2, 2, 0}, Direction: vec3{1, 0, 0}},
	}

	seq := buildTripletDistanceMatrix(triplets, 1.0, 1)
	par := buildTripletDistanceMatrix(triplets, 1.0, 4)

	for i := 0; i < len(triplets); i++ {
		for j := i + 1; j < len(triplets); j++ {
			if seq.at(i, j) != par.at(i, j) {
				t.Errorf("entry (%d,%d) differs: sequential=%v parallel=%v", i, j, seq.at(i, j), par.at(i, j))
			}
		}
	}
}
