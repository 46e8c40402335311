package domain_test

import (
	"slices"
	"testing"

	"go.trai.ch/artcache/internal/core/domain"
)

func TestDependencyGraph_AddDependent(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.AddDependent("App_Code", "App_Web_b")
	g.AddDependent("App_Code", "App_Web_a")
	g.AddDependent("App_Code", "App_Web_a")

	got := g.Dependents("App_Code")
	want := []string{"App_Web_a", "App_Web_b"}
	if !slices.Equal(got, want) {
		t.Fatalf("Dependents() = %v, want %v", got, want)
	}
	if !g.Has("App_Code") {
		t.Error("expected App_Code to be recorded")
	}
	if g.Has("App_Web_a") {
		t.Error("App_Web_a has no dependents and should not be recorded")
	}
}

func TestDependencyGraph_ClosureIsTransitiveAndDeterministic(t *testing.T) {
	// A <- B <- C, A <- D, D <- C
	g := domain.NewDependencyGraph()
	g.AddDependent("A", "D")
	g.AddDependent("A", "B")
	g.AddDependent("B", "C")
	g.AddDependent("D", "C")

	want := []string{"B", "D", "C"}
	for range 10 {
		if got := g.Closure("A"); !slices.Equal(got, want) {
			t.Fatalf("Closure(A) = %v, want %v", got, want)
		}
	}

	if got := g.Closure("C"); len(got) != 0 {
		t.Errorf("Closure(C) = %v, want empty", got)
	}
}

func TestDependencyGraph_ClosureHandlesCycles(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.AddDependent("A", "B")
	g.AddDependent("B", "A")

	got := g.Closure("A")
	if !slices.Equal(got, []string{"B"}) {
		t.Fatalf("Closure(A) = %v, want [B]", got)
	}
}

func TestDependencyGraph_Prune(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.AddDependent("A", "B")
	g.AddDependent("B", "C")
	g.AddDependent("X", "B")
	g.AddDependent("X", "Y")

	removed := g.Prune("A")
	if !slices.Equal(removed, []string{"B", "C"}) {
		t.Fatalf("Prune(A) = %v, want [B C]", removed)
	}

	for _, name := range []string{"A", "B", "C"} {
		if g.Has(name) {
			t.Errorf("%s should have been pruned", name)
		}
	}
	if got := g.Dependents("X"); !slices.Equal(got, []string{"Y"}) {
		t.Errorf("Dependents(X) = %v, want [Y]", got)
	}

	// Pruning again is a no-op.
	if again := g.Prune("A"); len(again) != 0 {
		t.Errorf("second Prune(A) = %v, want empty", again)
	}
}
