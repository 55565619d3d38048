package typesystem

import (
	"testing"

	"github.com/funvibe/statictypes/internal/diagnostics"
)

// Property 3: common is a join.
func TestCommonIsAJoin(t *testing.T) {
	arena := NewArena(0)
	defer arena.ClearArena()

	a, b := TNumber, TString
	joined := Common(a, b, arena)

	sink := diagnostics.NewCollectingSink()
	if !Check(joined, a, false, diagnostics.VarWhere(0), sink) {
		t.Fatal("common(a,b) must accept a")
	}
	if !Check(joined, b, false, diagnostics.VarWhere(0), sink) {
		t.Fatal("common(a,b) must accept b")
	}
	if !Equal(Common(a, a, arena), a) {
		t.Fatal("common(a,a) must equal a")
	}
	if !Equal(Common(a, b, arena), Common(b, a, arena)) {
		t.Fatal("common must be commutative up to equal")
	}
}

func TestCommonUnknownAbsorption(t *testing.T) {
	arena := NewArena(0)
	defer arena.ClearArena()
	if got := Common(TUnknown, TNumber, arena); got != TNumber {
		t.Fatalf("common(unknown, number) = %v, want number", TypeName(got))
	}
	if got := Common(TString, TUnknown, arena); got != TString {
		t.Fatalf("common(string, unknown) = %v, want string", TypeName(got))
	}
}

// S6
func TestCommonFunc(t *testing.T) {
	arena := NewArena(0)
	defer arena.ClearArena()

	f1 := FuncWithArgs(TVoid, []*Type{TNumber}, false, 1, arena)
	f1b := FuncWithArgs(TVoid, []*Type{TNumber}, false, 1, arena)
	if got := Common(f1, f1b, arena); !Equal(got, f1) {
		t.Fatalf("common of identical funcs should equal either, got %v", TypeName(got))
	}

	f2 := FuncWithArgs(TVoid, []*Type{TString}, false, 1, arena)
	if got := Common(f1, f2, arena); TypeName(got) != "func(any)" {
		t.Fatalf("common(func(number):void, func(string):void) = %q, want %q", TypeName(got), "func(any)")
	}

	f3 := FuncWithArgs(TVoid, []*Type{TNumber, TNumber}, false, 2, arena)
	got := Common(f1, f3, arena)
	if got.Kind != Func || got.ArgCount != -1 || got.Member != TVoid {
		t.Fatalf("common of mismatched-arity funcs should widen to arity -1 void, got %+v", got)
	}
	if got.MinArgCount != 1 {
		t.Fatalf("MinArgCount = %d, want min(1,2)=1", got.MinArgCount)
	}
}

func TestMemberFromStack(t *testing.T) {
	arena := NewArena(0)
	defer arena.ClearArena()

	if got := MemberFromStack(nil, 0, 1, arena); got != TUnknown {
		t.Fatalf("empty range = %v, want unknown", TypeName(got))
	}

	stack := []*Type{TNumber, TNumber, TString}
	if got := MemberFromStack(stack, 3, 1, arena); got != TAny {
		t.Fatalf("fold of [number, number, string] = %v, want any", TypeName(got))
	}

	// stride 2: dict entries interleaved key, value, key, value — only the
	// value slots (odd indices) participate.
	dictStack := []*Type{TString, TNumber, TString, TNumber}
	if got := MemberFromStack(dictStack[1:], 2, 2, arena); got != TNumber {
		t.Fatalf("fold of dict values = %v, want number", TypeName(got))
	}
}
