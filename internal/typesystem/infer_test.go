package typesystem

import "testing"

// mixedList implements ValueView directly as a []Type-tagged slice, for
// inference tests that don't need a real host value representation.
type mixedElem struct {
	kind Kind
	num  float64
	isNum bool
}

func (e mixedElem) RawKind() Kind { return e.kind }
func (e mixedElem) NumberValue() (int64, bool) {
	if !e.isNum {
		return 0, false
	}
	i := int64(e.num)
	return i, float64(i) == e.num
}
func (mixedElem) ListEmpty() bool                     { return true }
func (mixedElem) ListIsRange() bool                   { return false }
func (mixedElem) ListIter() ListIter                  { return nil }
func (mixedElem) ListVisitedID() *uint32              { return nil }
func (mixedElem) DictEmpty() bool                     { return true }
func (mixedElem) DictIter() DictIter                  { return nil }
func (mixedElem) DictVisitedID() *uint32              { return nil }
func (mixedElem) InternalName() (string, bool)        { return "", false }
func (mixedElem) UserFunc() (UserFuncRef, bool)       { return nil, false }
func (mixedElem) PartialBoundFunc() (ValueView, bool) { return nil, false }

func numElem(n float64) mixedElem { return mixedElem{kind: Number, num: n, isNum: true} }
func strElem(s string) mixedElem  { return mixedElem{kind: String} }

type fakeList struct {
	elems     []ValueView
	visitedID uint32
	empty     bool
	isRange   bool
}

func (l *fakeList) RawKind() Kind              { return List }
func (*fakeList) NumberValue() (int64, bool)   { return 0, false }
func (l *fakeList) ListEmpty() bool            { return l.empty }
func (l *fakeList) ListIsRange() bool          { return l.isRange }
func (l *fakeList) ListIter() ListIter         { return &fakeListIter{elems: l.elems} }
func (l *fakeList) ListVisitedID() *uint32     { return &l.visitedID }
func (*fakeList) DictEmpty() bool              { return true }
func (*fakeList) DictIter() DictIter           { return nil }
func (*fakeList) DictVisitedID() *uint32       { return nil }
func (*fakeList) InternalName() (string, bool) { return "", false }
func (*fakeList) UserFunc() (UserFuncRef, bool) { return nil, false }
func (*fakeList) PartialBoundFunc() (ValueView, bool) { return nil, false }

type fakeListIter struct {
	elems []ValueView
	pos   int
}

func (it *fakeListIter) Next() bool {
	if it.pos >= len(it.elems) {
		return false
	}
	it.pos++
	return true
}
func (it *fakeListIter) Value() ValueView { return it.elems[it.pos-1] }

// S5
func TestInferHeterogeneousList(t *testing.T) {
	arena := NewArena(0)
	defer arena.ClearArena()

	list := &fakeList{elems: []ValueView{numElem(1), numElem(2), strElem("x")}}

	deep := InferValue(list, nextCopyID(), arena, true, nil)
	if TypeName(deep) != "list<any>" {
		t.Fatalf("deep inference = %v, want list<any>", TypeName(deep))
	}

	shallow := InferValue(list, nextCopyID(), arena, false, nil)
	if TypeName(shallow) != "list<any>" {
		t.Fatalf("shallow inference = %v, want list<any>", TypeName(shallow))
	}
}

// Property 8: cycle safety.
func TestInferSelfReferentialList(t *testing.T) {
	arena := NewArena(0)
	defer arena.ClearArena()

	self := &fakeList{}
	self.elems = []ValueView{numElem(1), self}

	got := InferValue(self, nextCopyID(), arena, true, nil)
	if TypeName(got) != "list<any>" {
		t.Fatalf("self-referential list inference = %v, want list<any>", TypeName(got))
	}
}

// Property 7: BoolOK promotion via inference.
func TestInferBoolOKLiterals(t *testing.T) {
	arena := NewArena(0)
	defer arena.ClearArena()

	zero := InferValue(numElem(0), nextCopyID(), arena, true, nil)
	one := InferValue(numElem(1), nextCopyID(), arena, true, nil)
	two := InferValue(numElem(2), nextCopyID(), arena, true, nil)

	if zero != TNumberBool || one != TNumberBool {
		t.Fatalf("expected 0 and 1 to infer as t_number_bool, got %v / %v", TypeName(zero), TypeName(one))
	}
	if two != TNumber {
		t.Fatalf("expected 2 to infer as plain number, got %v", TypeName(two))
	}
}

func TestInferEmptyList(t *testing.T) {
	arena := NewArena(0)
	defer arena.ClearArena()
	empty := &fakeList{empty: true}
	if got := InferValue(empty, nextCopyID(), arena, true, nil); got != TListEmpty {
		t.Fatalf("empty list inference = %v, want t_list_empty", TypeName(got))
	}
}

func TestInferHostVar(t *testing.T) {
	arena := NewArena(0)
	list := &fakeList{elems: []ValueView{numElem(1)}}
	if got := InferHostVar(list, arena); got != TListString {
		t.Fatalf("InferHostVar(list) = %v, want list<string>", TypeName(got))
	}
}
