// Package values is a minimal, concrete ValueView implementation: a
// stack-shaped tagged union in the spirit of the host's own vm.Value
// (internal/vm/value.go upstream), used by this repo's own tests and by
// cmd/typecheck rather than a real evaluator's runtime representation.
package values

import (
	"github.com/funvibe/statictypes/internal/typesystem"
)

// Tag identifies which branch of Value is populated, mirroring vm.Value's
// ValType discriminant.
type Tag uint8

const (
	TagUnknown Tag = iota
	TagVoid
	TagBool
	TagNumber
	TagFloat
	TagString
	TagBlob
	TagJob
	TagChannel
	TagList
	TagDict
	TagInternalFunc
	TagUserFunc
	TagPartial
)

// Value is a small tagged union covering every scalar and collection shape
// typesystem.ValueView needs to inspect. Number is stored as float64 so
// that 0/1-literal detection (the BoolOK escape) and ordinary numeric use
// share one field, the way vm.Value packs Int/Float/Bool into one Data
// word.
type Value struct {
	Tag Tag

	Num float64
	Str string

	List *ListValue
	Dict *DictValue

	funcName string
	User     *UserFunc
	Bound    *Value
}

func Unknown() Value { return Value{Tag: TagUnknown} }
func Void() Value    { return Value{Tag: TagVoid} }

func Bool(b bool) Value {
	n := 0.0
	if b {
		n = 1
	}
	return Value{Tag: TagBool, Num: n}
}

func Number(n float64) Value { return Value{Tag: TagNumber, Num: n} }
func Float(n float64) Value  { return Value{Tag: TagFloat, Num: n} }
func String(s string) Value  { return Value{Tag: TagString, Str: s} }
func Blob(s string) Value    { return Value{Tag: TagBlob, Str: s} }

func ListVal(elems []Value) Value {
	return Value{Tag: TagList, List: &ListValue{elems: elems}}
}

func DictVal(entries map[string]Value) Value {
	return Value{Tag: TagDict, Dict: &DictValue{entries: entries}}
}

// RangeList builds the special range-literal singleton list ValueInference
// fast-paths to list<number> without walking elements (§4.4).
func RangeList(lo, hi int) Value {
	return Value{Tag: TagList, List: &ListValue{isRange: true, rangeLo: lo, rangeHi: hi}}
}

func InternalFunc(name string) Value {
	return Value{Tag: TagInternalFunc, funcName: name}
}

func UserFuncVal(u *UserFunc) Value {
	return Value{Tag: TagUserFunc, User: u}
}

func PartialVal(bound Value) Value {
	return Value{Tag: TagPartial, Bound: &bound}
}

// RawKind maps this value's Tag to the typesystem.Kind ValueInference falls
// back to when no richer rule applies.
func (v Value) RawKind() typesystem.Kind {
	switch v.Tag {
	case TagVoid:
		return typesystem.Void
	case TagBool:
		return typesystem.Bool
	case TagNumber:
		return typesystem.Number
	case TagFloat:
		return typesystem.Float
	case TagString:
		return typesystem.String
	case TagBlob:
		return typesystem.Blob
	case TagJob:
		return typesystem.Job
	case TagChannel:
		return typesystem.Channel
	case TagList:
		return typesystem.List
	case TagDict:
		return typesystem.Dict
	case TagInternalFunc, TagUserFunc:
		return typesystem.Func
	case TagPartial:
		return typesystem.Partial
	default:
		return typesystem.Unknown
	}
}

// NumberValue satisfies typesystem.ValueView's BoolOK probe: exact is true
// only when this is a Number whose value round-trips through int64.
func (v Value) NumberValue() (int64, bool) {
	if v.Tag != TagNumber {
		return 0, false
	}
	i := int64(v.Num)
	return i, float64(i) == v.Num
}

func (v Value) ListEmpty() bool {
	return v.Tag != TagList || (!v.List.isRange && v.List.Len() == 0)
}

func (v Value) ListIsRange() bool { return v.Tag == TagList && v.List.isRange }

func (v Value) ListIter() typesystem.ListIter {
	if v.Tag != TagList {
		return &sliceIter{}
	}
	return &sliceIter{elems: v.List.elems}
}

func (v Value) ListVisitedID() *uint32 {
	if v.Tag != TagList {
		return nil
	}
	return &v.List.visitedID
}

func (v Value) DictEmpty() bool {
	return v.Tag != TagDict || len(v.Dict.entries) == 0
}

func (v Value) DictIter() typesystem.DictIter {
	if v.Tag != TagDict {
		return &dictIter{}
	}
	vals := make([]Value, 0, len(v.Dict.entries))
	for _, val := range v.Dict.entries {
		vals = append(vals, val)
	}
	return &dictIter{elems: vals}
}

func (v Value) DictVisitedID() *uint32 {
	if v.Tag != TagDict {
		return nil
	}
	return &v.Dict.visitedID
}

func (v Value) InternalName() (string, bool) {
	if v.Tag != TagInternalFunc {
		return "", false
	}
	return v.funcName, true
}

func (v Value) UserFunc() (typesystem.UserFuncRef, bool) {
	if v.Tag != TagUserFunc || v.User == nil {
		return nil, false
	}
	return v.User, true
}

func (v Value) PartialBoundFunc() (typesystem.ValueView, bool) {
	if v.Tag != TagPartial || v.Bound == nil {
		return nil, false
	}
	return *v.Bound, true
}

// ListValue backs Value's List case. visitedID is the cycle-detection
// stamp ValueInference reads/writes through ListVisitedID (§5).
type ListValue struct {
	elems     []Value
	visitedID uint32
	isRange   bool
	rangeLo   int
	rangeHi   int
}

func (l *ListValue) Len() int {
	if l == nil {
		return 0
	}
	return len(l.elems)
}

// Append mutates in place, for building self-referential lists in tests;
// production callers should prefer ListVal(elems) with the full slice.
func (l *ListValue) Append(v Value) { l.elems = append(l.elems, v) }

// DictValue backs Value's Dict case.
type DictValue struct {
	entries   map[string]Value
	visitedID uint32
}

func (d *DictValue) Set(key string, v Value) {
	if d.entries == nil {
		d.entries = make(map[string]Value)
	}
	d.entries[key] = v
}

type sliceIter struct {
	elems []Value
	pos   int
}

func (it *sliceIter) Next() bool {
	if it.pos >= len(it.elems) {
		return false
	}
	it.pos++
	return true
}

func (it *sliceIter) Value() typesystem.ValueView { return it.elems[it.pos-1] }

type dictIter struct {
	elems []Value
	pos   int
}

func (it *dictIter) Next() bool {
	if it.pos >= len(it.elems) {
		return false
	}
	it.pos++
	return true
}

func (it *dictIter) Value() typesystem.ValueView { return it.elems[it.pos-1] }

// UserFunc is a minimal UserFuncRef: a name and a pending-compile flag,
// enough for FunctionDirectory implementations to key off of.
type UserFunc struct {
	FuncName string
	Pending  bool
}

func (u *UserFunc) Name() string         { return u.FuncName }
func (u *UserFunc) PendingCompile() bool { return u.Pending }
