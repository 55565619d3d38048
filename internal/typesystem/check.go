package typesystem

import "github.com/funvibe/statictypes/internal/diagnostics"

// Check reports whether a value of type actual is assignable to a slot
// declared as expected, evaluating the rules of §4.5 in order. emit=false
// suppresses diagnostics for recursive, nested checks (composite members,
// §7: "suppressing nested ones by recursing with emit=false") so only the
// outermost mismatch is ever reported.
func Check(expected, actual *Type, emit bool, where diagnostics.Where, sink diagnostics.Sink) bool {
	ok := checkInner(expected, actual, emit, sink)
	if !ok && emit && sink != nil {
		sink.TypeMismatch(TypeName(expected), TypeName(actual), where)
	}
	return ok
}

func checkInner(expected, actual *Type, emit bool, sink diagnostics.Sink) bool {
	if expected == nil || expected.Kind == Unknown {
		return true
	}
	if expected.Kind == Any {
		return actual == nil || actual.Kind != Void
	}

	if actual == nil {
		return false
	}

	kindsMatch := expected.Kind == actual.Kind || (expected.Kind == Func && actual.Kind == Partial)
	if !kindsMatch {
		// BoolOK is the one cross-kind exception: a Number literal
		// restricted to {0,1} satisfies a Bool slot.
		if expected.Kind == Bool && actual.Flags.Has(FlagBoolOK) {
			return true
		}
		return false
	}

	switch expected.Kind {
	case List, Dict:
		if actual.Member != nil && actual.Member.Kind != Unknown {
			return checkInner(expected.Member, actual.Member, false, sink)
		}
		return true
	case Func, Partial:
		return checkFunc(expected, actual, sink)
	default:
		return true
	}
}

func checkFunc(expected, actual *Type, sink diagnostics.Sink) bool {
	if expected.Member != nil && actual.Member != nil &&
		expected.Member.Kind != Unknown && actual.Member.Kind != Unknown {
		if !checkInner(expected.Member, actual.Member, false, sink) {
			return false
		}
	}

	if expected.ArgCount >= 0 && actual.ArgCount >= 0 {
		if actual.ArgCount < expected.MinArgCount || actual.ArgCount > expected.ArgCount {
			return false
		}
	}

	if expected.Args != nil && actual.Args != nil {
		n := len(expected.Args)
		if len(actual.Args) < n {
			n = len(actual.Args)
		}
		for i := 0; i < n; i++ {
			if actual.Args[i] != nil && actual.Args[i].Kind == Any {
				continue
			}
			if !checkInner(expected.Args[i], actual.Args[i], false, sink) {
				return false
			}
		}
	}

	return true
}

// CheckValue infers value's type in a throwaway scratch arena, checks it
// against expected, and tears the arena down before returning — the
// allocate/check/free pattern §4.5 calls out for a single ad hoc check.
func CheckValue(expected *Type, value ValueView, argIdx int, fn FunctionDirectory, sink diagnostics.Sink) bool {
	arena := NewArena(0)
	defer arena.ClearArena()

	actual := InferValue(value, nextCopyID(), arena, true, fn)
	if actual == nil {
		return false
	}
	return Check(expected, actual, true, diagnostics.ArgWhere(argIdx), sink)
}

// CheckArgs enforces a call's argument count and per-argument types
// against funcType's declared signature (§4.5). A funcType that is not a
// Func/Partial has no contract to enforce and always succeeds — the host
// language permits calling through a value of unknown callable shape.
func CheckArgs(funcType *Type, args []ValueView, name string, fn FunctionDirectory, sink diagnostics.Sink) bool {
	if funcType == nil || (funcType.Kind != Func && funcType.Kind != Partial) {
		return true
	}
	if funcType.ArgCount < 0 {
		return true
	}

	declared := funcType.ArgCount
	lo := funcType.MinArgCount
	hi := declared
	if funcType.IsVariadic() {
		lo = declared - 1
		hi = -1 // no upper bound
	}

	if len(args) < lo {
		if sink != nil {
			sink.TooFewArgs(name)
		}
		return false
	}
	if hi >= 0 && len(args) > hi {
		if sink != nil {
			sink.TooManyArgs(name)
		}
		return false
	}

	if funcType.Args == nil {
		return true
	}

	ok := true
	for i := range args {
		var want *Type
		if funcType.IsVariadic() && i >= declared-1 {
			want = funcType.Args[declared-1].Member
		} else if i < len(funcType.Args) {
			want = funcType.Args[i]
		} else {
			continue
		}
		if !CheckValue(want, args[i], i, fn, sink) {
			ok = false
		}
	}
	return ok
}
