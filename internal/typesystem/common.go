package typesystem

// Common computes the least upper bound of a and b under the assignability
// relation Check defines (§4.6): the narrowest type both are assignable to.
// Degrades to TAny whenever the two shapes disagree, never to nil.
func Common(a, b *Type, arena *TypeArena) *Type {
	if Equal(a, b) {
		if a != nil {
			return a
		}
		return b
	}
	if a == nil || a.Kind == Unknown {
		return orAny(b)
	}
	if b == nil || b.Kind == Unknown {
		return orAny(a)
	}
	if a.Kind != b.Kind {
		return TAny
	}

	switch a.Kind {
	case List:
		return ListOf(Common(a.Member, b.Member, arena), arena)
	case Dict:
		return DictOf(Common(a.Member, b.Member, arena), arena)
	case Func, Partial:
		return commonFunc(a, b, arena)
	default:
		// Same Kind but not Equal: only scalars with differing BoolOK
		// flags land here, and the join of "plain" and "BoolOK" widens to
		// the plain scalar.
		return canonicalForRawKind(a.Kind)
	}
}

func orAny(t *Type) *Type {
	if t == nil {
		return TAny
	}
	return t
}

// commonFunc implements the Func branch of Common (§4.6): the return type
// is joined unconditionally; the arity and per-argument types are only
// joined when both operands declare a known, equal arity, otherwise the
// result widens to unknown arity with no argument types.
func commonFunc(a, b *Type, arena *TypeArena) *Type {
	ret := Common(a.Member, b.Member, arena)
	minArgCount := a.MinArgCount
	if b.MinArgCount < minArgCount {
		minArgCount = b.MinArgCount
	}

	if a.ArgCount >= 0 && a.ArgCount == b.ArgCount {
		var args []*Type
		if a.Args != nil && b.Args != nil {
			args = make([]*Type, a.ArgCount)
			for i := range args {
				args[i] = Common(a.Args[i], b.Args[i], arena)
			}
		}
		variadic := a.IsVariadic() && b.IsVariadic()
		if len(args) == 0 {
			return FuncOf(ret, a.ArgCount, arena)
		}
		return FuncWithArgs(ret, args, variadic, minArgCount, arena)
	}

	// Allocate directly rather than through FuncOf: the canonical
	// unknown-arity family fixes MinArgCount at 0, but this result may
	// need a nonzero one (S6), so it cannot share the canonical even when
	// ret would otherwise collapse to one.
	fn := AllocFunc(ret, -1, arena)
	if !fn.IsStatic() {
		fn.MinArgCount = minArgCount
	}
	return fn
}

// MemberFromStack folds Common over count entries of a type stack, reading
// every stride'th slot starting at top[0] (stride 1 for a list's element
// types, stride 2 for a dict's interleaved key/value types, skipping
// keys). Returns TUnknown for an empty range and short-circuits once the
// accumulator reaches TAny, since no further join can narrow it.
func MemberFromStack(top []*Type, count, stride int, arena *TypeArena) *Type {
	if count == 0 {
		return TUnknown
	}
	acc := top[0]
	for i := 1; i < count; i++ {
		if acc == TAny {
			break
		}
		acc = Common(acc, top[i*stride], arena)
	}
	return acc
}
