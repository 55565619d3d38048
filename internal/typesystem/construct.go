package typesystem

// ListOf returns the List type with the given member type, collapsing to a
// canonical whenever possible (§4.2). member == nil is treated the same as
// an Unknown member (the empty-collection sentinel). Allocation failure
// degrades to TAny, never nil (§7).
func ListOf(member *Type, arena *TypeArena) *Type {
	if canon, ok := canonicalListByMember(member); ok {
		return canon
	}
	t := arena.alloc()
	if t == nil {
		return TAny
	}
	t.Kind = List
	t.Member = member
	return t
}

// DictOf is the Dict counterpart of ListOf.
func DictOf(member *Type, arena *TypeArena) *Type {
	if canon, ok := canonicalDictByMember(member); ok {
		return canon
	}
	t := arena.alloc()
	if t == nil {
		return TAny
	}
	t.Kind = Dict
	t.Member = member
	return t
}

// FuncOf returns a Func type with the given return type and declared
// arity, collapsing to a canonical when argCount <= 0 and ret matches one
// of the canonical returns; otherwise it delegates to AllocFunc (§4.2).
func FuncOf(ret *Type, argCount int, arena *TypeArena) *Type {
	if argCount <= 0 {
		var canon *Type
		var ok bool
		if argCount == 0 {
			canon, ok = canonicalFuncZeroArity(ret)
		} else {
			canon, ok = canonicalFuncUnknownArity(ret)
		}
		if ok {
			return canon
		}
	}
	return AllocFunc(ret, argCount, arena)
}

// AllocFunc allocates a fresh Func type with no argument-type storage
// (Args == nil). Callers that need argument types should follow with
// AddArgStorage or build the signature through FuncWithArgs. Allocation
// failure degrades to TAny (§7).
func AllocFunc(ret *Type, argCount int, arena *TypeArena) *Type {
	t := arena.alloc()
	if t == nil {
		return TAny
	}
	if ret == nil {
		ret = TUnknown
	}
	min := argCount
	if min < 0 {
		min = 0
	}
	t.Kind = Func
	t.Member = ret
	t.ArgCount = argCount
	t.MinArgCount = min
	if argCount == 0 {
		// Zero declared arity leaves no room for "argument types unknown"
		// (there are no arguments); Args must be the empty, non-nil slice
		// so the Formatter renders "()" rather than mistaking this for
		// known-arity-but-untyped and emitting "(...)" (invariant 4).
		t.Args = []*Type{}
	}
	return t
}

// AddArgStorage allocates zero-initialized storage for n argument slots on
// fn, which must be a non-canonical Func/Partial previously returned by
// AllocFunc. Each slot starts out as TUnknown; the caller fills each slot
// in before the type is exposed. A no-op on a canonical or nil fn (static
// types are never mutated, invariant 1).
func AddArgStorage(fn *Type, n int, arena *TypeArena) {
	if fn == nil || fn.IsStatic() {
		return
	}
	args := make([]*Type, n)
	for i := range args {
		args[i] = TUnknown
	}
	fn.Args = args
}

// FuncWithArgs builds a complete Func/Partial signature in one call: return
// type, ordered argument types, variadic flag, and the count of leading
// mandatory parameters. Used by the parser (which knows the whole
// signature up front) and by Common (which synthesizes a joined
// signature). Collapses to a canonical only when args is empty and ret
// matches one, via FuncOf.
func FuncWithArgs(ret *Type, args []*Type, variadic bool, minArgCount int, arena *TypeArena) *Type {
	if len(args) == 0 {
		return FuncOf(ret, 0, arena)
	}
	fn := AllocFunc(ret, len(args), arena)
	if fn == TAny {
		return fn
	}
	fn.MinArgCount = minArgCount
	if variadic {
		fn.Flags |= FlagVariadic
	}
	fn.Args = make([]*Type, len(args))
	copy(fn.Args, args)
	return fn
}
