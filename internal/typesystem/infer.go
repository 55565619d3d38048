package typesystem

// InferValue synthesizes a Type from a runtime value. copyID is the
// caller's current cycle-detection stamp (§5, Cycle handling): the caller
// bumps a process-wide counter once per inference root and passes the same
// value down through every recursive call, never resetting it mid-walk.
// deep=false short-circuits a non-empty List/Dict to its Any-member
// canonical without walking elements, for callers that only need a cheap
// approximate shape; an empty one still yields the empty-collection
// canonical.
//
// Returns nil only when fn is non-nil and a required host operation
// (compiling a pending user function) fails; every other path always
// widens rather than fails (§7).
func InferValue(v ValueView, copyID uint32, arena *TypeArena, deep bool, fn FunctionDirectory) *Type {
	if v == nil {
		return TUnknown
	}

	t := inferRaw(v, copyID, arena, deep, fn)
	if t == nil {
		return nil
	}

	// Bool-literal escape (§4.4): 0 and 1 additionally satisfy Bool.
	if t.Kind == Number {
		if n, exact := v.NumberValue(); exact && (n == 0 || n == 1) {
			return TNumberBool
		}
	}
	return t
}

func inferRaw(v ValueView, copyID uint32, arena *TypeArena, deep bool, fn FunctionDirectory) *Type {
	switch v.RawKind() {
	case List:
		return inferList(v, copyID, arena, deep, fn)
	case Dict:
		return inferDict(v, copyID, arena, deep, fn)
	case Func, Partial:
		return inferFunc(v, fn, arena)
	default:
		return canonicalForRawKind(v.RawKind())
	}
}

// canonicalForRawKind maps a scalar ValueView.RawKind straight to its
// canonical Type (§4.4, "Otherwise allocate a fresh type from the value's
// raw kind" — every scalar kind already has a canonical, so "fresh" never
// actually allocates).
func canonicalForRawKind(k Kind) *Type {
	switch k {
	case Unknown:
		return TUnknown
	case Any:
		return TAny
	case Void:
		return TVoid
	case Special:
		return TSpecial
	case Bool:
		return TBool
	case Number:
		return TNumber
	case Float:
		return TFloat
	case String:
		return TString
	case Blob:
		return TBlob
	case Job:
		return TJob
	case Channel:
		return TChannel
	case Instr:
		return TInstr
	default:
		return TAny
	}
}

func inferList(v ValueView, copyID uint32, arena *TypeArena, deep bool, fn FunctionDirectory) *Type {
	if v.ListEmpty() {
		return TListEmpty
	}
	if !deep {
		return TListAny
	}
	if v.ListIsRange() {
		return TListNumber
	}

	stamp := v.ListVisitedID()
	if stamp != nil && *stamp == copyID {
		return TListAny
	}
	if stamp != nil {
		*stamp = copyID
	}

	var member *Type = TUnknown
	it := v.ListIter()
	for it.Next() {
		elem := InferValue(it.Value(), copyID, arena, deep, fn)
		if elem == nil {
			return nil
		}
		member = Common(member, elem, arena)
		if member == TAny {
			break
		}
	}
	return ListOf(member, arena)
}

func inferDict(v ValueView, copyID uint32, arena *TypeArena, deep bool, fn FunctionDirectory) *Type {
	if v.DictEmpty() {
		return TDictEmpty
	}
	if !deep {
		return TDictAny
	}

	stamp := v.DictVisitedID()
	if stamp != nil && *stamp == copyID {
		return TDictAny
	}
	if stamp != nil {
		*stamp = copyID
	}

	var member *Type = TUnknown
	it := v.DictIter()
	for it.Next() {
		elem := InferValue(it.Value(), copyID, arena, deep, fn)
		if elem == nil {
			return nil
		}
		member = Common(member, elem, arena)
		if member == TAny {
			break
		}
	}
	return DictOf(member, arena)
}

func inferFunc(v ValueView, fn FunctionDirectory, arena *TypeArena) *Type {
	if bound, ok := v.PartialBoundFunc(); ok {
		inner := inferFunc(bound, fn, arena)
		if inner == nil {
			return nil
		}
		return inner
	}

	if fn == nil {
		return TFuncUnknown
	}

	if name, ok := v.InternalName(); ok {
		if id, ok := fn.FindInternal(name); ok {
			ret := fn.InternalReturnType(id, -1, nil)
			if ret == nil {
				ret = TUnknown
			}
			return FuncOf(ret, -1, arena)
		}
	}

	if ref, ok := v.UserFunc(); ok {
		if sig, ok := fn.CachedSignature(ref); ok {
			return sig
		}
		if ref.PendingCompile() {
			if err := fn.EnsureCompiled(ref); err != nil {
				return nil
			}
		}
		return fn.SynthesizeSignature(ref)
	}

	return TFuncUnknown
}

// InferHostVar is the thin wrapper for host-injected variables of known
// shape (§4.4): List/Dict values short-circuit to list<string>/dict<any>
// without walking elements, since host variables are populated by the
// embedder rather than constructed by the program under inference.
func InferHostVar(v ValueView, arena *TypeArena) *Type {
	if v == nil {
		return TUnknown
	}
	switch v.RawKind() {
	case List:
		return TListString
	case Dict:
		return TDictAny
	default:
		return canonicalForRawKind(v.RawKind())
	}
}
