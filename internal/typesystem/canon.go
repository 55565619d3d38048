package typesystem

// Canonical singletons. Every one of these carries FlagStatic, is shared
// process-wide, and must never be mutated after init(). Constructors return
// one of these by pointer whenever the input maps onto it (testable
// property 4: canonical collapse), so callers may compare canonicals by
// pointer identity as a fast path (§9, Canonical identity).
var (
	TUnknown = &Type{Kind: Unknown, Flags: FlagStatic}
	TAny     = &Type{Kind: Any, Flags: FlagStatic}
	TVoid    = &Type{Kind: Void, Flags: FlagStatic}
	TSpecial = &Type{Kind: Special, Flags: FlagStatic}
	TBool    = &Type{Kind: Bool, Flags: FlagStatic}
	TNumber  = &Type{Kind: Number, Flags: FlagStatic}
	TFloat   = &Type{Kind: Float, Flags: FlagStatic}
	TString  = &Type{Kind: String, Flags: FlagStatic}
	TBlob    = &Type{Kind: Blob, Flags: FlagStatic}
	TJob     = &Type{Kind: Job, Flags: FlagStatic}
	TChannel = &Type{Kind: Channel, Flags: FlagStatic}
	TInstr   = &Type{Kind: Instr, Flags: FlagStatic}

	// TNumberBool is the synthetic Number subtype produced when inferring
	// the literals 0 and 1 (invariant 6). It is accepted wherever Bool is
	// expected (spec §4.5 rule 4).
	TNumberBool = &Type{Kind: Number, Flags: FlagStatic | FlagBoolOK}
)

// List canonicals, keyed by member kind.
var (
	TListEmpty  = &Type{Kind: List, Member: TUnknown, Flags: FlagStatic}
	TListAny    = &Type{Kind: List, Member: TAny, Flags: FlagStatic}
	TListBool   = &Type{Kind: List, Member: TBool, Flags: FlagStatic}
	TListNumber = &Type{Kind: List, Member: TNumber, Flags: FlagStatic}
	TListString = &Type{Kind: List, Member: TString, Flags: FlagStatic}
)

// Dict canonicals, keyed by member kind (the family is symmetric with List
// per §4.1).
var (
	TDictEmpty  = &Type{Kind: Dict, Member: TUnknown, Flags: FlagStatic}
	TDictAny    = &Type{Kind: Dict, Member: TAny, Flags: FlagStatic}
	TDictBool   = &Type{Kind: Dict, Member: TBool, Flags: FlagStatic}
	TDictNumber = &Type{Kind: Dict, Member: TNumber, Flags: FlagStatic}
	TDictString = &Type{Kind: Dict, Member: TString, Flags: FlagStatic}
)

// Func canonicals with unknown arity (ArgCount = -1), keyed by return kind.
var (
	TFuncUnknown = &Type{Kind: Func, Member: TUnknown, ArgCount: -1, MinArgCount: 0, Flags: FlagStatic}
	TFuncVoid    = &Type{Kind: Func, Member: TVoid, ArgCount: -1, MinArgCount: 0, Flags: FlagStatic}
	TFuncAny     = &Type{Kind: Func, Member: TAny, ArgCount: -1, MinArgCount: 0, Flags: FlagStatic}
	TFuncNumber  = &Type{Kind: Func, Member: TNumber, ArgCount: -1, MinArgCount: 0, Flags: FlagStatic}
	TFuncString  = &Type{Kind: Func, Member: TString, ArgCount: -1, MinArgCount: 0, Flags: FlagStatic}
)

// Func canonicals with explicit zero arity (ArgCount = 0), keyed by return
// kind. func() with no explicit return defaults to Void (§4.3).
var (
	TFunc0Unknown = &Type{Kind: Func, Member: TUnknown, ArgCount: 0, MinArgCount: 0, Args: []*Type{}, Flags: FlagStatic}
	TFunc0Void    = &Type{Kind: Func, Member: TVoid, ArgCount: 0, MinArgCount: 0, Args: []*Type{}, Flags: FlagStatic}
	TFunc0Any     = &Type{Kind: Func, Member: TAny, ArgCount: 0, MinArgCount: 0, Args: []*Type{}, Flags: FlagStatic}
	TFunc0Number  = &Type{Kind: Func, Member: TNumber, ArgCount: 0, MinArgCount: 0, Args: []*Type{}, Flags: FlagStatic}
	TFunc0String  = &Type{Kind: Func, Member: TString, ArgCount: 0, MinArgCount: 0, Args: []*Type{}, Flags: FlagStatic}
)

// canonicalListByMember returns the List canonical matching member, or nil
// if member does not collapse to one. A nil, Unknown, or Void member all
// collapse to the empty-collection canonical (§4.2).
func canonicalListByMember(member *Type) (*Type, bool) {
	if member == nil {
		return TListEmpty, true
	}
	switch member.Kind {
	case Unknown, Void:
		return TListEmpty, true
	case Any:
		return TListAny, true
	case Bool:
		return TListBool, true
	case Number:
		if member.Flags.Has(FlagBoolOK) {
			return nil, false
		}
		return TListNumber, true
	case String:
		return TListString, true
	default:
		return nil, false
	}
}

// canonicalDictByMember is the Dict counterpart of canonicalListByMember.
func canonicalDictByMember(member *Type) (*Type, bool) {
	if member == nil {
		return TDictEmpty, true
	}
	switch member.Kind {
	case Unknown, Void:
		return TDictEmpty, true
	case Any:
		return TDictAny, true
	case Bool:
		return TDictBool, true
	case Number:
		if member.Flags.Has(FlagBoolOK) {
			return nil, false
		}
		return TDictNumber, true
	case String:
		return TDictString, true
	default:
		return nil, false
	}
}

// canonicalFuncUnknownArity returns the unknown-arity Func canonical for
// the given return type, or nil if ret does not collapse to one.
func canonicalFuncUnknownArity(ret *Type) (*Type, bool) {
	if ret == nil {
		return TFuncUnknown, true
	}
	switch ret.Kind {
	case Unknown:
		return TFuncUnknown, true
	case Void:
		return TFuncVoid, true
	case Any:
		return TFuncAny, true
	case Number:
		if ret.Flags.Has(FlagBoolOK) {
			return nil, false
		}
		return TFuncNumber, true
	case String:
		return TFuncString, true
	default:
		return nil, false
	}
}

// canonicalFuncZeroArity is the ArgCount==0 counterpart.
func canonicalFuncZeroArity(ret *Type) (*Type, bool) {
	if ret == nil {
		return TFunc0Unknown, true
	}
	switch ret.Kind {
	case Unknown:
		return TFunc0Unknown, true
	case Void:
		return TFunc0Void, true
	case Any:
		return TFunc0Any, true
	case Number:
		if ret.Flags.Has(FlagBoolOK) {
			return nil, false
		}
		return TFunc0Number, true
	case String:
		return TFunc0String, true
	default:
		return nil, false
	}
}
