package typesystem

// Type is a node in the static type lattice. Unlike the host language's
// unification-based Type interface (TVar/TCon/TApp/...), this lattice has
// no variables and no nominal types, so every type — scalar, collection, or
// callable — is representable as one flat struct, following the same
// "single struct describes every case" shape the host uses for its tagged
// runtime Value (internal/vm/value.go) rather than its polymorphic Type
// interface. A Type is always referenced through a pointer: canonical
// identity (invariant 1) and arena ownership both depend on pointer
// identity, not structural comparison.
type Type struct {
	Kind Kind

	// Member is the element type for List/Dict, or the return type for
	// Func/Partial. Non-nil whenever Kind is one of those four (invariants
	// 3 and 4).
	Member *Type

	// ArgCount is the declared arity of a Func/Partial: -1 means unknown
	// (any arity accepted), otherwise a non-negative count including a
	// trailing variadic parameter.
	ArgCount int

	// MinArgCount is the number of leading mandatory parameters;
	// ArgCount-MinArgCount is the count of trailing optional parameters.
	MinArgCount int

	// Args holds per-parameter types for a Func/Partial with a known
	// signature. Nil means "signature shape known, argument types are not".
	// When non-nil it has exactly max(ArgCount, 0) entries.
	Args []*Type

	Flags Flags
}

// IsStatic reports whether t is a canonical singleton.
func (t *Type) IsStatic() bool { return t != nil && t.Flags.Has(FlagStatic) }

// IsVariadic reports whether t's last declared parameter is a variadic
// element type.
func (t *Type) IsVariadic() bool { return t != nil && t.Flags.Has(FlagVariadic) }

// IsBoolOK reports whether t is the synthetic Number subtype produced when
// inferring the literals 0 and 1.
func (t *Type) IsBoolOK() bool { return t != nil && t.Flags.Has(FlagBoolOK) }

// Equal reports whether a and b denote the same type, structurally.
// Canonical pointers compare equal to themselves trivially (fast path);
// non-canonical types compare field by field.
func Equal(a, b *Type) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case List, Dict:
		return Equal(a.Member, b.Member)
	case Func, Partial:
		if a.ArgCount != b.ArgCount || a.MinArgCount != b.MinArgCount {
			return false
		}
		if a.Flags.Has(FlagVariadic) != b.Flags.Has(FlagVariadic) {
			return false
		}
		if !Equal(a.Member, b.Member) {
			return false
		}
		if (a.Args == nil) != (b.Args == nil) {
			return false
		}
		if len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	default:
		// Scalars: kind equality is the whole story, except that BoolOK is
		// part of a Number's identity for the purposes of equality — a
		// bare Number and the 0/1-derived Number are not the same type.
		return a.Flags.Has(FlagBoolOK) == b.Flags.Has(FlagBoolOK)
	}
}
