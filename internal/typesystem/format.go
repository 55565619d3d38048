package typesystem

import "strings"

// scalarKeyword maps a scalar Kind to its surface-syntax keyword. Kinds
// with no parser keyword (Unknown, Special, Instr) still render
// diagnostically under the name their Kind.String() already gives them.
func scalarKeyword(k Kind) string {
	switch k {
	case Any:
		return "any"
	case Void:
		return "void"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case Float:
		return "float"
	case String:
		return "string"
	case Blob:
		return "blob"
	case Job:
		return "job"
	case Channel:
		return "channel"
	default:
		return k.String()
	}
}

// TypeName renders t as the human-readable name used in diagnostics. A nil
// type renders as "[unknown]" (§4.7).
func TypeName(t *Type) string {
	if t == nil {
		return "[unknown]"
	}
	switch t.Kind {
	case List:
		return "list<" + TypeName(t.Member) + ">"
	case Dict:
		return "dict<" + TypeName(t.Member) + ">"
	case Partial:
		return "func"
	case Func:
		if t == TFuncUnknown {
			// The only Func the parser ever reads back without parentheses:
			// bare "func" (unknown return, unknown arity). Every other
			// Func the parser can produce has an explicit "(" following
			// "func", even func(...) with unknown arity (which defaults
			// its return to Void, not Unknown) — see §4.3.
			return "func"
		}
		return formatFunc(t)
	default:
		return scalarKeyword(t.Kind)
	}
}

func formatFunc(t *Type) string {
	var b strings.Builder
	b.WriteString("func(")

	switch {
	case t.ArgCount < 0:
		b.WriteString("...")
	case t.Args == nil:
		// Known arity, unknown argument types: render as bare "..." like
		// unknown arity, since there is nothing more specific to say.
		b.WriteString("...")
	default:
		for i, arg := range t.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			if t.IsVariadic() && i == len(t.Args)-1 {
				b.WriteString("...")
			} else if i >= t.MinArgCount {
				b.WriteString("?")
			}
			b.WriteString(TypeName(arg))
		}
	}

	b.WriteString(")")

	if t.Member == nil || t.Member.Kind != Void {
		b.WriteString(": ")
		b.WriteString(TypeName(t.Member))
	}
	return b.String()
}
