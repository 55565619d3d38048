package typesystem

// Kind identifies which branch of the type lattice a Type occupies.
type Kind uint8

const (
	Unknown Kind = iota
	Any
	Void
	Special
	Bool
	Number
	Float
	String
	Blob
	Job
	Channel
	Instr
	List
	Dict
	Func
	Partial

	// kindPoisoned marks a node whose owning arena has been cleared. It is
	// never produced by a constructor and never compared against in normal
	// code paths; its only purpose is to make post-Clear access to a stale
	// pointer observable in tests (see TypeArena.ClearArena).
	kindPoisoned Kind = 0xFF
)

func (k Kind) String() string {
	switch k {
	case Unknown:
		return "unknown"
	case Any:
		return "any"
	case Void:
		return "void"
	case Special:
		return "special"
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
	case Instr:
		return "instr"
	case List:
		return "list"
	case Dict:
		return "dict"
	case Func:
		return "func"
	case Partial:
		return "partial"
	case kindPoisoned:
		return "<poisoned>"
	default:
		return "<invalid kind>"
	}
}

// Flags is a bitset of per-Type modifiers.
type Flags uint8

const (
	// FlagStatic marks a canonical singleton: never freed, never mutated,
	// shared globally.
	FlagStatic Flags = 1 << iota
	// FlagVariadic marks a Func/Partial whose last declared parameter
	// accepts zero or more values of its element type.
	FlagVariadic
	// FlagBoolOK marks a Number type synthesized from the literals 0 or 1,
	// which is accepted wherever Bool is expected.
	FlagBoolOK
)

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }
