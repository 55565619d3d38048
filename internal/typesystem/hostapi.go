package typesystem

// This file names the external collaborators ValueInference and the
// checker consume. Per §1 these are out of scope for this subsystem: the
// surrounding value representation, function compilation, and diagnostic
// reporting are all implemented by the embedding host. Only the shapes
// are fixed here; internal/values and internal/funcdir in this repo are
// one concrete, minimal implementation used by the tests and the CLI, not
// part of the contract itself.

// ValueView is the runtime value representation inference reads. It
// exposes just enough structure to walk lists, dicts, and function
// references without depending on any particular evaluator.
type ValueView interface {
	// RawKind is the value's own tag, used as the fallback type when none
	// of the richer inference rules apply.
	RawKind() Kind

	// NumberValue reports v's value as an int64 and whether v is both a
	// Number and exactly representable as one. Used only for the BoolOK
	// escape (§4.4): a Number value of exactly 0 or 1 additionally
	// satisfies Bool.
	NumberValue() (value int64, exact bool)

	ListEmpty() bool
	// ListIsRange reports whether this list is the special range-literal
	// singleton list, which short-circuits inference to ListNumber without
	// walking elements (§4.4).
	ListIsRange() bool
	ListIter() ListIter
	// ListVisitedID exposes the container's cycle-detection stamp so
	// inference can compare it against the current copyId and, on a
	// first visit, stamp it itself (§5, Cycle handling).
	ListVisitedID() *uint32

	DictEmpty() bool
	DictIter() DictIter
	DictVisitedID() *uint32

	// InternalName reports the bound internal function's name, if this
	// value is a reference to one.
	InternalName() (string, bool)
	// UserFunc reports the bound user-defined function, if this value is a
	// reference to one.
	UserFunc() (UserFuncRef, bool)
	// PartialBoundFunc reports the underlying function value a Partial
	// wraps, if this value is a partial application.
	PartialBoundFunc() (ValueView, bool)
}

// ListIter walks a list value's elements one at a time. Call Next before
// the first Value.
type ListIter interface {
	Next() bool
	Value() ValueView
}

// DictIter walks a dict value's entry values (keys are not needed by
// inference, which only folds over value types). Call Next before the
// first Value.
type DictIter interface {
	Next() bool
	Value() ValueView
}

// UserFuncRef identifies a user-defined function by reference, stable
// enough to use as a cache key.
type UserFuncRef interface {
	Name() string
	// PendingCompile reports whether the function body has not yet been
	// compiled (forward reference / recursive definition still being
	// processed).
	PendingCompile() bool
}

// InternalFuncID identifies a built-in function.
type InternalFuncID int

// FunctionDirectory resolves function names and signatures for inference.
// It is the seam between this subsystem and function-definition
// compilation, which is out of scope here (§1).
type FunctionDirectory interface {
	FindInternal(name string) (InternalFuncID, bool)
	// InternalReturnType looks up an internal function's return type,
	// given the call's argument count and argument values (some internal
	// functions have a return type that depends on its arguments).
	InternalReturnType(id InternalFuncID, argc int, argv []ValueView) *Type

	FindUser(name string) (UserFuncRef, bool)
	// EnsureCompiled requests that a user function's body be compiled,
	// returning an error if compilation fails.
	EnsureCompiled(ref UserFuncRef) error
	// CachedSignature returns a previously computed, shared signature for
	// ref, if one exists.
	CachedSignature(ref UserFuncRef) (*Type, bool)
	// SynthesizeSignature builds and caches a signature for ref from its
	// now-compiled body.
	SynthesizeSignature(ref UserFuncRef) *Type
}
