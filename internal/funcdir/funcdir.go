// Package funcdir is a minimal, in-memory FunctionDirectory
// (typesystem.FunctionDirectory), loosely grounded in the shape of the
// host's own symbol table (internal/symbols/symbol_table_core.go
// upstream: a flat name-keyed registry consulted during compilation)
// rather than a full compiler's function-resolution pipeline.
package funcdir

import (
	"fmt"

	"github.com/funvibe/statictypes/internal/cache"
	"github.com/funvibe/statictypes/internal/typesystem"
	"github.com/funvibe/statictypes/internal/values"
)

// InternalSig describes a built-in function: either a fixed return type,
// or a function of (argc, argv) for the handful of internals whose return
// type depends on the call site (e.g. a generic `default` builtin).
type InternalSig struct {
	Return     *typesystem.Type
	ReturnFunc func(argc int, argv []typesystem.ValueView) *typesystem.Type
}

// Directory is a process-local FunctionDirectory: internal builtins are
// registered up front, user functions are registered as they're declared,
// and a cache.Store backs durable signature lookups across runs.
type Directory struct {
	internals map[string]InternalSig
	internalsByID []string

	users map[string]*values.UserFunc
	synth map[string]*typesystem.Type

	cacheStore *cache.Store
	sourceHash string
}

// New builds an empty Directory. cacheStore may be nil, in which case
// CachedSignature only finds signatures synthesized in this process and
// SynthesizeSignature never persists.
func New(cacheStore *cache.Store, sourceHash string) *Directory {
	return &Directory{
		internals:  make(map[string]InternalSig),
		users:      make(map[string]*values.UserFunc),
		synth:      make(map[string]*typesystem.Type),
		cacheStore: cacheStore,
		sourceHash: sourceHash,
	}
}

// RegisterInternal adds a built-in function's signature under name.
func (d *Directory) RegisterInternal(name string, sig InternalSig) {
	if _, exists := d.internals[name]; !exists {
		d.internalsByID = append(d.internalsByID, name)
	}
	d.internals[name] = sig
}

// RegisterUser adds (or replaces) a user-defined function.
func (d *Directory) RegisterUser(fn *values.UserFunc) {
	d.users[fn.FuncName] = fn
}

func (d *Directory) FindInternal(name string) (typesystem.InternalFuncID, bool) {
	for id, n := range d.internalsByID {
		if n == name {
			return typesystem.InternalFuncID(id), true
		}
	}
	return 0, false
}

func (d *Directory) InternalReturnType(id typesystem.InternalFuncID, argc int, argv []typesystem.ValueView) *typesystem.Type {
	if int(id) < 0 || int(id) >= len(d.internalsByID) {
		return typesystem.TUnknown
	}
	sig := d.internals[d.internalsByID[id]]
	if sig.ReturnFunc != nil {
		return sig.ReturnFunc(argc, argv)
	}
	if sig.Return != nil {
		return sig.Return
	}
	return typesystem.TUnknown
}

func (d *Directory) FindUser(name string) (typesystem.UserFuncRef, bool) {
	fn, ok := d.users[name]
	if !ok {
		return nil, false
	}
	return fn, true
}

// EnsureCompiled marks a pending user function as compiled. Compilation
// itself is out of scope here (§1); this directory only tracks the flag a
// real compiler would clear.
func (d *Directory) EnsureCompiled(ref typesystem.UserFuncRef) error {
	fn, ok := ref.(*values.UserFunc)
	if !ok {
		return fmt.Errorf("funcdir: not a user function reference")
	}
	fn.Pending = false
	return nil
}

func (d *Directory) CachedSignature(ref typesystem.UserFuncRef) (*typesystem.Type, bool) {
	if sig, ok := d.synth[ref.Name()]; ok {
		return sig, true
	}
	if d.cacheStore == nil {
		return nil, false
	}
	sig, ok, err := d.cacheStore.Get(ref.Name(), d.sourceHash)
	if err != nil || !ok {
		return nil, false
	}
	d.synth[ref.Name()] = sig
	return sig, true
}

// SynthesizeSignature builds a placeholder signature for ref (unknown
// return, unknown arity — a stand-in for the host's real body-derived
// signature synthesis) and caches it both in-memory and, if a Store is
// configured, durably.
func (d *Directory) SynthesizeSignature(ref typesystem.UserFuncRef) *typesystem.Type {
	sig := typesystem.TFuncUnknown
	d.synth[ref.Name()] = sig
	if d.cacheStore != nil {
		durable := typesystem.Durable(sig)
		_ = d.cacheStore.Put(ref.Name(), d.sourceHash, durable)
	}
	return sig
}
