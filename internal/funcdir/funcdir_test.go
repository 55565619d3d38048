package funcdir

import (
	"testing"

	"github.com/funvibe/statictypes/internal/typesystem"
	"github.com/funvibe/statictypes/internal/values"
)

func TestInternalLookupAndReturnType(t *testing.T) {
	d := New(nil, "")
	d.RegisterInternal("len", InternalSig{Return: typesystem.TNumber})

	id, ok := d.FindInternal("len")
	if !ok {
		t.Fatal("expected len to be found")
	}
	if got := d.InternalReturnType(id, 1, nil); got != typesystem.TNumber {
		t.Fatalf("InternalReturnType = %v, want number", typesystem.TypeName(got))
	}

	if _, ok := d.FindInternal("nope"); ok {
		t.Fatal("expected nope to be absent")
	}
}

func TestInternalReturnTypeFunc(t *testing.T) {
	d := New(nil, "")
	d.RegisterInternal("default", InternalSig{
		ReturnFunc: func(argc int, argv []typesystem.ValueView) *typesystem.Type {
			if argc == 0 {
				return typesystem.TVoid
			}
			return typesystem.TAny
		},
	})
	id, _ := d.FindInternal("default")
	if got := d.InternalReturnType(id, 0, nil); got != typesystem.TVoid {
		t.Fatalf("argc=0: got %v, want void", typesystem.TypeName(got))
	}
	if got := d.InternalReturnType(id, 2, nil); got != typesystem.TAny {
		t.Fatalf("argc=2: got %v, want any", typesystem.TypeName(got))
	}
}

func TestUserFuncSynthesisAndCache(t *testing.T) {
	d := New(nil, "")
	fn := &values.UserFunc{FuncName: "f", Pending: true}
	d.RegisterUser(fn)

	ref, ok := d.FindUser("f")
	if !ok {
		t.Fatal("expected f to be found")
	}
	if _, ok := d.CachedSignature(ref); ok {
		t.Fatal("expected no cached signature yet")
	}

	if err := d.EnsureCompiled(ref); err != nil {
		t.Fatalf("EnsureCompiled: %v", err)
	}
	if fn.Pending {
		t.Fatal("expected EnsureCompiled to clear Pending")
	}

	sig := d.SynthesizeSignature(ref)
	if sig != typesystem.TFuncUnknown {
		t.Fatalf("SynthesizeSignature = %v, want t_func_unknown", typesystem.TypeName(sig))
	}

	cached, ok := d.CachedSignature(ref)
	if !ok || cached != sig {
		t.Fatal("expected the synthesized signature to be cached in-memory")
	}
}
