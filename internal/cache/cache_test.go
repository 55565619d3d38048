package cache

import (
	"testing"

	"github.com/funvibe/statictypes/internal/typesystem"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	arena := typesystem.NewArena(0)
	sig := typesystem.FuncWithArgs(typesystem.TVoid, []*typesystem.Type{typesystem.TNumber}, false, 1, arena)
	durable := typesystem.Durable(sig)
	arena.ClearArena()

	if err := s.Put("myFunc", "hash-a", durable); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := s.Get("myFunc", "hash-a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit")
	}
	if !typesystem.Equal(got, durable) {
		t.Fatalf("round-tripped signature = %v, want %v", typesystem.TypeName(got), typesystem.TypeName(durable))
	}
}

func TestGetMissOnDifferentHash(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put("myFunc", "hash-a", typesystem.TNumber); err != nil {
		t.Fatalf("Put: %v", err)
	}
	_, ok, err := s.Get("myFunc", "hash-b")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected a miss for a different source hash")
	}
}

func TestGetMissOnUnknownName(t *testing.T) {
	s := openTestStore(t)
	_, ok, err := s.Get("nope", "hash-a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected a miss for an unregistered name")
	}
}

func TestMetaRoundTrip(t *testing.T) {
	s := openTestStore(t)
	if err := s.SetMeta("schemaVersion", "1"); err != nil {
		t.Fatalf("SetMeta: %v", err)
	}
	got, ok, err := s.GetMeta("schemaVersion")
	if err != nil {
		t.Fatalf("GetMeta: %v", err)
	}
	if !ok || got != "1" {
		t.Fatalf("GetMeta = %q, %v, want 1, true", got, ok)
	}
}
