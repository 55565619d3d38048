package typesystem

// TypeArena is a single-owner, bulk-freed allocator for transient types
// produced during parsing, inference, and checking. Types within an arena
// may reference each other and may reference canonicals, but never
// reference another arena's nodes (§5, Shared-resource policy).
//
// Go's garbage collector makes a literal bump-pointer region unnecessary,
// but the ownership discipline the spec describes is still worth
// enforcing: ClearArena poisons every node it handed out so that a stray
// pointer held past the arena's lifetime is detectably stale rather than
// silently still "working" (testable property 9, arena isolation).
type TypeArena struct {
	nodes []*Type

	// Limit caps the number of nodes this arena will allocate; 0 means
	// unlimited. Exceeding it models allocation failure (§7): constructors
	// degrade to returning the canonical Any rather than propagating an
	// error, mirroring a bump allocator that has run out of its region.
	Limit int

	cleared bool
}

// NewArena creates an empty arena. limit <= 0 means unlimited.
func NewArena(limit int) *TypeArena {
	return &TypeArena{Limit: limit}
}

// alloc hands out a fresh, zero-valued Type owned by a. Returns nil if the
// arena's Limit has been reached or the arena was already cleared.
func (a *TypeArena) alloc() *Type {
	if a == nil || a.cleared {
		return nil
	}
	if a.Limit > 0 && len(a.nodes) >= a.Limit {
		return nil
	}
	t := &Type{}
	a.nodes = append(a.nodes, t)
	return t
}

// ClearArena releases every type this arena owns in bulk. Any *Type handed
// out by this arena is poisoned in place: its Kind becomes kindPoisoned and
// its other fields are zeroed, so further use is both observable (Kind()
// reads back as invalid) and inert (no dangling references into other
// arenas or into canonicals are retained by a poisoned node, since Member
// and Args are cleared too).
func (a *TypeArena) ClearArena() {
	if a == nil {
		return
	}
	for _, t := range a.nodes {
		t.Kind = kindPoisoned
		t.Member = nil
		t.Args = nil
		t.ArgCount = 0
		t.MinArgCount = 0
		t.Flags = 0
	}
	a.nodes = nil
	a.cleared = true
}

// IsPoisoned reports whether t belongs to an arena that has been cleared.
// Exposed for tests that want to assert property 9 directly.
func IsPoisoned(t *Type) bool { return t != nil && t.Kind == kindPoisoned }
