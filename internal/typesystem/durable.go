package typesystem

// Durable deep-copies an arena-owned type into standalone, individually
// owned storage, for long-lived use (e.g. a cached function signature)
// that outlives any one arena. Static (canonical) nodes are shared, not
// copied — they already outlive everything (§3, Ownership/lifecycle).
//
// Type-graph cycles never occur here: the parser and ValueInference both
// produce DAGs (§5), so a plain recursive copy terminates.
func Durable(t *Type) *Type {
	if t == nil {
		return nil
	}
	if t.IsStatic() {
		return t
	}
	d := &Type{
		Kind:        t.Kind,
		ArgCount:    t.ArgCount,
		MinArgCount: t.MinArgCount,
		Flags:       t.Flags &^ FlagStatic,
	}
	d.Member = Durable(t.Member)
	if t.Args != nil {
		d.Args = make([]*Type, len(t.Args))
		for i, a := range t.Args {
			d.Args[i] = Durable(a)
		}
	}
	return d
}

// FreeDurable releases a durable type tree, poisoning it the same way
// TypeArena.ClearArena poisons arena nodes. A no-op on Static nodes, which
// are never owned by a durable tree in the first place.
func FreeDurable(t *Type) {
	if t == nil || t.IsStatic() {
		return
	}
	FreeDurable(t.Member)
	for _, a := range t.Args {
		FreeDurable(a)
	}
	t.Kind = kindPoisoned
	t.Member = nil
	t.Args = nil
	t.ArgCount = 0
	t.MinArgCount = 0
	t.Flags = 0
}
