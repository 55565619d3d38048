package typesystem

import (
	"strings"

	"github.com/funvibe/statictypes/internal/config"
	"github.com/funvibe/statictypes/internal/diagnostics"
)

// Cursor walks a type-syntax string byte by byte. Pos is the next unread
// byte offset; callers share one Cursor across a whole signature scan the
// way the host's own lexer shares a read position across a token stream.
type Cursor struct {
	Src string
	Pos int
}

// NewCursor starts a Cursor at the beginning of src.
func NewCursor(src string) *Cursor { return &Cursor{Src: src} }

func (c *Cursor) eof() bool { return c.Pos >= len(c.Src) }

func (c *Cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.Src[c.Pos]
}

func (c *Cursor) at(off int) byte {
	if c.Pos+off >= len(c.Src) {
		return 0
	}
	return c.Src[c.Pos+off]
}

// skipSpaces advances over ordinary spaces only; the surface syntax never
// uses tabs or newlines mid-signature.
func (c *Cursor) skipSpaces() {
	for !c.eof() && c.Src[c.Pos] == ' ' {
		c.Pos++
	}
}

// peekPastSpaces reports whether a space immediately follows Pos and what
// byte comes after any run of spaces, without moving Pos. Used by the
// noSpaceBefore checks ahead of '<' and ',': callers need to know what
// lies past the spaces before deciding whether a space was even an
// offense, so this must not commit to skipping until that's known.
func (c *Cursor) peekPastSpaces() (hadSpace bool, next byte, after int) {
	hadSpace = c.peek() == ' '
	after = c.Pos
	for after < len(c.Src) && c.Src[after] == ' ' {
		after++
	}
	if after >= len(c.Src) {
		return hadSpace, 0, after
	}
	return hadSpace, c.Src[after], after
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// readIdent consumes a maximal run of identifier bytes starting at Pos.
func (c *Cursor) readIdent() string {
	start := c.Pos
	for !c.eof() && isIdentByte(c.Src[c.Pos]) {
		c.Pos++
	}
	return c.Src[start:c.Pos]
}

// Parser parses the type surface syntax (§4.3) into a TypeArena. It holds
// the same three pieces of ambient state the parser threads through every
// call: the arena new nodes come from, the config (arity cap, float
// feature flag), and the diagnostics sink that receives the first offense.
type Parser struct {
	Arena  *TypeArena
	Config config.Options
	Sink   diagnostics.Sink
}

// NewParser builds a Parser over arena, reporting through sink and honoring
// opts (arity cap, AllowFloat). A nil sink silently discards diagnostics.
func NewParser(arena *TypeArena, opts config.Options, sink diagnostics.Sink) *Parser {
	return &Parser{Arena: arena, Config: opts, Sink: sink}
}

func (p *Parser) emit(kind diagnostics.ParseErrorKind, at int) {
	if p.Sink != nil {
		p.Sink.ParseError(kind, at)
	}
}

// Parse reads one type from c, starting at c.Pos, and advances c past it.
// Returns nil on failure after emitting a single diagnostic at the first
// offense (§7); whatever was partially allocated remains in the arena for
// the caller to discard via ClearArena.
func (p *Parser) Parse(c *Cursor) *Type {
	return p.parseType(c, false)
}

// SkipType advances c past one type without building it, used by callers
// that only need to scan past a signature (e.g. to find where the next
// token begins). allowOptional permits a leading '?' the way a parameter
// list does; parseType itself never consumes a leading '?' (that is
// parseParam's job), so SkipType replicates only what it needs.
func (p *Parser) SkipType(c *Cursor, allowOptional bool) {
	if allowOptional && c.peek() == '?' {
		c.Pos++
	}
	sink := p.Sink
	p.Sink = nil
	p.parseType(c, true)
	p.Sink = sink
}

// parseType implements the `type` production. skipOnly suppresses
// allocation, used by SkipType (which also detaches the sink for the scan,
// so no diagnostics are reported).
func (p *Parser) parseType(c *Cursor, skipOnly bool) *Type {
	start := c.Pos
	if c.eof() || !isIdentByte(c.peek()) {
		p.emit(diagnostics.NotRecognized, start)
		return nil
	}
	word := c.readIdent()

	switch word {
	case "any":
		return TAny
	case "void":
		return TVoid
	case "bool":
		return TBool
	case "number":
		return TNumber
	case "float":
		if !p.Config.AllowFloat {
			p.emit(diagnostics.NoFloatSupport, start)
			return nil
		}
		return TFloat
	case "string":
		return TString
	case "blob":
		return TBlob
	case "job":
		return TJob
	case "channel":
		return TChannel
	case "list":
		return p.parseCollection(c, skipOnly, ListOf)
	case "dict":
		return p.parseCollection(c, skipOnly, DictOf)
	case "func":
		return p.parseFunc(c, skipOnly)
	default:
		p.emit(diagnostics.NotRecognized, start)
		return nil
	}
}

// parseCollection implements the `'list' '<' type '>'` / `'dict' '<' type
// '>'` productions, sharing everything but which constructor to apply.
func (p *Parser) parseCollection(c *Cursor, skipOnly bool, ctor func(*Type, *TypeArena) *Type) *Type {
	// No space permitted before '<'. Look past any spaces before deciding:
	// if '<' isn't there at all, report missingType at the original
	// position exactly as if no spaces had been skipped.
	spaceAt := c.Pos
	hadSpace, next, after := c.peekPastSpaces()
	if next != '<' {
		p.emit(diagnostics.MissingType, c.Pos)
		return nil
	}
	if hadSpace {
		p.emit(diagnostics.NoSpaceBefore, spaceAt)
		return nil
	}
	c.Pos = after + 1 // consume '<'

	member := p.parseType(c, skipOnly)
	if member == nil && !skipOnly {
		return nil
	}

	if c.peek() != '>' {
		p.emit(diagnostics.MissingGt, c.Pos)
		return nil
	}
	c.Pos++ // consume '>'

	if skipOnly {
		return nil
	}
	return ctor(member, p.Arena)
}

// parseFunc implements every `'func' ...` alternative. func's four surface
// forms (bare, with parens, with ':', with both) are disambiguated purely
// by what follows the keyword.
func (p *Parser) parseFunc(c *Cursor, skipOnly bool) *Type {
	if c.peek() != '(' && c.peek() != ':' {
		// Bare "func": unknown return, unknown arity.
		if skipOnly {
			return nil
		}
		return TFuncUnknown
	}

	argCount := -1
	minArgCount := 0
	variadic := false
	var args []*Type

	if c.peek() == '(' {
		c.Pos++ // consume '('

		if c.peek() == ')' {
			argCount = 0
		} else if c.peek() == '.' && c.at(1) == '.' && c.at(2) == '.' && c.at(3) == ')' {
			// Bare "..." with no element type: the unknown-arity marker,
			// distinct from a variadic parameter (which always names an
			// element type after the ellipsis).
			c.Pos += 3
		} else {
			var ok bool
			args, variadic, minArgCount, ok = p.parseParams(c, skipOnly)
			if !ok {
				return nil
			}
			argCount = len(args)
		}

		if c.peek() != ')' {
			p.emit(diagnostics.MissingClose, c.Pos)
			return nil
		}
		c.Pos++ // consume ')'
	}

	// func() and func(...) without a ':' both default their return to Void
	// (§4.3); "func: T" and "func(...): T" instead take the explicit type.
	ret := TVoid
	if c.peek() == ':' {
		colonAt := c.Pos
		c.Pos++ // consume ':'
		if c.peek() != ' ' {
			p.emit(diagnostics.SpaceRequiredAfter, colonAt)
			return nil
		}
		c.Pos++ // consume the required space
		ret = p.parseType(c, skipOnly)
		if ret == nil && !skipOnly {
			return nil
		}
	}

	if skipOnly {
		return nil
	}

	if len(args) == 0 {
		return FuncOf(ret, argCount, p.Arena)
	}
	if len(args) > p.maxFuncArgs() {
		p.emit(diagnostics.TooManyArgTypes, c.Pos)
		return nil
	}
	return FuncWithArgs(ret, args, variadic, minArgCount, p.Arena)
}

func (p *Parser) maxFuncArgs() int {
	if p.Config.MaxFuncArgs > 0 {
		return p.Config.MaxFuncArgs
	}
	return config.DefaultMaxFuncArgs
}

// parseParams implements the `params` and `param` productions: a
// comma-separated list of `'?' type | '...' type | type`, enforcing that
// '...' only appears last and that no mandatory parameter follows an
// optional one.
func (p *Parser) parseParams(c *Cursor, skipOnly bool) (args []*Type, variadic bool, minArgCount int, ok bool) {
	sawOptional := false
	minArgCount = -1 // becomes the index of the first optional/variadic param

	for {
		paramStart := c.Pos
		optional := false
		thisVariadic := false

		switch {
		case c.peek() == '?':
			optional = true
			c.Pos++
		case c.peek() == '.' && c.at(1) == '.' && c.at(2) == '.':
			thisVariadic = true
			c.Pos += 3
		}

		t := p.parseType(c, skipOnly)
		if t == nil && !skipOnly {
			return nil, false, 0, false
		}

		if thisVariadic {
			// The stored slot is exactly the parsed element type, e.g.
			// "...list<number>" stores List<Number> verbatim (S2) — it is
			// not re-wrapped in an outer List. In practice a variadic
			// parameter's element type is itself usually a List, which is
			// the sense in which invariant 5 (§3) describes the last
			// argument's kind as List.
			variadic = true
			if minArgCount < 0 {
				minArgCount = len(args)
			}
			args = append(args, t)
			// '...' must be the final parameter; a comma after it is a
			// syntax error we surface the same way a stray trailing
			// parameter would be, via the caller's MissingClose check on
			// the next byte not being ')'.
			break
		}

		if optional {
			sawOptional = true
			if minArgCount < 0 {
				minArgCount = len(args)
			}
		} else if sawOptional {
			p.emit(diagnostics.MandatoryAfterOptional, paramStart)
			return nil, false, 0, false
		}

		args = append(args, t)

		// No space permitted before ','. Look past any spaces before
		// deciding: if no comma follows at all (end of the param list),
		// leave Pos untouched and break exactly as if no spaces had been
		// skipped, so the caller's missingClose check still sees whatever
		// trailing text was actually there.
		spaceAt := c.Pos
		hadSpace, next, after := c.peekPastSpaces()
		if next != ',' {
			break
		}
		if hadSpace {
			p.emit(diagnostics.NoSpaceBefore, spaceAt)
			return nil, false, 0, false
		}
		commaAt := after
		c.Pos = after + 1 // consume ','
		if c.peek() != ' ' {
			p.emit(diagnostics.SpaceRequiredAfter, commaAt)
			return nil, false, 0, false
		}
		c.Pos++ // consume the required space
	}

	if minArgCount < 0 {
		minArgCount = len(args)
	}
	return args, variadic, minArgCount, true
}

// ParseString is a convenience entry point for callers (tests, the CLI)
// that have a whole signature as a string rather than a shared Cursor.
func ParseString(src string, p *Parser) (*Type, bool) {
	c := NewCursor(strings.TrimRight(src, " "))
	t := p.Parse(c)
	if t == nil {
		return nil, false
	}
	return t, c.eof()
}
