// Package diagnostics defines the structured messages the type layer
// reports and two sinks that consume them: an in-memory collector for
// tests and embedders that want to batch messages, and a stderr logger for
// the CLI.
package diagnostics

import (
	"fmt"
	"log"
)

// SiteKind distinguishes where a Check failure occurred: a plain variable
// assignment versus a call-argument slot.
type SiteKind int

const (
	SiteVariable SiteKind = iota
	SiteArgument
)

func (k SiteKind) String() string {
	if k == SiteArgument {
		return "argument"
	}
	return "variable"
}

// Where locates a Check failure: which argument/variable slot, and whether
// that slot is a call argument or a plain variable.
type Where struct {
	Index int
	Site  SiteKind
}

// ArgWhere builds a Where for the i'th call argument.
func ArgWhere(i int) Where { return Where{Index: i, Site: SiteArgument} }

// VarWhere builds a Where for a variable/return-value site.
func VarWhere(i int) Where { return Where{Index: i, Site: SiteVariable} }

// ParseErrorKind enumerates the parser's closed set of failure reasons.
type ParseErrorKind int

const (
	MissingType ParseErrorKind = iota
	MissingClose
	MissingGt
	NoSpaceBefore
	SpaceRequiredAfter
	MandatoryAfterOptional
	TooManyArgTypes
	NotRecognized
	NoFloatSupport
)

func (k ParseErrorKind) String() string {
	switch k {
	case MissingType:
		return "missingType"
	case MissingClose:
		return "missingClose"
	case MissingGt:
		return "missingGt"
	case NoSpaceBefore:
		return "noSpaceBefore"
	case SpaceRequiredAfter:
		return "spaceRequiredAfter"
	case MandatoryAfterOptional:
		return "mandatoryAfterOptional"
	case TooManyArgTypes:
		return "tooManyArgTypes"
	case NotRecognized:
		return "notRecognized"
	case NoFloatSupport:
		return "noFloatSupport"
	default:
		return "unknown"
	}
}

// Kind distinguishes the message variants a Sink receives.
type Kind int

const (
	KindTypeMismatch Kind = iota
	KindTooFewArgs
	KindTooManyArgs
	KindParseError
)

// Diagnostic is the structured message shape every Sink method funnels
// through. Formatter-independent: String() renders a one-line summary, but
// embedders are free to inspect the fields directly (e.g. an LSP host maps
// Where.Index to a source range of its own).
type Diagnostic struct {
	Kind ParseErrorKind
	Msg  Kind

	// Populated for KindTypeMismatch.
	Expected string
	Actual   string
	Where    Where

	// Populated for KindTooFewArgs / KindTooManyArgs.
	FuncName string

	// Populated for KindParseError.
	At int
}

func (d Diagnostic) String() string {
	switch d.Msg {
	case KindTypeMismatch:
		return fmt.Sprintf("type mismatch at %s %d: expected %s, got %s", d.Where.Site, d.Where.Index, d.Expected, d.Actual)
	case KindTooFewArgs:
		return fmt.Sprintf("too few arguments to %s", d.FuncName)
	case KindTooManyArgs:
		return fmt.Sprintf("too many arguments to %s", d.FuncName)
	case KindParseError:
		return fmt.Sprintf("parse error at offset %d: %s", d.At, d.Kind)
	default:
		return "unknown diagnostic"
	}
}

// Sink receives structured messages from Check, CheckArgs, and the parser.
type Sink interface {
	TypeMismatch(expected, actual string, where Where)
	TooFewArgs(name string)
	TooManyArgs(name string)
	ParseError(kind ParseErrorKind, at int)
}

// CollectingSink appends every message it receives, in order. Used by this
// repo's own tests and by embedders that want to gather a batch of
// diagnostics before rendering them (e.g. to sort by source position).
type CollectingSink struct {
	Diagnostics []Diagnostic
}

func NewCollectingSink() *CollectingSink { return &CollectingSink{} }

func (s *CollectingSink) TypeMismatch(expected, actual string, where Where) {
	s.Diagnostics = append(s.Diagnostics, Diagnostic{Msg: KindTypeMismatch, Expected: expected, Actual: actual, Where: where})
}

func (s *CollectingSink) TooFewArgs(name string) {
	s.Diagnostics = append(s.Diagnostics, Diagnostic{Msg: KindTooFewArgs, FuncName: name})
}

func (s *CollectingSink) TooManyArgs(name string) {
	s.Diagnostics = append(s.Diagnostics, Diagnostic{Msg: KindTooManyArgs, FuncName: name})
}

func (s *CollectingSink) ParseError(kind ParseErrorKind, at int) {
	s.Diagnostics = append(s.Diagnostics, Diagnostic{Msg: KindParseError, Kind: kind, At: at})
}

// Empty reports whether no diagnostic was recorded.
func (s *CollectingSink) Empty() bool { return len(s.Diagnostics) == 0 }

// LogSink writes one line per diagnostic through a standard-library
// *log.Logger, mirroring the host's own convention of logging straight
// through the "log" package (see cmd/lsp/main.go: log.SetFlags(0),
// log.SetOutput(os.Stderr)) rather than a structured-logging dependency.
type LogSink struct {
	Logger *log.Logger
}

func NewLogSink(l *log.Logger) *LogSink { return &LogSink{Logger: l} }

func (s *LogSink) TypeMismatch(expected, actual string, where Where) {
	s.Logger.Print(Diagnostic{Msg: KindTypeMismatch, Expected: expected, Actual: actual, Where: where}.String())
}

func (s *LogSink) TooFewArgs(name string) {
	s.Logger.Print(Diagnostic{Msg: KindTooFewArgs, FuncName: name}.String())
}

func (s *LogSink) TooManyArgs(name string) {
	s.Logger.Print(Diagnostic{Msg: KindTooManyArgs, FuncName: name}.String())
}

func (s *LogSink) ParseError(kind ParseErrorKind, at int) {
	s.Logger.Print(Diagnostic{Msg: KindParseError, Kind: kind, At: at}.String())
}
