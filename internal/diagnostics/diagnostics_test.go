package diagnostics

import (
	"bytes"
	"log"
	"testing"
)

func TestCollectingSinkRecordsInOrder(t *testing.T) {
	s := NewCollectingSink()
	if !s.Empty() {
		t.Fatal("a fresh sink should be empty")
	}

	s.TypeMismatch("number", "string", ArgWhere(0))
	s.TooFewArgs("f")
	s.TooManyArgs("g")
	s.ParseError(NoSpaceBefore, 4)

	if s.Empty() {
		t.Fatal("expected recorded diagnostics")
	}
	if len(s.Diagnostics) != 4 {
		t.Fatalf("got %d diagnostics, want 4", len(s.Diagnostics))
	}
	if s.Diagnostics[0].Msg != KindTypeMismatch || s.Diagnostics[0].Where.Site != SiteArgument {
		t.Fatalf("unexpected first diagnostic: %+v", s.Diagnostics[0])
	}
}

func TestLogSinkWritesOneLinePerDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(log.New(&buf, "", 0))

	sink.TypeMismatch("number", "string", VarWhere(2))
	sink.TooFewArgs("f")

	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	if lines != 2 {
		t.Fatalf("got %d lines, want 2: %q", lines, buf.String())
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Msg: KindTypeMismatch, Expected: "number", Actual: "string", Where: ArgWhere(1)}
	got := d.String()
	if got == "" {
		t.Fatal("expected a non-empty message")
	}
}
