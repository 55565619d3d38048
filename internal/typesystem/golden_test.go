package typesystem

import (
	"os"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/funvibe/statictypes/internal/config"
	"github.com/funvibe/statictypes/internal/diagnostics"
)

// Golden fixtures for the parser/formatter round trip, one txtar file per
// case: line 1 is the source to parse, line 2 is the formatted output it
// must produce (and must itself reparse to an equal Type). Kept as txtar
// rather than inline Go so a fixture can be added without touching test
// code.
func TestFormatGoldenFixtures(t *testing.T) {
	raw, err := os.ReadFile("testdata/format_golden.txtar")
	if err != nil {
		t.Fatalf("reading fixture archive: %v", err)
	}
	archive := txtar.Parse(raw)
	if len(archive.Files) == 0 {
		t.Fatal("expected at least one fixture in the archive")
	}

	for _, f := range archive.Files {
		f := f
		t.Run(f.Name, func(t *testing.T) {
			lines := strings.Split(strings.TrimRight(string(f.Data), "\n"), "\n")
			if len(lines) != 2 {
				t.Fatalf("fixture %s: expected exactly 2 lines (source, formatted), got %d", f.Name, len(lines))
			}
			src, want := lines[0], lines[1]

			arena := NewArena(0)
			defer arena.ClearArena()
			sink := diagnostics.NewCollectingSink()
			p := NewParser(arena, config.Default(), sink)

			got, ok := ParseString(src, p)
			if !ok {
				t.Fatalf("fixture %s: ParseString(%q) failed: %+v", f.Name, src, sink.Diagnostics)
			}
			if name := TypeName(got); name != want {
				t.Fatalf("fixture %s: TypeName(%q) = %q, want %q", f.Name, src, name, want)
			}

			arena2 := NewArena(0)
			defer arena2.ClearArena()
			sink2 := diagnostics.NewCollectingSink()
			p2 := NewParser(arena2, config.Default(), sink2)
			reparsed, ok := ParseString(want, p2)
			if !ok {
				t.Fatalf("fixture %s: formatted output %q failed to reparse: %+v", f.Name, want, sink2.Diagnostics)
			}
			if !Equal(got, reparsed) {
				t.Fatalf("fixture %s: round trip mismatch: %v vs %v", f.Name, TypeName(got), TypeName(reparsed))
			}
		})
	}
}
