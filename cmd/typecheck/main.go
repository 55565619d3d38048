// Command typecheck parses a .funxytype signature file and, optionally,
// checks a set of named sample values against it. It is a thin CLI shell
// over the typesystem package — loading config the way the host loads
// funxy.yaml, colorizing output the way the host's terminal builtins do
// via go-isatty, and tagging each run with a uuid for log correlation.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/statictypes/internal/config"
	"github.com/funvibe/statictypes/internal/diagnostics"
	"github.com/funvibe/statictypes/internal/typesystem"
	"github.com/funvibe/statictypes/internal/values"
)

const (
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run implements the CLI body. args[0] is the signature file; args[1], if
// present and not "-", is a values file checked against the signatures;
// args[2], if present, overrides the default config path.
func run(args []string, stdout, stderr *os.File) int {
	logger := log.New(stderr, "", 0)

	if len(args) == 0 {
		fmt.Fprintln(stderr, "usage: typecheck <signature-file> [values-file] [config.yaml]")
		return 2
	}

	configPath := "typecheck.yaml"
	if len(args) > 2 {
		configPath = args[2]
	}
	opts, err := config.Load(configPath)
	if err != nil {
		logger.Printf("loading config %s: %v", configPath, err)
		return 2
	}

	runID := uuid.NewString()
	color := opts.ColorDiagnostics && isatty.IsTerminal(stdout.Fd())
	sink := diagnostics.NewLogSink(log.New(stderr, "["+runID+"] ", 0))

	arena := typesystem.NewArena(0)
	defer arena.ClearArena()

	sigs, names, ok := parseSignatureFile(args[0], arena, opts, sink)
	if !ok {
		printVerdict(stdout, color, false, "")
		return 1
	}

	if len(args) < 2 || args[1] == "-" {
		for _, name := range names {
			printVerdict(stdout, color, true, name+": "+typesystem.TypeName(sigs[name]))
		}
		return 0
	}

	vals, err := parseValuesFile(args[1])
	if err != nil {
		logger.Printf("reading %s: %v", args[1], err)
		return 2
	}

	allOK := true
	for _, name := range names {
		v, present := vals[name]
		if !present {
			continue
		}
		ok := typesystem.CheckValue(sigs[name], v, 0, nil, sink)
		printVerdict(stdout, color, ok, name)
		if !ok {
			allOK = false
		}
	}
	if !allOK {
		return 1
	}
	return 0
}

// parseSignatureFile reads "name: type" lines (blank lines and lines
// starting with '#' are skipped) and parses each type with the Parser.
// Returns ok=false on the first parse failure, after the Parser has
// already reported it through sink.
func parseSignatureFile(path string, arena *typesystem.TypeArena, opts config.Options, sink diagnostics.Sink) (sigs map[string]*typesystem.Type, order []string, ok bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, false
	}

	sigs = make(map[string]*typesystem.Type)
	p := typesystem.NewParser(arena, opts, sink)

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, rest, found := strings.Cut(line, ":")
		if !found {
			return nil, nil, false
		}
		name = strings.TrimSpace(name)
		t, parsed := typesystem.ParseString(strings.TrimSpace(rest), p)
		if !parsed {
			return nil, nil, false
		}
		sigs[name] = t
		order = append(order, name)
	}
	return sigs, order, true
}

// parseValuesFile reads "name = literal" lines, where literal is a number,
// a double-quoted string, or one of true/false, into values.Value — enough
// for the CLI smoke scenario without pulling in a whole value-literal
// grammar.
func parseValuesFile(path string) (map[string]values.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make(map[string]values.Value)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, rest, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("malformed value line: %q", line)
		}
		name = strings.TrimSpace(name)
		out[name] = parseLiteral(strings.TrimSpace(rest))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseLiteral(s string) values.Value {
	switch {
	case s == "true":
		return values.Bool(true)
	case s == "false":
		return values.Bool(false)
	case strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) && len(s) >= 2:
		return values.String(s[1 : len(s)-1])
	default:
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return values.Number(n)
		}
		return values.String(s)
	}
}

func printVerdict(w *os.File, color, ok bool, label string) {
	status, c := "FAIL", ansiRed
	if ok {
		status, c = "OK", ansiGreen
	}
	if label != "" {
		label = " " + label
	}
	if color {
		fmt.Fprintf(w, "%s%s%s%s\n", c, status, ansiReset, label)
		return
	}
	fmt.Fprintf(w, "%s%s\n", status, label)
}
