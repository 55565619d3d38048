package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// S9: a matching value checks Ok; a mismatched one reports a TypeMismatch
// and a non-zero exit.
func TestCLISmokeOkAndFail(t *testing.T) {
	dir := t.TempDir()
	sigPath := writeTemp(t, dir, "sig.funxytype", "n: number\n")

	okValues := writeTemp(t, dir, "ok.values", "n = 1\n")
	rOK, wOK, _ := os.Pipe()
	code := run([]string{sigPath, okValues}, wOK, wOK)
	wOK.Close()
	rOK.Close()
	if code != 0 {
		t.Fatalf("expected exit 0 for matching value, got %d", code)
	}

	failValues := writeTemp(t, dir, "fail.values", `n = "x"`+"\n")
	rFail, wFail, _ := os.Pipe()
	code = run([]string{sigPath, failValues}, wFail, wFail)
	wFail.Close()
	rFail.Close()
	if code == 0 {
		t.Fatal("expected non-zero exit for a mismatched value")
	}
}

func TestCLIParseOnly(t *testing.T) {
	dir := t.TempDir()
	sigPath := writeTemp(t, dir, "sig.funxytype", "xs: list<number>\nf: func(number): bool\n")

	r, w, _ := os.Pipe()
	code := run([]string{sigPath}, w, w)
	w.Close()
	r.Close()
	if code != 0 {
		t.Fatalf("expected exit 0 parsing a valid signature file, got %d", code)
	}
}

func TestCLIMissingSignatureFile(t *testing.T) {
	r, w, _ := os.Pipe()
	code := run([]string{filepath.Join(t.TempDir(), "missing.funxytype")}, w, w)
	w.Close()
	r.Close()
	if code != 1 {
		t.Fatalf("expected exit 1 for an unreadable signature file, got %d", code)
	}
}
