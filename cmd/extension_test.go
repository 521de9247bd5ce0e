package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// setGlobalFlags declares and parses the global flags for a test.
func setGlobalFlags(t *testing.T, args ...string) {
	t.Helper()
	f := flag.NewFlagSet("folio", flag.ContinueOnError)
	SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid global flags %q: %v", args, err)
	}
}

func TestRunExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension script requires a unix shell")
	}
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	script := "#!/bin/sh\nenv | grep '^FOLIO_' | sort > \"$1\"\nexit 3\n"
	if err := os.WriteFile(filepath.Join(dir, "folio-hello"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	setGlobalFlags(t, "-prices", "quotes.csv", "-price-column", "Currentprice", "-currency", "EUR", "-v")

	found, code := RunExtension("hello", []string{out})
	if !found {
		t.Fatal("RunExtension() did not find folio-hello")
	}
	if code != 3 {
		t.Errorf("RunExtension() exit code = %d, want 3", code)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"FOLIO_PRICES=quotes.csv",
		"FOLIO_PRICE_COLUMN=Currentprice",
		"FOLIO_CURRENCY=EUR",
		"FOLIO_PORTFOLIO=portfolio.csv",
		"FOLIO_VERBOSE=true",
	} {
		if !strings.Contains(string(got), want+"\n") {
			t.Errorf("extension environment is missing %q:\n%s", want, got)
		}
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	setGlobalFlags(t)
	if found, _ := RunExtension("nope", nil); found {
		t.Error("RunExtension() found a missing extension")
	}
}
