package docs

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Fenced blocks whose info string is one of these are executed by
// TestExamples. A setup starts a new scenario in an empty directory, a run
// records its output for the next "console check", a check must succeed.
const (
	setupBlock   = "bash setup"
	runBlock     = "bash run"
	checkBlock   = "bash check"
	consoleBlock = "console check"
)

// example is an executable fenced block.
type example struct {
	kind string
	body string
	pos  string // file:line
}

// examples returns the executable blocks of a markdown file, in order.
func examples(t *testing.T, file string) []example {
	t.Helper()
	src, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	var found []example
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fence, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fence.Info == nil {
			return ast.WalkContinue, nil
		}
		kind := string(fence.Info.Segment.Value(src))
		switch kind {
		case setupBlock, runBlock, checkBlock, consoleBlock:
		default:
			return ast.WalkContinue, nil
		}
		var body strings.Builder
		lines := fence.Lines()
		for i := range lines.Len() {
			seg := lines.At(i)
			body.Write(seg.Value(src))
		}
		line := bytes.Count(src[:fence.Info.Segment.Start], []byte("\n")) + 1
		found = append(found, example{kind: kind, body: body.String(), pos: fmt.Sprintf("%s:%d", file, line)})
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return found
}

var (
	buildOnce sync.Once
	binDir    string
	buildErr  error
)

// folioBin builds the folio command once and returns the directory holding it.
func folioBin(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		binDir, buildErr = os.MkdirTemp("", "folio-bin")
		if buildErr != nil {
			return
		}
		out, err := exec.Command("go", "build", "-o", filepath.Join(binDir, "folio"), "../folio/").CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("%v\n%s", err, out)
		}
	})
	if buildErr != nil {
		t.Fatalf("building folio: %v", buildErr)
	}
	return binDir
}

func TestExamples(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and runs the folio command")
	}
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range append(files, "../README.md") {
		t.Run(filepath.Base(file), func(t *testing.T) {
			blocks := examples(t, file)
			if len(blocks) == 0 {
				t.Skip("no example")
			}
			env := append(os.Environ(), "PATH="+folioBin(t)+string(os.PathListSeparator)+os.Getenv("PATH"))
			dir, output := t.TempDir(), ""
			for _, b := range blocks {
				if b.kind == consoleBlock {
					got := strings.ReplaceAll(strings.TrimSpace(output), "\t", "        ")
					if want := strings.TrimSpace(b.body); got != want {
						t.Errorf("%s: got\n%s\nwant\n%s", b.pos, got, want)
					}
					continue
				}
				if b.kind == setupBlock {
					dir = t.TempDir()
				}
				cmd := exec.Command("bash", "-c", "set -e; "+b.body)
				cmd.Dir, cmd.Env = dir, env
				out, err := cmd.CombinedOutput()
				if b.kind == runBlock {
					output = string(out)
				}
				if err == nil {
					continue
				}
				if b.kind == checkBlock {
					t.Errorf("%s: check failed: %v\n%s", b.pos, err, out)
					continue
				}
				t.Fatalf("%s: %s failed: %v\n%s", b.pos, b.kind, err, out)
			}
		})
	}
}

func TestMain(m *testing.M) {
	code := m.Run()
	if binDir != "" {
		os.RemoveAll(binDir)
	}
	os.Exit(code)
}
