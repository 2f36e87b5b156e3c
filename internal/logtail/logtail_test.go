package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func writeLines(t *testing.T, n int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.log")
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestTail_ReturnsLastLinesInOrder(t *testing.T) {
	path := writeLines(t, 10)

	lines, err := Tail(path, Options{Lines: 3})
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	want := []string{"line 8", "line 9", "line 10"}
	if strings.Join(lines, ",") != strings.Join(want, ",") {
		t.Fatalf("Tail = %v, want %v", lines, want)
	}
}

func TestTail_FewerLinesThanMax(t *testing.T) {
	path := writeLines(t, 2)

	lines, err := Tail(path, Options{Lines: 5})
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if len(lines) != 2 || lines[0] != "line 1" {
		t.Fatalf("Tail = %v, want [line 1 line 2]", lines)
	}
}

func TestTail_MissingFileAndZeroMax(t *testing.T) {
	lines, err := Tail(filepath.Join(t.TempDir(), "nope.log"), Options{Lines: 5})
	if err != nil || lines != nil {
		t.Fatalf("Tail missing = %v, %v; want nil, nil", lines, err)
	}
	lines, err = Tail(writeLines(t, 3), Options{})
	if err != nil || lines != nil {
		t.Fatalf("Tail lines=0 = %v, %v; want nil, nil", lines, err)
	}
}

func TestFormat_JSONRecord(t *testing.T) {
	line := `{"level":"warn","ts":"2026-10-19T08:30:00.000Z","caller":"x.go:1","msg":"write preference","key":"favorites","attempt":2}`
	got := Format(line)
	if !strings.Contains(got, "WARN  write preference attempt=2 key=favorites") {
		t.Fatalf("Format = %q", got)
	}
	if strings.Contains(got, "caller") {
		t.Fatalf("Format should drop caller: %q", got)
	}
}

func TestFormat_PlainLineUnchanged(t *testing.T) {
	if got := Format("not json"); got != "not json" {
		t.Fatalf("Format = %q, want unchanged", got)
	}
}

func TestParse_TimeAndFields(t *testing.T) {
	rec, ok := Parse(`{"level":"info","ts":"2026-10-19T08:30:00.000Z","msg":"hi","n":1}`)
	if !ok {
		t.Fatalf("Parse returned false")
	}
	if rec.Time.IsZero() || rec.Time.UTC().Hour() != 8 {
		t.Fatalf("Time = %v", rec.Time)
	}
	if rec.Fields["n"] != "1" {
		t.Fatalf("Fields = %v", rec.Fields)
	}
}

func TestTail_MinLevelFiltersJSONRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	content := strings.Join([]string{
		`{"level":"debug","msg":"d1"}`,
		`{"level":"warn","msg":"w1"}`,
		`plain text`,
		`{"level":"info","msg":"i1"}`,
		`{"level":"error","msg":"e1"}`,
	}, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	lines, err := Tail(path, Options{Lines: 10, MinLevel: zapcore.WarnLevel})
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	got := strings.Join(lines, "|")
	want := `{"level":"warn","msg":"w1"}|plain text|{"level":"error","msg":"e1"}`
	if got != want {
		t.Fatalf("Tail = %s, want %s", got, want)
	}

	lines, err = Tail(path, Options{Lines: 1, MinLevel: zapcore.WarnLevel})
	if err != nil || len(lines) != 1 || lines[0] != `{"level":"error","msg":"e1"}` {
		t.Fatalf("Tail lines=1 = %v, %v", lines, err)
	}
}
